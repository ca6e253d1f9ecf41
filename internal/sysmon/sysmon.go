//go:generate mockgen -source=sysmon.go -destination=mocks/mock_provider.go -package=mocks

// Package sysmon provides point-in-time reads of host network, CPU and
// memory counters.
package sysmon

import (
	"context"
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/net"
)

// NetworkSnapshot holds the cumulative byte counters summed over all counted
// interfaces at one point in time.
type NetworkSnapshot struct {
	BytesSent     uint64
	BytesReceived uint64
}

// CPUSnapshot holds the busy percentage (0.0 .. 100.0) of every logical core.
type CPUSnapshot struct {
	CorePercents []float64
}

// MemorySnapshot holds memory and swap totals in bytes.
type MemorySnapshot struct {
	TotalMemory uint64
	UsedMemory  uint64
	TotalSwap   uint64
	UsedSwap    uint64
}

// Provider exposes stateless snapshots of the host counters. Every call
// returns the system's current values.
type Provider interface {
	SnapshotNetwork(ctx context.Context) (NetworkSnapshot, error)
	SnapshotCPU(ctx context.Context) (CPUSnapshot, error)
	SnapshotMemory(ctx context.Context) (MemorySnapshot, error)
}

// excludedPrefixes lists interface name prefixes that never count toward
// network throughput: loopback, docker and bridge devices.
var excludedPrefixes = []string{"lo", "docker", "bridge"}

// CountsInterface reports whether the named interface contributes to the
// network snapshot.
func CountsInterface(name string) bool {
	for _, prefix := range excludedPrefixes {
		if strings.HasPrefix(name, prefix) {
			return false
		}
	}
	return true
}

// SumCounters adds up the byte counters of all counted interfaces.
func SumCounters(stats []net.IOCountersStat) NetworkSnapshot {
	var snap NetworkSnapshot
	for _, s := range stats {
		if !CountsInterface(s.Name) {
			continue
		}
		snap.BytesSent += s.BytesSent
		snap.BytesReceived += s.BytesRecv
	}
	return snap
}

// HostProvider reads the live host counters through gopsutil.
type HostProvider struct{}

// NewHostProvider creates a provider backed by the running host.
func NewHostProvider() *HostProvider {
	return &HostProvider{}
}

// SnapshotNetwork sums per-interface cumulative counters.
func (HostProvider) SnapshotNetwork(ctx context.Context) (NetworkSnapshot, error) {
	stats, err := net.IOCountersWithContext(ctx, true)
	if err != nil {
		return NetworkSnapshot{}, fmt.Errorf("network counters: %w", err)
	}
	return SumCounters(stats), nil
}

// SnapshotCPU returns per-core usage since the previous call. The first call
// of a process measures since package initialisation, so callers read once
// to open a window and again to close it.
func (HostProvider) SnapshotCPU(ctx context.Context) (CPUSnapshot, error) {
	pcts, err := cpu.PercentWithContext(ctx, 0, true)
	if err != nil {
		return CPUSnapshot{}, fmt.Errorf("cpu usage: %w", err)
	}
	return CPUSnapshot{CorePercents: pcts}, nil
}

// SnapshotMemory reads memory and swap usage in bytes.
func (HostProvider) SnapshotMemory(ctx context.Context) (MemorySnapshot, error) {
	vmem, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return MemorySnapshot{}, fmt.Errorf("virtual memory: %w", err)
	}
	swap, err := mem.SwapMemoryWithContext(ctx)
	if err != nil {
		return MemorySnapshot{}, fmt.Errorf("swap memory: %w", err)
	}
	return MemorySnapshot{
		TotalMemory: vmem.Total,
		UsedMemory:  vmem.Used,
		TotalSwap:   swap.Total,
		UsedSwap:    swap.Used,
	}, nil
}

// Probe verifies that the host telemetry can be read at all. It is run once
// at startup, before any sampling.
func Probe(ctx context.Context, p Provider) error {
	_, err := p.SnapshotMemory(ctx)
	return err
}
