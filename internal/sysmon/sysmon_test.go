package sysmon

import (
	"context"
	"testing"

	"github.com/shirou/gopsutil/v4/net"
)

func TestCountsInterface(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		want bool
	}{
		{"eth0", true},
		{"wlp3s0", true},
		{"enp0s31f6", true},
		{"lo", false},
		{"lo0", false},
		{"docker0", false},
		{"bridge100", false},
		{"br-3f2a", true},
		{"veth12ab", true},
	}

	for _, tt := range tests {
		if got := CountsInterface(tt.name); got != tt.want {
			t.Errorf("CountsInterface(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSumCounters_SkipsExcludedInterfaces(t *testing.T) {
	t.Parallel()
	stats := []net.IOCountersStat{
		{Name: "lo", BytesSent: 1000, BytesRecv: 1000},
		{Name: "eth0", BytesSent: 10, BytesRecv: 20},
		{Name: "docker0", BytesSent: 500, BytesRecv: 500},
		{Name: "wlan0", BytesSent: 5, BytesRecv: 7},
		{Name: "bridge0", BytesSent: 300, BytesRecv: 300},
	}

	got := SumCounters(stats)
	want := NetworkSnapshot{BytesSent: 15, BytesReceived: 27}
	if got != want {
		t.Errorf("SumCounters() = %+v, want %+v", got, want)
	}
}

func TestSumCounters_Empty(t *testing.T) {
	t.Parallel()
	if got := SumCounters(nil); got != (NetworkSnapshot{}) {
		t.Errorf("SumCounters(nil) = %+v, want zero", got)
	}
}

func TestHostProvider_CPUReturnsValidRanges(t *testing.T) {
	p := NewHostProvider()
	snap, err := p.SnapshotCPU(context.Background())
	if err != nil {
		t.Skipf("cpu telemetry unavailable: %v", err)
	}
	if len(snap.CorePercents) == 0 {
		t.Fatal("expected at least one core")
	}
	for i, pct := range snap.CorePercents {
		if pct < 0 || pct > 100 {
			t.Errorf("core %d percent out of range: %f", i, pct)
		}
	}
}

func TestHostProvider_MemoryNonZero(t *testing.T) {
	p := NewHostProvider()
	snap, err := p.SnapshotMemory(context.Background())
	if err != nil {
		t.Skipf("memory telemetry unavailable: %v", err)
	}
	if snap.TotalMemory == 0 {
		t.Error("expected non-zero total memory on a running system")
	}
	if snap.UsedMemory > snap.TotalMemory {
		t.Errorf("used memory %d exceeds total %d", snap.UsedMemory, snap.TotalMemory)
	}
}
