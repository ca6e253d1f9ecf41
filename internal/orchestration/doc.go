// Package orchestration runs the requested metric renderers concurrently and
// reassembles their fragments in request order. It is a fixed fan-out/fan-in
// per invocation, not a worker pool.
package orchestration
