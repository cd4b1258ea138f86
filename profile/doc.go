// Package profile provides optional runtime profiling through
// [github.com/pkg/profile].
//
// Profiling must be enabled at build time with the "pprof" build tag:
//
//	go build -tags pprof .
//
// Without the tag, [Modes] is empty and [Config.Start] always returns a
// no-op. With it, the supported modes are allocs, block, clock, cpu,
// goroutine, heap, mem, mutex, thread, and trace.
//
//	p := profile.Config{Mode: "cpu", Path: "/tmp/profiles"}.Start()
//	defer p.Stop()
package profile
