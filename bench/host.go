// SPDX-License-Identifier: MIT

package bench

import (
	"runtime"

	"github.com/rs/zerolog"
	"golang.org/x/sys/cpu"
)

// runtimeProcs reports usable processors; replaced in tests.
var runtimeProcs = func() int { return runtime.GOMAXPROCS(0) }

// Host describes the machine a run executes on. It is logged, never reported.
type Host struct {
	GOOS       string
	GOARCH     string
	NumCPU     int
	GOMAXPROCS int
	Features   []string // vector extensions detected by x/sys/cpu
}

// DetectHost snapshots the runtime and CPU feature flags.
func DetectHost() Host {
	return Host{
		GOOS:       runtime.GOOS,
		GOARCH:     runtime.GOARCH,
		NumCPU:     runtime.NumCPU(),
		GOMAXPROCS: runtimeProcs(),
		Features:   cpuFeatures(runtime.GOARCH),
	}
}

// cpuFeatures lists the SIMD-relevant flags for arch.
func cpuFeatures(arch string) []string {
	var out []string
	add := func(name string, ok bool) {
		if ok {
			out = append(out, name)
		}
	}

	switch arch {
	case "amd64", "386":
		add("sse4.1", cpu.X86.HasSSE41)
		add("sse4.2", cpu.X86.HasSSE42)
		add("avx", cpu.X86.HasAVX)
		add("avx2", cpu.X86.HasAVX2)
		add("fma", cpu.X86.HasFMA)
		add("avx512f", cpu.X86.HasAVX512F)
	case "arm64":
		add("asimd", cpu.ARM64.HasASIMD)
		add("asimdhp", cpu.ARM64.HasASIMDHP)
		add("sve", cpu.ARM64.HasSVE)
		add("sve2", cpu.ARM64.HasSVE2)
	}

	return out
}

// MarshalZerologObject lets a Host be attached to log events with Object.
func (h Host) MarshalZerologObject(e *zerolog.Event) {
	e.Str("os", h.GOOS).
		Str("arch", h.GOARCH).
		Int("cpus", h.NumCPU).
		Int("gomaxprocs", h.GOMAXPROCS).
		Strs("features", h.Features)
}
