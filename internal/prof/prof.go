// Package prof drives the runtime profilers behind the --cpu-profile,
// --mem-profile and --runtime-trace flags. Big-number workloads are
// arithmetic-bound, so a CPU profile of a long script is the usual entry
// point when evaluation feels slow.
package prof

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
)

// Config names the output file for each profiler. An empty path leaves the
// corresponding profiler off.
type Config struct {
	CPUPath   string
	MemPath   string
	TracePath string
}

// Session owns the profilers started by Start. Stop is safe to call more
// than once, so callers can both defer it and invoke it before os.Exit.
type Session struct {
	cpuFile   *os.File
	traceFile *os.File
	memPath   string
	stopped   bool
}

// Start enables the profilers named in cfg. On failure it unwinds the
// profilers that already started and returns the error.
func Start(cfg Config) (*Session, error) {
	s := &Session{memPath: cfg.MemPath}
	if cfg.CPUPath != "" {
		f, err := os.Create(cfg.CPUPath)
		if err != nil {
			return nil, fmt.Errorf("failed to start cpu profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("failed to start cpu profile: %w", err)
		}
		s.cpuFile = f
	}
	if cfg.TracePath != "" {
		f, err := os.Create(cfg.TracePath)
		if err != nil {
			s.stopCPU()
			return nil, fmt.Errorf("failed to start trace: %w", err)
		}
		if err := trace.Start(f); err != nil {
			_ = f.Close()
			s.stopCPU()
			return nil, fmt.Errorf("failed to start trace: %w", err)
		}
		s.traceFile = f
	}
	return s, nil
}

// Stop halts the active profilers in reverse start order and writes the heap
// profile if one was requested. Heap write failures go to stderr because Stop
// usually runs on the way out of the process.
func (s *Session) Stop() {
	if s == nil || s.stopped {
		return
	}
	s.stopped = true
	s.stopTrace()
	s.stopCPU()
	if s.memPath != "" {
		if err := writeMem(s.memPath); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write heap profile: %v\n", err)
		}
	}
}

func (s *Session) stopCPU() {
	if s.cpuFile == nil {
		return
	}
	pprof.StopCPUProfile()
	_ = s.cpuFile.Close()
	s.cpuFile = nil
}

func (s *Session) stopTrace() {
	if s.traceFile == nil {
		return
	}
	trace.Stop()
	_ = s.traceFile.Close()
	s.traceFile = nil
}

// writeMem captures a heap profile after forcing a collection, so the numbers
// reflect live objects rather than garbage.
func writeMem(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
