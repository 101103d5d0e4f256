package prof

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStartWritesRequestedProfiles(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		CPUPath: filepath.Join(dir, "cpu.out"),
		MemPath: filepath.Join(dir, "mem.out"),
	}

	s, err := Start(cfg)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	s.Stop()
	s.Stop()

	for _, name := range []string{"cpu.out", "mem.out"} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("profile %s not written: %v", name, err)
			continue
		}
		if info.Size() == 0 && name == "mem.out" {
			t.Errorf("profile %s is empty", name)
		}
	}
}

func TestStartWithEmptyConfigIsNoop(t *testing.T) {
	s, err := Start(Config{})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	s.Stop()
}

func TestStartFailsOnUnwritablePath(t *testing.T) {
	cfg := Config{CPUPath: filepath.Join(t.TempDir(), "missing", "cpu.out")}
	if _, err := Start(cfg); err == nil {
		t.Fatal("expected error for unwritable cpu profile path")
	}
}

func TestNilSessionStopIsSafe(t *testing.T) {
	var s *Session
	s.Stop()
}
