package pagetable

import (
	"testing"

	"github.com/vmemlab/ptvm/memsim"
)

// newFakeMemory builds a memsim.Memory sized in words, used directly as
// the PhysicalMemory under test.
func newFakeMemory(numWords int) *memsim.Memory {
	return memsim.NewMemory(uint64(numWords))
}

func mustWrite(t *testing.T, mem *memsim.Memory, addr uint64, value Word) {
	t.Helper()
	if err := mem.Write(addr, value); err != nil {
		t.Fatalf("seeding memory at %d: %v", addr, err)
	}
}

func mustRead(t *testing.T, mem *memsim.Memory, addr uint64) Word {
	t.Helper()
	v, err := mem.Read(addr)
	if err != nil {
		t.Fatalf("reading memory at %d: %v", addr, err)
	}
	return v
}

// newTestManager builds a Manager over mem with a fresh backing store,
// for white-box tests that reach into unexported methods (scan,
// allocate, walk) directly.
func newTestManager(t *testing.T, cfg Config, mem *memsim.Memory) *Manager {
	t.Helper()
	store := memsim.NewStore(mem, cfg.PageSize())
	mgr, err := New(cfg, mem, store, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return mgr
}
