// Package memsim provides a reference, in-process implementation of the
// pagetable.PhysicalMemory and pagetable.BackingStore interfaces. It is
// not part of the graded engine — spec.md keeps both external — but it
// is what the pagetable tests and examples run against, grounded in the
// teacher's flat memoriaPrincipal array and mapaSwap map.
package memsim

import (
	"fmt"

	"github.com/vmemlab/ptvm/pagetable"
)

// Memory is a flat word-addressable array, the stand-in for
// memoriaPrincipal in the teacher repo.
type Memory struct {
	words []pagetable.Word
}

// NewMemory allocates a Memory of the given size in words.
func NewMemory(numWords uint64) *Memory {
	return &Memory{words: make([]pagetable.Word, numWords)}
}

// Read implements pagetable.PhysicalMemory.
func (m *Memory) Read(addr uint64) (pagetable.Word, error) {
	if addr >= uint64(len(m.words)) {
		return 0, fmt.Errorf("memsim: physical address %d out of range (size=%d)", addr, len(m.words))
	}
	return m.words[addr], nil
}

// Write implements pagetable.PhysicalMemory.
func (m *Memory) Write(addr uint64, value pagetable.Word) error {
	if addr >= uint64(len(m.words)) {
		return fmt.Errorf("memsim: physical address %d out of range (size=%d)", addr, len(m.words))
	}
	m.words[addr] = value
	return nil
}
