package memsim

import "github.com/vmemlab/ptvm/pagetable"

// Store is an in-memory backing store keyed by page number, grounded in
// the teacher's mapaSwap map (swap.go) with the on-disk swap file
// (Non-goal: no real swap file) replaced by a plain map. It shares the
// Memory it was built with, the same way the teacher's PMevict/PMrestore
// primitives read and write the single memoriaPrincipal array.
type Store struct {
	mem      *Memory
	pageSize uint64
	pages    map[pagetable.Page][]pagetable.Word

	evictCalls   map[pagetable.Page]int
	restoreCalls map[pagetable.Page]int
}

// NewStore builds a Store backed by mem, copying pageSize words per page
// on each evict/restore.
func NewStore(mem *Memory, pageSize uint64) *Store {
	return &Store{
		mem:          mem,
		pageSize:     pageSize,
		pages:        make(map[pagetable.Page][]pagetable.Word),
		evictCalls:   make(map[pagetable.Page]int),
		restoreCalls: make(map[pagetable.Page]int),
	}
}

// Evict implements pagetable.BackingStore: copies frame's words out into
// the store's slot for page.
func (s *Store) Evict(frame pagetable.Frame, page pagetable.Page) error {
	base := frame * s.pageSize
	data := make([]pagetable.Word, s.pageSize)
	for i := uint64(0); i < s.pageSize; i++ {
		v, err := s.mem.Read(base + i)
		if err != nil {
			return err
		}
		data[i] = v
	}
	s.pages[page] = data
	s.evictCalls[page]++
	return nil
}

// Restore implements pagetable.BackingStore: copies the store's slot for
// page into frame's words. A page never evicted restores as all zeros,
// matching spec.md's backing-store contract.
func (s *Store) Restore(frame pagetable.Frame, page pagetable.Page) error {
	base := frame * s.pageSize
	data, ok := s.pages[page]
	s.restoreCalls[page]++
	for i := uint64(0); i < s.pageSize; i++ {
		var v pagetable.Word
		if ok {
			v = data[i]
		}
		if err := s.mem.Write(base+i, v); err != nil {
			return err
		}
	}
	return nil
}

// EvictCount reports how many times page was evicted, for test
// assertions such as spec.md S6.
func (s *Store) EvictCount(page pagetable.Page) int { return s.evictCalls[page] }

// RestoreCount reports how many times page was restored, for test
// assertions such as spec.md S6.
func (s *Store) RestoreCount(page pagetable.Page) int { return s.restoreCalls[page] }
