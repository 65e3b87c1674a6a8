package pagetable

import "testing"

func TestCyclicDistance(t *testing.T) {
	cases := []struct {
		a, b, numPages uint64
		want           uint64
	}{
		{a: 0, b: 0, numPages: 16, want: 0},
		{a: 0, b: 15, numPages: 16, want: 1},
		{a: 0, b: 8, numPages: 16, want: 8},
		{a: 3, b: 13, numPages: 16, want: 6},
	}
	for _, c := range cases {
		if got := cyclicDistance(c.a, c.b, c.numPages); got != c.want {
			t.Errorf("cyclicDistance(%d, %d, %d) = %d, want %d", c.a, c.b, c.numPages, got, c.want)
		}
	}
}

// singleLevelConfig puts the leaf table directly at the root (TablesDepth
// 1), so the scanner's currentPage accumulator never runs through an
// interior level. It isolates the tie-break rule (last DFS-order
// candidate wins a cyclic-distance tie) from the accumulator's behavior.
func singleLevelConfig() Config {
	return Config{
		OffsetWidth:          2,
		VirtualAddressWidth:  4,
		PhysicalAddressWidth: 4,
		TablesDepth:          1,
	}
}

func TestScanReclaimsEmptyInteriorFrame(t *testing.T) {
	cfg := Config{
		OffsetWidth:          1,
		VirtualAddressWidth:  3,
		PhysicalAddressWidth: 4,
		TablesDepth:          2,
	}
	mem := newFakeMemory(int(cfg.NumFrames() * cfg.PageSize()))
	mgr := newTestManager(t, cfg, mem)

	// root (frame 0) slot 0 -> frame 2, an interior table, all zero.
	mustWrite(t, mem, 0, 2)
	mustWrite(t, mem, 1, 0)

	res, err := mgr.scan(99, 0)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if !res.hasEmpty || res.emptyFrame != 2 {
		t.Fatalf("expected hasEmpty frame 2, got hasEmpty=%v frame=%d", res.hasEmpty, res.emptyFrame)
	}

	// scan must have unlinked it from the parent as a side effect.
	v := mustRead(t, mem, 0)
	if v != 0 {
		t.Errorf("expected parent slot to be cleared, got %d", v)
	}
}

func TestScanExcludesCurrentFrame(t *testing.T) {
	cfg := Config{
		OffsetWidth:          1,
		VirtualAddressWidth:  3,
		PhysicalAddressWidth: 4,
		TablesDepth:          2,
	}
	mem := newFakeMemory(int(cfg.NumFrames() * cfg.PageSize()))
	mgr := newTestManager(t, cfg, mem)

	// root slot 0 -> frame 2 (all zero), but frame 2 is excluded.
	mustWrite(t, mem, 0, 2)
	mustWrite(t, mem, 1, 0)

	res, err := mgr.scan(2, 0)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if res.hasEmpty {
		t.Fatalf("excluded frame must never be reported as reclaimable empty, got frame=%d", res.emptyFrame)
	}
	if res.maxFrame != 2 {
		t.Errorf("maxFrame = %d, want 2 (excluded frames still count)", res.maxFrame)
	}
}

func TestScanVictimTieBreakLastWins(t *testing.T) {
	cfg := singleLevelConfig()
	mem := newFakeMemory(int(cfg.NumFrames() * cfg.PageSize()))
	mgr := newTestManager(t, cfg, mem)

	// root is the leaf table: slots 0,1,2 point at resident data frames;
	// slot 3 is absent. With TablesDepth 1 each slot index is its page
	// number, so against target page 1 pages 0 and 2 tie at distance 1
	// (page 1 is at distance 0).
	mustWrite(t, mem, 0, 11)
	mustWrite(t, mem, 1, 12)
	mustWrite(t, mem, 2, 13)
	mustWrite(t, mem, 3, 0)

	res, err := mgr.scan(0, 1)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if res.hasEmpty {
		t.Fatalf("leaf-level candidates must never be reported as reclaimable")
	}
	if res.maxFrame != 13 {
		t.Errorf("maxFrame = %d, want 13", res.maxFrame)
	}
	if !res.hasVictim || res.victimFrame != 13 || res.victimPage != 2 {
		t.Errorf("expected last tied candidate (frame 13, page 2) to win, got frame=%d page=%d", res.victimFrame, res.victimPage)
	}
	if res.victimParentAddr != 2 {
		t.Errorf("victimParentAddr = %d, want 2", res.victimParentAddr)
	}
}
