package pagetable

// Config holds the widths that would otherwise be compile-time constants
// in a fixed-layout virtual memory manager. They are supplied at runtime
// so the same binary can serve more than one memory layout.
type Config struct {
	// OffsetWidth is the number of bits used for the in-page offset.
	OffsetWidth uint
	// VirtualAddressWidth is the total number of bits in a virtual address.
	VirtualAddressWidth uint
	// PhysicalAddressWidth is the total number of bits in a physical address.
	PhysicalAddressWidth uint
	// TablesDepth is the number of page-table levels above the leaf page.
	TablesDepth uint
	// LogLevel is an optional hint for the caller's logger setup; the
	// engine itself never reads it.
	LogLevel string
}

// PageSize returns 2^OffsetWidth.
func (c Config) PageSize() uint64 {
	return uint64(1) << c.OffsetWidth
}

// NumFrames returns 2^(PhysicalAddressWidth-OffsetWidth).
func (c Config) NumFrames() uint64 {
	return uint64(1) << (c.PhysicalAddressWidth - c.OffsetWidth)
}

// NumPages returns 2^(VirtualAddressWidth-OffsetWidth).
func (c Config) NumPages() uint64 {
	return uint64(1) << (c.VirtualAddressWidth - c.OffsetWidth)
}

// VirtualMemorySize returns 2^VirtualAddressWidth, the exclusive upper
// bound on a valid virtual address.
func (c Config) VirtualMemorySize() uint64 {
	return uint64(1) << c.VirtualAddressWidth
}

// feasible reports whether the configuration lets the walker keep its own
// access path resident: it needs at least TablesDepth+1 frames (the chain
// of tables plus the leaf data frame) and a real offset/address split.
func (c Config) feasible() bool {
	if c.OffsetWidth >= c.VirtualAddressWidth {
		return false
	}
	if c.PhysicalAddressWidth < c.OffsetWidth {
		return false
	}
	return uint64(c.TablesDepth)+1 <= c.NumFrames()
}
