package pagetable

// pageNumber returns the high bits of a virtual address above the
// in-page offset.
func (c Config) pageNumber(addr uint64) Page {
	return addr >> c.OffsetWidth
}

// offset returns the low OffsetWidth bits of a virtual address.
func (c Config) offset(addr uint64) uint64 {
	return addr & (c.PageSize() - 1)
}

// slotAt returns the table-slot index a page number occupies at walk
// depth d (1-indexed, d in [1, TablesDepth]): the OffsetWidth bits of the
// page number starting at position (TablesDepth-d)*OffsetWidth.
func (c Config) slotAt(page Page, d uint) uint64 {
	shift := (c.TablesDepth - d) * c.OffsetWidth
	return (page >> shift) & (c.PageSize() - 1)
}
