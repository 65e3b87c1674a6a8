package pagetable

// walk descends from frame 0 through TablesDepth levels for addr, then
// performs the read or write at the leaf, per spec.md 4.4.
func (m *Manager) walk(addr uint64, isWrite bool, value Word) (Word, error) {
	return m.walkLevel(0, 1, addr, isWrite, value)
}

func (m *Manager) walkLevel(frame Frame, depth uint, addr uint64, isWrite bool, value Word) (Word, error) {
	m.metrics.tableWalks++

	page := m.cfg.pageNumber(addr)
	slot := m.cfg.slotAt(page, depth)
	parentAddr := frame*m.cfg.PageSize() + slot

	child, err := m.pm.Read(parentAddr)
	if err != nil {
		return 0, err
	}

	if child == 0 {
		// Miss: the frame the allocator must not touch is the one we are
		// about to descend from, so the parent slot write below stays valid.
		newFrame, err := m.allocate(frame, page)
		if err != nil {
			return 0, err
		}
		if err := m.pm.Write(parentAddr, Word(newFrame)); err != nil {
			return 0, err
		}

		if depth == m.cfg.TablesDepth {
			if err := m.store.Restore(newFrame, page); err != nil {
				return 0, err
			}
			m.metrics.pageIns++
			return m.accessLeaf(newFrame, addr, isWrite, value)
		}

		if err := m.clearFrame(newFrame); err != nil {
			return 0, err
		}
		return m.walkLevel(newFrame, depth+1, addr, isWrite, value)
	}

	childFrame := Frame(child)
	if depth == m.cfg.TablesDepth {
		return m.accessLeaf(childFrame, addr, isWrite, value)
	}
	return m.walkLevel(childFrame, depth+1, addr, isWrite, value)
}

func (m *Manager) accessLeaf(frame Frame, addr uint64, isWrite bool, value Word) (Word, error) {
	physAddr := frame*m.cfg.PageSize() + m.cfg.offset(addr)

	if isWrite {
		if err := m.pm.Write(physAddr, value); err != nil {
			return 0, err
		}
		m.metrics.writes++
		return 0, nil
	}

	v, err := m.pm.Read(physAddr)
	if err != nil {
		return 0, err
	}
	m.metrics.reads++
	return v, nil
}

// clearFrame zeros every word of frame, used to initialize a newly
// adopted interior page-table frame.
func (m *Manager) clearFrame(frame Frame) error {
	base := frame * m.cfg.PageSize()
	for i := uint64(0); i < m.cfg.PageSize(); i++ {
		if err := m.pm.Write(base+i, 0); err != nil {
			return err
		}
	}
	return nil
}
