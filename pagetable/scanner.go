package pagetable

// scanResult collects the three facts a single DFS sweep produces, per
// spec.md 4.2.
type scanResult struct {
	hasEmpty   bool
	emptyFrame Frame

	maxFrame uint64

	hasVictim        bool
	victimDistance   uint64
	victimFrame      Frame
	victimPage       Page
	victimParentAddr uint64
}

// cyclicDistance is min(|a-b|, numPages-|a-b|), computed in the unsigned
// domain to avoid the signed-overflow trap spec.md 9 warns about.
func cyclicDistance(a, b, numPages uint64) uint64 {
	var diff uint64
	if a > b {
		diff = a - b
	} else {
		diff = b - a
	}
	if other := numPages - diff; other < diff {
		return other
	}
	return diff
}

// isAllZeros reports whether every word of frame is zero.
func (m *Manager) isAllZeros(frame Frame) (bool, error) {
	base := frame * m.cfg.PageSize()
	for i := uint64(0); i < m.cfg.PageSize(); i++ {
		v, err := m.pm.Read(base + i)
		if err != nil {
			return false, err
		}
		if v != 0 {
			return false, nil
		}
	}
	return true, nil
}

// scan walks the reachable page-table tree from frame 0 and returns the
// three facts the allocator needs, computed in one DFS pass. excludeFrame
// is never reported as emptyFrame. targetPage is the page about to be
// brought in, used for the cyclic-distance victim computation.
func (m *Manager) scan(excludeFrame Frame, targetPage Page) (*scanResult, error) {
	res := &scanResult{}
	if _, err := m.scanNode(0, 1, excludeFrame, targetPage, 0, res); err != nil {
		return nil, err
	}
	return res, nil
}

// scanNode visits one page-table frame. It returns true when an empty
// reclaimable frame was found and the DFS should stop immediately.
func (m *Manager) scanNode(frame Frame, depth uint, excludeFrame Frame, targetPage Page, currentPage Page, res *scanResult) (bool, error) {
	base := frame * m.cfg.PageSize()

	if depth == m.cfg.TablesDepth {
		for i := uint64(0); i < m.cfg.PageSize(); i++ {
			child, err := m.pm.Read(base + i)
			if err != nil {
				return false, err
			}
			if child == 0 {
				continue
			}
			childFrame := Frame(child)
			if childFrame > res.maxFrame {
				res.maxFrame = childFrame
			}

			page := (currentPage << m.cfg.OffsetWidth) | i
			dist := cyclicDistance(targetPage, page, m.cfg.NumPages())
			if dist >= res.victimDistance || !res.hasVictim {
				res.hasVictim = true
				res.victimDistance = dist
				res.victimFrame = childFrame
				res.victimPage = page
				res.victimParentAddr = base + i
			}
		}
		return false, nil
	}

	for i := uint64(0); i < m.cfg.PageSize(); i++ {
		child, err := m.pm.Read(base + i)
		if err != nil {
			return false, err
		}
		childFrame := Frame(child)
		if childFrame > res.maxFrame {
			res.maxFrame = childFrame
		}
		if child == 0 {
			continue
		}

		if childFrame != excludeFrame {
			empty, err := m.isAllZeros(childFrame)
			if err != nil {
				return false, err
			}
			if empty {
				if err := m.pm.Write(base+i, 0); err != nil {
					return false, err
				}
				res.hasEmpty = true
				res.emptyFrame = childFrame
				return true, nil
			}
		}

		stop, err := m.scanNode(childFrame, depth+1, excludeFrame, targetPage, (currentPage<<m.cfg.OffsetWidth)|i, res)
		if err != nil {
			return false, err
		}
		if stop {
			return true, nil
		}
	}
	return false, nil
}
