package pagetable

// allocate returns a frame the caller may use to host a new page-table or
// a newly restored data page, per the priority rules of spec.md 4.3.
// excludeFrame is never returned and is never considered for rule 1
// (reclaiming an empty table); it may still contribute to maxFrame.
func (m *Manager) allocate(excludeFrame Frame, targetPage Page) (Frame, error) {
	res, err := m.scan(excludeFrame, targetPage)
	if err != nil {
		return 0, err
	}

	if res.hasEmpty {
		m.log.Debug("reclaiming empty page-table frame", "frame", res.emptyFrame)
		return res.emptyFrame, nil
	}

	if res.maxFrame+1 < m.cfg.NumFrames() {
		m.log.Debug("using never-used frame", "frame", res.maxFrame+1)
		return res.maxFrame + 1, nil
	}

	if !res.hasVictim {
		return 0, ErrNoVictim
	}

	m.log.Info("evicting resident page", "frame", res.victimFrame, "page", res.victimPage)
	if err := m.store.Evict(res.victimFrame, res.victimPage); err != nil {
		return 0, err
	}
	if err := m.pm.Write(res.victimParentAddr, 0); err != nil {
		return 0, err
	}
	m.metrics.evictions++
	return res.victimFrame, nil
}
