package pagetable

// Metrics counts engine activity. Grounded in the teacher's per-process
// MetricasProceso counters, kept here at the engine level since this
// module has no process concept (Non-goal: no multiprogramming).
type Metrics struct {
	TableWalks int64
	PageIns    int64
	Evictions  int64
	Reads      int64
	Writes     int64
}

type metrics struct {
	tableWalks int64
	pageIns    int64
	evictions  int64
	reads      int64
	writes     int64
}

func (mt metrics) snapshot() Metrics {
	return Metrics{
		TableWalks: mt.tableWalks,
		PageIns:    mt.pageIns,
		Evictions:  mt.evictions,
		Reads:      mt.reads,
		Writes:     mt.writes,
	}
}
