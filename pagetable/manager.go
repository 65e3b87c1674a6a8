// Package pagetable implements a hierarchical page-table based virtual
// memory manager over a bounded physical memory array. It translates a
// virtual address into a physical one by walking a multi-level
// page-table tree, materializing missing page-table frames on demand and
// evicting existing frames when physical memory is exhausted.
package pagetable

import (
	"errors"
	"fmt"
	"log/slog"
)

// Manager is the address-translation and frame-allocation engine. It owns
// no state of its own beyond configuration and counters: the page tables
// and data live entirely inside the PhysicalMemory it is given, and
// evicted pages live in the BackingStore.
type Manager struct {
	cfg     Config
	pm      PhysicalMemory
	store   BackingStore
	log     *slog.Logger
	metrics metrics
}

// New builds a Manager over the given physical memory and backing store.
// It does not itself reject an infeasible Config: a Manager with one can
// be constructed, and Initialize still clears the root frame, but every
// subsequent Read or Write fails with ErrInfeasibleConfig.
func New(cfg Config, pm PhysicalMemory, store BackingStore, log *slog.Logger) (*Manager, error) {
	if pm == nil {
		return nil, errors.New("pagetable: physical memory is nil")
	}
	if store == nil {
		return nil, errors.New("pagetable: backing store is nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &Manager{
		cfg:   cfg,
		pm:    pm,
		store: store,
		log:   log.With("component", "pagetable"),
	}, nil
}

// Initialize clears the root page-table frame. It has no preconditions
// beyond having a PhysicalMemory to write to.
func (m *Manager) Initialize() error {
	m.log.Info("initializing root page-table frame")
	return m.clearFrame(0)
}

// Read translates addr and returns the word stored there, paging in any
// missing page-table frame or data page along the way.
func (m *Manager) Read(addr uint64) (Word, error) {
	if err := m.checkPreconditions(addr); err != nil {
		m.log.Error("read rejected", "addr", addr, "error", err)
		return 0, err
	}
	v, err := m.walk(addr, false, 0)
	if err != nil {
		m.log.Error("read failed", "addr", addr, "error", err)
		return 0, err
	}
	return v, nil
}

// Write translates addr and stores value there, paging in any missing
// page-table frame or data page along the way.
func (m *Manager) Write(addr uint64, value Word) error {
	if err := m.checkPreconditions(addr); err != nil {
		m.log.Error("write rejected", "addr", addr, "error", err)
		return err
	}
	if _, err := m.walk(addr, true, value); err != nil {
		m.log.Error("write failed", "addr", addr, "value", value, "error", err)
		return err
	}
	return nil
}

// Metrics returns a snapshot of the engine's activity counters.
func (m *Manager) Metrics() Metrics {
	return m.metrics.snapshot()
}

func (m *Manager) checkPreconditions(addr uint64) error {
	if !m.cfg.feasible() {
		return fmt.Errorf("pagetable: %w", ErrInfeasibleConfig)
	}
	if addr >= m.cfg.VirtualMemorySize() {
		return fmt.Errorf("pagetable: %w (addr=%d)", ErrAddressOutOfRange, addr)
	}
	return nil
}
