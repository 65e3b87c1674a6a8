package pagetable

import "errors"

// ErrAddressOutOfRange is returned when a virtual address is not within
// [0, 2^VirtualAddressWidth).
var ErrAddressOutOfRange = errors.New("virtual address out of range")

// ErrInfeasibleConfig is returned when the configuration cannot host its
// own page-table walk (see Config.feasible).
var ErrInfeasibleConfig = errors.New("configuration cannot keep its walk resident")

// ErrNoVictim is returned by the allocator in the pathological case where
// eviction is required but the reachable tree holds no resident data
// page. spec.md documents this as unreachable under a feasible
// configuration; it exists here only as a defensive boundary.
var ErrNoVictim = errors.New("no evictable frame found")
