// Package vmconfig loads the page-table engine's configuration from a
// JSON file, generalizing the teacher's generic
// utils.CargarConfiguracion[T] loader (one per-module config struct,
// decoded from a path) into the single struct pagetable.Config needs.
package vmconfig

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/vmemlab/ptvm/pagetable"
)

// fileConfig mirrors the teacher's per-module config struct: JSON tags on
// a plain struct, one field per knob.
type fileConfig struct {
	OffsetWidth          uint   `json:"offset_width"`
	VirtualAddressWidth  uint   `json:"virtual_address_width"`
	PhysicalAddressWidth uint   `json:"physical_address_width"`
	TablesDepth          uint   `json:"tables_depth"`
	LogLevel             string `json:"log_level"`
}

// Load reads a JSON configuration file and returns the resulting
// pagetable.Config. It only reports decode/IO failures; whether the
// resulting widths are a feasible configuration is pagetable.Manager's
// concern at Read/Write time, not this loader's.
func Load(path string) (*pagetable.Config, error) {
	slog.Info("loading pagetable configuration", "path", path)

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("vmconfig: opening %s: %w", path, err)
	}
	defer file.Close()

	var fc fileConfig
	if err := json.NewDecoder(file).Decode(&fc); err != nil {
		return nil, fmt.Errorf("vmconfig: decoding %s: %w", path, err)
	}

	cfg := &pagetable.Config{
		OffsetWidth:          fc.OffsetWidth,
		VirtualAddressWidth:  fc.VirtualAddressWidth,
		PhysicalAddressWidth: fc.PhysicalAddressWidth,
		TablesDepth:          fc.TablesDepth,
		LogLevel:             fc.LogLevel,
	}

	slog.Info("pagetable configuration loaded",
		"offset_width", cfg.OffsetWidth,
		"virtual_address_width", cfg.VirtualAddressWidth,
		"physical_address_width", cfg.PhysicalAddressWidth,
		"tables_depth", cfg.TablesDepth)

	return cfg, nil
}
