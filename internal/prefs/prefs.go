// Package prefs persists the reservation table's column visibility as a
// single JSON document, the stand-in for the browser's localStorage
// entry. A missing or unparseable file falls back to the default column
// set instead of failing.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
)

// KnownColumns lists every reservation-table column in display order.
var KnownColumns = []string{
	"id",
	"userName",
	"lotName",
	"spaceNumber",
	"checkInDateTime",
	"checkOutDateTime",
	"status",
	"totalCost",
}

// Columns holds the visibility of each known column.
type Columns struct {
	Visible map[string]bool `json:"reservation-table-columns"`
}

// Default returns the fixed default column set: everything visible.
func Default() Columns {
	visible := make(map[string]bool, len(KnownColumns))
	for _, name := range KnownColumns {
		visible[name] = true
	}
	return Columns{Visible: visible}
}

// Load reads the preferences file. Absence or a parse failure yields
// the defaults; unknown columns found in the file are dropped.
func Load(path string) Columns {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Default()
	}
	var c Columns
	if err := json.Unmarshal(raw, &c); err != nil || c.Visible == nil {
		return Default()
	}
	out := Default()
	for _, name := range KnownColumns {
		if v, ok := c.Visible[name]; ok {
			out.Visible[name] = v
		}
	}
	return out
}

// Save writes the preferences atomically (temp file, then rename).
func (c Columns) Save(path string) error {
	raw, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding column preferences: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".columns-*")
	if err != nil {
		return fmt.Errorf("writing column preferences: %w", err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing column preferences: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("writing column preferences: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("writing column preferences: %w", err)
	}
	return nil
}

// Toggle flips one column's visibility. Unknown names are rejected so a
// typo can not grow the stored set.
func (c Columns) Toggle(name string) error {
	if _, ok := c.Visible[name]; !ok {
		return fmt.Errorf("unknown column %q", name)
	}
	c.Visible[name] = !c.Visible[name]
	return nil
}

// Ordered returns the visible columns in display order.
func (c Columns) Ordered() []string {
	var out []string
	for _, name := range KnownColumns {
		if c.Visible[name] {
			out = append(out, name)
		}
	}
	return out
}
