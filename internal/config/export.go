package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/alexanderramin/roster/internal/export"
)

// ExportConfig defines the exporter output.
type ExportConfig struct {
	// Path is the default output file; its extension selects the format.
	Path         string   `json:"path"`
	Palette      []string `json:"palette"`
	PlanSheet    string   `json:"plan_sheet"`
	SummarySheet string   `json:"summary_sheet"`
}

var hexColor = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

// SetDefaults applies the original spreadsheet layout.
func (c *ExportConfig) SetDefaults() {
	if c.Path == "" {
		c.Path = "roster_plan.xlsx"
	}
	if len(c.Palette) == 0 {
		c.Palette = append([]string(nil), export.DefaultPalette...)
	}
	for i, p := range c.Palette {
		c.Palette[i] = strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(p), "#"))
	}
	if c.PlanSheet == "" {
		c.PlanSheet = "Roster Plan"
	}
	if c.SummarySheet == "" {
		c.SummarySheet = "Summary"
	}
}

// Validate checks palette colors and sheet names.
func (c ExportConfig) Validate() error {
	for _, p := range c.Palette {
		if !hexColor.MatchString(p) {
			return fmt.Errorf("palette color %q is not a 6-digit hex value", p)
		}
	}
	if _, err := export.DetectFormat(c.Path); err != nil {
		return err
	}
	if c.PlanSheet == c.SummarySheet {
		return fmt.Errorf("plan_sheet and summary_sheet must differ")
	}
	return nil
}
