// Package export writes a generated plan and its summary to files.
package export

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/roster/internal/domain"
)

// Format selects the output encoding.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// AllFormats lists the supported formats.
var AllFormats = []Format{FormatXLSX, FormatCSV, FormatJSON, FormatYAML}

// ParseFormat resolves a format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "xlsx", "excel":
		return FormatXLSX, nil
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", s)
	}
}

// DetectFormat picks the format from the file extension.
func DetectFormat(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("cannot detect export format of %q: no extension", path)
	}
	return ParseFormat(ext)
}

// Document is everything an exporter needs: the plan, its tally, and the
// participant registry that drives color tags.
type Document struct {
	Plan         *domain.Plan
	Tally        *domain.Tally
	Participants []string
	Palette      Palette
	PlanSheet    string
	SummarySheet string
}

func (d *Document) planSheet() string    { return domain.CoalesceStr(d.PlanSheet, "Roster Plan") }
func (d *Document) summarySheet() string { return domain.CoalesceStr(d.SummarySheet, "Summary") }

// planHeader returns [Day, Timeslot, Scenario, board...].
func (d *Document) planHeader() []string {
	return append([]string{"Day", "Timeslot", "Scenario"}, d.Plan.Boards...)
}

// summaryHeader returns [Participant, board..., Total].
func (d *Document) summaryHeader() []string {
	h := append([]string{"Participant"}, d.Tally.Boards...)
	return append(h, "Total")
}

// Write encodes doc in the given format.
func Write(w io.Writer, format Format, doc *Document) error {
	if doc == nil || doc.Plan == nil || doc.Tally == nil {
		return fmt.Errorf("export: plan and tally are required")
	}
	switch format {
	case FormatXLSX:
		return WriteXLSX(w, doc)
	case FormatCSV:
		return WriteCSV(w, doc)
	case FormatJSON:
		return WriteJSON(w, doc)
	case FormatYAML:
		return WriteYAML(w, doc)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

// WriteFile encodes doc into a buffer and then writes path, so a failed
// encode never leaves a truncated file behind.
func WriteFile(path string, format Format, doc *Document) error {
	var buf bytes.Buffer
	if err := Write(&buf, format, doc); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating export directory: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
