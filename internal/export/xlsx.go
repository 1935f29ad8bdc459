package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// WriteXLSX writes a workbook with the plan sheet and the summary sheet.
// Participant cells are filled with their palette color.
func WriteXLSX(w io.Writer, doc *Document) error {
	f := excelize.NewFile()
	defer f.Close()

	planSheet, summarySheet := doc.planSheet(), doc.summarySheet()
	if err := f.SetSheetName("Sheet1", planSheet); err != nil {
		return fmt.Errorf("naming plan sheet: %w", err)
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("adding summary sheet: %w", err)
	}

	styles := newStyleCache(f)
	if err := writePlanSheet(f, planSheet, doc, styles); err != nil {
		return err
	}
	if err := writeSummarySheet(f, summarySheet, doc, styles); err != nil {
		return err
	}
	f.SetActiveSheet(0)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func writePlanSheet(f *excelize.File, sheet string, doc *Document, styles *styleCache) error {
	if err := writeHeader(f, sheet, doc.planHeader(), styles); err != nil {
		return err
	}
	for i, row := range doc.Plan.Rows {
		r := i + 2
		values := []any{row.Occurrence.Day, row.Occurrence.Timeslot, row.Occurrence.Scenario}
		for _, p := range row.Assignment {
			values = append(values, p)
		}
		if err := setRow(f, sheet, r, values); err != nil {
			return err
		}
		for b, p := range row.Assignment {
			if err := styles.fill(sheet, b+4, r, doc.Palette.ColorFor(doc.Participants, p)); err != nil {
				return err
			}
		}
	}
	return f.SetColWidth(sheet, "A", "C", 18)
}

func writeSummarySheet(f *excelize.File, sheet string, doc *Document, styles *styleCache) error {
	if err := writeHeader(f, sheet, doc.summaryHeader(), styles); err != nil {
		return err
	}
	for i, tr := range doc.Tally.Rows {
		r := i + 2
		values := []any{tr.Participant}
		for _, n := range tr.PerBoard {
			values = append(values, n)
		}
		values = append(values, tr.Total)
		if err := setRow(f, sheet, r, values); err != nil {
			return err
		}
		if err := styles.fill(sheet, 1, r, doc.Palette.ColorFor(doc.Participants, tr.Participant)); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheet, "A", "A", 18)
}

func writeHeader(f *excelize.File, sheet string, header []string, styles *styleCache) error {
	values := make([]any, len(header))
	for i, h := range header {
		values[i] = h
	}
	if err := setRow(f, sheet, 1, values); err != nil {
		return err
	}
	bold, err := styles.header()
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, bold)
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("writing %s row %d: %w", sheet, row, err)
	}
	return nil
}

// styleCache creates one solid-fill style per color.
type styleCache struct {
	f        *excelize.File
	fills    map[string]int
	headerID int
}

func newStyleCache(f *excelize.File) *styleCache {
	return &styleCache{f: f, fills: map[string]int{}, headerID: -1}
}

func (c *styleCache) header() (int, error) {
	if c.headerID >= 0 {
		return c.headerID, nil
	}
	id, err := c.f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return 0, fmt.Errorf("creating header style: %w", err)
	}
	c.headerID = id
	return id, nil
}

func (c *styleCache) fill(sheet string, col, row int, color string) error {
	id, ok := c.fills[color]
	if !ok {
		var err error
		id, err = c.f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
		})
		if err != nil {
			return fmt.Errorf("creating fill %s: %w", color, err)
		}
		c.fills[color] = id
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return c.f.SetCellStyle(sheet, cell, cell, id)
}
