package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/bytedance/sonic"
	"gopkg.in/yaml.v3"
)

// WriteCSV writes the plan table. The summary is not part of the CSV output.
func WriteCSV(w io.Writer, doc *Document) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(doc.planHeader()); err != nil {
		return err
	}
	for _, row := range doc.Plan.Rows {
		rec := append([]string{row.Occurrence.Day, row.Occurrence.Timeslot, row.Occurrence.Scenario}, row.Assignment...)
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

type planFile struct {
	Strategy    string        `json:"strategy" yaml:"strategy"`
	GeneratedAt string        `json:"generated_at" yaml:"generated_at"`
	Boards      []string      `json:"boards" yaml:"boards"`
	Rows        []planRecord  `json:"rows" yaml:"rows"`
	Summary     []summaryLine `json:"summary" yaml:"summary"`
}

type planRecord struct {
	Day        string   `json:"day" yaml:"day"`
	Timeslot   string   `json:"timeslot" yaml:"timeslot"`
	Scenario   string   `json:"scenario" yaml:"scenario"`
	Assignment []string `json:"assignment" yaml:"assignment"`
}

type summaryLine struct {
	Participant string         `json:"participant" yaml:"participant"`
	Color       string         `json:"color" yaml:"color"`
	PerBoard    map[string]int `json:"per_board" yaml:"per_board"`
	Total       int            `json:"total" yaml:"total"`
}

func toPlanFile(doc *Document) planFile {
	out := planFile{
		Strategy:    string(doc.Plan.Strategy),
		GeneratedAt: doc.Plan.GeneratedAt.UTC().Format(time.RFC3339),
		Boards:      doc.Plan.Boards,
		Rows:        make([]planRecord, 0, len(doc.Plan.Rows)),
		Summary:     make([]summaryLine, 0, len(doc.Tally.Rows)),
	}
	for _, r := range doc.Plan.Rows {
		out.Rows = append(out.Rows, planRecord{
			Day:        r.Occurrence.Day,
			Timeslot:   r.Occurrence.Timeslot,
			Scenario:   r.Occurrence.Scenario,
			Assignment: r.Assignment,
		})
	}
	for _, tr := range doc.Tally.Rows {
		per := make(map[string]int, len(doc.Tally.Boards))
		for b, name := range doc.Tally.Boards {
			per[name] = tr.PerBoard[b]
		}
		out.Summary = append(out.Summary, summaryLine{
			Participant: tr.Participant,
			Color:       "#" + doc.Palette.ColorFor(doc.Participants, tr.Participant),
			PerBoard:    per,
			Total:       tr.Total,
		})
	}
	return out
}

// WriteJSON writes the plan and its summary as indented JSON.
func WriteJSON(w io.Writer, doc *Document) error {
	data, err := sonic.ConfigStd.MarshalIndent(toPlanFile(doc), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// WriteYAML writes the plan and its summary as YAML.
func WriteYAML(w io.Writer, doc *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toPlanFile(doc)); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}
