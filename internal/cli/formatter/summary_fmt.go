package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/roster/internal/domain"
	"github.com/alexanderramin/roster/internal/scheduler"
)

// FormatSummary renders the per-participant tally with a fairness footer.
func FormatSummary(tally *domain.Tally, fairness scheduler.Fairness, colors ParticipantColors) string {
	if tally == nil || len(tally.Rows) == 0 {
		return Dim("Nothing to summarize.")
	}

	headers := append([]string{"Participant"}, tally.Boards...)
	headers = append(headers, "Total")
	right := make(map[int]bool, len(tally.Boards)+1)
	for i := 1; i <= len(tally.Boards)+1; i++ {
		right[i] = true
	}

	table := Table{Headers: headers, RightAlign: right}
	for _, r := range tally.Rows {
		row := []string{colors.Tag(r.Participant)}
		for _, n := range r.PerBoard {
			row = append(row, strconv.Itoa(n))
		}
		row = append(row, Bold(strconv.Itoa(r.Total)))
		table.Rows = append(table.Rows, row)
	}

	var b strings.Builder
	b.WriteString(Header("Summary") + "\n")
	b.WriteString(table.Render())
	b.WriteString(FormatFairness(fairness))
	return b.String()
}

// FormatFairness renders the spread of participant totals.
func FormatFairness(f scheduler.Fairness) string {
	style := StyleGreen
	switch {
	case f.Spread > 2:
		style = StyleRed
	case f.Spread > 1:
		style = StyleYellow
	}
	return Dim("Totals: ") + fmt.Sprintf("mean %.2f  std-dev %.2f  min %.0f  max %.0f  ",
		f.Mean, f.StdDev, f.Min, f.Max) + style.Render(fmt.Sprintf("spread %.0f", f.Spread))
}
