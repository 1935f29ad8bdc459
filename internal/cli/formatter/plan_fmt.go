package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/roster/internal/domain"
)

// FormatPlan renders the plan table [Day, Timeslot, Scenario, board...] with
// participant color tags.
func FormatPlan(plan *domain.Plan, colors ParticipantColors) string {
	if plan == nil || len(plan.Rows) == 0 {
		return Dim("No plan generated yet.")
	}

	headers := append([]string{"Day", "Timeslot", "Scenario"}, plan.Boards...)
	rows := make([][]string, 0, len(plan.Rows))
	for _, r := range plan.Rows {
		row := []string{r.Occurrence.Day, r.Occurrence.Timeslot, r.Occurrence.Scenario}
		for _, p := range r.Assignment {
			row = append(row, colors.Tag(p))
		}
		rows = append(rows, row)
	}

	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Plan · %s", plan.Strategy.Label())) + "\n")
	b.WriteString(Table{Headers: headers, Rows: rows}.Render())
	b.WriteString(Dim(fmt.Sprintf("%d occurrences × %d boards, generated %s",
		len(plan.Rows), len(plan.Boards), plan.GeneratedAt.Local().Format("2006-01-02 15:04"))))
	return b.String()
}

// FormatTemplates renders the scenario template rows with 1-based positions.
func FormatTemplates(rows []domain.ScenarioTemplate) string {
	if len(rows) == 0 {
		return Dim("No scenario rows.")
	}
	table := Table{
		Headers:    []string{"#", "Scenario", "Day", "Timeslot", "Repeat"},
		RightAlign: map[int]bool{0: true, 4: true},
	}
	for i, r := range rows {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(i + 1), r.Name, r.Day, r.Timeslot, strconv.Itoa(r.RepeatCount),
		})
	}
	return table.Render()
}

// FormatStrategies lists every strategy, marking the selected one.
func FormatStrategies(selected domain.Strategy) string {
	var b strings.Builder
	for _, s := range domain.AllStrategies {
		marker := "  "
		label := StyleFg.Render(s.Label())
		if s == selected {
			marker = StyleGreen.Render("● ")
			label = Bold(s.Label())
		}
		b.WriteString(fmt.Sprintf("%s%-28s %s\n", marker, label, Dim(string(s))))
	}
	return b.String()
}
