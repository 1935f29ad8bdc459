package formatter

import (
	"fmt"
	"strings"
)

// FormatShellWelcome renders the banner shown on shell startup.
func FormatShellWelcome() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(StylePurple.Render("  roster") + "\n")
	b.WriteString(StyleDim.Render("  ─────────────────────────────") + "\n")
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("  Register participants, then generate a plan from the scenario rows.") + "\n")
	b.WriteString("\n")
	b.WriteString("  " + StyleGreen.Render("participant add") + StyleDim.Render("   Add the next auto-named participant") + "\n")
	b.WriteString("  " + StyleGreen.Render("row add") + StyleDim.Render("           Add a scenario row (wizard)") + "\n")
	b.WriteString("  " + StyleGreen.Render("strategy set") + StyleDim.Render("      Pick the assignment strategy") + "\n")
	b.WriteString("  " + StyleGreen.Render("plan generate") + StyleDim.Render("     Build the plan") + "\n")
	b.WriteString("  " + StyleGreen.Render("export") + StyleDim.Render("            Write the plan to a spreadsheet") + "\n")
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("  Tab for autocomplete. Type 'help' for all commands.") + "\n")

	return b.String()
}

type helpCategory struct {
	title    string
	commands [][]string
}

func renderHelpCategory(cat helpCategory) string {
	var b strings.Builder
	b.WriteString("\n " + StyleHeader.Render(strings.ToUpper(cat.title)) + "\n")
	for _, c := range cat.commands {
		b.WriteString(fmt.Sprintf("  %-30s %s\n",
			StyleGreen.Render(c[0]),
			StyleDim.Render(c[1])))
	}
	return b.String()
}

// FormatShellHelp renders the categorized command reference.
func FormatShellHelp() string {
	categories := []helpCategory{
		{
			title: "Registries",
			commands: [][]string{
				{"<registry> list", "Show participants, boards, days, timeslots or scenarios"},
				{"<registry> add <name>", "Append a name (participant add without name auto-names)"},
				{"<registry> rename <old> <new>", "Rename in place"},
				{"<registry> remove <name>", "Remove a name"},
			},
		},
		{
			title: "Scenario rows",
			commands: [][]string{
				{"row list", "Show the scenario rows"},
				{"row add", "Add a row (wizard if flags omitted)"},
				{"row update <n>", "Change row n (wizard if flags omitted)"},
				{"row remove <n>", "Remove row n"},
			},
		},
		{
			title: "Planning",
			commands: [][]string{
				{"strategy [show|set|list]", "Show or pick the strategy"},
				{"plan generate", "Generate and store a new plan"},
				{"plan show", "Show the current plan"},
				{"summary", "Per-participant tally and fairness"},
				{"export [--out f] [--format x]", "Write the plan to xlsx, csv, json or yaml"},
			},
		},
		{
			title: "Utilities",
			commands: [][]string{
				{"help", "Show this command reference"},
				{"clear", "Clear the screen"},
				{"exit / quit", "Quit roster"},
			},
		},
	}

	var b strings.Builder
	for _, cat := range categories {
		b.WriteString(renderHelpCategory(cat))
	}
	b.WriteString("\n" + StyleDim.Render(
		"Registries: participant, board, day, timeslot, scenario.\n"+
			"Removals ask for confirmation unless --yes is given."))

	return RenderBox("Commands", b.String())
}
