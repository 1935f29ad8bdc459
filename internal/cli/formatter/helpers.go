package formatter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/roster/internal/contract"
	"github.com/alexanderramin/roster/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(0, 2)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// FormatMutation renders the outcome of a registry mutation under the given
// past-tense action ("Added", "Removed"). Rejected mutations are notices,
// not errors.
func FormatMutation(action string, res domain.MutationResult) string {
	if !res.Applied {
		reason := "unchanged"
		if res.Reason != nil {
			reason = res.Reason.Error()
		}
		return StyleYellow.Render("Notice:") + fmt.Sprintf(" %s %q not changed: %s", res.Kind, res.Name, reason)
	}
	if res.NewName != "" {
		return StyleGreen.Render("✓") + fmt.Sprintf(" %s %s %q to %q", action, res.Kind, res.Name, res.NewName)
	}
	return StyleGreen.Render("✓") + fmt.Sprintf(" %s %s %q", action, res.Kind, res.Name)
}

// FormatError renders an error for terminal output. Plan errors show
// their code.
func FormatError(err error) string {
	var pe *contract.PlanError
	if errors.As(err, &pe) {
		return StyleRed.Render("Error ["+string(pe.Code)+"]:") + " " + pe.Message
	}
	return StyleRed.Render("Error:") + " " + err.Error()
}

// FormatWarnings renders generation warnings, one per line.
func FormatWarnings(warnings []string) string {
	if len(warnings) == 0 {
		return ""
	}
	var b strings.Builder
	for _, w := range warnings {
		b.WriteString(StyleYellow.Render("! ") + w + "\n")
	}
	return b.String()
}
