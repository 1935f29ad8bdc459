package cli

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/alexanderramin/roster/internal/cli/formatter"
	"github.com/alexanderramin/roster/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// rosterHuhTheme returns a huh theme using the shell's Gruvbox palette.
func rosterHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validateRepeat accepts a repeat count between 1 and domain.MaxRepeatCount.
func validateRepeat(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 1 || v > domain.MaxRepeatCount {
		return fmt.Errorf("enter a number from 1 to %d", domain.MaxRepeatCount)
	}
	return nil
}

// requireText rejects blank input.
func requireText(title string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", strings.ToLower(title))
		}
		return nil
	}
}

// rowWizardValues collects the fields of a scenario row. Position is zero
// when adding.
type rowWizardValues struct {
	position int
	name     string
	day      string
	timeslot string
	repeat   string
}

// args renders the collected values as a row add/update command line.
func (v *rowWizardValues) args() []string {
	args := []string{"row", "add"}
	if v.position > 0 {
		args = []string{"row", "update", strconv.Itoa(v.position)}
	}
	return append(args,
		"--name", strings.TrimSpace(v.name),
		"--day", strings.TrimSpace(v.day),
		"--timeslot", strings.TrimSpace(v.timeslot),
		"--repeat", strings.TrimSpace(v.repeat),
	)
}

// choiceField is a select over the registry names, or a free text input when
// the registry is empty. A current value outside the registry stays
// selectable.
func choiceField(title string, names []string, value *string) huh.Field {
	if len(names) == 0 {
		return huh.NewInput().
			Title(title).
			Value(value).
			Validate(requireText(title))
	}
	if *value == "" {
		*value = names[0]
	}
	if !slices.Contains(names, *value) {
		names = append(slices.Clone(names), *value)
	}
	return huh.NewSelect[string]().
		Title(title).
		Options(huh.NewOptions(names...)...).
		Value(value)
}

// wizardRowForm builds the add/update form of a scenario row. For an update,
// vals arrives prefilled with the row's current fields.
func wizardRowForm(ctx context.Context, app *App, vals *rowWizardValues) (*huh.Form, error) {
	list := func(kind domain.RegistryKind) ([]string, error) { return app.Registry.List(ctx, kind) }

	scenarios, err := list(domain.RegistryStandardScenarios)
	if err != nil {
		return nil, err
	}
	days, err := list(domain.RegistryDays)
	if err != nil {
		return nil, err
	}
	timeslots, err := list(domain.RegistryTimeslots)
	if err != nil {
		return nil, err
	}
	if vals.repeat == "" {
		vals.repeat = "1"
	}

	return huh.NewForm(
		huh.NewGroup(
			choiceField("Scenario", scenarios, &vals.name),
			choiceField("Day", days, &vals.day),
			choiceField("Timeslot", timeslots, &vals.timeslot),
			huh.NewInput().
				Title("Repeat").
				Description(fmt.Sprintf("How many times the scenario runs in this slot (1-%d)", domain.MaxRepeatCount)).
				Value(&vals.repeat).
				Validate(validateRepeat),
		),
	).WithTheme(rosterHuhTheme()).WithShowHelp(false), nil
}

// wizardStrategyForm builds the strategy picker, preselecting current.
func wizardStrategyForm(current domain.Strategy, result *domain.Strategy) *huh.Form {
	*result = current
	options := make([]huh.Option[domain.Strategy], 0, len(domain.AllStrategies))
	for _, s := range domain.AllStrategies {
		options = append(options, huh.NewOption(s.Label(), s))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.Strategy]().
				Title("Strategy").
				Options(options...).
				Value(result),
		),
	).WithTheme(rosterHuhTheme()).WithShowHelp(false)
}
