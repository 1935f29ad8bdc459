package cli

import (
	"fmt"

	"github.com/alexanderramin/roster/internal/domain"
	"github.com/alexanderramin/roster/internal/service"
	"github.com/spf13/pflag"
)

// confirmFlags skip the shell's confirmation prompt for destructive commands.
var confirmFlags = map[string]bool{"--yes": true, "-y": true, "--force": true}

// addYesFlag registers --yes/-y (and its --force spelling) on a destructive
// command. The cobra command itself never prompts; the shell reads the flag.
func addYesFlag(fs *pflag.FlagSet, yes *bool) {
	fs.BoolVarP(yes, "yes", "y", false, "Skip the confirmation prompt in the shell")
	fs.BoolVar(yes, "force", false, "Alias of --yes")
	_ = fs.MarkHidden("force")
}

// rowFlags holds the editable fields of a scenario row.
type rowFlags struct {
	name     string
	day      string
	timeslot string
	repeat   int
}

func (f *rowFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.name, "name", "", "Scenario name (default: first standard scenario)")
	fs.StringVar(&f.day, "day", "", "Day (default: first registered day)")
	fs.StringVar(&f.timeslot, "timeslot", "", "Timeslot (default: first registered timeslot)")
	fs.IntVar(&f.repeat, "repeat", 0, fmt.Sprintf("Repeat count, 1-%d (default: 1)", domain.MaxRepeatCount))
}

// input converts the flags to a RowInput. An explicitly given repeat must be
// in range; an omitted one keeps the current or default value.
func (f *rowFlags) input(fs *pflag.FlagSet) (service.RowInput, error) {
	if fs.Changed("repeat") && (f.repeat < 1 || f.repeat > domain.MaxRepeatCount) {
		return service.RowInput{}, fmt.Errorf("%w: must be between 1 and %d (got %d)",
			domain.ErrInvalidRepeatCount, domain.MaxRepeatCount, f.repeat)
	}
	return service.RowInput{Name: f.name, Day: f.day, Timeslot: f.timeslot, Repeat: f.repeat}, nil
}

// anyRowFlag reports whether any row field was given, which decides between
// running directly and starting the shell wizard.
func anyRowFlag(fs *pflag.FlagSet) bool {
	for _, name := range []string{"name", "day", "timeslot", "repeat"} {
		if fs.Changed(name) {
			return true
		}
	}
	return false
}
