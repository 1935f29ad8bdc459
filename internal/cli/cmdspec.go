package cli

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// CommandSpec is a flat description of the command tree. The shell uses it
// for completion and "did you mean" suggestions.
type CommandSpec struct {
	Commands []CommandEntry
}

// CommandEntry describes a single command or subcommand.
type CommandEntry struct {
	FullPath    string // without the root name, e.g. "row add"
	Short       string
	Flags       []FlagEntry
	Subcommands []string
}

// FlagEntry describes a single flag on a command.
type FlagEntry struct {
	Name      string
	Shorthand string
	Type      string
	Default   string
	Usage     string
}

// BuildCommandSpec walks the cobra tree under root. Hidden commands and
// cobra's generated help/completion commands are skipped.
func BuildCommandSpec(root *cobra.Command) *CommandSpec {
	spec := &CommandSpec{}
	var walk func(c *cobra.Command)
	walk = func(c *cobra.Command) {
		for _, child := range c.Commands() {
			if child.Hidden || child.Name() == "help" || child.Name() == "completion" {
				continue
			}
			spec.Commands = append(spec.Commands, entryFor(root, child))
			walk(child)
		}
	}
	walk(root)
	return spec
}

func entryFor(root, c *cobra.Command) CommandEntry {
	e := CommandEntry{
		FullPath: strings.TrimPrefix(c.CommandPath(), root.Name()+" "),
		Short:    c.Short,
	}
	c.NonInheritedFlags().VisitAll(func(f *pflag.Flag) {
		if f.Hidden || f.Name == "help" {
			return
		}
		e.Flags = append(e.Flags, FlagEntry{
			Name:      f.Name,
			Shorthand: f.Shorthand,
			Type:      f.Value.Type(),
			Default:   f.DefValue,
			Usage:     f.Usage,
		})
	})
	for _, sub := range c.Commands() {
		if !sub.Hidden && sub.Name() != "help" {
			e.Subcommands = append(e.Subcommands, sub.Name())
		}
	}
	return e
}

// FindCommand returns the CommandEntry for a given path, or nil.
func (spec *CommandSpec) FindCommand(path string) *CommandEntry {
	for i := range spec.Commands {
		if spec.Commands[i].FullPath == path {
			return &spec.Commands[i]
		}
	}
	return nil
}

// TopLevel returns the names of the root's direct subcommands.
func (spec *CommandSpec) TopLevel() []string {
	var names []string
	for _, c := range spec.Commands {
		if !strings.Contains(c.FullPath, " ") {
			names = append(names, c.FullPath)
		}
	}
	return names
}

// Len and String make the spec a fuzzy.Source over command paths.
func (spec *CommandSpec) Len() int            { return len(spec.Commands) }
func (spec *CommandSpec) String(i int) string { return spec.Commands[i].FullPath }

// FuzzyMatch returns up to n commands best matching query. Paths are
// matched as character subsequences first, so "partcipant" still finds
// "participant"; when nothing matches that way, any command whose path or
// description contains a query word is returned.
func (spec *CommandSpec) FuzzyMatch(query string, n int) []CommandEntry {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || n <= 0 {
		return nil
	}

	var result []CommandEntry
	for _, m := range fuzzy.FindFrom(query, spec) {
		if len(result) == n {
			return result
		}
		result = append(result, spec.Commands[m.Index])
	}
	if len(result) > 0 {
		return result
	}
	return spec.keywordMatch(strings.Fields(query), n)
}

func (spec *CommandSpec) keywordMatch(terms []string, n int) []CommandEntry {
	type scored struct {
		entry CommandEntry
		hits  int
	}
	var matches []scored
	for _, cmd := range spec.Commands {
		lowerPath := strings.ToLower(cmd.FullPath)
		lowerShort := strings.ToLower(cmd.Short)
		hits := 0
		for _, term := range terms {
			if strings.Contains(lowerPath, term) || strings.Contains(lowerShort, term) {
				hits++
			}
		}
		if hits > 0 {
			matches = append(matches, scored{entry: cmd, hits: hits})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].hits > matches[j].hits })

	result := make([]CommandEntry, 0, n)
	for i := 0; i < len(matches) && i < n; i++ {
		result = append(result, matches[i].entry)
	}
	return result
}
