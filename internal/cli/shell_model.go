package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/roster/internal/cli/formatter"
	"github.com/alexanderramin/roster/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/spf13/pflag"
)

// shellMode tracks which interaction mode the shell is in.
type shellMode int

const (
	modePrompt  shellMode = iota // Normal command input.
	modeWizard                   // huh form is active.
	modeConfirm                  // Awaiting y/n for destructive command.
)

// pendingConfirmation is a destructive command waiting for y/n.
type pendingConfirmation struct {
	description string
	args        []string
}

// destructiveCommands maps group → subcommands that ask for confirmation.
var destructiveCommands = func() map[string]map[string]bool {
	m := map[string]map[string]bool{
		"row": {"remove": true, "rm": true},
	}
	for _, kind := range domain.AllRegistryKinds {
		m[string(kind)] = map[string]bool{"remove": true, "rm": true}
	}
	return m
}()

// shellBuiltins are handled by the shell itself, not the cobra tree.
var shellBuiltins = []string{"help", "clear", "exit", "quit"}

// shellModel is the bubbletea Model for the interactive shell REPL.
type shellModel struct {
	input textinput.Model
	form  *huh.Form // active wizard form (nil when not in wizard mode)
	width int

	app  *App
	spec *CommandSpec

	mode           shellMode
	wizardDone     func(m *shellModel) tea.Cmd // called when wizard form completes
	pendingConfirm *pendingConfirmation

	history    []string
	historyIdx int

	quitting bool
}

// newShellModel creates a new bubbletea shell model.
func newShellModel(app *App) shellModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.ShowSuggestions = true
	ti.CharLimit = 500
	// Tab accepts a suggestion; Up/Down stay reserved for history.
	ti.KeyMap.NextSuggestion = key.NewBinding(key.WithKeys("ctrl+n"))
	ti.KeyMap.PrevSuggestion = key.NewBinding(key.WithKeys("ctrl+p"))

	hist := loadHistoryFromPath(app.HistoryPath)

	return shellModel{
		input:      ti,
		app:        app,
		spec:       BuildCommandSpec(NewRootCmd(app)),
		history:    hist,
		historyIdx: len(hist),
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m shellModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.Println(formatter.FormatShellWelcome()),
	)
}

func (m shellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - len(m.promptPrefix()) - 1
		if m.form != nil {
			m.form = m.form.WithWidth(msg.Width)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}

		switch m.mode {
		case modeWizard:
			return m.updateWizard(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		default:
			return m.updatePrompt(msg)
		}
	}

	// huh needs its non-key messages (init, focus transitions) too.
	if m.mode == modeWizard && m.form != nil {
		return m.updateWizard(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m shellModel) View() string {
	if m.quitting {
		return formatter.Dim("Goodbye.") + "\n"
	}
	if m.mode == modeWizard && m.form != nil {
		return m.form.View()
	}
	return m.promptPrefix() + m.input.View()
}

func (m *shellModel) promptPrefix() string {
	if m.mode == modeConfirm {
		return formatter.StyleYellow.Render("confirm (y/n)") + " " + formatter.Dim("❯") + " "
	}
	return formatter.StylePurple.Render("roster") + " " + formatter.Dim("❯") + " "
}

// ── prompt mode ──────────────────────────────────────────────────────────────

func (m shellModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		input := strings.TrimSpace(m.input.Value())
		m.input.Reset()
		m.input.SetSuggestions(nil)
		if input == "" {
			return m, nil
		}
		m.addHistory(input)
		output, cmd := m.executeCommand(input)
		var cmds []tea.Cmd
		if output != "" {
			cmds = append(cmds, tea.Println(output))
		}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case tea.KeyUp:
		m.historyUp()
		return m, nil

	case tea.KeyDown:
		m.historyDown()
		return m, nil

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.updateSuggestions()
		return m, cmd
	}
}

// ── wizard mode ──────────────────────────────────────────────────────────────

// startWizard switches to wizard mode with the given form and completion callback.
func (m *shellModel) startWizard(form *huh.Form, done func(m *shellModel) tea.Cmd) tea.Cmd {
	m.mode = modeWizard
	m.form = form
	m.wizardDone = done
	return m.form.Init()
}

func (m shellModel) updateWizard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.mode = modePrompt
		m.form = nil
		m.wizardDone = nil
		return m, tea.Println(formatter.Dim("Cancelled."))
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.mode = modePrompt
		done := m.wizardDone
		m.form = nil
		m.wizardDone = nil
		if done != nil {
			return m, tea.Batch(cmd, done(&m))
		}
	}
	return m, cmd
}

// ── confirm mode ─────────────────────────────────────────────────────────────

func (m shellModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type != tea.KeyEnter {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	input := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	pending := m.pendingConfirm
	m.pendingConfirm = nil
	m.mode = modePrompt

	switch strings.ToLower(input) {
	case "y", "yes":
		return m, tea.Println(m.execCobraCapture(pending.args))
	default:
		return m, tea.Println(formatter.Dim("Cancelled."))
	}
}

// ── history ──────────────────────────────────────────────────────────────────

func (m *shellModel) addHistory(line string) {
	if line == "" {
		return
	}
	m.history = append(m.history, line)
	m.historyIdx = len(m.history)
	appendHistoryToPath(m.app.HistoryPath, line)
}

func (m *shellModel) historyUp() {
	if m.historyIdx > 0 {
		m.historyIdx--
		m.input.SetValue(m.history[m.historyIdx])
		m.input.CursorEnd()
	}
}

func (m *shellModel) historyDown() {
	if m.historyIdx < len(m.history)-1 {
		m.historyIdx++
		m.input.SetValue(m.history[m.historyIdx])
		m.input.CursorEnd()
	} else {
		m.historyIdx = len(m.history)
		m.input.SetValue("")
	}
}

// ── suggestions ──────────────────────────────────────────────────────────────

// updateSuggestions offers whole-line completions for the word being typed:
// commands, then subcommands, then registry names for remove/rename and
// strategy names for strategy set.
func (m *shellModel) updateSuggestions() {
	text := m.input.Value()
	if strings.TrimSpace(text) == "" {
		m.input.SetSuggestions(nil)
		return
	}

	parts := strings.Fields(text)
	if strings.HasSuffix(text, " ") {
		parts = append(parts, "")
	}
	word := parts[len(parts)-1]
	base := text[:len(text)-len(word)]

	var pool []string
	switch len(parts) {
	case 1:
		pool = append(m.spec.TopLevel(), shellBuiltins...)
	case 2:
		if c := m.spec.FindCommand(strings.ToLower(parts[0])); c != nil {
			pool = c.Subcommands
		}
	default:
		pool = m.argumentPool(strings.ToLower(parts[0]), strings.ToLower(parts[1]))
	}

	var suggestions []string
	for _, s := range filterSuggestions(pool, word) {
		suggestions = append(suggestions, base+s)
	}
	m.input.SetSuggestions(suggestions)
}

func (m *shellModel) argumentPool(group, sub string) []string {
	if group == "strategy" && sub == "set" {
		names := make([]string, 0, len(domain.AllStrategies))
		for _, s := range domain.AllStrategies {
			names = append(names, string(s))
		}
		return names
	}
	kind, err := domain.ParseRegistryKind(group)
	if err != nil || (sub != "remove" && sub != "rm" && sub != "rename") {
		return nil
	}
	names, err := m.app.Registry.List(context.Background(), kind)
	if err != nil {
		return nil
	}
	return names
}

// filterSuggestions returns items from pool that start with prefix (case-insensitive).
func filterSuggestions(pool []string, prefix string) []string {
	if prefix == "" {
		return pool
	}
	lp := strings.ToLower(prefix)
	var result []string
	for _, s := range pool {
		if strings.HasPrefix(strings.ToLower(s), lp) {
			result = append(result, s)
		}
	}
	return result
}

// ── command dispatch ─────────────────────────────────────────────────────────

func (m *shellModel) executeCommand(input string) (string, tea.Cmd) {
	parts, err := splitShellArgs(input)
	if err != nil {
		return shellError(err), nil
	}
	if len(parts) == 0 {
		return "", nil
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help":
		if len(args) > 0 {
			return m.execCobraCapture(append(args, "--help")), nil
		}
		return formatter.FormatShellHelp(), nil
	case "clear":
		return "\033[H\033[2J", nil
	case "exit", "quit":
		m.quitting = true
		return "", tea.Quit
	case "shell":
		return formatter.StyleYellow.Render("Already in shell mode."), nil
	case "row":
		if wantsRowWizard(args) {
			return m.execRowWizard(args)
		}
	case "strategy":
		if len(args) == 1 && strings.ToLower(args[0]) == "set" {
			return m.execStrategyWizard()
		}
	}
	return m.execMaybeDestructive(parts), nil
}

// wantsRowWizard reports whether a row add/update line carries no field
// flags, so the fields should be collected interactively.
func wantsRowWizard(args []string) bool {
	if len(args) == 0 {
		return false
	}
	sub := strings.ToLower(args[0])
	if sub != "add" && sub != "update" {
		return false
	}

	fs := pflag.NewFlagSet("row "+sub, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var f rowFlags
	f.register(fs)
	if err := fs.Parse(args[1:]); err != nil {
		return false // let cobra report it
	}
	if sub == "update" && fs.NArg() != 1 {
		return false
	}
	return !anyRowFlag(fs)
}

func (m *shellModel) execRowWizard(args []string) (string, tea.Cmd) {
	ctx := context.Background()
	vals := &rowWizardValues{}
	intro := "New scenario row"

	if strings.ToLower(args[0]) == "update" {
		pos, err := parsePosition(args[1])
		if err != nil {
			return shellError(err), nil
		}
		rows, err := m.app.Rows.List(ctx)
		if err != nil {
			return shellError(err), nil
		}
		if pos > len(rows) {
			return shellError(fmt.Errorf("scenario row %d (have %d): %w", pos, len(rows), domain.ErrNotFound)), nil
		}
		row := rows[pos-1]
		vals.position = pos
		vals.name, vals.day, vals.timeslot = row.Name, row.Day, row.Timeslot
		vals.repeat = fmt.Sprint(row.RepeatCount)
		intro = fmt.Sprintf("Editing row %d", pos)
	}

	form, err := wizardRowForm(ctx, m.app, vals)
	if err != nil {
		return shellError(err), nil
	}
	cmd := m.startWizard(form, func(m *shellModel) tea.Cmd {
		return tea.Println(m.execCobraCapture(vals.args()))
	})
	return formatter.Dim(intro + " (Esc cancels)"), cmd
}

func (m *shellModel) execStrategyWizard() (string, tea.Cmd) {
	current, err := m.app.Plans.Strategy(context.Background())
	if err != nil {
		return shellError(err), nil
	}
	var picked domain.Strategy
	form := wizardStrategyForm(current, &picked)
	cmd := m.startWizard(form, func(m *shellModel) tea.Cmd {
		return tea.Println(m.execCobraCapture([]string{"strategy", "set", string(picked)}))
	})
	return "", cmd
}

// ── cobra pass-through ───────────────────────────────────────────────────────

// execCobraCapture runs a command through the Cobra tree and captures output.
func (m *shellModel) execCobraCapture(args []string) string {
	var buf strings.Builder
	root := NewRootCmd(m.app)
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	root.SilenceUsage = true
	root.SilenceErrors = true
	root.DisableSuggestions = true // suggestAlternatives covers this
	if err := root.Execute(); err != nil {
		buf.WriteString(shellError(err))
		if strings.Contains(err.Error(), "unknown command") && len(args) > 0 {
			if alt := m.suggestAlternatives(args[0]); alt != "" {
				buf.WriteString("\n" + alt)
			}
		}
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// ── destructive commands ─────────────────────────────────────────────────────

func (m *shellModel) execMaybeDestructive(parts []string) string {
	if len(parts) < 3 {
		return m.execCobraCapture(parts)
	}

	group := strings.ToLower(parts[0])
	sub := strings.ToLower(parts[1])
	if subs, ok := destructiveCommands[group]; !ok || !subs[sub] {
		return m.execCobraCapture(parts)
	}

	var target []string
	for _, a := range parts[2:] {
		if confirmFlags[a] {
			return m.execCobraCapture(parts)
		}
		target = append(target, a)
	}

	desc := fmt.Sprintf("%s %s %s", group, sub, strings.Join(target, " "))
	m.mode = modeConfirm
	m.pendingConfirm = &pendingConfirmation{description: desc, args: parts}

	return fmt.Sprintf("%s %s\n%s",
		formatter.StyleYellow.Render("Confirm:"),
		desc+"?",
		formatter.Dim("Enter y to confirm, anything else to cancel."))
}

// ── suggestions for unknown commands ─────────────────────────────────────────

func (m *shellModel) suggestAlternatives(input string) string {
	matches := m.spec.FuzzyMatch(input, 3)
	if len(matches) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(formatter.Dim("Did you mean:"))
	for _, match := range matches {
		b.WriteString(fmt.Sprintf("\n  %s  %s",
			formatter.StyleGreen.Render(match.FullPath),
			formatter.Dim(match.Short),
		))
	}
	return b.String()
}
