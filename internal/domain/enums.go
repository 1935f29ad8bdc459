package domain

import (
	"fmt"
	"strings"
)

// Strategy selects one of the assignment algorithms.
type Strategy string

const (
	StrategyRandom     Strategy = "random"
	StrategyRoundRobin Strategy = "round_robin"
	StrategyBalanced   Strategy = "balanced"
	StrategyLatin      Strategy = "latin_square"
)

// AllStrategies lists every strategy in menu order.
var AllStrategies = []Strategy{
	StrategyRandom,
	StrategyRoundRobin,
	StrategyBalanced,
	StrategyLatin,
}

// Label returns the human-facing strategy name.
func (s Strategy) Label() string {
	switch s {
	case StrategyRandom:
		return "Random"
	case StrategyRoundRobin:
		return "Round Robin"
	case StrategyBalanced:
		return "Balanced"
	case StrategyLatin:
		return "Constraint (Latin Square)"
	default:
		return string(s)
	}
}

// strategyAliases maps accepted spellings to their canonical strategy.
var strategyAliases = map[string]Strategy{
	"random":                    StrategyRandom,
	"round_robin":               StrategyRoundRobin,
	"round-robin":               StrategyRoundRobin,
	"roundrobin":                StrategyRoundRobin,
	"round robin":               StrategyRoundRobin,
	"rr":                        StrategyRoundRobin,
	"balanced":                  StrategyBalanced,
	"latin_square":              StrategyLatin,
	"latin-square":              StrategyLatin,
	"latin":                     StrategyLatin,
	"constraint":                StrategyLatin,
	"constraint (latin square)": StrategyLatin,
}

// ParseStrategy resolves user input to a Strategy. Unknown names are
// rejected rather than silently mapped to a default.
func ParseStrategy(s string) (Strategy, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if st, ok := strategyAliases[key]; ok {
		return st, nil
	}
	return "", fmt.Errorf("%w: %q (expected one of random, round_robin, balanced, latin_square)", ErrUnknownStrategy, s)
}

// RegistryKind identifies one of the ordered, duplicate-free name lists.
type RegistryKind string

const (
	RegistryParticipants      RegistryKind = "participant"
	RegistryBoards            RegistryKind = "board"
	RegistryDays              RegistryKind = "day"
	RegistryTimeslots         RegistryKind = "timeslot"
	RegistryStandardScenarios RegistryKind = "scenario"
)

// AllRegistryKinds lists the registries in display order.
var AllRegistryKinds = []RegistryKind{
	RegistryParticipants,
	RegistryBoards,
	RegistryDays,
	RegistryTimeslots,
	RegistryStandardScenarios,
}

// ValidRegistryKinds is the canonical set of accepted registry kind strings.
var ValidRegistryKinds = map[string]bool{
	"participant": true, "board": true, "day": true,
	"timeslot": true, "scenario": true,
}

// ParseRegistryKind resolves a registry kind string.
func ParseRegistryKind(s string) (RegistryKind, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if !ValidRegistryKinds[key] {
		return "", fmt.Errorf("%w: %q", ErrUnknownRegistry, s)
	}
	return RegistryKind(key), nil
}

// Plural returns the display name of the registry.
func (k RegistryKind) Plural() string {
	switch k {
	case RegistryParticipants:
		return "participants"
	case RegistryBoards:
		return "boards"
	case RegistryDays:
		return "days"
	case RegistryTimeslots:
		return "timeslots"
	case RegistryStandardScenarios:
		return "standard scenarios"
	default:
		return string(k) + "s"
	}
}
