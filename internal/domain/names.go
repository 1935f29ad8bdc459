package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultParticipantPrefix is used for auto-generated participant names.
const DefaultParticipantPrefix = "ATC"

// NextParticipantName returns prefix+n for the smallest positive n whose
// name is not already taken, e.g. ATC1, ATC2, ATC4 -> ATC3.
func NextParticipantName(existing []string, prefix string) string {
	if prefix == "" {
		prefix = DefaultParticipantPrefix
	}
	pattern := regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `([0-9]+)$`)
	used := make(map[int]bool, len(existing))
	for _, name := range existing {
		m := pattern.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil {
			used[n] = true
		}
	}
	n := 1
	for used[n] {
		n++
	}
	return fmt.Sprintf("%s%d", prefix, n)
}

// NormalizeName trims surrounding whitespace and rejects empty names.
func NormalizeName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", ErrEmptyName
	}
	return trimmed, nil
}

// IndexOf returns the position of name in list, or -1.
func IndexOf(list []string, name string) int {
	for i, v := range list {
		if v == name {
			return i
		}
	}
	return -1
}
