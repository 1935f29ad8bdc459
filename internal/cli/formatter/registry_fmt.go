package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/roster/internal/domain"
)

// FormatRegistry renders one registry as a numbered list.
func FormatRegistry(kind domain.RegistryKind, names []string, colors ParticipantColors) string {
	title := Header(fmt.Sprintf("%s (%d)", kind.Plural(), len(names)))
	if len(names) == 0 {
		return title + "\n" + Dim("  (empty)")
	}
	var b strings.Builder
	b.WriteString(title + "\n")
	for i, n := range names {
		if kind == domain.RegistryParticipants {
			n = colors.Tag(n)
		}
		b.WriteString(fmt.Sprintf("%s %s\n", Dim(fmt.Sprintf("%3d.", i+1)), n))
	}
	return strings.TrimSuffix(b.String(), "\n")
}
