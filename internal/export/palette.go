package export

import "github.com/alexanderramin/roster/internal/domain"

// Unassigned is the fill of participants outside the registry.
const Unassigned = "FFFFFF"

// Palette holds 6-digit hex colors cycled by participant registry index.
type Palette []string

// DefaultPalette matches the spreadsheet colors of the original planner.
var DefaultPalette = Palette{
	"FFB6C1", "87CEFA", "98FB98", "FFA07A", "DDA0DD", "F0E68C",
	"FFA500", "B0E0E6", "FFD700", "90EE90", "FF69B4", "6495ED",
}

// ColorFor returns the tag of participant. The same participant always gets
// the same color for a given registry.
func (p Palette) ColorFor(participants []string, participant string) string {
	if len(p) == 0 {
		p = DefaultPalette
	}
	idx := domain.IndexOf(participants, participant)
	if idx < 0 {
		return Unassigned
	}
	return p[idx%len(p)]
}
