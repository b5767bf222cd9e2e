// Fixed color scheme for table rows and cells.  Color is purely cosmetic: it is applied after all
// width computation, and the switch is a plain on/off - no terminal capability probing beyond
// forcing the basic ANSI profile so output is stable wherever it lands.

package table

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Style classes, in the vocabulary of the status reports.
type Class int

const (
	ClassNone      Class = iota
	ClassSelection       // rows belonging to the filtered-for owner
	ClassWarning         // values outside their acceptable band
	ClassDown            // unavailable nodes
	ClassFree            // spare capacity worth advertising
)

type Scheme struct {
	enabled   bool
	selection lipgloss.Style
	warning   lipgloss.Style
	down      lipgloss.Style
	free      lipgloss.Style
}

func NewScheme(enabled bool) *Scheme {
	s := &Scheme{enabled: enabled}
	if enabled {
		lipgloss.SetColorProfile(termenv.ANSI)
		s.selection = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
		s.warning = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
		s.down = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Strikethrough(true)
		s.free = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	}
	return s
}

// Wrap text in the ANSI codes of the class.  The text is returned unchanged when color is off or
// the class is ClassNone, so painting never changes the display width bookkeeping.
func (s *Scheme) Paint(c Class, text string) string {
	if s == nil || !s.enabled || c == ClassNone {
		return text
	}
	switch c {
	case ClassSelection:
		return s.selection.Render(text)
	case ClassWarning:
		return s.warning.Render(text)
	case ClassDown:
		return s.down.Render(text)
	case ClassFree:
		return s.free.Render(text)
	default:
		return text
	}
}
