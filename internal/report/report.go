// Package report renders audit results as plain text.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"paris-coordcheck/internal/models"

	"github.com/charmbracelet/lipgloss"
	"github.com/paulmach/orb"
)

// Writer renders reports to one destination. Headings are bold on a terminal and plain otherwise.
type Writer struct {
	out     io.Writer
	heading lipgloss.Style
	warning lipgloss.Style
}

// NewWriter creates a new report writer for out
func NewWriter(out io.Writer) *Writer {
	r := lipgloss.NewRenderer(out)
	return &Writer{
		out:     out,
		heading: r.NewStyle().Bold(true),
		warning: r.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
	}
}

type page struct {
	strings.Builder
}

func (p *page) line(format string, args ...any) {
	fmt.Fprintf(p, format, args...)
	p.WriteByte('\n')
}

func (w *Writer) flush(p *page) error {
	if _, err := io.WriteString(w.out, p.String()); err != nil {
		return fmt.Errorf("report: failed to write: %w", err)
	}
	return nil
}

// WriteAnalysis renders the full coordinate analysis.
func (w *Writer) WriteAnalysis(audit *models.Audit) error {
	var p page
	result := audit.Result

	p.line("%s", strings.Repeat("=", 80))
	p.line("%s", w.heading.Render("COORDINATE ANALYSIS REPORT"))
	p.line("%s", strings.Repeat("=", 80))

	p.line("")
	p.line("%s", w.heading.Render("OVERVIEW"))
	p.line("Files loaded: %d", audit.Files)
	p.line("Places analyzed: %d", result.Total)

	groups := result.SortedDuplicates()
	p.line("")
	p.line("%s", w.heading.Render(fmt.Sprintf("DUPLICATE COORDINATES: %d groups", len(groups))))
	for _, group := range groups {
		p.line("")
		p.line("  %s - %d places:", keyText(group.Key), len(group.Places))
		for _, place := range group.Places {
			p.line("    - %s (%s) - %s", place.Name, place.DistrictID, place.Category)
			p.line("      File: %s", place.File)
		}
	}

	if len(audit.CenterCoincidences) > 0 {
		p.line("")
		p.line("%s", w.warning.Render("PLACES USING THEIR DISTRICT CENTER:"))
		for _, c := range audit.CenterCoincidences {
			p.line("")
			p.line("  District center %s:", pointText(c.Center))
			for _, place := range c.Places {
				p.line("    - %s - %s", place.Name, place.Address)
				p.line("      District: %s | File: %s", place.DistrictID, place.File)
			}
		}
	}

	p.line("")
	p.line("%s", w.heading.Render(fmt.Sprintf("MISSING COORDINATES: %d", len(result.Missing))))
	for _, place := range result.Missing {
		p.line("  - %s (%s)", place.Name, place.DistrictID)
		p.line("    Address: %s", place.Address)
		p.line("    Coordinates: %s", place.CoordinatesText())
		p.line("    File: %s", place.File)
	}

	p.line("")
	p.line("%s", w.heading.Render(fmt.Sprintf("OUTSIDE BOUNDS: %d", len(result.OutOfBounds))))
	if len(result.OutOfBounds) > 0 {
		p.line("Bounds: %s", boundText(audit.Bounds))
		for _, place := range result.OutOfBounds {
			p.line("  - %s - %s", place.Name, pointText(place.Point))
			p.line("    District: %s | File: %s", place.DistrictID, place.File)
		}
	}

	p.line("")
	p.line("%s", w.heading.Render(fmt.Sprintf("SUSPICIOUS COORDINATES: %d", len(result.Suspicious))))
	for _, place := range result.Suspicious {
		p.line("  - %s - %s", place.Name, pointText(place.Point))
		p.line("    District: %s | File: %s", place.DistrictID, place.File)
	}

	p.line("")
	p.line("%s", w.heading.Render(fmt.Sprintf("TARGETED LOOKUP: %d matches", len(audit.Matches))))
	for _, match := range audit.Matches {
		place := match.Place
		p.line("")
		p.line("  Found: %s", place.Name)
		if place.Valid {
			p.line("    Coordinates: %s", pointText(place.Point))
		} else {
			p.line("    Coordinates: %s", place.CoordinatesText())
		}
		if place.HasCenter {
			p.line("    District center: %s", pointText(place.DistrictCenter))
		} else {
			p.line("    District center: absent")
		}
		if match.SameAsCenter {
			p.line("    Same as district center: %s", w.warning.Render("YES"))
		} else {
			p.line("    Same as district center: NO")
		}
		if match.HasDistance {
			p.line("    Distance from center: %.0f m", match.DistanceMeters)
		}
		p.line("    File: %s", place.File)
	}

	return w.flush(&p)
}

// keyText turns "48.856600,2.352200" into "[48.856600, 2.352200]".
func keyText(key string) string {
	lat, lon, _ := strings.Cut(key, ",")
	return "[" + lat + ", " + lon + "]"
}

func pointText(p orb.Point) string {
	return "[" + number(p.Lat()) + ", " + number(p.Lon()) + "]"
}

func boundText(b orb.Bound) string {
	return fmt.Sprintf("lat %s-%s, lon %s-%s",
		number(b.Min.Lat()), number(b.Max.Lat()), number(b.Min.Lon()), number(b.Max.Lon()))
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
