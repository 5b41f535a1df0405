package pdf

import (
	"regexp"
	"strings"
)

// DefaultWeekText is printed on hangtags when the page carries no marker.
const DefaultWeekText = "WEEK"

const lotMarker = "MER-"

var weekPattern = regexp.MustCompile(`W\d{1,2}`)

const pointsPerMM = 72.0 / 25.4

// CropMargins are the millimetres trimmed from each edge of a catalog page to
// isolate the label artwork.
type CropMargins struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

// DefaultCrop isolates the colour label on a catalog page.
var DefaultCrop = CropMargins{Top: 65.5, Bottom: 132, Left: 43, Right: 17}

// ClipLines returns the text of each line restricted to the crop region of
// the page, dropping lines left empty.
func (p Page) ClipLines(m CropMargins) []string {
	x0 := m.Left * pointsPerMM
	x1 := p.Width - m.Right*pointsPerMM
	y0 := m.Bottom * pointsPerMM
	y1 := p.Height - m.Top*pointsPerMM

	var out []string
	for _, l := range p.Lines {
		var b strings.Builder
		for _, w := range l.Words {
			if w.X >= x0 && w.X <= x1 && w.Y >= y0 && w.Y <= y1 {
				b.WriteString(w.S)
			}
		}
		if s := strings.TrimSpace(b.String()); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// WeekText returns the first line inside the crop region that carries a lot
// marker ("MER-") or a week number ("W7", "W42"), or DefaultWeekText.
func WeekText(p Page, m CropMargins) string {
	for _, ln := range p.ClipLines(m) {
		if strings.Contains(ln, lotMarker) || weekPattern.MatchString(ln) {
			return ln
		}
	}
	return DefaultWeekText
}
