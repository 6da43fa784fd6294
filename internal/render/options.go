package render

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	FormatA4     = "A4"
	FormatLetter = "Letter"
)

// Margin holds the four page margins as CSS lengths ("1in", "2cm", "10mm",
// "96px").
type Margin struct {
	Top    string
	Right  string
	Bottom string
	Left   string
}

type Options struct {
	Format              string
	Margin              Margin
	DisplayHeaderFooter bool
	HeaderTemplate      string
	FooterTemplate      string
}

// DefaultOptions are the settings every report is printed with: A4 paper,
// 1in top/bottom and 0.75in side margins, no browser header or footer.
func DefaultOptions() Options {
	return Options{
		Format: FormatA4,
		Margin: Margin{
			Top:    "1in",
			Right:  "0.75in",
			Bottom: "1in",
			Left:   "0.75in",
		},
	}
}

func paperSize(format string) (width, height float64, err error) {
	switch format {
	case FormatA4, "":
		return 8.27, 11.69, nil
	case FormatLetter:
		return 8.5, 11, nil
	default:
		return 0, 0, fmt.Errorf("unknown page format %q", format)
	}
}

// parseLength converts a CSS length to inches, the unit the print protocol
// expects.
func parseLength(s string) (float64, error) {
	s = strings.TrimSpace(s)

	unit := ""
	for _, u := range []string{"in", "cm", "mm", "px"} {
		if strings.HasSuffix(s, u) {
			unit = u
			break
		}
	}

	value, err := strconv.ParseFloat(strings.TrimSuffix(s, unit), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid length %q", s)
	}

	switch unit {
	case "in", "":
		return value, nil
	case "cm":
		return value / 2.54, nil
	case "mm":
		return value / 25.4, nil
	default:
		return value / 96, nil
	}
}
