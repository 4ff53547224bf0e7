package pdf

import (
	"strings"

	"github.com/benoitkugler/vecdoc/graphics"
)

// coreFont returns the standard PDF font family and the gofpdf
// style used for font.
func coreFont(font graphics.Font) (family, style string) {
	switch strings.ToLower(strings.TrimSpace(font.Family)) {
	case "courier", "courier new", "monospace":
		family = "Courier"
	case "times", "times new roman", "georgia", "serif":
		family = "Times"
	default:
		family = "Helvetica"
	}
	if font.IsBold {
		style = "B"
	}
	return family, style
}
