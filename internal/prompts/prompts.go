// Package prompts maps a material, furniture part and color choice onto the
// natural-language instruction sent to the inpainting model. Everything here
// is pure and deterministic.
package prompts

import (
	"fmt"
	"strings"
)

var materialPhrases = map[string]string{
	"leather":    "smooth premium leather upholstery",
	"fabric":     "soft woven fabric upholstery",
	"velvet":     "plush velvet upholstery with a subtle sheen",
	"linen":      "natural linen upholstery with visible weave",
	"cotton":     "matte cotton fabric upholstery",
	"microfiber": "fine microfiber upholstery",
	"wood":       "solid wood surface with natural grain",
	"metal":      "brushed metal surface",
}

var partPhrases = map[string]string{
	"cushion":   "seat cushion",
	"seat":      "seat surface",
	"backrest":  "backrest",
	"armrest":   "armrest",
	"leg":       "furniture leg",
	"table_top": "table top",
	"drawer":    "drawer front",
	"door":      "cabinet door",
	"frame":     "furniture frame",
}

// colorNames covers the swatches the picker UI offers. Anything else
// degrades to a literal hex description rather than erroring; the model
// copes fine with raw hex in a prompt.
var colorNames = map[string]string{
	"#ff0000": "vibrant red",
	"#00ff00": "bright green",
	"#0000ff": "deep blue",
	"#ffff00": "sunny yellow",
	"#ffa500": "warm orange",
	"#800080": "rich purple",
	"#ffc0cb": "soft pink",
	"#a52a2a": "earthy brown",
	"#8b4513": "saddle brown",
	"#000000": "jet black",
	"#ffffff": "pure white",
	"#808080": "neutral gray",
	"#000080": "navy blue",
	"#008080": "teal",
	"#f5f5dc": "beige",
	"#d2b48c": "tan",
	"#556b2f": "olive green",
	"#800000": "maroon",
	"#36454f": "charcoal gray",
	"#fffdd0": "cream",
}

// ColorName resolves a color token to a descriptive name. Hex values outside
// the lookup table come back as "color #RRGGBB"; non-hex tokens pass through.
func ColorName(color string) string {
	if !strings.HasPrefix(color, "#") {
		return color
	}
	if name, ok := colorNames[strings.ToLower(color)]; ok {
		return name
	}
	return "color " + color
}

// GenerateInpaintingPrompt builds the instruction sentence for a recolor.
// Unknown materials and parts fall back to generic phrases; the model
// tolerates free text, so being permissive beats failing the request.
func GenerateInpaintingPrompt(furniturePart, material, color string) string {
	materialPhrase, ok := materialPhrases[strings.ToLower(material)]
	if !ok {
		materialPhrase = "premium material"
	}

	partPhrase, ok := partPhrases[strings.ToLower(furniturePart)]
	if !ok {
		partPhrase = "furniture part"
	}

	return fmt.Sprintf(
		"A %s %s in %s, photorealistic, professional product photography, preserving the original lighting and shadows",
		ColorName(color), partPhrase, materialPhrase,
	)
}

// Materials lists the enumerated material options.
func Materials() []string {
	return []string{"leather", "fabric", "velvet", "linen", "cotton", "microfiber", "wood", "metal"}
}

// FurnitureParts lists the enumerated furniture part options.
func FurnitureParts() []string {
	return []string{"cushion", "seat", "backrest", "armrest", "leg", "table_top", "drawer", "door", "frame"}
}
