package category

var (
	FoodPalette   = []string{"green", "red", "pink", "blue", "purple", "yellow", "indigo", "orange", "teal", "gray"}
	RecipePalette = []string{"rose", "amber", "lime", "cyan", "violet", "fuchsia", "emerald", "sky"}
)

// ColorToken maps a label to a display token by its position in labels. The
// palette wraps around once there are more labels than tokens, and a label
// that is not in labels gets the first token.
func ColorToken(label string, labels []string, palette []string) string {
	if len(palette) == 0 {
		return ""
	}
	for i, candidate := range labels {
		if candidate == label {
			return palette[i%len(palette)]
		}
	}
	return palette[0]
}

func FoodColor(label string, labels []string) string {
	return ColorToken(label, labels, FoodPalette)
}

func RecipeColor(label string, labels []string) string {
	return ColorToken(label, labels, RecipePalette)
}
