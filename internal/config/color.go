package config

import "strings"

// colorNames maps each symbolic color name to its palette index. The
// table is fixed: color options accept exactly these names.
var colorNames = map[string]int{
	"default":      -1,
	"black":        0,
	"red":          1,
	"green":        2,
	"brown":        3,
	"blue":         4,
	"magenta":      5,
	"cyan":         6,
	"gray":         7,
	"darkgray":     8,
	"lightred":     9,
	"lightgreen":   10,
	"yellow":       11,
	"lightblue":    12,
	"lightmagenta": 13,
	"lightcyan":    14,
	"white":        15,
}

// colorIndexes is the reverse of colorNames, for rendering stored values
// back to their symbolic form.
var colorIndexes = make(map[int]string, len(colorNames))

func init() {
	for name, index := range colorNames {
		colorIndexes[index] = name
	}
}

// ColorIndex resolves a symbolic color name to its palette index.
// Matching is case-insensitive. ok is false for unknown names.
func ColorIndex(name string) (index int, ok bool) {
	index, ok = colorNames[strings.ToLower(name)]
	return index, ok
}

// ColorName returns the symbolic name for a palette index. ok is false
// for indexes outside the table.
func ColorName(index int) (name string, ok bool) {
	name, ok = colorIndexes[index]
	return name, ok
}
