package config

import "strings"

// OptionType identifies the value domain of an option.
type OptionType uint8

const (
	// TypeBoolean accepts on/off style toggle tokens.
	TypeBoolean OptionType = iota
	// TypeInteger accepts a base-10 integer within a declared range.
	TypeInteger
	// TypeEnum accepts one label from an ordered set; the stored value
	// is the label's zero-based position.
	TypeEnum
	// TypeString accepts free text, optionally bounded in length.
	TypeString
	// TypeColor accepts a symbolic color name from the palette table.
	TypeColor
)

// String returns the type name used in documentation and errors.
func (t OptionType) String() string {
	switch t {
	case TypeBoolean:
		return "boolean"
	case TypeInteger:
		return "integer"
	case TypeEnum:
		return "enum"
	case TypeString:
		return "string"
	case TypeColor:
		return "color"
	default:
		return "unknown"
	}
}

// parseBoolean maps a toggle token to a bool. The second return is false
// when the token is not recognized. Matching is case-insensitive.
func parseBoolean(raw string) (value, ok bool) {
	switch strings.ToLower(raw) {
	case "on", "yes", "true", "1":
		return true, true
	case "off", "no", "false", "0":
		return false, true
	}
	return false, false
}

// formatBoolean renders a bool in its persisted form.
func formatBoolean(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
