package config

import "testing"

func TestOptionType_String(t *testing.T) {
	tests := []struct {
		typ  OptionType
		want string
	}{
		{TypeBoolean, "boolean"},
		{TypeInteger, "integer"},
		{TypeEnum, "enum"},
		{TypeString, "string"},
		{TypeColor, "color"},
		{OptionType(255), "unknown"},
	}

	for _, tt := range tests {
		got := tt.typ.String()
		if got != tt.want {
			t.Errorf("OptionType(%d).String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}

func TestParseBoolean(t *testing.T) {
	tests := []struct {
		raw   string
		value bool
		ok    bool
	}{
		{"on", true, true},
		{"yes", true, true},
		{"true", true, true},
		{"1", true, true},
		{"ON", true, true},
		{"Yes", true, true},
		{"TRUE", true, true},
		{"off", false, true},
		{"no", false, true},
		{"false", false, true},
		{"0", false, true},
		{"OFF", false, true},
		{"No", false, true},
		{"", false, false},
		{"maybe", false, false},
		{"2", false, false},
		{"onn", false, false},
	}

	for _, tt := range tests {
		value, ok := parseBoolean(tt.raw)
		if value != tt.value || ok != tt.ok {
			t.Errorf("parseBoolean(%q) = (%v, %v), want (%v, %v)",
				tt.raw, value, ok, tt.value, tt.ok)
		}
	}
}

func TestFormatBoolean(t *testing.T) {
	if got := formatBoolean(true); got != "on" {
		t.Errorf("formatBoolean(true) = %q, want %q", got, "on")
	}
	if got := formatBoolean(false); got != "off" {
		t.Errorf("formatBoolean(false) = %q, want %q", got, "off")
	}
}
