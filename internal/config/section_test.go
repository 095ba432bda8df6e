package config

import (
	"errors"
	"testing"
)

func TestSection_NewOption_Duplicate(t *testing.T) {
	s := newTestSection(t)
	if _, err := s.NewOption(OptionSpec{Name: "logo", Type: TypeBoolean, Default: "on"}); err != nil {
		t.Fatalf("first NewOption() error = %v", err)
	}

	_, err := s.NewOption(OptionSpec{Name: "logo", Type: TypeString, Default: ""})
	if !errors.Is(err, ErrDuplicateOption) {
		t.Errorf("duplicate NewOption() error = %v, want ErrDuplicateOption", err)
	}
}

func TestSection_NewOption_InvalidDefault(t *testing.T) {
	s := newTestSection(t)
	tests := []struct {
		name string
		spec OptionSpec
	}{
		{"boolean", OptionSpec{Name: "a", Type: TypeBoolean, Default: "maybe"}},
		{"integer range", OptionSpec{Name: "b", Type: TypeInteger, Min: 1, Max: 10, Default: "0"}},
		{"integer parse", OptionSpec{Name: "c", Type: TypeInteger, Min: 0, Max: 10, Default: "x"}},
		{"enum", OptionSpec{Name: "d", Type: TypeEnum, Labels: []string{"on", "off"}, Default: "auto"}},
		{"string length", OptionSpec{Name: "e", Type: TypeString, Max: 1, Default: "ab"}},
		{"color", OptionSpec{Name: "f", Type: TypeColor, Default: "mauve"}},
	}

	for _, tt := range tests {
		_, err := s.NewOption(tt.spec)
		if !errors.Is(err, ErrInvalidDefault) {
			t.Errorf("%s: NewOption() error = %v, want ErrInvalidDefault", tt.name, err)
		}
	}
}

func TestSection_NewOption_BadDeclarations(t *testing.T) {
	s := newTestSection(t)

	if _, err := s.NewOption(OptionSpec{Type: TypeBoolean, Default: "on"}); err == nil {
		t.Error("empty option name accepted")
	}
	if _, err := s.NewOption(OptionSpec{Name: "pos", Type: TypeEnum, Default: "x"}); err == nil {
		t.Error("enum without labels accepted")
	}
	if _, err := s.NewOption(OptionSpec{Name: "n", Type: TypeInteger, Min: 5, Max: 1, Default: "3"}); err == nil {
		t.Error("empty integer range accepted")
	}
}

func TestSection_NewOption_OnCodecSection(t *testing.T) {
	cfg := New("unused.conf")
	s, err := cfg.NewSection("keys", &fakeCodec{})
	if err != nil {
		t.Fatalf("NewSection() error = %v", err)
	}

	if _, err := s.NewOption(OptionSpec{Name: "x", Type: TypeString, Default: ""}); err == nil {
		t.Error("scalar option accepted on a structured section")
	}
}

func TestSection_Options_DeclarationOrder(t *testing.T) {
	s := newTestSection(t)
	names := []string{"save_on_exit", "scroll_amount", "day_change", "read_marker"}
	for _, name := range names {
		if _, err := s.NewOption(OptionSpec{Name: name, Type: TypeString, Default: ""}); err != nil {
			t.Fatalf("NewOption(%q) error = %v", name, err)
		}
	}

	opts := s.Options()
	if len(opts) != len(names) {
		t.Fatalf("Options() returned %d options, want %d", len(opts), len(names))
	}
	for i, o := range opts {
		if o.Name() != names[i] {
			t.Errorf("Options()[%d] = %q, want %q", i, o.Name(), names[i])
		}
	}

	if s.Option("day_change") == nil {
		t.Error("Option(\"day_change\") = nil")
	}
	if s.Option("absent") != nil {
		t.Error("Option(\"absent\") != nil")
	}
}

func TestSection_MustOption_Panics(t *testing.T) {
	s := newTestSection(t)
	defer func() {
		if recover() == nil {
			t.Error("MustOption with an invalid default did not panic")
		}
	}()
	s.MustOption(OptionSpec{Name: "broken", Type: TypeBoolean, Default: "maybe"})
}
