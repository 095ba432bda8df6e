package config

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func newTestSection(t *testing.T) *Section {
	t.Helper()
	cfg := New("unused.conf")
	s, err := cfg.NewSection("look", nil)
	if err != nil {
		t.Fatalf("NewSection() error = %v", err)
	}
	return s
}

func TestOption_Set_Boolean(t *testing.T) {
	s := newTestSection(t)
	o, err := s.NewOption(OptionSpec{Name: "logo", Type: TypeBoolean, Default: "off"})
	if err != nil {
		t.Fatalf("NewOption() error = %v", err)
	}

	if o.Bool() {
		t.Error("default: Bool() = true, want false")
	}

	if err := o.Set("ON"); err != nil {
		t.Fatalf("Set(\"ON\") error = %v", err)
	}
	if !o.Bool() {
		t.Error("after Set(\"ON\"): Bool() = false, want true")
	}
	if got := o.String(); got != "on" {
		t.Errorf("String() = %q, want %q", got, "on")
	}

	err = o.Set("maybe")
	if !errors.Is(err, ErrInvalidValue) {
		t.Errorf("Set(\"maybe\") error = %v, want ErrInvalidValue", err)
	}
	if !o.Bool() {
		t.Error("failed Set changed the stored value")
	}
}

func TestOption_Set_IntegerRange(t *testing.T) {
	s := newTestSection(t)
	o, err := s.NewOption(OptionSpec{
		Name:    "scroll_amount",
		Type:    TypeInteger,
		Min:     1,
		Max:     math.MaxInt,
		Default: "3",
	})
	if err != nil {
		t.Fatalf("NewOption() error = %v", err)
	}

	if got := o.Int(); got != 3 {
		t.Fatalf("default: Int() = %d, want 3", got)
	}

	// Below the minimum: rejected, value unchanged.
	err = o.Set("0")
	if !errors.Is(err, ErrInvalidValue) {
		t.Errorf("Set(\"0\") error = %v, want ErrInvalidValue", err)
	}
	if got := o.Int(); got != 3 {
		t.Errorf("after rejected Set: Int() = %d, want 3", got)
	}

	if err := o.Set("10"); err != nil {
		t.Fatalf("Set(\"10\") error = %v", err)
	}
	if got := o.Int(); got != 10 {
		t.Errorf("Int() = %d, want 10", got)
	}

	for _, raw := range []string{"abc", "", "3.5", "-1"} {
		if err := o.Set(raw); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("Set(%q) error = %v, want ErrInvalidValue", raw, err)
		}
	}
	if got := o.Int(); got != 10 {
		t.Errorf("after rejected sets: Int() = %d, want 10", got)
	}
}

func TestOption_Set_EnumOrdinals(t *testing.T) {
	s := newTestSection(t)
	o, err := s.NewOption(OptionSpec{
		Name:    "nicklist_position",
		Type:    TypeEnum,
		Labels:  []string{"left", "right", "top", "bottom"},
		Default: "right",
	})
	if err != nil {
		t.Fatalf("NewOption() error = %v", err)
	}

	if got := o.Int(); got != 1 {
		t.Errorf("default: Int() = %d, want 1", got)
	}

	for ordinal, label := range []string{"left", "right", "top", "bottom"} {
		if err := o.Set(label); err != nil {
			t.Fatalf("Set(%q) error = %v", label, err)
		}
		if got := o.Int(); got != ordinal {
			t.Errorf("Set(%q): Int() = %d, want %d", label, got, ordinal)
		}
		if got := o.String(); got != label {
			t.Errorf("Set(%q): String() = %q, want %q", label, got, label)
		}
	}

	// Label matching is case-sensitive.
	err = o.Set("Left")
	if !errors.Is(err, ErrInvalidValue) {
		t.Errorf("Set(\"Left\") error = %v, want ErrInvalidValue", err)
	}
	if err := o.Set("center"); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("Set(\"center\") error = %v, want ErrInvalidValue", err)
	}
}

func TestOption_Set_StringLength(t *testing.T) {
	s := newTestSection(t)
	o, err := s.NewOption(OptionSpec{
		Name:    "read_marker",
		Type:    TypeString,
		Max:     1,
		Default: "-",
	})
	if err != nil {
		t.Fatalf("NewOption() error = %v", err)
	}

	if err := o.Set("~"); err != nil {
		t.Errorf("Set(\"~\") error = %v", err)
	}
	if err := o.Set(""); err != nil {
		t.Errorf("Set(\"\") error = %v", err)
	}
	if err := o.Set("--"); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("Set(\"--\") error = %v, want ErrInvalidValue", err)
	}

	// No declared bound accepts anything.
	free, err := s.NewOption(OptionSpec{Name: "title", Type: TypeString, Default: ""})
	if err != nil {
		t.Fatalf("NewOption() error = %v", err)
	}
	long := strings.Repeat("x", 4096)
	if err := free.Set(long); err != nil {
		t.Errorf("unbounded Set error = %v", err)
	}
	if got := free.String(); got != long {
		t.Error("unbounded string not stored verbatim")
	}
}

func TestOption_Set_Color(t *testing.T) {
	s := newTestSection(t)
	o, err := s.NewOption(OptionSpec{Name: "status_bg", Type: TypeColor, Default: "blue"})
	if err != nil {
		t.Fatalf("NewOption() error = %v", err)
	}

	if got := o.Int(); got != 4 {
		t.Errorf("default: Int() = %d, want 4", got)
	}

	if err := o.Set("LightRed"); err != nil {
		t.Fatalf("Set(\"LightRed\") error = %v", err)
	}
	if got := o.Int(); got != 9 {
		t.Errorf("Int() = %d, want 9", got)
	}
	if got := o.String(); got != "lightred" {
		t.Errorf("String() = %q, want %q", got, "lightred")
	}

	if err := o.Set("mauve"); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("Set(\"mauve\") error = %v, want ErrInvalidValue", err)
	}
}

func TestOption_Callback_Exactness(t *testing.T) {
	s := newTestSection(t)
	calls := 0
	o, err := s.NewOption(OptionSpec{
		Name:     "day_change",
		Type:     TypeBoolean,
		Default:  "on",
		OnChange: func() { calls++ },
	})
	if err != nil {
		t.Fatalf("NewOption() error = %v", err)
	}

	// Declaration seeds the default without firing.
	if calls != 0 {
		t.Fatalf("callback fired %d times at declaration, want 0", calls)
	}

	if err := o.Set("off"); err != nil {
		t.Fatalf("Set(\"off\") error = %v", err)
	}
	if calls != 1 {
		t.Errorf("after one Set: callback fired %d times, want 1", calls)
	}

	// Setting the same value again still fires.
	if err := o.Set("off"); err != nil {
		t.Fatalf("Set(\"off\") error = %v", err)
	}
	if calls != 2 {
		t.Errorf("after repeated Set: callback fired %d times, want 2", calls)
	}

	// Failed validation never fires.
	if err := o.Set("bogus"); err == nil {
		t.Fatal("Set(\"bogus\") succeeded unexpectedly")
	}
	if calls != 2 {
		t.Errorf("after failed Set: callback fired %d times, want 2", calls)
	}
}

func TestOption_TypedGetterMismatch(t *testing.T) {
	s := newTestSection(t)
	num := s.MustOption(OptionSpec{Name: "port", Type: TypeInteger, Min: 0, Max: 65535, Default: "3128"})
	str := s.MustOption(OptionSpec{Name: "address", Type: TypeString, Default: "proxy.example.com"})

	if num.Bool() {
		t.Error("Bool() on an integer option = true, want false")
	}
	if got := str.Int(); got != 0 {
		t.Errorf("Int() on a string option = %d, want 0", got)
	}
	if got := num.String(); got != "3128" {
		t.Errorf("String() on an integer option = %q, want %q", got, "3128")
	}
}

func TestOption_Metadata(t *testing.T) {
	s := newTestSection(t)
	o := s.MustOption(OptionSpec{
		Name:        "prefix_align",
		Type:        TypeEnum,
		Description: "alignment of line prefixes",
		Labels:      []string{"none", "left", "right"},
		Default:     "right",
	})

	if got := o.Name(); got != "prefix_align" {
		t.Errorf("Name() = %q", got)
	}
	if got := o.FullName(); got != "look.prefix_align" {
		t.Errorf("FullName() = %q, want %q", got, "look.prefix_align")
	}
	if got := o.Type(); got != TypeEnum {
		t.Errorf("Type() = %v, want TypeEnum", got)
	}
	if got := o.Description(); got != "alignment of line prefixes" {
		t.Errorf("Description() = %q", got)
	}
	if got := o.Default(); got != "right" {
		t.Errorf("Default() = %q, want %q", got, "right")
	}

	labels := o.Labels()
	if len(labels) != 3 || labels[0] != "none" {
		t.Errorf("Labels() = %v", labels)
	}
	labels[0] = "mutated"
	if o.Labels()[0] != "none" {
		t.Error("Labels() exposed internal state")
	}
}

func TestInvalidValueError(t *testing.T) {
	err := &InvalidValueError{Option: "look.scroll_amount", Raw: "0", Reason: "out of range [1,9]"}

	if !errors.Is(err, ErrInvalidValue) {
		t.Error("errors.Is(InvalidValueError, ErrInvalidValue) = false")
	}
	want := `invalid value "0" for option look.scroll_amount: out of range [1,9]`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	var ive *InvalidValueError
	if !errors.As(error(err), &ive) {
		t.Error("errors.As failed to match *InvalidValueError")
	}
}
