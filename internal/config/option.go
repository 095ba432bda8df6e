package config

import (
	"fmt"
	"strconv"
	"strings"
)

// OnChange is an option's change callback. It runs synchronously, exactly
// once, immediately after a successful Set commits the new value. It is
// never invoked when validation fails, and it must tolerate repeated
// invocation across successive sets.
type OnChange func()

// OptionSpec describes an option to declare.
type OptionSpec struct {
	// Name is the option name, unique within its section.
	Name string

	// Type is the option's value domain.
	Type OptionType

	// Description is human-readable documentation.
	Description string

	// Labels lists the allowed values for TypeEnum, in ordinal order.
	Labels []string

	// Min and Max bound TypeInteger values inclusively. For TypeString a
	// positive Max rejects values longer than Max bytes. Both are
	// ignored for the remaining types.
	Min, Max int

	// Default is the default value in raw string form. It is validated
	// at declaration time and becomes the initial stored value.
	Default string

	// OnChange, when non-nil, runs after each successful Set.
	OnChange OnChange
}

// Option is a single named, typed, validated configuration value.
type Option struct {
	section *Section
	name    string
	typ     OptionType
	desc    string
	labels  []string
	min     int
	max     int
	def     string

	onChange OnChange

	boolVal bool
	intVal  int // integer value, enum ordinal, or color index
	strVal  string
}

// Name returns the option name.
func (o *Option) Name() string { return o.name }

// FullName returns the dotted section.option path.
func (o *Option) FullName() string { return o.section.name + "." + o.name }

// Type returns the option's value domain.
func (o *Option) Type() OptionType { return o.typ }

// Description returns the option's documentation string.
func (o *Option) Description() string { return o.desc }

// Default returns the declared default in raw string form.
func (o *Option) Default() string { return o.def }

// Labels returns the enum labels in ordinal order. Nil for other types.
func (o *Option) Labels() []string {
	if len(o.labels) == 0 {
		return nil
	}
	out := make([]string, len(o.labels))
	copy(out, o.labels)
	return out
}

// Bool returns the current value of a TypeBoolean option, false for any
// other type.
func (o *Option) Bool() bool {
	if o.typ != TypeBoolean {
		return false
	}
	return o.boolVal
}

// Int returns the current integer value: the number for TypeInteger, the
// label ordinal for TypeEnum, the palette index for TypeColor. Zero for
// other types.
func (o *Option) Int() int {
	switch o.typ {
	case TypeInteger, TypeEnum, TypeColor:
		return o.intVal
	}
	return 0
}

// String returns the current value in its persisted string form: on/off
// for booleans, digits for integers, the label for enums, the symbolic
// name for colors, the text itself for strings.
func (o *Option) String() string {
	switch o.typ {
	case TypeBoolean:
		return formatBoolean(o.boolVal)
	case TypeInteger:
		return strconv.Itoa(o.intVal)
	case TypeEnum:
		return o.labels[o.intVal]
	case TypeColor:
		name, ok := ColorName(o.intVal)
		if !ok {
			return "default"
		}
		return name
	default:
		return o.strVal
	}
}

// Set validates raw against the option's type and constraint, commits it,
// and fires the change callback. On failure the prior value is retained
// and the returned error matches ErrInvalidValue; the callback does not
// fire. There is no partial application: the stored value either fully
// changes or does not change at all.
func (o *Option) Set(raw string) error {
	if err := o.apply(raw); err != nil {
		return err
	}
	if o.onChange != nil {
		o.onChange()
	}
	return nil
}

// apply validates and stores raw without firing the callback. Used by
// Set and by declaration, which seeds the default silently.
func (o *Option) apply(raw string) error {
	switch o.typ {
	case TypeBoolean:
		v, ok := parseBoolean(raw)
		if !ok {
			return o.invalid(raw, "not a boolean toggle")
		}
		o.boolVal = v
	case TypeInteger:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return o.invalid(raw, "not a base-10 integer")
		}
		if n < o.min || n > o.max {
			return o.invalid(raw, fmt.Sprintf("out of range [%d,%d]", o.min, o.max))
		}
		o.intVal = n
	case TypeEnum:
		// Label matching is case-sensitive.
		ord := -1
		for i, label := range o.labels {
			if label == raw {
				ord = i
				break
			}
		}
		if ord < 0 {
			return o.invalid(raw, "not one of "+strings.Join(o.labels, "|"))
		}
		o.intVal = ord
	case TypeString:
		if o.max > 0 && len(raw) > o.max {
			return o.invalid(raw, fmt.Sprintf("longer than %d characters", o.max))
		}
		o.strVal = raw
	case TypeColor:
		index, ok := ColorIndex(raw)
		if !ok {
			return o.invalid(raw, "unknown color name")
		}
		o.intVal = index
	default:
		return o.invalid(raw, "unsupported option type")
	}
	return nil
}

func (o *Option) invalid(raw, reason string) error {
	return &InvalidValueError{Option: o.FullName(), Raw: raw, Reason: reason}
}
