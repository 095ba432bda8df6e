package config

import "fmt"

// SectionCodec is implemented by stores whose records persist through a
// structured section (key bindings, status bars) instead of the scalar
// option table. The section's lines are fed one at a time to ReadLine;
// WriteLines enumerates the live records at save time; Clear releases
// every record ahead of a reload's re-read phase.
type SectionCodec interface {
	// ReadLine consumes one stored line. It must not fail back into the
	// read loop: lines it cannot use are its own business to drop.
	ReadLine(key, value string)

	// WriteLines emits one line per live record, in creation order.
	// The value passed to emit is written verbatim after "name = ".
	WriteLines(emit func(name, value string))

	// Clear releases every record.
	Clear()
}

// Section is a named grouping of options. A section with a codec holds
// structured records in the codec's store instead of scalar options.
type Section struct {
	config  *Config
	name    string
	options []*Option
	byName  map[string]*Option
	codec   SectionCodec
}

// Name returns the section name.
func (s *Section) Name() string { return s.name }

// Options returns the section's options in declaration order.
func (s *Section) Options() []*Option {
	out := make([]*Option, len(s.options))
	copy(out, s.options)
	return out
}

// Option returns the named option, or nil if it was never declared.
func (s *Section) Option(name string) *Option {
	return s.byName[name]
}

// NewOption declares an option in the section. The default is validated
// against the declared type and constraint; a failure is reported as
// ErrInvalidDefault. Declaration seeds the stored value from the default
// without firing the change callback.
func (s *Section) NewOption(spec OptionSpec) (*Option, error) {
	if spec.Name == "" {
		return nil, fmt.Errorf("section %s: option name cannot be empty", s.name)
	}
	if s.codec != nil {
		return nil, fmt.Errorf("section %s holds structured records, not scalar options", s.name)
	}
	if _, exists := s.byName[spec.Name]; exists {
		return nil, fmt.Errorf("%w: %s.%s", ErrDuplicateOption, s.name, spec.Name)
	}
	if spec.Type == TypeEnum && len(spec.Labels) == 0 {
		return nil, fmt.Errorf("enum option %s.%s declared without labels", s.name, spec.Name)
	}
	if spec.Type == TypeInteger && spec.Min > spec.Max {
		return nil, fmt.Errorf("option %s.%s declared with empty range [%d,%d]", s.name, spec.Name, spec.Min, spec.Max)
	}

	o := &Option{
		section:  s,
		name:     spec.Name,
		typ:      spec.Type,
		desc:     spec.Description,
		labels:   spec.Labels,
		min:      spec.Min,
		max:      spec.Max,
		def:      spec.Default,
		onChange: spec.OnChange,
	}
	if err := o.apply(spec.Default); err != nil {
		return nil, fmt.Errorf("%w: %s.%s: %v", ErrInvalidDefault, s.name, spec.Name, err)
	}

	s.options = append(s.options, o)
	s.byName[spec.Name] = o
	return o, nil
}

// MustOption declares an option and panics on failure. Intended for
// startup catalogs, where a bad declaration is a programming error.
func (s *Section) MustOption(spec OptionSpec) *Option {
	o, err := s.NewOption(spec)
	if err != nil {
		panic(fmt.Sprintf("config: declare option %s.%s: %v", s.name, spec.Name, err))
	}
	return o
}
