package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Config is the top-level registry: an ordered set of sections bound to
// one backing file. A process constructs exactly one instance at startup
// and passes it explicitly; there is no package-level state.
//
// Config is not safe for concurrent use. All mutation is expected to run
// on the application's event-loop goroutine.
type Config struct {
	path     string
	sections []*Section
	byName   map[string]*Section
	logger   *logrus.Logger
}

// New creates an empty Config backed by the file at path.
func New(path string) *Config {
	return &Config{
		path:   path,
		byName: make(map[string]*Section),
		logger: logrus.StandardLogger(),
	}
}

// SetLogger replaces the logger used for read/save reporting.
func (c *Config) SetLogger(logger *logrus.Logger) {
	if logger != nil {
		c.logger = logger
	}
}

// Path returns the backing file path.
func (c *Config) Path() string { return c.path }

// NewSection adds a named section. codec is nil for scalar sections and
// non-nil for structured sections whose records live in the codec's
// store. Fails with ErrDuplicateSection when the name is taken.
func (c *Config) NewSection(name string, codec SectionCodec) (*Section, error) {
	if name == "" {
		return nil, fmt.Errorf("section name cannot be empty")
	}
	if _, exists := c.byName[name]; exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateSection, name)
	}
	s := &Section{
		config: c,
		name:   name,
		byName: make(map[string]*Option),
		codec:  codec,
	}
	c.sections = append(c.sections, s)
	c.byName[name] = s
	return s, nil
}

// MustSection adds a section and panics on failure. Intended for startup
// catalogs, where a duplicate name is a programming error.
func (c *Config) MustSection(name string, codec SectionCodec) *Section {
	s, err := c.NewSection(name, codec)
	if err != nil {
		panic(fmt.Sprintf("config: create section %s: %v", name, err))
	}
	return s
}

// Sections returns the sections in creation order.
func (c *Config) Sections() []*Section {
	out := make([]*Section, len(c.sections))
	copy(out, c.sections)
	return out
}

// Section returns the named section, or nil if it does not exist.
func (c *Config) Section(name string) *Section {
	return c.byName[name]
}

// Option resolves a dotted "section.option" path. Nil when either part
// does not exist.
func (c *Config) Option(path string) *Option {
	secName, optName, ok := strings.Cut(path, ".")
	if !ok {
		return nil
	}
	s := c.byName[secName]
	if s == nil {
		return nil
	}
	return s.Option(optName)
}

// Set sets the option at the dotted path from its raw string form. This
// is the user-facing set surface; it reports ErrUnknownOption for paths
// that resolve to nothing and otherwise behaves like Option.Set.
func (c *Config) Set(path, raw string) error {
	o := c.Option(path)
	if o == nil {
		return fmt.Errorf("%w: %s", ErrUnknownOption, path)
	}
	return o.Set(raw)
}
