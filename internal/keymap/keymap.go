// Package keymap holds the live key bindings and persists them through
// the "keys" section of the configuration file. Bindings are keyed by
// raw key sequence and resolve either to a registered command identifier
// with optional arguments or, failing that, to a verbatim command line.
package keymap

import (
	"strings"

	"github.com/parleychat/parley/internal/command"
)

// Binding maps one key sequence to what it runs.
type Binding struct {
	// Key is the raw internal key sequence.
	Key string

	// Command is the resolved command identifier. Empty when the
	// binding carries a literal instead.
	Command string

	// Args is the trailing argument text for a resolved command.
	Args string

	// Literal is the verbatim command line stored when the bound text
	// did not resolve to a registered identifier.
	Literal string
}

// Table is the binding store. It implements config.SectionCodec for the
// "keys" section.
//
// Table is not safe for concurrent use.
type Table struct {
	commands *command.Registry
	bindings []*Binding
	byKey    map[string]*Binding
}

// NewTable creates an empty binding table resolving identifiers against
// the given command registry.
func NewTable(commands *command.Registry) *Table {
	return &Table{
		commands: commands,
		byKey:    make(map[string]*Binding),
	}
}

// Bind creates or overwrites the binding for a raw key sequence. When
// the first space-delimited word of value is a registered command
// identifier the binding stores that identifier plus the remaining text
// as arguments; otherwise the whole value is stored as a literal.
// Overwriting keeps the binding's position in creation order.
func (t *Table) Bind(key, value string) *Binding {
	b := t.byKey[key]
	if b == nil {
		b = &Binding{Key: key}
		t.bindings = append(t.bindings, b)
		t.byKey[key] = b
	}

	name, args, _ := strings.Cut(value, " ")
	if t.commands != nil && t.commands.Has(name) {
		b.Command = name
		b.Args = args
		b.Literal = ""
	} else {
		b.Command = ""
		b.Args = ""
		b.Literal = value
	}
	return b
}

// Unbind removes the binding for a raw key sequence. Returns false when
// no binding existed.
func (t *Table) Unbind(key string) bool {
	b := t.byKey[key]
	if b == nil {
		return false
	}
	delete(t.byKey, key)
	for i, other := range t.bindings {
		if other == b {
			t.bindings = append(t.bindings[:i], t.bindings[i+1:]...)
			break
		}
	}
	return true
}

// Lookup returns the binding for a raw key sequence, or nil.
func (t *Table) Lookup(key string) *Binding {
	return t.byKey[key]
}

// Bindings returns the live bindings in creation order.
func (t *Table) Bindings() []*Binding {
	out := make([]*Binding, len(t.bindings))
	copy(out, t.bindings)
	return out
}

// Count returns the number of live bindings.
func (t *Table) Count() int {
	return len(t.bindings)
}

// Clear releases every binding. Part of the section codec contract: the
// reload re-read is purely additive, so removal happens here.
func (t *Table) Clear() {
	t.bindings = nil
	t.byKey = make(map[string]*Binding)
}

// ReadLine consumes one stored "keys" line. The key arrives in display
// form and is converted to its raw sequence. An empty value removes any
// existing binding for the sequence; a non-empty value rebinds it.
func (t *Table) ReadLine(key, value string) {
	raw := InternalCode(key)
	if value == "" {
		t.Unbind(raw)
		return
	}
	t.Bind(raw, value)
}

// WriteLines emits one line per live binding in creation order. The key
// is re-expanded from its raw form and the value is double-quoted:
// either "identifier args" for resolved bindings or the literal text.
func (t *Table) WriteLines(emit func(name, value string)) {
	for _, b := range t.bindings {
		var text string
		switch {
		case b.Command != "" && b.Args != "":
			text = b.Command + " " + b.Args
		case b.Command != "":
			text = b.Command
		default:
			text = b.Literal
		}
		emit(ExpandedName(b.Key), `"`+text+`"`)
	}
}
