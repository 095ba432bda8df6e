// Package bar holds the status-bar definitions and persists them through
// the "bars" section of the configuration file. A bar definition is
// layout data only; drawing belongs to the rendering layer.
package bar

import (
	"fmt"
	"strconv"
	"strings"
)

// Type says whether a bar spans the whole terminal or one window.
type Type uint8

const (
	// TypeRoot bars span the full terminal.
	TypeRoot Type = iota
	// TypeWindow bars attach to a single window.
	TypeWindow
)

// String returns the persisted name of the type.
func (t Type) String() string {
	switch t {
	case TypeRoot:
		return "root"
	case TypeWindow:
		return "window"
	default:
		return "unknown"
	}
}

// TypeFromName resolves a persisted type word. ok is false for unknown
// words.
func TypeFromName(name string) (Type, bool) {
	switch name {
	case "root":
		return TypeRoot, true
	case "window":
		return TypeWindow, true
	}
	return 0, false
}

// Position is the edge a bar sits on.
type Position uint8

const (
	// PositionTop anchors the bar above the content area.
	PositionTop Position = iota
	// PositionBottom anchors the bar below the content area.
	PositionBottom
	// PositionLeft anchors the bar on the left edge.
	PositionLeft
	// PositionRight anchors the bar on the right edge.
	PositionRight
)

// String returns the persisted name of the position.
func (p Position) String() string {
	switch p {
	case PositionTop:
		return "top"
	case PositionBottom:
		return "bottom"
	case PositionLeft:
		return "left"
	case PositionRight:
		return "right"
	default:
		return "unknown"
	}
}

// PositionFromName resolves a persisted position word. ok is false for
// unknown words.
func PositionFromName(name string) (Position, bool) {
	switch name {
	case "top":
		return PositionTop, true
	case "bottom":
		return PositionBottom, true
	case "left":
		return PositionLeft, true
	case "right":
		return PositionRight, true
	}
	return 0, false
}

// Bar is one status-bar definition.
type Bar struct {
	// Name identifies the bar, unique within the registry.
	Name string

	// Type and Position place the bar.
	Type     Type
	Position Position

	// Size is the bar's thickness in cells. Zero means automatic.
	Size int

	// Separator draws a separator line between the bar and the content.
	Separator bool

	// Items is the comma-separated item list the bar displays.
	Items string
}

// Registry is the bar definition store. It implements
// config.SectionCodec for the "bars" section.
//
// Registry is not safe for concurrent use.
type Registry struct {
	bars   []*Bar
	byName map[string]*Bar
}

// NewRegistry creates an empty bar registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*Bar),
	}
}

// Add creates or overwrites the definition for name. Overwriting keeps
// the bar's position in creation order. Negative sizes are rejected.
func (r *Registry) Add(name string, typ Type, pos Position, size int, separator bool, items string) (*Bar, error) {
	if name == "" {
		return nil, fmt.Errorf("bar name cannot be empty")
	}
	if size < 0 {
		return nil, fmt.Errorf("bar %s: negative size %d", name, size)
	}
	return r.put(name, typ, pos, size, separator, items), nil
}

func (r *Registry) put(name string, typ Type, pos Position, size int, separator bool, items string) *Bar {
	b := r.byName[name]
	if b == nil {
		b = &Bar{Name: name}
		r.bars = append(r.bars, b)
		r.byName[name] = b
	}
	b.Type = typ
	b.Position = pos
	b.Size = size
	b.Separator = separator
	b.Items = items
	return b
}

// Remove deletes the definition for name. Returns false when no bar
// existed.
func (r *Registry) Remove(name string) bool {
	b := r.byName[name]
	if b == nil {
		return false
	}
	delete(r.byName, name)
	for i, other := range r.bars {
		if other == b {
			r.bars = append(r.bars[:i], r.bars[i+1:]...)
			break
		}
	}
	return true
}

// Get returns the definition for name, or nil.
func (r *Registry) Get(name string) *Bar {
	return r.byName[name]
}

// Bars returns the live definitions in creation order.
func (r *Registry) Bars() []*Bar {
	out := make([]*Bar, len(r.bars))
	copy(out, r.bars)
	return out
}

// Count returns the number of live definitions.
func (r *Registry) Count() int {
	return len(r.bars)
}

// Clear releases every definition ahead of a reload's re-read.
func (r *Registry) Clear() {
	r.bars = nil
	r.byName = make(map[string]*Bar)
}

// ReadLine consumes one stored "bars" line. The value must be exactly
// five semicolon-separated fields: type, position, size, separator flag,
// item list. Lines with the wrong field count, a size that does not
// parse as a non-negative integer, or an unknown type or position word
// are silently discarded. The leniency is deliberate, kept for
// compatibility with existing files; do not turn it into an error.
func (r *Registry) ReadLine(key, value string) {
	fields := strings.Split(value, ";")
	if len(fields) != 5 {
		return
	}
	typ, ok := TypeFromName(fields[0])
	if !ok {
		return
	}
	pos, ok := PositionFromName(fields[1])
	if !ok {
		return
	}
	size, err := strconv.Atoi(fields[2])
	if err != nil || size < 0 {
		return
	}
	if key == "" {
		return
	}
	// Only a leading '0' reads as false; an empty field is true.
	separator := fields[3] == "" || fields[3][0] != '0'
	r.put(key, typ, pos, size, separator, fields[4])
}

// WriteLines emits one line per live definition in creation order, in
// the same five-field form ReadLine accepts.
func (r *Registry) WriteLines(emit func(name, value string)) {
	for _, b := range r.bars {
		sep := 0
		if b.Separator {
			sep = 1
		}
		emit(b.Name, fmt.Sprintf("%s;%s;%d;%d;%s", b.Type, b.Position, b.Size, sep, b.Items))
	}
}
