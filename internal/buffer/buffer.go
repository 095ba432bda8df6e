// Package buffer holds the open buffers of a session: the ordered list
// of conversation and raw-data targets lines are appended to. It is
// model data only; drawing belongs to the rendering layer.
package buffer

import "time"

// Kind classifies a buffer.
type Kind uint8

const (
	// KindConversation buffers hold chat-style traffic and receive
	// informational notices.
	KindConversation Kind = iota
	// KindRaw buffers hold unformatted data (protocol logs) and are
	// skipped by notice fan-out.
	KindRaw
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindConversation:
		return "conversation"
	case KindRaw:
		return "raw"
	default:
		return "unknown"
	}
}

// Line is one stored buffer line.
type Line struct {
	// When is the arrival time.
	When time.Time

	// Text is the line content.
	Text string
}

// Buffer is one open target.
type Buffer struct {
	name  string
	kind  Kind
	lines []Line
}

// Name returns the buffer name.
func (b *Buffer) Name() string { return b.name }

// Kind returns the buffer kind.
func (b *Buffer) Kind() Kind { return b.kind }

// Append stores one line.
func (b *Buffer) Append(when time.Time, text string) {
	b.lines = append(b.lines, Line{When: when, Text: text})
}

// Notice appends an informational line outside the normal message flow.
func (b *Buffer) Notice(text string) {
	b.Append(time.Now(), text)
}

// Lines returns the stored lines, oldest first.
func (b *Buffer) Lines() []Line {
	out := make([]Line, len(b.lines))
	copy(out, b.lines)
	return out
}

// ClearLines drops all stored lines.
func (b *Buffer) ClearLines() {
	b.lines = nil
}

// TrimFront drops the oldest lines until at most max remain. Max
// values of zero or less trim nothing.
func (b *Buffer) TrimFront(max int) {
	if max <= 0 || len(b.lines) <= max {
		return
	}
	b.lines = b.lines[len(b.lines)-max:]
}

// List is the ordered set of open buffers.
//
// List is not safe for concurrent use.
type List struct {
	buffers []*Buffer
	byName  map[string]*Buffer
}

// NewList creates an empty buffer list.
func NewList() *List {
	return &List{
		byName: make(map[string]*Buffer),
	}
}

// Open returns the named buffer, creating it when absent.
func (l *List) Open(name string, kind Kind) *Buffer {
	if b := l.byName[name]; b != nil {
		return b
	}
	b := &Buffer{name: name, kind: kind}
	l.buffers = append(l.buffers, b)
	l.byName[name] = b
	return b
}

// Close removes the named buffer. Returns false when it was not open.
func (l *List) Close(name string) bool {
	b := l.byName[name]
	if b == nil {
		return false
	}
	delete(l.byName, name)
	for i, other := range l.buffers {
		if other == b {
			l.buffers = append(l.buffers[:i], l.buffers[i+1:]...)
			break
		}
	}
	return true
}

// Get returns the named buffer, or nil.
func (l *List) Get(name string) *Buffer {
	return l.byName[name]
}

// All returns the open buffers in open order.
func (l *List) All() []*Buffer {
	out := make([]*Buffer, len(l.buffers))
	copy(out, l.buffers)
	return out
}

// Conversations returns the open conversation-kind buffers in open
// order.
func (l *List) Conversations() []*Buffer {
	var out []*Buffer
	for _, b := range l.buffers {
		if b.kind == KindConversation {
			out = append(out, b)
		}
	}
	return out
}

// Count returns the number of open buffers.
func (l *List) Count() int {
	return len(l.buffers)
}
