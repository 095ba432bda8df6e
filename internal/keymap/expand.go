package keymap

import "strings"

// Key sequences are stored in their raw internal form: a 0x01 marker
// byte followed by the control character for ctrl, 0x01 '[' for meta,
// 0x01 '[' '[' for the meta2 escape family. Display names spell those
// prefixes out ("ctrl-", "meta-", "meta2-"), and the two forms convert
// losslessly in both directions.

const (
	ctrlCode  = "\x01"
	metaCode  = "\x01["
	meta2Code = "\x01[["
)

// InternalCode converts a display key name to its stored raw form.
// Prefixes may stack ("meta-ctrl-x"); text without a known prefix is
// kept as-is.
func InternalCode(name string) string {
	var b strings.Builder
	rest := name
	for {
		switch {
		case strings.HasPrefix(rest, "meta2-"):
			b.WriteString(meta2Code)
			rest = rest[len("meta2-"):]
		case strings.HasPrefix(rest, "meta-"):
			b.WriteString(metaCode)
			rest = rest[len("meta-"):]
		case strings.HasPrefix(rest, "ctrl-"):
			b.WriteString(ctrlCode)
			rest = rest[len("ctrl-"):]
		default:
			b.WriteString(rest)
			return b.String()
		}
	}
}

// ExpandedName converts a raw key sequence back to its display name.
// The inverse of InternalCode.
func ExpandedName(code string) string {
	var b strings.Builder
	rest := code
	for {
		switch {
		case strings.HasPrefix(rest, meta2Code):
			b.WriteString("meta2-")
			rest = rest[len(meta2Code):]
		case strings.HasPrefix(rest, metaCode):
			b.WriteString("meta-")
			rest = rest[len(metaCode):]
		case strings.HasPrefix(rest, ctrlCode):
			b.WriteString("ctrl-")
			rest = rest[len(ctrlCode):]
		default:
			b.WriteString(rest)
			return b.String()
		}
	}
}
