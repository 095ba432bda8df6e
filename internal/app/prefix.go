package app

// PrefixKind identifies one of the decorations shown before message
// text in a conversation.
type PrefixKind uint8

const (
	// PrefixInfo decorates informational lines.
	PrefixInfo PrefixKind = iota
	// PrefixError decorates error lines.
	PrefixError
	// PrefixNetwork decorates server and network lines.
	PrefixNetwork
	// PrefixAction decorates action ("/me") lines.
	PrefixAction
	// PrefixJoin decorates join lines.
	PrefixJoin
	// PrefixQuit decorates part and quit lines.
	PrefixQuit
)

// String returns a human-readable name for the kind.
func (k PrefixKind) String() string {
	switch k {
	case PrefixInfo:
		return "info"
	case PrefixError:
		return "error"
	case PrefixNetwork:
		return "network"
	case PrefixAction:
		return "action"
	case PrefixJoin:
		return "join"
	case PrefixQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// refreshPrefix copies one prefix option's value into the live map.
func (a *App) refreshPrefix(kind PrefixKind) {
	if opt := a.prefixOpts[kind]; opt != nil {
		a.prefixes[kind] = opt.String()
	}
}

// refreshPrefixes copies every prefix option into the live map.
func (a *App) refreshPrefixes() {
	for kind := range a.prefixOpts {
		a.refreshPrefix(kind)
	}
}
