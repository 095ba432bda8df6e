// Package config implements parley's typed option registry and its
// persisted form.
//
// A Config owns an ordered list of named sections. Scalar sections hold
// options validated against a declared type (boolean, bounded integer,
// enumerated integer, string, symbolic color); the two structured
// sections (key bindings, status bars) contain records that are not
// simple scalars and persist through a SectionCodec instead.
//
// # Basic Usage
//
// Declare the registry at startup, then read the backing file:
//
//	cfg := config.New(path)
//	look := cfg.MustSection("look", nil)
//	scroll := look.MustOption(config.OptionSpec{
//	    Name:    "scroll_amount",
//	    Type:    config.TypeInteger,
//	    Min:     1,
//	    Max:     math.MaxInt,
//	    Default: "3",
//	})
//	if err := cfg.Read(); err != nil { ... }
//
//	cfg.Set("look.scroll_amount", "10")
//	n := scroll.Int()
//
// # File Format
//
// One UTF-8 text file, hash comments, sections in creation order:
//
//	[look]
//	save_on_exit = on
//	scroll_amount = 3
//	buffer_time_format = "[%H:%M:%S]"
//
//	[keys]
//	meta-a = "buffer_clear"
//
// String values are double-quoted on write and one pair of surrounding
// quotes is stripped on read. Structured sections format their own
// values through their codec.
//
// # Change Callbacks
//
// Each option may carry one OnChange callback. It fires exactly once per
// successful Set, after the new value is committed, and never on a
// validation failure. Reload drives the same Set path, so reloaded
// values fire callbacks too.
//
// # Reload
//
// Reload is two-phase: every structured section's codec is cleared, then
// the file is re-read top to bottom. A missing file reports ErrNotFound
// before any teardown. Scalar lines that fail validation are skipped
// with the prior value retained.
//
// # Errors
//
//   - ErrInvalidValue: value rejected by type or constraint (recoverable)
//   - ErrInvalidDefault, ErrDuplicateSection, ErrDuplicateOption:
//     startup-time construction errors
//   - ErrUnknownOption: dotted path names an undeclared option
//   - ErrNotFound: backing file does not exist
package config
