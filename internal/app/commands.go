package app

import (
	"fmt"

	"github.com/parleychat/parley/internal/bar"
	"github.com/parleychat/parley/internal/keymap"
)

// registerCommands installs the built-in command set. Key bindings and
// the startup command resolve against these identifiers.
func (a *App) registerCommands() {
	a.commands.MustRegister("buffer_next", a.cmdBufferNext)
	a.commands.MustRegister("buffer_previous", a.cmdBufferPrevious)
	a.commands.MustRegister("buffer_clear", a.cmdBufferClear)
	a.commands.MustRegister("config_save", a.cmdConfigSave)
	a.commands.MustRegister("config_reload", a.cmdConfigReload)
	a.commands.MustRegister("redraw", a.cmdRedraw)
	a.commands.MustRegister("quit", a.cmdQuit)
}

// bindDefaults seeds the bar registry and the key table the way a
// fresh install looks. Read overrides them from the file afterwards.
func (a *App) bindDefaults() error {
	defaults := []struct {
		name      string
		typ       bar.Type
		pos       bar.Position
		size      int
		separator bool
		items     string
	}{
		{"title", bar.TypeRoot, bar.PositionTop, 1, false, "buffer_title"},
		{"status", bar.TypeRoot, bar.PositionBottom, 1, false, "[time],buffer_name,hotlist"},
		{"nicklist", bar.TypeWindow, bar.PositionRight, 0, true, "buffer_nicklist"},
	}
	for _, d := range defaults {
		if _, err := a.bars.Add(d.name, d.typ, d.pos, d.size, d.separator, d.items); err != nil {
			return fmt.Errorf("default bar %s: %w", d.name, err)
		}
	}

	for _, d := range []struct{ key, command string }{
		{"ctrl-l", "redraw"},
		{"ctrl-n", "buffer_next"},
		{"ctrl-p", "buffer_previous"},
		{"meta2-15~", "buffer_previous"},
		{"meta2-17~", "buffer_next"},
	} {
		a.keys.Bind(keymap.InternalCode(d.key), d.command)
	}
	return nil
}

func (a *App) cmdBufferNext(_ string) {
	count := a.buffers.Count()
	if count == 0 {
		return
	}
	a.current = (a.current + 1) % count
}

func (a *App) cmdBufferPrevious(_ string) {
	count := a.buffers.Count()
	if count == 0 {
		return
	}
	if a.current >= count {
		a.current = count - 1
	}
	a.current = (a.current - 1 + count) % count
}

func (a *App) cmdBufferClear(args string) {
	if args == "" {
		if b := a.CurrentBuffer(); b != nil {
			b.ClearLines()
		}
		return
	}
	b := a.buffers.Get(args)
	if b == nil {
		a.log.WithField("buffer", args).Debug("clear: no such buffer")
		return
	}
	b.ClearLines()
}

func (a *App) cmdConfigSave(_ string) {
	if err := a.cfg.Save(); err != nil {
		a.log.WithError(err).Error("save failed")
		return
	}
	// Our own write lands in the watcher; reloading it back would be
	// pointless, so the next event is swallowed.
	if a.watch != nil {
		a.skipReloads++
	}
}

func (a *App) cmdConfigReload(_ string) {
	if err := a.cfg.Reload(); err != nil {
		a.log.WithError(err).Warn("reload failed")
	}
}

func (a *App) cmdRedraw(_ string) {
	a.requestRedraw()
}

func (a *App) cmdQuit(_ string) {
	a.Quit()
}
