// Package app wires the configuration registry to the rest of the
// client: the option catalog, commands and default key bindings, the
// buffer list, the day-change scheduler, and the file watcher. It owns
// the event loop every mutation runs on.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/ncruces/go-strftime"
	"github.com/sirupsen/logrus"

	"github.com/parleychat/parley/internal/bar"
	"github.com/parleychat/parley/internal/buffer"
	"github.com/parleychat/parley/internal/clock"
	"github.com/parleychat/parley/internal/command"
	"github.com/parleychat/parley/internal/config"
	"github.com/parleychat/parley/internal/config/watcher"
	"github.com/parleychat/parley/internal/daychange"
	"github.com/parleychat/parley/internal/keymap"
)

// ErrAlreadyRunning is returned by Run when the event loop is active.
var ErrAlreadyRunning = errors.New("app: already running")

// coreBufferName is the buffer that exists for the whole session and
// receives startup output.
const coreBufferName = "core"

// Options configures the application.
type Options struct {
	// ConfigPath is the configuration file location. Required.
	ConfigPath string

	// Logger receives application logs. Defaults to the standard
	// logrus logger.
	Logger *logrus.Logger

	// Clock drives time-based behavior. Defaults to the real clock;
	// tests inject a fake.
	Clock clock.Clock

	// Watch starts the configuration file watcher inside Run, so
	// on-disk edits reload automatically.
	Watch bool

	// Version is shown by the startup version message.
	Version string
}

// App is the composition root. All mutation of the registry, the key
// table, the bar registry, and the buffer list happens on the Run
// goroutine; the watcher and the ticker only feed it channels.
type App struct {
	log *logrus.Logger
	clk clock.Clock

	cfg      *config.Config
	commands *command.Registry
	keys     *keymap.Table
	bars     *bar.Registry
	buffers  *buffer.List
	sched    *daychange.Scheduler
	watch    *watcher.Watcher

	version   string
	watchMode bool

	// Presentation state refreshed by option callbacks.
	prefixes map[PrefixKind]string
	redraws  int

	// Command history, bounded by history.max_commands.
	history []string

	// Option handles the runtime consults.
	optLogo               *config.Option
	optVersionMsg         *config.Option
	optStartupCommand     *config.Option
	optSaveOnExit         *config.Option
	optBufferTimeFormat   *config.Option
	optDayChange          *config.Option
	optDayChangeFormat    *config.Option
	optHistoryMaxLines    *config.Option
	optHistoryMaxCommands *config.Option
	prefixOpts            map[PrefixKind]*config.Option

	current int

	running     atomic.Bool
	quit        chan struct{}
	quitOnce    sync.Once
	skipReloads int
}

// New builds the application. The option catalog is declared here;
// current values stay at their defaults until Load reads the file.
func New(opts Options) (*App, error) {
	if opts.ConfigPath == "" {
		return nil, errors.New("app: config path required")
	}

	a := &App{
		log:        opts.Logger,
		clk:        opts.Clock,
		version:    opts.Version,
		watchMode:  opts.Watch,
		prefixes:   make(map[PrefixKind]string),
		prefixOpts: make(map[PrefixKind]*config.Option),
		quit:       make(chan struct{}),
	}
	if a.log == nil {
		a.log = logrus.StandardLogger()
	}
	if a.clk == nil {
		a.clk = clock.Real()
	}
	if a.version == "" {
		a.version = "dev"
	}

	// 1. Buffers. The core buffer outlives everything else.
	a.buffers = buffer.NewList()
	a.buffers.Open(coreBufferName, buffer.KindConversation)

	// 2. Commands.
	a.commands = command.NewRegistry()
	a.registerCommands()

	// 3. Key bindings resolve identifiers against the registry.
	a.keys = keymap.NewTable(a.commands)

	// 4. Bars.
	a.bars = bar.NewRegistry()

	// 5. Day-change scheduler. The fan-out set and the date format are
	// read at fire time, so option changes need no rearming.
	a.sched = daychange.New(a.clk, a.dayChangeTargets, a.dayChangeFormat)

	// 6. Option registry and catalog.
	a.cfg = config.New(opts.ConfigPath)
	a.cfg.SetLogger(a.log)
	a.declareOptions()
	a.refreshPrefixes()

	// 7. Built-in bars and key bindings. The file may override them.
	if err := a.bindDefaults(); err != nil {
		return nil, err
	}

	return a, nil
}

// Load reads the configuration file, writing one with the defaults
// when none exists, then brings dependent state in line with the
// loaded values and runs the startup sequence.
func (a *App) Load() error {
	err := a.cfg.Read()
	switch {
	case errors.Is(err, config.ErrNotFound):
		a.log.WithField("file", a.cfg.Path()).Info("no configuration file, writing defaults")
		if err := a.cfg.Save(); err != nil {
			return err
		}
	case err != nil:
		return err
	}

	// Defaults do not fire callbacks, so the first sync is explicit.
	a.refreshPrefixes()
	a.syncDayChange()

	a.startupOutput()
	return nil
}

// startupOutput prints the banner and version to the core buffer and
// runs the configured startup command.
func (a *App) startupOutput() {
	core := a.buffers.Get(coreBufferName)
	if a.optLogo.Bool() {
		for _, line := range logoLines {
			a.Print(core, line)
		}
	}
	if a.optVersionMsg.Bool() {
		a.Print(core, "parley "+a.version)
	}
	if cmd := a.optStartupCommand.String(); cmd != "" {
		if err := a.RunCommand(cmd); err != nil {
			a.log.WithError(err).WithField("command", cmd).Warn("startup command failed")
		}
	}
}

// Run executes the event loop until ctx is canceled or the quit
// command runs. It starts the file watcher when enabled.
func (a *App) Run(ctx context.Context) error {
	if !a.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer a.running.Store(false)

	var events <-chan watcher.Event
	if a.watchMode {
		w, err := watcher.New(a.cfg.Path(), watcher.WithLogger(a.log))
		if err != nil {
			return fmt.Errorf("start watcher: %w", err)
		}
		a.watch = w
		defer w.Close()
		events = w.Events()
	}

	a.log.WithField("config", a.cfg.Path()).Info("parley started")

	for {
		select {
		case <-ctx.Done():
			return a.shutdown()

		case <-a.quit:
			return a.shutdown()

		case ev := <-events:
			if a.skipReloads > 0 {
				a.skipReloads--
				continue
			}
			a.log.WithField("file", ev.Path).Info("configuration changed on disk")
			if err := a.cfg.Reload(); err != nil {
				a.log.WithError(err).Warn("reload failed")
			}

		case now := <-a.sched.Ticks():
			a.sched.Fire(now)
		}
	}
}

// shutdown runs once when the loop exits.
func (a *App) shutdown() error {
	a.sched.Disarm()
	if a.optSaveOnExit.Bool() {
		if err := a.cfg.Save(); err != nil {
			return fmt.Errorf("save on exit: %w", err)
		}
	}
	a.log.Info("parley stopped")
	return nil
}

// Quit asks the event loop to exit. Safe to call more than once.
func (a *App) Quit() {
	a.quitOnce.Do(func() {
		close(a.quit)
	})
}

// IsRunning reports whether the event loop is active.
func (a *App) IsRunning() bool {
	return a.running.Load()
}

// Set changes one option by dotted path, firing its callback.
func (a *App) Set(path, raw string) error {
	return a.cfg.Set(path, raw)
}

// RunCommand executes a command line: the first word resolves through
// the command registry, the rest passes as args. The line is recorded
// in the command history, bounded by history.max_commands.
func (a *App) RunCommand(text string) error {
	a.history = append(a.history, text)
	if max := a.optHistoryMaxCommands.Int(); max > 0 && len(a.history) > max {
		a.history = a.history[len(a.history)-max:]
	}
	name, args, _ := strings.Cut(text, " ")
	return a.commands.Execute(name, args)
}

// CommandHistory returns the recorded command lines, oldest first.
func (a *App) CommandHistory() []string {
	out := make([]string, len(a.history))
	copy(out, a.history)
	return out
}

// Print appends a timestamped line to b, using look.buffer_time_format
// for the stamp and trimming the buffer to history.max_lines.
func (a *App) Print(b *buffer.Buffer, text string) {
	now := a.clk.Now()
	stamp := strftime.Format(a.optBufferTimeFormat.String(), now)
	b.Append(now, stamp+" "+text)
	if max := a.optHistoryMaxLines.Int(); max > 0 {
		b.TrimFront(max)
	}
}

// CurrentBuffer returns the buffer navigation points at, or nil when
// none are open.
func (a *App) CurrentBuffer() *buffer.Buffer {
	all := a.buffers.All()
	if len(all) == 0 {
		return nil
	}
	if a.current >= len(all) {
		a.current = len(all) - 1
	}
	return all[a.current]
}

// Config returns the option registry.
func (a *App) Config() *config.Config {
	return a.cfg
}

// Commands returns the command registry.
func (a *App) Commands() *command.Registry {
	return a.commands
}

// Keys returns the key binding table.
func (a *App) Keys() *keymap.Table {
	return a.keys
}

// Bars returns the bar registry.
func (a *App) Bars() *bar.Registry {
	return a.bars
}

// Buffers returns the buffer list.
func (a *App) Buffers() *buffer.List {
	return a.buffers
}

// Scheduler returns the day-change scheduler.
func (a *App) Scheduler() *daychange.Scheduler {
	return a.sched
}

// Prefix returns the current decoration for one prefix kind.
func (a *App) Prefix(kind PrefixKind) string {
	return a.prefixes[kind]
}

// Redraws returns how many redraw requests option changes have issued.
func (a *App) Redraws() int {
	return a.redraws
}

var logoLines = []string{
	"                 _",
	" _ __   __ _ _ __| | ___ _   _",
	"| '_ \\ / _` | '__| |/ _ \\ | | |",
	"| |_) | (_| | |  | |  __/ |_| |",
	"| .__/ \\__,_|_|  |_|\\___|\\__, |",
	"|_|                      |___/",
}
