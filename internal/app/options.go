package app

import (
	"math"

	"github.com/parleychat/parley/internal/config"
	"github.com/parleychat/parley/internal/daychange"
)

// declareOptions builds the option catalog. Declaration failures are
// programming errors, so the Must variants are used throughout.
func (a *App) declareOptions() {
	startup := a.cfg.MustSection("startup", nil)
	a.optLogo = startup.MustOption(config.OptionSpec{
		Name:        "logo",
		Type:        config.TypeBoolean,
		Description: "display the banner at startup",
		Default:     "on",
	})
	a.optVersionMsg = startup.MustOption(config.OptionSpec{
		Name:        "version_msg",
		Type:        config.TypeBoolean,
		Description: "display the version at startup",
		Default:     "on",
	})
	a.optStartupCommand = startup.MustOption(config.OptionSpec{
		Name:        "command_after_plugins",
		Type:        config.TypeString,
		Description: "command run once startup finishes",
		Default:     "",
	})

	look := a.cfg.MustSection("look", nil)
	a.optSaveOnExit = look.MustOption(config.OptionSpec{
		Name:        "save_on_exit",
		Type:        config.TypeBoolean,
		Description: "save the configuration when exiting",
		Default:     "on",
	})
	look.MustOption(config.OptionSpec{
		Name:        "scroll_amount",
		Type:        config.TypeInteger,
		Description: "lines scrolled per page movement",
		Min:         1,
		Max:         math.MaxInt,
		Default:     "3",
	})
	a.optBufferTimeFormat = look.MustOption(config.OptionSpec{
		Name:        "buffer_time_format",
		Type:        config.TypeString,
		Description: "strftime format for line timestamps",
		Default:     "[%H:%M:%S]",
	})
	a.optDayChange = look.MustOption(config.OptionSpec{
		Name:        "day_change",
		Type:        config.TypeBoolean,
		Description: "announce date changes in open conversations",
		Default:     "on",
		OnChange:    a.syncDayChange,
	})
	a.optDayChangeFormat = look.MustOption(config.OptionSpec{
		Name:        "day_change_time_format",
		Type:        config.TypeString,
		Description: "strftime format for the date change notice",
		Default:     "%a, %d %b %Y",
	})
	look.MustOption(config.OptionSpec{
		Name:        "nicklist_position",
		Type:        config.TypeEnum,
		Description: "where the nick list is drawn",
		Labels:      []string{"left", "right", "top", "bottom"},
		Default:     "right",
		OnChange:    a.requestRedraw,
	})
	look.MustOption(config.OptionSpec{
		Name:        "prefix_align",
		Type:        config.TypeEnum,
		Description: "alignment of line prefixes",
		Labels:      []string{"none", "left", "right"},
		Default:     "right",
		OnChange:    a.requestRedraw,
	})
	look.MustOption(config.OptionSpec{
		Name:        "read_marker",
		Type:        config.TypeString,
		Description: "character drawn on the read marker line",
		Max:         1,
		Default:     "-",
		OnChange:    a.requestRedraw,
	})
	a.declarePrefixOptions(look)

	colors := a.cfg.MustSection("colors", nil)
	for _, c := range []struct {
		name string
		def  string
		desc string
	}{
		{"separator", "blue", "window separator"},
		{"title_fg", "default", "title bar text"},
		{"title_bg", "blue", "title bar background"},
		{"chat_fg", "default", "chat text"},
		{"chat_bg", "default", "chat background"},
		{"status_fg", "default", "status bar text"},
		{"status_bg", "blue", "status bar background"},
		{"nick_self", "white", "own nick"},
	} {
		colors.MustOption(config.OptionSpec{
			Name:        c.name,
			Type:        config.TypeColor,
			Description: c.desc,
			Default:     c.def,
			OnChange:    a.requestRedraw,
		})
	}

	history := a.cfg.MustSection("history", nil)
	a.optHistoryMaxLines = history.MustOption(config.OptionSpec{
		Name:        "max_lines",
		Type:        config.TypeInteger,
		Description: "lines kept per buffer, 0 for no limit",
		Min:         0,
		Max:         math.MaxInt,
		Default:     "4096",
	})
	a.optHistoryMaxCommands = history.MustOption(config.OptionSpec{
		Name:        "max_commands",
		Type:        config.TypeInteger,
		Description: "command lines kept in history, 0 for no limit",
		Min:         0,
		Max:         math.MaxInt,
		Default:     "100",
	})

	proxy := a.cfg.MustSection("proxy", nil)
	proxy.MustOption(config.OptionSpec{
		Name:        "use",
		Type:        config.TypeBoolean,
		Description: "connect through a proxy",
		Default:     "off",
	})
	proxy.MustOption(config.OptionSpec{
		Name:        "type",
		Type:        config.TypeEnum,
		Description: "proxy protocol",
		Labels:      []string{"http", "socks4", "socks5"},
		Default:     "http",
	})
	proxy.MustOption(config.OptionSpec{
		Name:        "address",
		Type:        config.TypeString,
		Description: "proxy host name or address",
		Default:     "",
	})
	proxy.MustOption(config.OptionSpec{
		Name:        "port",
		Type:        config.TypeInteger,
		Description: "proxy port",
		Min:         0,
		Max:         65535,
		Default:     "3128",
	})
	proxy.MustOption(config.OptionSpec{
		Name:        "username",
		Type:        config.TypeString,
		Description: "proxy user name",
		Default:     "",
	})
	proxy.MustOption(config.OptionSpec{
		Name:        "password",
		Type:        config.TypeString,
		Description: "proxy password",
		Default:     "",
	})

	plugins := a.cfg.MustSection("plugins", nil)
	plugins.MustOption(config.OptionSpec{
		Name:        "path",
		Type:        config.TypeString,
		Description: "directory searched for plugins, %h is the home",
		Default:     "%h/plugins",
	})
	plugins.MustOption(config.OptionSpec{
		Name:        "autoload",
		Type:        config.TypeString,
		Description: "comma-separated list of plugins to load, * for all",
		Default:     "*",
	})
	plugins.MustOption(config.OptionSpec{
		Name:        "extension",
		Type:        config.TypeString,
		Description: "file extension of loadable plugins",
		Default:     ".so",
	})

	a.cfg.MustSection("bars", a.bars)
	a.cfg.MustSection("keys", a.keys)
}

// declarePrefixOptions declares the six prefix strings and hooks each
// one to the live prefix map.
func (a *App) declarePrefixOptions(look *config.Section) {
	for _, p := range []struct {
		kind PrefixKind
		name string
		def  string
	}{
		{PrefixInfo, "prefix_info", "-=-"},
		{PrefixError, "prefix_error", "=!="},
		{PrefixNetwork, "prefix_network", "--"},
		{PrefixAction, "prefix_action", "*"},
		{PrefixJoin, "prefix_join", "-->"},
		{PrefixQuit, "prefix_quit", "<--"},
	} {
		p := p // pin per iteration: the go directive is below 1.22
		a.prefixOpts[p.kind] = look.MustOption(config.OptionSpec{
			Name:        p.name,
			Type:        config.TypeString,
			Description: "prefix for " + p.kind.String() + " lines",
			Default:     p.def,
			OnChange:    func() { a.refreshPrefix(p.kind) },
		})
	}
}

// syncDayChange arms or disarms the scheduler to match the option. It
// runs as the look.day_change callback and once after Load.
func (a *App) syncDayChange() {
	if a.optDayChange.Bool() {
		a.sched.Arm()
	} else {
		a.sched.Disarm()
	}
}

// dayChangeTargets yields the open conversations.
func (a *App) dayChangeTargets() []daychange.Target {
	convs := a.buffers.Conversations()
	targets := make([]daychange.Target, len(convs))
	for i, b := range convs {
		targets[i] = b
	}
	return targets
}

// dayChangeFormat yields the configured notice date format.
func (a *App) dayChangeFormat() string {
	return a.optDayChangeFormat.String()
}

// requestRedraw notes that presentation state changed. Rendering is
// out of scope, so requests are only counted.
func (a *App) requestRedraw() {
	a.redraws++
}
