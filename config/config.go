// Package config resolves the run options from built-in defaults, the TOML
// config file and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"distrofetch/palette"
)

// AppName names the config directory and the command.
const AppName = "distrofetch"

// AutoLogoWidth is the terminal width from which --show-logo=auto shows
// the art.
const AutoLogoWidth = 95

// Logo controls when the distro art is shown.
type Logo string

const (
	LogoAlways Logo = "always"
	LogoAuto   Logo = "auto"
	LogoNever  Logo = "never"
)

// Visible reports whether the art is shown for a terminal of the given
// width. A failed width query hides the art in auto mode.
func (l Logo) Visible(width int, err error) bool {
	switch l {
	case LogoNever:
		return false
	case LogoAuto:
		return err == nil && width >= AutoLogoWidth
	default:
		return true
	}
}

// UsageError reports a bad flag, config value or config file. The command
// exits with status 2.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// ExitCode is the process status for usage errors.
func (e *UsageError) ExitCode() int { return 2 }

func usagef(format string, args ...any) error {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}

// Options is the validated configuration of one run.
type Options struct {
	Image     string
	ShowLogo  Logo
	ColorMode palette.Mode
	// Color overrides the distro's main color when set.
	Color    *palette.Color
	Distro   string
	Gap      int
	BarWidth int
	LogLevel string
	LogFile  string

	ListDistros bool
	Help        bool
	// ConfigFile is the file that was loaded, or "" when none was found.
	ConfigFile string
	// Usage is the flag help text.
	Usage string
}

// settings mirrors the config file. Flags bind to the same fields so a flag
// given on the command line replaces the file value.
type settings struct {
	Image     string `toml:"image"`
	ShowLogo  string `toml:"show_logo"`
	ColorMode string `toml:"color_mode"`
	Color     string `toml:"color"`
	Distro    string `toml:"distro"`
	Gap       int    `toml:"gap"`
	BarWidth  int    `toml:"bar_width"`
	LogLevel  string `toml:"log_level"`
	LogFile   string `toml:"log_file"`

	config      string
	listDistros bool
	help        bool
}

func defaults() settings {
	return settings{
		ShowLogo:  string(LogoAlways),
		ColorMode: palette.ModeHex.String(),
		Gap:       2,
		BarWidth:  32,
		LogLevel:  zerolog.WarnLevel.String(),
	}
}

func flagSet(s *settings) *pflag.FlagSet {
	flags := pflag.NewFlagSet(AppName, pflag.ContinueOnError)
	flags.SortFlags = false
	flags.SetOutput(io.Discard)
	flags.StringVarP(&s.Image, "image", "i", s.Image, "image to show instead of the ascii art")
	flags.StringVar(&s.ShowLogo, "show-logo", s.ShowLogo, "when to show the logo: always, auto or never")
	flags.StringVar(&s.ColorMode, "color-mode", s.ColorMode, "color output: hex, ansi or none")
	flags.StringVar(&s.Color, "color", s.Color, "main color, e.g. blue, bright_red or #ff8800")
	flags.StringVar(&s.Distro, "distro", s.Distro, "show this distro instead of the detected one")
	flags.IntVar(&s.Gap, "gap", s.Gap, "number of spaces between logo and info")
	flags.IntVar(&s.BarWidth, "bar-width", s.BarWidth, "width of the disk bar in cells")
	flags.BoolVar(&s.listDistros, "list-distros", false, "list the known distros and exit")
	flags.StringVar(&s.config, "config", "", "config file (default $XDG_CONFIG_HOME/"+AppName+"/config.toml)")
	flags.StringVar(&s.LogLevel, "log-level", s.LogLevel, "log level: debug, info, warn or error")
	flags.StringVar(&s.LogFile, "log-file", s.LogFile, "also write logs to this file")
	flags.BoolVarP(&s.help, "help", "h", false, "show help")
	return flags
}

// DefaultPath is the config file looked up when --config is not given.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.toml")
}

// Parse resolves the options for args, which exclude the program name.
func Parse(args []string) (*Options, error) {
	first := defaults()
	flags := flagSet(&first)
	if err := flags.Parse(args); err != nil {
		return nil, &UsageError{Err: err}
	}
	if flags.NArg() > 0 {
		return nil, usagef("unexpected argument: %s", flags.Arg(0))
	}
	if first.help {
		return &Options{Help: true, Usage: flags.FlagUsages()}, nil
	}

	path, explicit := first.config, first.config != ""
	if !explicit {
		path = DefaultPath()
	}

	merged := defaults()
	loaded, err := load(path, &merged, explicit)
	if err != nil {
		return nil, err
	}

	// Parse again on top of the file values; only flags actually given
	// change anything.
	flags = flagSet(&merged)
	if err := flags.Parse(args); err != nil {
		return nil, &UsageError{Err: err}
	}

	opts, err := merged.validate()
	if err != nil {
		return nil, err
	}
	if loaded {
		opts.ConfigFile = path
	}
	opts.Usage = flags.FlagUsages()
	return opts, nil
}

// load decodes path into s. A missing default file is not an error.
func load(path string, s *settings, explicit bool) (bool, error) {
	md, err := toml.DecodeFile(path, s)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return false, nil
		}
		return false, usagef("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return false, usagef("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return true, nil
}

func (s settings) validate() (*Options, error) {
	opts := &Options{
		Image:       s.Image,
		Distro:      s.Distro,
		Gap:         s.Gap,
		BarWidth:    s.BarWidth,
		LogLevel:    s.LogLevel,
		LogFile:     s.LogFile,
		ListDistros: s.listDistros,
	}

	switch logo := Logo(strings.ToLower(s.ShowLogo)); logo {
	case LogoAlways, LogoAuto, LogoNever:
		opts.ShowLogo = logo
	default:
		return nil, usagef("invalid --show-logo %q (want always, auto or never)", s.ShowLogo)
	}

	mode, err := palette.ParseMode(s.ColorMode)
	if err != nil {
		return nil, &UsageError{Err: err}
	}
	opts.ColorMode = mode

	if s.Color != "" {
		c, err := palette.Parse(s.Color)
		if err != nil {
			return nil, usagef("invalid --color: %w", err)
		}
		opts.Color = &c
	}

	if s.Gap < 0 {
		return nil, usagef("invalid --gap %d (must not be negative)", s.Gap)
	}
	if s.BarWidth <= 0 {
		return nil, usagef("invalid --bar-width %d (must be positive)", s.BarWidth)
	}
	if _, err := zerolog.ParseLevel(s.LogLevel); err != nil {
		return nil, usagef("invalid --log-level %q", s.LogLevel)
	}
	return opts, nil
}
