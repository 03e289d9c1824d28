// Package main provides the distrofetch command-line tool: it detects the
// running distribution and prints its logo next to a summary of the host.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"distrofetch/config"
	"distrofetch/distro"
	"distrofetch/info"
	"distrofetch/logging"
	"distrofetch/palette"
	"distrofetch/printer"
	"distrofetch/sysinfo"
	"distrofetch/termimage"
)

// collectFacts is replaced in tests.
var collectFacts = sysinfo.Collect

var errNotTerminal = errors.New("output is not a terminal")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit code:
// 0 on success, 1 on runtime failure, 2 on a usage error.
func run(args []string, stdout, stderr io.Writer) int {
	opts, err := config.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", config.AppName, err)
		fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", config.AppName)
		var usage *config.UsageError
		if errors.As(err, &usage) {
			return usage.ExitCode()
		}
		return 1
	}
	if opts.Help {
		fmt.Fprintf(stdout, "Usage: %s [flags]\n\n%s", config.AppName, opts.Usage)
		return 0
	}

	closer, err := logging.Setup(logging.Options{Level: opts.LogLevel, File: opts.LogFile, Console: stderr})
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", config.AppName, err)
		return 2
	}
	defer closer.Close()
	logger := logging.Get("main")
	if opts.ConfigFile != "" {
		logger.Debug().Str("path", opts.ConfigFile).Msg("config loaded")
	}

	catalog, err := distro.Builtin()
	if err != nil {
		logger.Error().Err(err).Msg("cannot load the distro catalog")
		return 1
	}

	if opts.ListDistros {
		if err := listDistros(stdout, catalog); err != nil {
			return 1
		}
		return 0
	}

	ctx, cancel := context.WithTimeout(context.Background(), sysinfo.DefaultTimeout)
	facts := collectFacts(ctx)
	cancel()

	mode := opts.ColorMode
	if termenv.NewOutput(stdout).EnvNoColor() {
		mode = palette.ModeNone
	}

	p := printer.New(mode).WithOutput(stdout).WithGap(opts.Gap)
	if opts.Color != nil {
		p.WithColor(*opts.Color)
	}

	name := opts.Distro
	if name == "" {
		name = facts.OS
	}
	record := catalog.Search(name)
	logger.Debug().Str("input", name).Str("distro", record.Name).Msg("classified")
	if opts.ShowLogo.Visible(terminalWidth(stdout)) {
		p.WithDistro(record)
	} else {
		p.WithDistroColor(record)
	}

	if opts.Image != "" {
		withImage(p, opts.Image, stdout)
	}

	p.WithInfo(
		info.User{User: facts.Username, Host: facts.Hostname, Uptime: facts.Uptime},
		info.Host{
			Distro:   facts.OS,
			Model:    facts.Model,
			Kernel:   facts.Kernel,
			Shell:    facts.Shell,
			Terminal: facts.Terminal,
		},
		info.System{
			CPU:      facts.CPU,
			Cores:    facts.Cores,
			Load:     facts.Load,
			MemUsed:  facts.MemUsed,
			MemTotal: facts.MemTotal,
		},
		info.Disks(facts.Disks, opts.BarWidth),
		info.Colors{},
	)

	if err := p.Render(); err != nil {
		logger.Error().Err(err).Msg("write failed")
		return 1
	}
	return 0
}

// withImage attaches the image at path when the terminal can show it.
// Any failure leaves the printer on the ascii art.
func withImage(p *printer.Printer, path string, stdout io.Writer) {
	logger := logging.Get("termimage")

	img, err := termimage.Open(path)
	if err != nil {
		logger.Warn().Err(err).Msg("cannot show image")
		return
	}
	backend, err := termimage.Detect(os.Getenv, isTerminal(stdout))
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("cannot show image")
		return
	}
	logger.Debug().Str("backend", backend.Name()).Msg("image backend selected")
	p.WithImage(img, backend)
}

func listDistros(w io.Writer, catalog *distro.Catalog) error {
	for _, r := range catalog.Records() {
		if _, err := fmt.Fprintf(w, "%-20s %s\n", r.Name, r.Pattern); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%-20s (default)\n", catalog.Default().Name)
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the column count of w.
func terminalWidth(w io.Writer) (int, error) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, errNotTerminal
	}
	width, _, err := term.GetSize(int(f.Fd()))
	return width, err
}
