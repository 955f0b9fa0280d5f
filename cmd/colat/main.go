package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"colat/internal/debug"
	"colat/internal/version"
	"colat/pkg/audio"
	"colat/pkg/color"
	"colat/pkg/common"
	"colat/pkg/config"
	"colat/pkg/nav"

	"github.com/spf13/cobra"
)

// maxRandom bounds -r so the color list stays a size a person can page through.
const maxRandom = 1 << 16

var (
	ErrNoColors        = errors.New("no colors provided")
	ErrBadRandomAmount = errors.New("random amount must be a positive integer")
	ErrTooManyRandom   = errors.New("too many random colors")
)

// session is everything a display backend needs once startup succeeded.
type session struct {
	ctrl   *nav.Controller
	keys   *common.KeyMap
	cfg    *config.Config
	logger *slog.Logger
}

// app carries the process-wide collaborators so tests can swap them.
type app struct {
	stdout  *os.File
	gen     *color.Generator
	display func(s *session) error
}

type flags struct {
	random      int
	backend     string
	configPath  string
	noLabel     bool
	bell        bool
	debug       bool
	showVersion bool
}

func newApp() *app {
	a := &app{
		stdout: os.Stdout,
		gen:    color.NewTimeSeededGenerator(),
	}
	a.display = a.runDisplay
	return a
}

func (a *app) rootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "colat [flags] [color...]",
		Short: "Show what hexadecimal colors actually look like",
		Long: `colat fills the terminal with each given color, one at a time.

Colors are written as RGB or RRGGBB hex digits, optionally prefixed with '#'.
Each color is printed to standard output when it is shown.

Keys:
  space, enter, →, j    next color
  backspace, ←, k       previous color
  ctrl+l                redraw
  ?                     toggle help
  q, esc                quit

Examples:
  colat '#1a2b3c' fff
  colat -r 5
  colat --backend tcell 000 '#ff0000'`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.showVersion {
				fmt.Fprintln(cmd.OutOrStdout(), version.Short())
				return nil
			}
			return a.run(cmd, args, f)
		},
	}

	cmd.Flags().IntVarP(&f.random, "random", "r", 0, "Add `amt` random 24-bit colors (at most 65536)")
	cmd.Flags().StringVarP(&f.backend, "backend", "b", config.BackendTea, "Display backend: tea or tcell (tcell prints colors on exit when stdout is the terminal)")
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Path to config.toml")
	cmd.Flags().BoolVar(&f.noLabel, "no-label", false, "Do not draw the color string on screen")
	cmd.Flags().BoolVar(&f.bell, "bell", false, "Beep when there is no next/previous color")
	cmd.Flags().BoolVar(&f.debug, "debug", false, "Write debug records to the log file")
	cmd.Flags().BoolVarP(&f.showVersion, "version", "v", false, "Show version information")

	return cmd
}

func (a *app) run(cmd *cobra.Command, args []string, f flags) error {
	cfg, err := loadConfig(f.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("backend") {
		cfg.UI.Backend = f.backend
	}
	if err := config.ValidateBackend(cfg.UI.Backend); err != nil {
		return err
	}
	if f.noLabel {
		cfg.UI.Label = false
	}
	if f.bell {
		cfg.UI.Bell = true
	}
	if f.debug {
		cfg.Log.Level = "debug"
	}

	inputs, err := collectColors(args, f.random, cmd.Flags().Changed("random"), a.gen)
	if err != nil {
		return err
	}
	list, err := color.NewList(inputs)
	if err != nil {
		return err
	}

	logger, closer := openLogger(cfg)
	if closer != nil {
		defer closer.Close()
	}
	logger.Info("colors loaded", "count", list.Len(), "backend", cfg.UI.Backend)

	keys := cfg.Keys.KeyMap()
	navOpts := []nav.Option{nav.WithLogger(logger)}
	if cfg.UI.Bell {
		bell := audio.NewBell(logger)
		defer bell.Close()
		navOpts = append(navOpts, nav.WithBoundaryHook(bell.Ring))
	}

	ctrl, err := nav.New(list, keys, navOpts...)
	if err != nil {
		return err
	}

	err = a.display(&session{ctrl: ctrl, keys: keys, cfg: cfg, logger: logger})
	if err != nil {
		logger.Error("session aborted", "error", err)
	}
	return err
}

// collectColors appends n random colors to the positional ones.
func collectColors(args []string, n int, randomSet bool, gen *color.Generator) ([]string, error) {
	if randomSet && n <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrBadRandomAmount, n)
	}
	if n > maxRandom {
		return nil, fmt.Errorf("%w: %d is more than %d", ErrTooManyRandom, n, maxRandom)
	}
	inputs := make([]string, 0, len(args)+n)
	inputs = append(inputs, args...)
	inputs = append(inputs, gen.Many(n)...)
	if len(inputs) == 0 {
		return nil, ErrNoColors
	}
	return inputs, nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadDefault()
}

// openLogger opens the debug log. A log that cannot be opened is not an
// error; records are dropped instead.
func openLogger(cfg *config.Config) (*slog.Logger, io.Closer) {
	path := cfg.Log.File
	if path == "" {
		if err := config.EnsureConfigDir(); err != nil {
			return debug.Discard(), nil
		}
		p, err := config.DefaultLogPath()
		if err != nil {
			return debug.Discard(), nil
		}
		path = p
	}
	logger, closer, err := debug.NewLogger(path, debug.ParseLevel(cfg.Log.Level), cfg.Log.MaxSizeMB)
	if err != nil {
		return debug.Discard(), nil
	}
	return logger, closer
}

func main() {
	cmd, err := newApp().rootCmd().ExecuteC()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", cmd.Name(), err)
		os.Exit(1)
	}
}
