package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"colat/pkg/config"
	"colat/pkg/gui/screen"
	"colat/pkg/gui/viewer"
	"colat/pkg/nav"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

func (a *app) runDisplay(s *session) error {
	switch s.cfg.UI.Backend {
	case config.BackendTcell:
		return a.runTcell(s)
	default:
		return a.runTea(s)
	}
}

// runTea drives the bubbletea viewer. When stdout is the terminal the
// viewer runs inline and prints each color above itself; otherwise it
// draws on /dev/tty in the alternate screen and writes colors to stdout.
func (a *app) runTea(s *session) error {
	opts := viewer.Options{
		Title:  s.cfg.UI.Title,
		Label:  s.cfg.UI.Label,
		Logger: s.logger,
	}
	var progOpts []tea.ProgramOption

	if isTerminal(a.stdout) {
		opts.Renderer = lipgloss.NewRenderer(a.stdout)
		progOpts = append(progOpts, tea.WithOutput(a.stdout))
	} else {
		tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
		if err != nil {
			return fmt.Errorf("opening terminal: %w", err)
		}
		defer tty.Close()
		opts.Echo = a.stdout
		opts.Renderer = lipgloss.NewRenderer(tty)
		progOpts = append(progOpts, tea.WithOutput(tty), tea.WithAltScreen())
	}

	p := tea.NewProgram(viewer.New(s.ctrl, s.keys, opts), progOpts...)
	stop := notifyClose(func() { p.Send(viewer.CloseMsg{}) })
	defer stop()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running viewer: %w", err)
	}
	return nil
}

// runTcell drives the tcell screen through nav.Run. tcell owns the
// terminal, so when stdout is that terminal the echoed colors are held
// back until the screen has been released.
func (a *app) runTcell(s *session) error {
	scr, err := screen.Open(screen.Options{
		Title:  s.cfg.UI.Title,
		Label:  s.cfg.UI.Label,
		Keys:   s.keys,
		Logger: s.logger,
	})
	if err != nil {
		return err
	}

	var held bytes.Buffer
	echo := io.Writer(a.stdout)
	if isTerminal(a.stdout) {
		echo = &held
	}

	stop := notifyClose(scr.RequestClose)
	defer stop()

	runErr := func() error {
		defer scr.Close()
		return nav.Run(s.ctrl, scr, scr, echo)
	}()

	if held.Len() > 0 {
		if _, err := held.WriteTo(a.stdout); err != nil && runErr == nil {
			runErr = fmt.Errorf("echo colors: %w", err)
		}
	}
	return runErr
}

// notifyClose calls fn when the process is asked to terminate.
func notifyClose(fn func()) (stop func()) {
	sigs := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigs, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		select {
		case <-sigs:
			fn()
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigs)
		close(done)
	}
}

func isTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}
