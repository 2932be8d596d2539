package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/listdemo/internal/core/state"
	"github.com/colonyops/listdemo/internal/tui"
)

// ErrNotTerminal is returned when the demo is started without an
// interactive terminal on stdin and stdout.
var ErrNotTerminal = errors.New("stdin and stdout must be a terminal")

type TuiCmd struct {
	flags *Flags

	// terminal checks and sizes, replaceable in tests
	isTerminal func(fd int) bool
	getSize    func(fd int) (int, int, error)
	runProgram func(m tui.Model, opts ...tea.ProgramOption) (tea.Model, error)
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{
		flags:      flags,
		isTerminal: term.IsTerminal,
		getSize:    term.GetSize,
		runProgram: func(m tui.Model, opts ...tea.ProgramOption) (tea.Model, error) {
			return tea.NewProgram(m, opts...).Run()
		},
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	inFd, outFd := int(os.Stdin.Fd()), int(os.Stdout.Fd())
	if !cmd.isTerminal(inFd) || !cmd.isTerminal(outFd) {
		return ErrNotTerminal
	}

	// The first WindowSizeMsg replaces this; it only avoids drawing the
	// first frame at the fallback size.
	width, height, err := cmd.getSize(outFd)
	if err != nil {
		log.Debug().Err(err).Msg("terminal size unavailable")
		width, height = 0, 0
	}

	st := state.New()
	m := tui.New(st, tui.Opts{Width: width, Height: height})

	theme := ""
	if cmd.flags.Config != nil {
		theme = cmd.flags.Config.Theme
	}

	log.Info().
		Str("theme", theme).
		Int("width", width).
		Int("height", height).
		Int("items", len(st.Items)).
		Msg("starting tui")

	// The program owns the terminal: it enters the alternate screen on start
	// and restores the original mode on every return, panics included.
	if _, err := cmd.runProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	log.Info().
		Uint8("counter", st.Counter).
		Int("items", len(st.Items)).
		Msg("tui exited")

	return nil
}
