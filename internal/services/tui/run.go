package tui

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the terminal browser on in/out until the user quits or ctx ends.
func Run(ctx context.Context, reader CatalogReader, in io.Reader, out io.Writer) error {
	if reader == nil {
		return errors.New("catalog is required")
	}
	options := []tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}
	if in != nil {
		options = append(options, tea.WithInput(in))
	}
	if out != nil {
		options = append(options, tea.WithOutput(out))
	}
	_, err := tea.NewProgram(New(reader), options...).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
