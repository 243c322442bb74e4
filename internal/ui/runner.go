package ui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"vhdlparser/internal/driver"
)

// ChannelSink forwards driver events to a channel.
type ChannelSink struct {
	Ch chan<- driver.Event
}

func (s ChannelSink) OnEvent(ev driver.Event) { s.Ch <- ev }

type parseOutcome struct {
	results []*driver.FileResult
	err     error
}

// RunParseFiles parses files with the progress view drawn on out. The view
// closes once the last file is done.
func RunParseFiles(ctx context.Context, out io.Writer, title string, files []string, opts driver.Options) ([]*driver.FileResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan parseOutcome, 1)

	go func() {
		o := opts
		o.Progress = ChannelSink{Ch: events}
		res, err := driver.ParseFiles(ctx, files, o)
		outcomeCh <- parseOutcome{results: res, err: err}
		close(events)
	}()

	model := NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(out), tea.WithContext(ctx))
	_, uiErr := program.Run()
	// the view may stop early (ctrl-c); keep draining so the parser can finish
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil && outcome.err == nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
