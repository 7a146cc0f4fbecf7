package ui

import (
	"context"

	"phonicsboard/internal/alphabet"
	"phonicsboard/internal/playback"
	"phonicsboard/internal/progress"

	tea "github.com/charmbracelet/bubbletea"
)

// notifyMsg carries a message posted from outside the Bubble Tea loop
// (timer goroutines) through the notify channel.
type notifyMsg struct {
	Msg tea.Msg
}

// playCmd runs one playback invocation off the update loop. Invocations
// may overlap; the player preempts the older one's sound.
func playCmd(ctx context.Context, p Player, e alphabet.Entry, flags playback.Flags) tea.Cmd {
	if p == nil {
		return nil
	}
	return func() tea.Msg {
		return PlaybackDoneMsg{Result: p.Play(ctx, e, flags)}
	}
}

// waitForProgress blocks until the next step event. A closed channel ends
// the subscription.
func waitForProgress(ch <-chan progress.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return progressMsg{Event: ev}
	}
}

// waitForNotify blocks until a message is posted to ch or ctx ends.
func waitForNotify(ctx context.Context, ch <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-ch:
			return notifyMsg{Msg: msg}
		case <-ctx.Done():
			return nil
		}
	}
}

// post delivers msg to the notify channel without blocking.
func post(ch chan<- tea.Msg, msg tea.Msg) {
	select {
	case ch <- msg:
	default:
	}
}
