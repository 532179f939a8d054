// Package tui provides the Bubble Tea integration for the catcher. It owns
// the terminal loop, input mapping, tick pacing, cue playback, and the
// end-of-session report screen.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// pauseTickRate is the coarse poll rate while the session is paused. The
// simulation is frozen, so the loop only needs to notice the unpause key.
const pauseTickRate = 10

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
