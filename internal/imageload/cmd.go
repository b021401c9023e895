package imageload

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
)

const loadTimeout = 5 * time.Second

// LoadedMsg reports that Src loaded for the card identified by Key.
type LoadedMsg struct {
	Key string
	Src string
}

// FailedMsg reports that Src failed to load for the card identified by Key.
type FailedMsg struct {
	Key string
	Src string
	Err error
}

// LoadCmd loads src asynchronously and reports the result as a message.
// Consumers compare Src with the card's current source to drop stale results.
func LoadCmd(l Loader, key, src string) tea.Cmd {
	return func() tea.Msg {
		if l == nil || src == "" {
			return FailedMsg{Key: key, Src: src}
		}
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		if err := l.Load(ctx, src); err != nil {
			return FailedMsg{Key: key, Src: src, Err: err}
		}
		return LoadedMsg{Key: key, Src: src}
	}
}
