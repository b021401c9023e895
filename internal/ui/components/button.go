package components

import (
	"github.com/abaqira/guidebook/internal/ui/theme"
)

// Button is a styled footer control. Disabled buttons render dimmed.
type Button struct {
	Label    string
	Key      string
	Disabled bool
}

// NewButton creates a new button bound to key.
func NewButton(label, key string, disabled bool) Button {
	return Button{
		Label:    label,
		Key:      key,
		Disabled: disabled,
	}
}

// View renders the button.
func (b Button) View() string {
	label := b.Label
	if b.Key != "" {
		label += " (" + b.Key + ")"
	}
	if b.Disabled {
		return theme.ButtonDisabled.Render(label)
	}
	return theme.ButtonActive.Render(label)
}
