// Package forms holds the overlay forms shown above the reel grid.
package forms

import tea "github.com/charmbracelet/bubbletea"

// Action represents what the form wants the parent to do.
type Action int

const (
	ActionContinue Action = iota // Keep the form open
	ActionClose                  // Close without submitting
	ActionSubmit                 // Close and act on the form's value
)

// Form is the interface overlay forms implement.
type Form interface {
	// HandleKey processes keyboard input.
	HandleKey(msg tea.KeyMsg) (Action, tea.Cmd)

	// Update processes other tea messages.
	Update(msg tea.Msg) tea.Cmd

	// RenderOverlay returns the form UI lines.
	RenderOverlay(width int) []string

	// Error returns the current validation message.
	Error() string
}
