package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/models"
)

// NavigateTo switches the router to another page. Payload, when non-nil, is
// re-delivered to the target page as its first message.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// QuitRequested asks the router to shut the program down cleanly.
type QuitRequested struct{}

type generatedMsg struct {
	password string
	report   models.StrengthReport
	err      error
}

type recordsLoadedMsg struct {
	records []models.VaultRecord
	err     error
}

type recordSavedMsg struct {
	label string
	err   error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}

// cmdClearStatus wipes transient status lines a moment after they appear.
func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
