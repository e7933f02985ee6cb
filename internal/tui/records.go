package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/workers"
	"github.com/MKhiriev/go-pass-vault/models"
)

// RecordsModel is the stored-records browser: a cursor list over vault
// labels with reveal and copy on the selected entry.
type RecordsModel struct {
	vault    service.VaultService
	strength service.StrengthService
	sweeper  *workers.ClipboardSweeper

	records  []models.VaultRecord
	idx      int
	loading  bool
	revealed bool
	spinner  spinner.Model

	status string
	errMsg string
}

func NewRecordsModel(vaultSvc service.VaultService, strengthSvc service.StrengthService, sweeper *workers.ClipboardSweeper) *RecordsModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &RecordsModel{
		vault:    vaultSvc,
		strength: strengthSvc,
		sweeper:  sweeper,
		spinner:  s,
		loading:  true,
	}
}

func (m *RecordsModel) Init() tea.Cmd {
	m.loading = true
	m.revealed = false
	m.errMsg = ""
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *RecordsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case recordsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.records = msg.records
		if m.idx >= len(m.records) {
			m.idx = len(m.records) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.status = "Copied! Clipboard clears automatically."
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m *RecordsModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
	case "up", "k":
		if m.idx > 0 {
			m.idx--
			m.revealed = false
		}
	case "down", "j":
		if m.idx < len(m.records)-1 {
			m.idx++
			m.revealed = false
		}
	case "enter", "v":
		if _, ok := m.current(); ok {
			m.revealed = !m.revealed
		}
	case "c":
		record, ok := m.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdCopy(record.Password)
	case "r":
		return m, m.Init()
	}

	return m, nil
}

func (m *RecordsModel) current() (models.VaultRecord, bool) {
	if len(m.records) == 0 || m.idx < 0 || m.idx >= len(m.records) {
		return models.VaultRecord{}, false
	}
	return m.records[m.idx], true
}

func (m *RecordsModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + " Loading...\n")
	case len(m.records) == 0 && m.errMsg == "":
		b.WriteString("Vault is empty. Generate a password and add it.\n")
	default:
		for i, record := range m.records {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}

			password := maskPassword(record.Password)
			if i == m.idx && m.revealed {
				password = record.Password
			}

			b.WriteString(fmt.Sprintf("%s%-24s %s\n", cursor, fitText(record.Label, 24), password))
		}

		if record, ok := m.current(); ok && m.revealed {
			b.WriteString("\nStrength: ")
			b.WriteString(renderStrengthMeter(m.strength.Evaluate(record.Password)))
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\nOK: " + m.status)
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg))
	}

	hotKeys := "↑/↓: move │ enter/v: reveal │ c: copy │ r: reload │ esc: back"
	return renderPage("STORED RECORDS", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *RecordsModel) cmdLoad() tea.Cmd {
	vaultSvc := m.vault
	return func() tea.Msg {
		records, err := vaultSvc.List()
		return recordsLoadedMsg{records: records, err: err}
	}
}

func (m *RecordsModel) cmdCopy(password string) tea.Cmd {
	sweeper := m.sweeper
	return func() tea.Msg {
		return copiedMsg{err: sweeper.Copy(password)}
	}
}
