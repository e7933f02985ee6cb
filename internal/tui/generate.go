package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/workers"
	"github.com/MKhiriev/go-pass-vault/models"
)

// GenerateModel is the password generator page: the user tunes the policy,
// generates candidates, and can copy one to the clipboard or store it in
// the vault under a label.
type GenerateModel struct {
	generator service.GeneratorService
	strength  service.StrengthService
	vault     service.VaultService
	sweeper   *workers.ClipboardSweeper

	policy   models.PasswordPolicy
	password string
	report   models.StrengthReport
	masked   bool

	labeling   bool
	labelInput textinput.Model

	status string
	errMsg string
}

func NewGenerateModel(generatorSvc service.GeneratorService, strengthSvc service.StrengthService, vaultSvc service.VaultService, sweeper *workers.ClipboardSweeper) *GenerateModel {
	labelInput := textinput.New()
	labelInput.Width = 40
	labelInput.Placeholder = "label, e.g. work-email"

	return &GenerateModel{
		generator:  generatorSvc,
		strength:   strengthSvc,
		vault:      vaultSvc,
		sweeper:    sweeper,
		policy:     generatorSvc.DefaultPolicy(),
		labelInput: labelInput,
	}
}

func (m *GenerateModel) Init() tea.Cmd {
	return m.cmdGenerate()
}

func (m *GenerateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case generatedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.password = msg.password
		m.report = msg.report
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.status = "Copied! Clipboard clears automatically."
		return m, cmdClearStatus()

	case recordSavedMsg:
		m.labeling = false
		m.labelInput.Blur()
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.labelInput.SetValue("")
		// Hand the confirmation to the menu page.
		return m, func() tea.Msg { return NavigateTo{Page: "menu", Payload: msg} }

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		if m.labeling {
			return m.updateLabeling(msg)
		}
		return m.updateBrowsing(msg)
	}

	return m, nil
}

func (m *GenerateModel) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
	case "enter", "g":
		return m, m.cmdGenerate()
	case "left", "-":
		if m.policy.Length > models.MinPasswordLength {
			m.policy.Length--
		}
	case "right", "+":
		if m.policy.Length < models.MaxPasswordLength {
			m.policy.Length++
		}
	case "u":
		m.policy.Upper = !m.policy.Upper
	case "l":
		m.policy.Lower = !m.policy.Lower
	case "d":
		m.policy.Digits = !m.policy.Digits
	case "s":
		m.policy.Symbols = !m.policy.Symbols
	case "v":
		m.masked = !m.masked
	case "c":
		if m.password == "" {
			return m, nil
		}
		return m, m.cmdCopy()
	case "a":
		if m.password == "" {
			return m, nil
		}
		m.labeling = true
		m.errMsg = ""
		return m, m.labelInput.Focus()
	}

	return m, nil
}

func (m *GenerateModel) updateLabeling(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.labeling = false
		m.labelInput.Blur()
		m.labelInput.SetValue("")
		return m, nil
	case "enter":
		label := strings.TrimSpace(m.labelInput.Value())
		if label == "" {
			m.errMsg = "Label must not be empty"
			return m, nil
		}
		return m, m.cmdSave(label)
	}

	var cmd tea.Cmd
	m.labelInput, cmd = m.labelInput.Update(msg)
	return m, cmd
}

func (m *GenerateModel) View() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Length: %d  (←/→ to adjust)\n", m.policy.Length))
	b.WriteString(fmt.Sprintf("%s upper   %s lower   %s digits   %s symbols\n\n",
		checkbox(m.policy.Upper), checkbox(m.policy.Lower), checkbox(m.policy.Digits), checkbox(m.policy.Symbols)))

	password := m.password
	if m.masked {
		password = maskPassword(password)
	}
	b.WriteString("Password: ")
	b.WriteString(titleStyle.Render(password))
	b.WriteString("\n")

	if m.password != "" {
		b.WriteString("Strength: ")
		b.WriteString(renderStrengthMeter(m.report))
		b.WriteString("\n")
		if m.report.CrackTime != "" {
			b.WriteString(helpStyle.Render("Crack time: " + m.report.CrackTime))
			b.WriteString("\n")
		}
		for _, warning := range m.report.Warnings {
			b.WriteString(errorStyle.Render("! " + warning))
			b.WriteString("\n")
		}
		for _, suggestion := range m.report.Suggestions {
			b.WriteString(helpStyle.Render("* " + suggestion))
			b.WriteString("\n")
		}
	}

	if m.labeling {
		b.WriteString("\nSave as: [")
		b.WriteString(m.labelInput.View())
		b.WriteString("]\n")
		b.WriteString(helpStyle.Render("enter: save │ esc: cancel"))
	}

	if m.status != "" {
		b.WriteString("\nOK: " + m.status)
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg))
	}

	hotKeys := "g/enter: generate │ u/l/d/s: classes │ c: copy │ a: add to vault │ v: show/hide │ esc: back"
	return renderPage("PASSWORD GENERATOR", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *GenerateModel) cmdGenerate() tea.Cmd {
	generatorSvc := m.generator
	strengthSvc := m.strength
	policy := m.policy
	return func() tea.Msg {
		password, err := generatorSvc.Generate(policy)
		if err != nil {
			return generatedMsg{err: err}
		}
		return generatedMsg{password: password, report: strengthSvc.Evaluate(password)}
	}
}

func (m *GenerateModel) cmdCopy() tea.Cmd {
	sweeper := m.sweeper
	password := m.password
	return func() tea.Msg {
		return copiedMsg{err: sweeper.Copy(password)}
	}
}

func (m *GenerateModel) cmdSave(label string) tea.Cmd {
	vaultSvc := m.vault
	password := m.password
	return func() tea.Msg {
		err := vaultSvc.Add(models.VaultRecord{Label: label, Password: password})
		return recordSavedMsg{label: label, err: err}
	}
}

func checkbox(enabled bool) string {
	if enabled {
		return "[x]"
	}
	return "[ ]"
}
