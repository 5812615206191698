package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mobiusklein/soa-derive/derive"
	"github.com/mobiusklein/soa-derive/emit"
	"github.com/mobiusklein/soa-derive/record"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	capStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelectRecord modelState = iota
	stateShowFamily
)

type inspectModel struct {
	cfg      *soagenConfig
	err      error
	records  []string
	filter   textinput.Model
	selected int
	state    modelState
	result   *derive.Result
	written  string
}

type loadedMsg struct {
	err     error
	records []string
}

type familyMsg struct {
	err    error
	result *derive.Result
}

func newInspectModel(cfg *soagenConfig) *inspectModel {
	ti := textinput.New()
	ti.Placeholder = "filter records"
	ti.Prompt = "/ "
	ti.Width = 30
	ti.Focus()

	return &inspectModel{
		cfg:    cfg,
		filter: ti,
		state:  stateSelectRecord,
	}
}

func (m *inspectModel) Init() tea.Cmd {
	return m.loadRecords
}

func (m *inspectModel) loadRecords() tea.Msg {
	src, err := os.ReadFile(m.cfg.Source)
	if err != nil {
		return loadedMsg{err: err}
	}
	records, err := record.FindDerivable(src)
	if err != nil {
		return loadedMsg{err: err}
	}
	if len(records) == 0 {
		return loadedMsg{err: fmt.Errorf("%s: no annotated record types", m.cfg.Source)}
	}
	return loadedMsg{records: records}
}

func (m *inspectModel) visible() []string {
	needle := strings.ToLower(m.filter.Value())
	if needle == "" {
		return m.records
	}
	var out []string
	for _, r := range m.records {
		if strings.Contains(strings.ToLower(r), needle) {
			out = append(out, r)
		}
	}
	return out
}

func (m *inspectModel) generateSelected() tea.Cmd {
	visible := m.visible()
	if m.selected >= len(visible) {
		return nil
	}
	name := visible[m.selected]
	return func() tea.Msg {
		res, err := derive.File(m.cfg.Source, name, derive.Options{
			Package: m.cfg.Package,
			Runtime: m.cfg.Runtime,
		})
		return familyMsg{err: err, result: res}
	}
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up":
			if m.state == stateSelectRecord && m.selected > 0 {
				m.selected--
			}

		case "down":
			if m.state == stateSelectRecord && m.selected < len(m.visible())-1 {
				m.selected++
			}

		case "enter":
			if m.state == stateSelectRecord {
				return m, m.generateSelected()
			}

		case "w":
			if m.state == stateShowFamily && m.result != nil {
				name := strings.ToLower(m.result.Plan.Record.Name) + "_soa.go"
				if err := os.WriteFile(name, m.result.Source, 0o644); err != nil {
					m.err = err
				} else {
					m.written = name
				}
			}

		case "esc":
			if m.state == stateShowFamily {
				m.state = stateSelectRecord
				m.result = nil
				m.written = ""
				m.err = nil
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.records = msg.records

	case familyMsg:
		m.err = msg.err
		m.result = msg.result
		if msg.err == nil {
			m.state = stateShowFamily
		}
	}

	if m.state == stateSelectRecord {
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		if m.selected >= len(m.visible()) {
			m.selected = 0
		}
		return m, cmd
	}

	return m, nil
}

func (m *inspectModel) View() string {
	if m.err != nil && m.state == stateSelectRecord {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if len(m.records) == 0 {
		return "Scanning source..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("soagen"))
	b.WriteString(" ")
	b.WriteString(m.cfg.Source)
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectRecord:
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
		for i, r := range m.visible() {
			line := "  " + r
			if i == m.selected {
				line = selectedStyle.Render("> " + r)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter inspect • q quit"))

	case stateShowFamily:
		p := m.result.Plan
		b.WriteString(fmt.Sprintf("Record %s, %d columns:\n\n", typeStyle.Render(p.Record.Name), p.NumColumns()))
		for _, c := range p.Columns {
			b.WriteString(fmt.Sprintf("  %-16s []%s\n", c.Column, typeStyle.Render(c.Type.Name)))
		}

		b.WriteString("\nGenerated family:\n\n")
		for _, d := range m.result.Descriptors {
			caps := ""
			if d.Caps != 0 {
				caps = " " + capStyle.Render(d.Caps.String())
			}
			marker := ""
			if d.Marker {
				marker = " [plain]"
			}
			borrow := ""
			if d.Borrow != emit.BorrowNone {
				borrow = fmt.Sprintf(" (%s borrow)", d.Borrow)
			}
			b.WriteString(fmt.Sprintf("  %-28s %s%s%s%s\n", d.Name, typeStyle.Render(d.Kind.String()), borrow, caps, marker))
		}

		if m.err != nil {
			b.WriteString("\n")
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		}
		if m.written != "" {
			b.WriteString("\n")
			b.WriteString(capStyle.Render("wrote " + m.written))
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("w write file • esc back • q quit"))
	}

	return b.String()
}

func runInteractive(cfg *soagenConfig) error {
	p := tea.NewProgram(newInspectModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
