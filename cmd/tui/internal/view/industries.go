package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/rfialho/bizledger/internal/industry"
)

type industriesState int

const (
	industriesStateBrowse industriesState = iota
	industriesStateCreate
	industriesStateAssociate
)

type IndustriesModel struct {
	CommonModel
	svc *industry.Service

	state      industriesState
	table      table.Model
	industries []*industry.Industry
	form       *huh.Form

	loading bool
	err     error
	status  string

	formCode    string
	formField   string
	formCompany string
}

type loadIndustriesMsg struct {
	industries []*industry.Industry
	err        error
}

type industrySaveMsg struct {
	status string
	err    error
}

func NewIndustriesModel(svc *industry.Service) IndustriesModel {
	columns := []table.Column{
		{Title: "Code", Width: 14},
		{Title: "Field", Width: 26},
		{Title: "Companies", Width: 46},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return IndustriesModel{
		svc:   svc,
		table: t,
	}
}

func (m IndustriesModel) Title() string { return "Industries" }
func (m IndustriesModel) ShortHelp() string {
	if m.state != industriesStateBrowse {
		return "Navigate form | Esc: cancel"
	}
	return "Esc: back | n: new | a: associate company | r: refresh"
}

func (m IndustriesModel) Init() tea.Cmd {
	return m.loadIndustriesCmd()
}

func (m IndustriesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadIndustriesMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.industries = msg.industries
		m.refreshTable()
		return m, nil

	case industrySaveMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = msg.status
		}
		m.state = industriesStateBrowse
		m.form = nil
		m.table.Focus()
		return m, m.loadIndustriesCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	if m.state == industriesStateBrowse {
		return m.updateBrowse(msg)
	}

	return m.updateForm(msg)
}

func (m IndustriesModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadIndustriesCmd()
		case "n":
			return m.enterCreateMode()
		case "a":
			return m.enterAssociateMode()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m IndustriesModel) enterCreateMode() (tea.Model, tea.Cmd) {
	m.formCode = ""
	m.formField = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("code").
				Title("Code").
				Value(&m.formCode).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("code cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("field").
				Title("Field").
				Value(&m.formField),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = industriesStateCreate
	m.table.Blur()
	return m, m.form.Init()
}

func (m IndustriesModel) enterAssociateMode() (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.industries) {
		return m, nil
	}

	m.formCompany = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("company").
				Title("Company Name").
				Value(&m.formCompany).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("company name cannot be empty")
					}
					return nil
				}),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = industriesStateAssociate
	m.table.Blur()
	return m, m.form.Init()
}

func (m IndustriesModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = industriesStateBrowse
			m.form = nil
			m.table.Focus()
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if m.state == industriesStateCreate {
		return m, m.createCmd(m.formCode, m.formField)
	}

	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.industries) {
		m.state = industriesStateBrowse
		m.form = nil
		m.table.Focus()
		return m, nil
	}

	return m, m.associateCmd(m.industries[idx].Code, m.formCompany)
}

func (m IndustriesModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading industries...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render("Industries"),
		tableView,
	)

	if m.state != industriesStateBrowse && m.form != nil {
		title := "New Industry"
		if m.state == industriesStateAssociate {
			title = "Associate Company"
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(fmt.Sprintf("%s\n\n%s", title, m.form.View()))

		content = lipgloss.JoinVertical(lipgloss.Left, content, panel)
	}

	if m.status != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, content,
			lipgloss.NewStyle().PaddingTop(1).Render(m.status))
	}

	return lipgloss.NewStyle().Padding(1).Render(
		content + "\n\n" + m.ShortHelp(),
	)
}

func (m *IndustriesModel) refreshTable() {
	rows := make([]table.Row, len(m.industries))
	for i, ind := range m.industries {
		rows[i] = table.Row{ind.Code, ind.Field, strings.Join(ind.Companies, ", ")}
	}

	m.table.SetRows(rows)
}

func (m IndustriesModel) loadIndustriesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		industries, err := m.svc.List(ctx)
		return loadIndustriesMsg{industries: industries, err: err}
	}
}

func (m IndustriesModel) createCmd(code, field string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		ind, err := m.svc.Create(ctx, industry.CreateParams{Code: code, Field: field})
		if err != nil {
			return industrySaveMsg{err: err}
		}

		return industrySaveMsg{status: fmt.Sprintf("Created industry %s", ind.Code)}
	}
}

func (m IndustriesModel) associateCmd(indCode, companyName string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		assoc, err := m.svc.Associate(ctx, indCode, companyName)
		if err != nil {
			return industrySaveMsg{err: err}
		}

		return industrySaveMsg{status: fmt.Sprintf("Associated %s with %s",
			assoc.CompanyName, assoc.IndustryField)}
	}
}
