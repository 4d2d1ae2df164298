package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/rfialho/bizledger/internal/company"
)

type companiesState int

const (
	companiesStateBrowse companiesState = iota
	companiesStateCreate
)

type CompaniesModel struct {
	CommonModel
	svc *company.Service

	state     companiesState
	table     table.Model
	companies []*company.Company
	form      *huh.Form

	loading bool
	err     error
	status  string

	formName string
	formDesc string
}

type loadCompaniesMsg struct {
	companies []*company.Company
	err       error
}

type companySaveMsg struct {
	code string
	err  error
}

func NewCompaniesModel(svc *company.Service) CompaniesModel {
	columns := []table.Column{
		{Title: "Code", Width: 22},
		{Title: "Name", Width: 28},
		{Title: "Description", Width: 46},
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

	return CompaniesModel{
		svc:   svc,
		table: t,
	}
}

func (m CompaniesModel) Title() string { return "Companies" }
func (m CompaniesModel) ShortHelp() string {
	if m.state == companiesStateCreate {
		return "Navigate form | Esc: cancel"
	}
	return "Esc: back | n: new | r: refresh"
}

func (m CompaniesModel) Init() tea.Cmd {
	return m.loadCompaniesCmd()
}

func (m CompaniesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadCompaniesMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.companies = msg.companies
		m.refreshTable()
		return m, nil

	case companySaveMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("Created company %s", msg.code)
		}
		m.state = companiesStateBrowse
		m.form = nil
		m.table.Focus()
		return m, m.loadCompaniesCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case companiesStateBrowse:
		return m.updateBrowse(msg)
	case companiesStateCreate:
		return m.updateCreate(msg)
	}

	return m, nil
}

func (m CompaniesModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCompaniesCmd()
		case "n":
			return m.enterCreateMode()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m CompaniesModel) enterCreateMode() (tea.Model, tea.Cmd) {
	m.formName = ""
	m.formDesc = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Name").
				Value(&m.formName).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("description").
				Title("Description").
				Value(&m.formDesc),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = companiesStateCreate
	m.table.Blur()
	return m, m.form.Init()
}

func (m CompaniesModel) updateCreate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = companiesStateBrowse
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

	return m, m.createCmd(m.formName, m.formDesc)
}

func (m CompaniesModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading companies...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render("Companies"),
		tableView,
	)

	if m.state == companiesStateCreate && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(fmt.Sprintf("New Company\n\n%s", m.form.View()))

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

func (m *CompaniesModel) refreshTable() {
	rows := make([]table.Row, len(m.companies))
	for i, c := range m.companies {
		rows[i] = table.Row{c.Code, c.Name, c.Description}
	}

	m.table.SetRows(rows)
}

func (m CompaniesModel) loadCompaniesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		companies, err := m.svc.List(ctx)
		return loadCompaniesMsg{companies: companies, err: err}
	}
}

func (m CompaniesModel) createCmd(name, description string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		c, err := m.svc.Create(ctx, company.CreateParams{
			Name:        name,
			Description: description,
		})
		if err != nil {
			return companySaveMsg{err: err}
		}

		return companySaveMsg{code: c.Code}
	}
}
