package view

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rfialho/bizledger/internal/invoice"
)

type InvoicesModel struct {
	CommonModel
	svc *invoice.Service

	table    table.Model
	invoices []*invoice.Invoice

	loading bool
	err     error
	status  string
}

type loadInvoicesMsg struct {
	invoices []*invoice.Invoice
	err      error
}

type invoicePaidMsg struct {
	inv *invoice.Invoice
	err error
}

func NewInvoicesModel(svc *invoice.Service) InvoicesModel {
	columns := []table.Column{
		{Title: "ID", Width: 8},
		{Title: "Company", Width: 30},
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

	return InvoicesModel{
		svc:   svc,
		table: t,
	}
}

func (m InvoicesModel) Title() string { return "Invoices" }
func (m InvoicesModel) ShortHelp() string {
	return "Esc: back | p: mark paid | r: refresh"
}

func (m InvoicesModel) Init() tea.Cmd {
	return m.loadInvoicesCmd()
}

func (m InvoicesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadInvoicesMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.invoices = msg.invoices
		m.refreshTable()
		return m, nil

	case invoicePaidMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error marking paid: %v", msg.err)
			return m, nil
		}
		m.status = fmt.Sprintf("Invoice %d paid %s (%s)",
			msg.inv.ID, FormatAmount(msg.inv.Amt), FormatDate(*msg.inv.PaidDate))
		return m, m.loadInvoicesCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadInvoicesCmd()
		case "p":
			idx := m.table.Cursor()
			if idx >= 0 && idx < len(m.invoices) {
				return m, m.markPaidCmd(m.invoices[idx].ID)
			}
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m InvoicesModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading invoices...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render("Invoices"),
		tableView,
	)

	if m.status != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, content,
			lipgloss.NewStyle().PaddingTop(1).Render(m.status))
	}

	return lipgloss.NewStyle().Padding(1).Render(
		content + "\n\n" + m.ShortHelp(),
	)
}

func (m *InvoicesModel) refreshTable() {
	rows := make([]table.Row, len(m.invoices))
	for i, inv := range m.invoices {
		rows[i] = table.Row{strconv.FormatInt(inv.ID, 10), inv.CompCode}
	}

	m.table.SetRows(rows)
}

func (m InvoicesModel) loadInvoicesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		invoices, err := m.svc.List(ctx)
		return loadInvoicesMsg{invoices: invoices, err: err}
	}
}

// markPaidCmd loads the invoice for its current amount, then applies a paid
// update, which stamps a fresh paid_date.
func (m InvoicesModel) markPaidCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		current, err := m.svc.Get(ctx, id)
		if err != nil {
			return invoicePaidMsg{err: err}
		}

		inv, err := m.svc.Update(ctx, id, invoice.UpdateParams{
			Amt:  current.Amt,
			Paid: true,
		})
		if err != nil {
			return invoicePaidMsg{err: err}
		}

		return invoicePaidMsg{inv: inv}
	}
}
