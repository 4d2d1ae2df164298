package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/rfialho/bizledger/cmd/tui/internal/view"
	"github.com/rfialho/bizledger/internal/company"
	companyStore "github.com/rfialho/bizledger/internal/company/store"
	"github.com/rfialho/bizledger/internal/config"
	"github.com/rfialho/bizledger/internal/database"
	"github.com/rfialho/bizledger/internal/industry"
	industryStore "github.com/rfialho/bizledger/internal/industry/store"
	"github.com/rfialho/bizledger/internal/invoice"
	invoiceStore "github.com/rfialho/bizledger/internal/invoice/store"
)

type model struct {
	companyService  *company.Service
	invoiceService  *invoice.Service
	industryService *industry.Service

	currentView View

	companiesView  view.CompaniesModel
	invoicesView   view.InvoicesModel
	industriesView view.IndustriesModel
}

type View int

const (
	ViewMenu       View = 0
	ViewCompanies  View = 1
	ViewInvoices   View = 2
	ViewIndustries View = 3
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	companySvc := company.NewService(companyStore.New(db))
	invoiceSvc := invoice.NewService(invoiceStore.New(db))
	industrySvc := industry.NewService(industryStore.New(db))

	return model{
		companyService:  companySvc,
		invoiceService:  invoiceSvc,
		industryService: industrySvc,
		currentView:     ViewMenu,
		companiesView:   view.NewCompaniesModel(companySvc),
		invoicesView:    view.NewInvoicesModel(invoiceSvc),
		industriesView:  view.NewIndustriesModel(industrySvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewCompanies
				m.companiesView = view.NewCompaniesModel(m.companyService)

				return m, m.companiesView.Init()
			case "2":
				m.currentView = ViewInvoices
				m.invoicesView = view.NewInvoicesModel(m.invoiceService)

				return m, m.invoicesView.Init()
			case "3":
				m.currentView = ViewIndustries
				m.industriesView = view.NewIndustriesModel(m.industryService)

				return m, m.industriesView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewCompanies:
		var newModel tea.Model
		newModel, cmd = m.companiesView.Update(msg)
		m.companiesView = newModel.(view.CompaniesModel)
	case ViewInvoices:
		var newModel tea.Model
		newModel, cmd = m.invoicesView.Update(msg)
		m.invoicesView = newModel.(view.InvoicesModel)
	case ViewIndustries:
		var newModel tea.Model
		newModel, cmd = m.industriesView.Update(msg)
		m.industriesView = newModel.(view.IndustriesModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"BizLedger TUI\n\n" +
				"1. Companies\n" +
				"2. Invoices\n" +
				"3. Industries\n\n" +
				"q. Quit",
		)
	case ViewCompanies:
		return m.companiesView.View()
	case ViewInvoices:
		return m.invoicesView.View()
	case ViewIndustries:
		return m.industriesView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
