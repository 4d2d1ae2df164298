package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/rfialho/bizledger/internal/company"
	companyStore "github.com/rfialho/bizledger/internal/company/store"
	"github.com/rfialho/bizledger/internal/config"
	"github.com/rfialho/bizledger/internal/database"
	bizHttp "github.com/rfialho/bizledger/internal/http"
	companyHandler "github.com/rfialho/bizledger/internal/http/company"
	industryHandler "github.com/rfialho/bizledger/internal/http/industry"
	invoiceHandler "github.com/rfialho/bizledger/internal/http/invoice"
	"github.com/rfialho/bizledger/internal/industry"
	industryStore "github.com/rfialho/bizledger/internal/industry/store"
	"github.com/rfialho/bizledger/internal/invoice"
	invoiceStore "github.com/rfialho/bizledger/internal/invoice/store"
)

func main() {
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
	defer db.Close()

	var (
		companyService  = company.NewService(companyStore.New(db))
		invoiceService  = invoice.NewService(invoiceStore.New(db))
		industryService = industry.NewService(industryStore.New(db))
	)

	var (
		companyH  = companyHandler.NewHandler(companyService)
		invoiceH  = invoiceHandler.NewHandler(invoiceService)
		industryH = industryHandler.NewHandler(industryService)
	)

	router := bizHttp.New(companyH, invoiceH, industryH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
