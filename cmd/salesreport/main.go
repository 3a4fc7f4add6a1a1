package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"salesreport/internal/catalogue"
	"salesreport/internal/config"
	"salesreport/internal/logging"
	"salesreport/internal/report"
	"salesreport/internal/sales"
	"salesreport/internal/version"
)

func main() {
	cfg, args, err := config.Load()
	if err != nil { // flag set already printed the problem
		os.Exit(2)
	}

	logger := logging.New(cfg.LogLevel)

	if len(args) != 2 {
		fmt.Println("Usage: salesreport <priceCatalogue.json> <salesRecord.json>")
		return
	}
	catalogueFile, salesFile := args[0], args[1]

	logger.Info("starting salesreport",
		slog.String("version", version.Value()),
		slog.String("catalogue", catalogueFile),
		slog.String("sales", salesFile),
	)

	start := time.Now()

	prices := catalogue.Load(catalogueFile, logger)
	sold := sales.Load(salesFile, logger)

	if prices.Len() == 0 || sold.Len() == 0 {
		fmt.Println("Exiting due to errors.")
		return
	}

	writer := report.NewWriter(os.Stdout, report.Columns{
		Product:  cfg.Report.ProductWidth,
		Quantity: cfg.Report.QuantityWidth,
		Cost:     cfg.Report.CostWidth,
	})
	total := writer.WriteBreakdown(prices, sold)

	elapsed := time.Since(start)

	writer.WriteTotal(total)

	if err := report.WriteSummary(cfg.ResultsPath, total, elapsed.Seconds()); err != nil {
		logger.Error("failed to write results file", slog.String("path", cfg.ResultsPath), slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("run complete",
		slog.Float64("totalCost", report.RoundCents(total)),
		slog.Int("products", sold.Len()),
		slog.Duration("elapsed", elapsed),
	)
}
