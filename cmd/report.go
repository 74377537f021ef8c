package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/psds-microservice/office-manager/internal/database"
	"github.com/psds-microservice/office-manager/internal/service"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print dashboard metrics and the monthly report from the store",
	RunE:  runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := database.Open(cfg, log)
	if err != nil {
		return fmt.Errorf("db: %w", err)
	}
	defer database.Close(db)

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
	defer cancel()
	if err := database.Init(ctx, db, log); err != nil {
		return fmt.Errorf("db init: %w", err)
	}

	reports := service.NewReportService(
		service.NewTaskService(db),
		service.NewTicketService(db),
		service.NewLeadService(db),
	)
	return writeReport(ctx, cmd.OutOrStdout(), reports)
}

type reportOutput struct {
	Metrics *service.DashboardMetrics `json:"metrics"`
	Monthly *service.MonthlyReport    `json:"monthly"`
}

// writeReport fails with the not-found error on an empty store, like GET /reports/monthly.
func writeReport(ctx context.Context, w io.Writer, reports service.ReportServicer) error {
	m, err := reports.Metrics(ctx)
	if err != nil {
		return err
	}
	monthly, err := reports.Monthly(ctx)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(reportOutput{Metrics: m, Monthly: monthly})
}
