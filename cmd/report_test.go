package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/psds-microservice/office-manager/internal/errs"
	"github.com/psds-microservice/office-manager/internal/model"
	"github.com/psds-microservice/office-manager/internal/service"
	"github.com/psds-microservice/office-manager/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReport(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	tasks := service.NewTaskService(db)
	tickets := service.NewTicketService(db)
	reports := service.NewReportService(tasks, tickets, service.NewLeadService(db))

	var buf bytes.Buffer
	err := writeReport(ctx, &buf, reports)
	require.ErrorIs(t, err, errs.ErrNoReportData)
	assert.Zero(t, buf.Len())

	require.NoError(t, tasks.Create(ctx, &model.Task{Title: "a", Owner: "b", DueDate: "2026-10-20"}))
	require.NoError(t, tickets.Create(ctx, &model.Ticket{Customer: "c", Issue: "d"}))

	require.NoError(t, writeReport(ctx, &buf, reports))
	var out reportOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, int64(1), out.Metrics.TasksCompleted)
	assert.Equal(t, int64(44), out.Metrics.Productivity)
	assert.Equal(t, service.MonthlySummary, out.Monthly.Summary)
}

func TestRootCommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["api"])
	assert.True(t, names["migrate"])
	assert.True(t, names["report"])
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
}
