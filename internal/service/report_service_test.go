package service

import (
	"context"
	"testing"

	"github.com/psds-microservice/office-manager/internal/errs"
	"github.com/psds-microservice/office-manager/internal/model"
	"github.com/psds-microservice/office-manager/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeMetrics(t *testing.T) {
	m := ComputeMetrics(Counts{Tasks: 3, Tickets: 2, Leads: 1})
	assert.Equal(t, int64(3), m.TasksCompleted)
	assert.Equal(t, int64(2), m.Tickets)
	assert.Equal(t, int64(1), m.Leads)
	assert.Equal(t, int64(52), m.Productivity)
	assert.Equal(t, int64(12700), m.CostSaving)

	capped := ComputeMetrics(Counts{Tasks: 16})
	assert.Equal(t, int64(100), capped.Productivity)
	assert.Equal(t, int64(12000), capped.CostSaving)

	atCap := ComputeMetrics(Counts{Tasks: 15})
	assert.Equal(t, int64(100), atCap.Productivity)
}

func newReportService(t *testing.T) (*ReportService, *TaskService, *TicketService, *LeadService) {
	db := testutil.NewDB(t)
	tasks := NewTaskService(db)
	tickets := NewTicketService(db)
	leads := NewLeadService(db)
	return NewReportService(tasks, tickets, leads), tasks, tickets, leads
}

func TestReportService_Metrics(t *testing.T) {
	svc, tasks, tickets, leads := newReportService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, tasks.Create(ctx, &model.Task{Title: "t", Owner: "o", DueDate: "2026-10-30"}))
	}
	for i := 0; i < 2; i++ {
		require.NoError(t, tickets.Create(ctx, &model.Ticket{Customer: "c", Issue: "i"}))
	}
	require.NoError(t, leads.Create(ctx, &model.Lead{Name: "n", Email: "e", Company: "c", Source: "Website"}))

	m, err := svc.Metrics(ctx)
	require.NoError(t, err)
	assert.Equal(t, &DashboardMetrics{TasksCompleted: 3, Tickets: 2, Leads: 1, Productivity: 52, CostSaving: 12700}, m)
}

func TestReportService_Monthly(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store", func(t *testing.T) {
		svc, _, _, _ := newReportService(t)
		_, err := svc.Monthly(ctx)
		assert.ErrorIs(t, err, errs.ErrNoReportData)
		assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	})

	seeders := map[string]func(*TaskService, *TicketService, *LeadService) error{
		"task only": func(tasks *TaskService, _ *TicketService, _ *LeadService) error {
			return tasks.Create(ctx, &model.Task{Title: "t", Owner: "o", DueDate: "d"})
		},
		"ticket only": func(_ *TaskService, tickets *TicketService, _ *LeadService) error {
			return tickets.Create(ctx, &model.Ticket{Customer: "c", Issue: "i"})
		},
		"lead only": func(_ *TaskService, _ *TicketService, leads *LeadService) error {
			return leads.Create(ctx, &model.Lead{Name: "n", Email: "e", Company: "c", Source: "s"})
		},
	}
	for name, seed := range seeders {
		t.Run(name, func(t *testing.T) {
			svc, tasks, tickets, leads := newReportService(t)
			require.NoError(t, seed(tasks, tickets, leads))

			r, err := svc.Monthly(ctx)
			require.NoError(t, err)
			assert.Equal(t, MonthlySummary, r.Summary)
			assert.Equal(t, []string{
				"Average response time reduced by 35%",
				"HR workflow completion improved by 22%",
				"Lead conversion probability increased by 18%",
			}, r.Insights)
		})
	}
}
