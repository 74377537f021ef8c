package service

import (
	"context"
	"testing"

	"github.com/psds-microservice/office-manager/internal/model"
	"github.com/psds-microservice/office-manager/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskService_Create(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewTaskService(db)
	ctx := context.Background()

	t.Run("default priority and status", func(t *testing.T) {
		task := &model.Task{Title: "Payroll", Owner: "Ava", DueDate: "2026-11-01"}
		require.NoError(t, svc.Create(ctx, task))

		var stored model.Task
		require.NoError(t, db.First(&stored, task.ID).Error)
		assert.Equal(t, model.DefaultTaskPriority, stored.Priority)
		assert.Equal(t, model.TaskStatusPending, stored.Status)
	})

	t.Run("explicit priority kept", func(t *testing.T) {
		task := &model.Task{Title: "Audit", Owner: "Ben", DueDate: "2026-12-01", Priority: "High"}
		require.NoError(t, svc.Create(ctx, task))

		var stored model.Task
		require.NoError(t, db.First(&stored, task.ID).Error)
		assert.Equal(t, "High", stored.Priority)
	})
}

func TestTaskService_ListAndCount(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewTaskService(db)
	ctx := context.Background()

	n, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	for _, title := range []string{"one", "two", "three"} {
		require.NoError(t, svc.Create(ctx, &model.Task{Title: title, Owner: "Cara", DueDate: "2026-10-20"}))
	}

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "one", items[0].Title)
	assert.Equal(t, "three", items[2].Title)

	n, err = svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
