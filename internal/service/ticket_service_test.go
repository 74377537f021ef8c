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

func TestTicketService_Create(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewTicketService(db)
	ctx := context.Background()

	t.Run("defaults status and category", func(t *testing.T) {
		tk := &model.Ticket{Customer: "Acme", Issue: "Invoice missing"}
		require.NoError(t, svc.Create(ctx, tk))

		assert.NotZero(t, tk.ID)
		assert.Equal(t, model.TicketStatusOpen, tk.Status)
		assert.Equal(t, model.DefaultTicketCategory, tk.Category)
		assert.False(t, tk.CreatedAt.IsZero())
	})

	t.Run("ids strictly increase", func(t *testing.T) {
		var last uint64
		for i := 0; i < 5; i++ {
			tk := &model.Ticket{Customer: "Globex", Issue: "Login fails", Category: "Technical"}
			require.NoError(t, svc.Create(ctx, tk))
			assert.Greater(t, tk.ID, last)
			assert.Equal(t, model.TicketStatusOpen, tk.Status)
			last = tk.ID
		}
	})
}

func TestTicketService_ListNewestFirst(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewTicketService(db)
	ctx := context.Background()

	t1 := &model.Ticket{Customer: "First", Issue: "a"}
	t2 := &model.Ticket{Customer: "Second", Issue: "b"}
	require.NoError(t, svc.Create(ctx, t1))
	require.NoError(t, svc.Create(ctx, t2))

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, t2.ID, items[0].ID)
	assert.Equal(t, t1.ID, items[1].ID)

	// Restartable: a later call sees new rows.
	require.NoError(t, svc.Create(ctx, &model.Ticket{Customer: "Third", Issue: "c"}))
	items, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, "Third", items[0].Customer)
}

func TestTicketService_StorageError(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewTicketService(db)
	testutil.CloseDB(t, db)

	err := svc.Create(context.Background(), &model.Ticket{Customer: "Acme", Issue: "down"})
	require.Error(t, err)
	assert.Equal(t, errs.KindStorage, errs.KindOf(err))

	_, err = svc.List(context.Background())
	assert.Equal(t, errs.KindStorage, errs.KindOf(err))

	_, err = svc.Count(context.Background())
	assert.Equal(t, errs.KindStorage, errs.KindOf(err))
}
