package service

import (
	"context"
	"testing"

	"github.com/psds-microservice/office-manager/internal/model"
	"github.com/psds-microservice/office-manager/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestLeadService_ScoreStoredVerbatim(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewLeadService(db)
	ctx := context.Background()

	for _, score := range []float64{0, 12.5, 99.999, 1234567.25} {
		lead := &model.Lead{
			Name: "Dan", Email: "dan@example.com", Company: "Initech",
			Source: ReferralSource, DealSize: 5000, Score: score,
		}
		require.NoError(t, svc.Create(ctx, lead))

		var stored model.Lead
		require.NoError(t, db.First(&stored, lead.ID).Error)
		assert.Equal(t, score, stored.Score)
		assert.Equal(t, 5000.0, stored.DealSize)
	}
}

func TestLeadService_Extra(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewLeadService(db)
	ctx := context.Background()

	plain := &model.Lead{Name: "Eli", Email: "eli@example.com", Company: "Hooli", Source: "Website"}
	require.NoError(t, svc.Create(ctx, plain))
	assert.NotNil(t, plain.Extra)

	tagged := &model.Lead{
		Name: "Fay", Email: "fay@example.com", Company: "Umbrella", Source: "LinkedIn",
		Extra: datatypes.JSONMap{"region": "EMEA"},
	}
	require.NoError(t, svc.Create(ctx, tagged))

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Eli", items[0].Name)
	assert.Equal(t, "EMEA", items[1].Extra["region"])
}

func TestLeadScore(t *testing.T) {
	tests := []struct {
		dealSize float64
		source   string
		want     float64
	}{
		{5000, "Website", 45},
		{5000, "Referral", 55},
		{0, "Email", 40},
		{1500, "Referral", 51.5},
		{2500, "referral", 42.5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LeadScore(tt.dealSize, tt.source), "deal=%v source=%s", tt.dealSize, tt.source)
	}
}
