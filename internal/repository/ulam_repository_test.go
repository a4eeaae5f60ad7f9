package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "kainan/internal/errors"
	"kainan/internal/model"
)

func seedUlams(t *testing.T) UlamRepository {
	t.Helper()
	repo := NewUlamRepository(newTestStore(t))
	fifty := decimal.NewFromInt(50)
	sixtyFive := decimal.NewFromInt(65)
	require.NoError(t, repo.ReplaceAll(context.Background(), []model.Ulam{
		{ID: 1, Name: "Beef Caldereta", Stall: 1},
		{ID: 2, Name: "Chicken Adobo", Stall: 1, UlamOnlyPrice: &fifty, WithRicePrice: &sixtyFive},
	}))
	return repo
}

func TestUlamFindByIDToleratesNumericForms(t *testing.T) {
	repo := seedUlams(t)
	ctx := context.Background()

	// "2" is what both a JSON number 2 and the string "2" normalize to
	got, err := repo.FindByID(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Chicken Adobo", got.Name)

	_, err = repo.FindByID(ctx, "99")
	assert.ErrorIs(t, err, apperrors.ErrUlamNotFound)
}

func TestUlamListReturnsAllRecords(t *testing.T) {
	repo := seedUlams(t)

	ulams, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, ulams, 2)
	assert.Equal(t, int64(1), ulams[0].ID)
	assert.Nil(t, ulams[0].UlamOnlyPrice)
	require.NotNil(t, ulams[1].WithRicePrice)
	assert.True(t, ulams[1].WithRicePrice.Equal(decimal.NewFromInt(65)))
}
