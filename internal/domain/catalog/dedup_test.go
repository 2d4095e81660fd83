package catalog

import (
	"testing"

	"storeradar/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDedupByPosition(t *testing.T) {
	stores := []*entity.Store{
		{ID: 1, Name: strPtr("Acme"), Lat: floatPtr(35.7), Lng: floatPtr(51.4)},
		{ID: 2, Name: strPtr("Acme"), Lat: floatPtr(35.7), Lng: floatPtr(51.4)},
		{ID: 3, Name: strPtr("Other"), Lat: floatPtr(35.7), Lng: floatPtr(51.4)},
		{ID: 4, Name: strPtr("Acme"), Lat: floatPtr(35.8), Lng: floatPtr(51.4)},
		{ID: 5, Name: strPtr("No coords")},
	}

	got := DedupByPosition(stores)

	require.Len(t, got, 3)
	assert.Equal(t, []int64{1, 3, 4}, []int64{got[0].ID, got[1].ID, got[2].ID})

	again := DedupByPosition(got)
	assert.Equal(t, got, again)
}

func TestDedupByToken(t *testing.T) {
	rows := []entity.AssignmentRow{
		{Assignment: entity.Assignment{ID: 1, StoreToken: "a"}},
		{Assignment: entity.Assignment{ID: 2, StoreToken: "b"}},
		{Assignment: entity.Assignment{ID: 3, StoreToken: "a"}},
	}

	got := DedupByToken(rows)

	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].Assignment.ID)
	assert.Equal(t, int64(2), got[1].Assignment.ID)
}
