package report

import (
	"bytes"
	"testing"

	"storeradar/internal/domain/entity"
	"storeradar/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestXLSXExporter_AssignmentsXLSX(t *testing.T) {
	lat, lng := 35.7, 51.4
	rows := []service.AssignmentReportRow{
		{
			AssignmentID: 11,
			Username:     "agent1",
			FullName:     "Agent One",
			AssignedDate: "1403/10/12",
			Status:       "pending",
			Store: entity.StoreView{
				Token: "store_1", Name: "Shop", Address: "تهران، ونک", City: "تهران",
				Category: "Bakery", Lat: &lat, Lng: &lng,
			},
		},
		{AssignmentID: 12, Username: "agent2", Status: "completed", Store: entity.StoreView{Token: "store_2", Name: "نامشخص"}},
	}

	content, err := NewXLSXExporter().AssignmentsXLSX(rows)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{assignmentsSheet}, f.GetSheetList())

	got, err := f.GetRows(assignmentsSheet)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, assignmentHeaders, got[0])
	assert.Equal(t, "11", got[1][0])
	assert.Equal(t, "store_1", got[1][6])
	assert.Equal(t, "35.7", got[1][11])
	assert.Equal(t, "نامشخص", got[2][7])
}

func TestXLSXExporter_Empty(t *testing.T) {
	content, err := NewXLSXExporter().AssignmentsXLSX(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows(assignmentsSheet)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
