// Package report renders exports with excelize.
package report

import (
	"storeradar/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const assignmentsSheet = "Assignments"

var assignmentHeaders = []string{
	"ID", "Username", "Full name", "Assigned date", "Visit date", "Status",
	"Store token", "Store name", "Address", "City", "Category", "Latitude", "Longitude", "Notes",
}

type xlsxExporter struct{}

// NewXLSXExporter creates the spreadsheet exporter.
func NewXLSXExporter() service.ReportExporter {
	return &xlsxExporter{}
}

// AssignmentsXLSX writes one sheet with a header row and one row per assignment.
func (e *xlsxExporter) AssignmentsXLSX(rows []service.AssignmentReportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), assignmentsSheet); err != nil {
		return nil, errors.Wrap(err, "failed to name sheet")
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create header style")
	}

	for col, header := range assignmentHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(assignmentsSheet, cell, header); err != nil {
			return nil, errors.WithStack(err)
		}
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(assignmentHeaders), 1)
	if err := f.SetCellStyle(assignmentsSheet, "A1", lastHeader, headerStyle); err != nil {
		return nil, errors.WithStack(err)
	}

	for i, row := range rows {
		values := []any{
			row.AssignmentID, row.Username, row.FullName, row.AssignedDate, row.VisitDate, row.Status,
			row.Store.Token, row.Store.Name, row.Store.Address, row.Store.City, row.Store.Category,
			optionalFloat(row.Store.Lat), optionalFloat(row.Store.Lng), row.Notes,
		}

		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(assignmentsSheet, cell, &values); err != nil {
			return nil, errors.Wrapf(err, "failed to write row %d", i+2)
		}
	}

	if err := f.SetColWidth(assignmentsSheet, "B", "N", 18); err != nil {
		return nil, errors.WithStack(err)
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "failed to render workbook")
	}

	return buffer.Bytes(), nil
}

func optionalFloat(v *float64) any {
	if v == nil {
		return ""
	}

	return *v
}
