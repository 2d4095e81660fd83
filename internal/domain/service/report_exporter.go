package service

import "storeradar/internal/domain/entity"

// AssignmentReportRow is one line of an assignment export.
type AssignmentReportRow struct {
	AssignmentID int64
	Username     string
	FullName     string
	AssignedDate string // Jalali yyyy/MM/dd
	VisitDate    string
	Status       string
	Notes        string
	Store        entity.StoreView
}

// ReportExporter renders tabular reports.
type ReportExporter interface {
	// AssignmentsXLSX renders assignment rows as a spreadsheet.
	AssignmentsXLSX(rows []AssignmentReportRow) ([]byte, error)
}
