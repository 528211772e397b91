package domain

import (
	"context"
	"fmt"
	"time"
)

// XLSXContentType is the media type of exported reports.
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// DateRange is an inclusive period of transaction dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func (r DateRange) Validate() error {
	if r.Start.After(r.End) {
		return ErrInvalidDateRange
	}
	return nil
}

// Filters returns list filters restricted to the range.
func (r DateRange) Filters() *TransactionFilters {
	start, end := r.Start, r.End
	return &TransactionFilters{StartDate: &start, EndDate: &end}
}

// ReportFilename encodes the range literally, e.g. Report_2025-01-01_to_2025-02-01.xlsx.
func ReportFilename(r DateRange) string {
	return fmt.Sprintf("Report_%s_to_%s.xlsx", r.Start.Format("2006-01-02"), r.End.Format("2006-01-02"))
}

// ReportSummary is the JSON rendition of a report period.
type ReportSummary struct {
	StartDate        time.Time  `json:"startDate"`
	EndDate          time.Time  `json:"endDate"`
	TransactionCount int        `json:"transactionCount"`
	Totals           TotalsView `json:"totals"`
	ByCategory       []GroupRow `json:"byCategory"`
	ByConcept        []GroupRow `json:"byConcept"`
}

// ReportFile is a generated spreadsheet ready for download.
type ReportFile struct {
	Filename    string
	ContentType string
	Content     []byte
	ArchiveKey  string
}

// ReportArchive keeps a copy of exported reports.
type ReportArchive interface {
	Store(ctx context.Context, userID int32, filename string, content []byte) (string, error)
}
