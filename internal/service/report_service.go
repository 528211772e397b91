package service

import (
	"context"
	"fmt"
	"time"

	"github.com/finanzas-app/finanzas-backend/internal/domain"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the exported workbook
const (
	SheetTransactions    = "Transactions"
	SheetCategorySummary = "Category Summary"
	SheetGeneralSummary  = "General Summary"
)

// ReportDateLayout is the day/month/year format of the Date column
const ReportDateLayout = "02/01/2006"

// ReportService builds period reports from the caller's transactions
type ReportService struct {
	transactionRepo domain.TransactionRepository
	references      *ReferenceService
	archive         domain.ReportArchive
}

// NewReportService creates a new ReportService
func NewReportService(transactionRepo domain.TransactionRepository, references *ReferenceService) *ReportService {
	return &ReportService{
		transactionRepo: transactionRepo,
		references:      references,
	}
}

// SetArchive enables uploading a copy of every export
func (s *ReportService) SetArchive(archive domain.ReportArchive) {
	s.archive = archive
}

func (s *ReportService) load(ctx context.Context, userID int32, period domain.DateRange) ([]*domain.Transaction, error) {
	if err := period.Validate(); err != nil {
		return nil, err
	}
	txs, err := s.transactionRepo.List(ctx, userID, period.Filters())
	if err != nil {
		log.Error().Err(err).Int32("user_id", userID).Msg("Failed to load report transactions")
		return []*domain.Transaction{}, nil
	}
	return txs, nil
}

// Summary returns the aggregation of the period as JSON-ready rows
func (s *ReportService) Summary(ctx context.Context, userID int32, start, end time.Time) (*domain.ReportSummary, error) {
	txs, err := s.load(ctx, userID, domain.DateRange{Start: start, End: end})
	if err != nil {
		return nil, err
	}

	agg := domain.Aggregate(txs)
	categoryNames, conceptNames := s.references.Names(ctx)

	return &domain.ReportSummary{
		StartDate:        start,
		EndDate:          end,
		TransactionCount: agg.Count,
		Totals:           agg.Totals.View(),
		ByCategory:       agg.CategoryRows(categoryNames),
		ByConcept:        agg.ConceptRows(conceptNames),
	}, nil
}

// Export renders the period into a three-sheet workbook.
// An empty period returns domain.ErrNothingToExport.
func (s *ReportService) Export(ctx context.Context, userID int32, start, end time.Time) (*domain.ReportFile, error) {
	period := domain.DateRange{Start: start, End: end}
	txs, err := s.load(ctx, userID, period)
	if err != nil {
		return nil, err
	}
	if len(txs) == 0 {
		return nil, domain.ErrNothingToExport
	}

	categoryNames, conceptNames := s.references.Names(ctx)
	content, err := BuildWorkbook(txs, categoryNames, conceptNames)
	if err != nil {
		log.Error().Err(err).Int32("user_id", userID).Msg("Failed to build report workbook")
		return nil, err
	}

	report := &domain.ReportFile{
		Filename:    domain.ReportFilename(period),
		ContentType: domain.XLSXContentType,
		Content:     content,
	}

	if s.archive != nil {
		key, err := s.archive.Store(ctx, userID, report.Filename, content)
		if err != nil {
			log.Warn().Err(err).Int32("user_id", userID).Str("filename", report.Filename).Msg("Failed to archive report")
		} else {
			report.ArchiveKey = key
		}
	}

	log.Info().Int32("user_id", userID).Int("transactions", len(txs)).Str("filename", report.Filename).Msg("Report exported")
	return report, nil
}

// BuildWorkbook writes the Transactions, Category Summary and General Summary
// sheets. Amounts are written in currency units.
func BuildWorkbook(txs []*domain.Transaction, categoryNames, conceptNames map[int32]string) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Debug().Err(err).Msg("Failed to close workbook")
		}
	}()

	if err := f.SetSheetName("Sheet1", SheetTransactions); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	for _, name := range []string{SheetCategorySummary, SheetGeneralSummary} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("create sheet %q: %w", name, err)
		}
	}

	rows := make([][]interface{}, 0, len(txs)+1)
	rows = append(rows, []interface{}{"Date", "Type", "Category", "Concept", "Content", "Amount", "Comment"})
	for _, tx := range txs {
		comment := ""
		if tx.Comment != nil {
			comment = *tx.Comment
		}
		rows = append(rows, []interface{}{
			tx.Date.UTC().Format(ReportDateLayout),
			string(tx.Type),
			domain.DisplayName(categoryNames, tx.CategoryID),
			domain.DisplayName(conceptNames, tx.ConceptID),
			tx.Content,
			currency(tx.Amount),
			comment,
		})
	}
	if err := writeRows(f, SheetTransactions, rows); err != nil {
		return nil, err
	}

	agg := domain.Aggregate(txs)

	categoryRows := agg.CategoryRows(categoryNames)
	rows = make([][]interface{}, 0, len(categoryRows)+1)
	rows = append(rows, []interface{}{"Category", "Income", "Expense", "Net"})
	for _, row := range categoryRows {
		rows = append(rows, []interface{}{
			row.Name,
			currency(row.Totals.Ingreso),
			currency(row.Totals.Egreso),
			currency(row.Totals.Net()),
		})
	}
	if err := writeRows(f, SheetCategorySummary, rows); err != nil {
		return nil, err
	}

	rows = [][]interface{}{
		{"Concept", "Amount"},
		{"Total Income", currency(agg.Totals.Ingreso)},
		{"Total Expense", currency(agg.Totals.Egreso)},
		{"Net", currency(agg.Totals.Net())},
	}
	if err := writeRows(f, SheetGeneralSummary, rows); err != nil {
		return nil, err
	}

	f.SetActiveSheet(0)
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func currency(cents int64) float64 {
	return domain.CentsToDecimal(cents).InexactFloat64()
}
