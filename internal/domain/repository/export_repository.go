package repository

import (
	"github.com/fparmentier/az-billing-synthesis-go/internal/domain/entity"
)

// ExportRepository writes synthesis artifacts and optional reports.
type ExportRepository interface {
	// WriteSynthesis writes the synthesis rows as a comma-separated file
	// at path, with the column set of the given frequency plus one column
	// per configured tag key.
	WriteSynthesis(path string, frequency entity.Frequency, tagKeys []string, rows []entity.SynthesisRow) error

	// Run report exports, one file per format.
	ExportRunReportToCSV(report entity.RunReport, filename, outputDir string) (string, error)
	ExportRunReportToJSON(report entity.RunReport, filename, outputDir string) (string, error)
	ExportRunReportToPDF(report entity.RunReport, filename, outputDir string) (string, error)

	// Retail price exports.
	ExportPricesToCSV(prices []entity.RetailPrice, filename, outputDir string) (string, error)
	ExportPricesToJSON(prices []entity.RetailPrice, filename, outputDir string) (string, error)
}
