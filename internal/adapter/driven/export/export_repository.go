package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fparmentier/az-billing-synthesis-go/internal/domain/entity"
	"github.com/fparmentier/az-billing-synthesis-go/internal/domain/repository"
	"github.com/jung-kurt/gofpdf"
)

// ExportRepositoryImpl implements the ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository creates a new ExportRepository implementation.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// --- Synthesis file ---

// WriteSynthesis writes the synthesis rows as a comma-separated file. The
// monthly frequency carries the dimensional columns, one column per tag
// key and Total_Cost; the daily frequency carries the Date column and the
// per-row Cost instead.
func (r *ExportRepositoryImpl) WriteSynthesis(path string, frequency entity.Frequency, tagKeys []string, rows []entity.SynthesisRow) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating synthesis file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(synthesisHeader(frequency, tagKeys)); err != nil {
		return fmt.Errorf("error writing synthesis header: %w", err)
	}
	for i := range rows {
		if err := writer.Write(synthesisRecord(&rows[i], frequency)); err != nil {
			return fmt.Errorf("error writing synthesis record: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func synthesisHeader(frequency entity.Frequency, tagKeys []string) []string {
	var header []string
	if frequency == entity.FrequencyMonthly {
		header = append(header, entity.DimensionColumns...)
	} else {
		header = append(header, entity.DailyColumns...)
	}
	header = append(header, tagKeys...)
	if frequency == entity.FrequencyMonthly {
		header = append(header, "Total_Cost")
	}
	return header
}

func synthesisRecord(row *entity.SynthesisRow, frequency entity.Frequency) []string {
	it := &row.Item
	var record []string
	if frequency == entity.FrequencyMonthly {
		record = []string{
			it.BillingAccountID, it.BillingPeriodEndDate, it.BillingProfileID,
			it.AccountOwnerID, it.AccountName, it.SubscriptionName,
			it.MeterCategory, it.MeterSubCategory, it.MeterName,
			formatAmount(it.UnitPrice), it.ResourceLocation,
			it.ConsumedService, it.ResourceName, it.AdditionalInfo,
			it.CostCenter, it.ResourceGroup, it.ReservationID,
			it.ReservationName, it.ProductOrderID, it.ProductOrderName,
			it.Term, it.ChargeType, formatAmount(it.PayGPrice),
			it.PricingModel, it.BenefitName,
		}
	} else {
		record = []string{
			it.BillingAccountID, it.BillingProfileID, it.AccountOwnerID,
			it.AccountName, it.SubscriptionName, it.Date,
			it.MeterCategory, it.MeterSubCategory, it.MeterName,
			formatAmount(it.Cost), formatAmount(it.UnitPrice),
			it.ResourceLocation, it.ConsumedService, it.ResourceName,
			it.AdditionalInfo, it.CostCenter, it.ResourceGroup,
			it.ReservationID, it.ReservationName, it.ProductOrderID,
			it.ProductOrderName, it.Term, it.ChargeType,
			formatAmount(it.PayGPrice), it.PricingModel, it.BenefitName,
		}
	}
	record = append(record, row.TagValues...)
	if frequency == entity.FrequencyMonthly {
		record = append(record, formatAmount(row.TotalCost))
	}
	return record
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// --- Run report exports ---

func (r *ExportRepositoryImpl) ExportRunReportToCSV(report entity.RunReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating run report CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := []string{
		"Source File", "Frequency", "Period", "Rows In", "Backfilled",
		"Rows Out", "Total Cost", "New Accounts", "New Profiles",
		"Top Categories", "Output Path",
	}
	if err := writer.Write(headers); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	var top []string
	for _, c := range report.TopCategories {
		top = append(top, fmt.Sprintf("%s: %.2f", c.Category, c.Cost))
	}
	record := []string{
		report.SourceFile,
		string(report.Frequency),
		report.PeriodToken,
		strconv.Itoa(report.RowsRead),
		strconv.Itoa(report.RowsBackfilled),
		strconv.Itoa(report.RowsOut),
		fmt.Sprintf("%.2f", report.TotalCost),
		strconv.Itoa(report.NewAccounts),
		strconv.Itoa(report.NewProfiles),
		strings.Join(top, "\n"),
		report.OutputPath,
	}
	if err := writer.Write(record); err != nil {
		return "", fmt.Errorf("error writing CSV record: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportRunReportToJSON(report entity.RunReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating run report JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return "", fmt.Errorf("error encoding run report JSON: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportRunReportToPDF(report entity.RunReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{0, 102, 204}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	drawSection := func(title string, content string) {
		if strings.TrimSpace(content) == "" {
			return
		}
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)

		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.MultiCell(190, 5, tr(content), "", "L", false)
		pdf.Ln(8)
	}

	pdf.AddPage()

	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr(fmt.Sprintf("  %s Billing Synthesis", report.Frequency)), "", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Source: %s  |  Period: %s", report.SourceFile, report.PeriodToken)), "", 1, "L", true, 0, "")
	pdf.Ln(8)

	summary := fmt.Sprintf(
		"Rows In: %d\nBackfilled: %d\nRows Out: %d\nTotal Cost: %.2f\nNew Accounts: %d\nNew Profiles: %d\nOutput: %s",
		report.RowsRead, report.RowsBackfilled, report.RowsOut,
		report.TotalCost, report.NewAccounts, report.NewProfiles,
		report.OutputPath,
	)
	drawSection("Run Summary", summary)

	if len(report.TopCategories) > 0 {
		var b strings.Builder
		for _, c := range report.TopCategories {
			b.WriteString(fmt.Sprintf("%s: %.2f\n", c.Category, c.Cost))
		}
		drawSection("Top Meter Categories", b.String())
	}

	pdf.SetY(-15)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	footerText := fmt.Sprintf("Azure Billing Synthesis | %s", time.Now().Format("2006-01-02"))
	pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 10, tr("Page 1"), "", 0, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing run report PDF: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Retail price exports ---

func (r *ExportRepositoryImpl) ExportPricesToCSV(prices []entity.RetailPrice, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating prices CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := []string{
		"ServiceName", "ProductName", "SkuName", "ArmSkuName", "MeterName",
		"ArmRegionName", "UnitOfMeasure", "RetailPrice", "UnitPrice",
		"CurrencyCode", "Type", "ReservationTerm", "EffectiveStartDate",
	}
	if err := writer.Write(headers); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, p := range prices {
		record := []string{
			p.ServiceName, p.ProductName, p.SkuName, p.ArmSkuName,
			p.MeterName, p.ArmRegionName, p.UnitOfMeasure,
			formatAmount(p.RetailPriceValue), formatAmount(p.UnitPrice),
			p.CurrencyCode, p.Type, p.ReservationTerm, p.EffectiveStartDate,
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("error writing CSV record: %w", err)
		}
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportPricesToJSON(prices []entity.RetailPrice, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating prices JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(prices); err != nil {
		return "", fmt.Errorf("error encoding prices JSON: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// generateFilename creates a unique timestamped file name and makes sure
// the directory exists.
func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}
