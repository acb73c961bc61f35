package usecase

import (
	"os"
	"path/filepath"
	"time"

	"github.com/fparmentier/az-billing-synthesis-go/internal/domain/entity"
	"github.com/fparmentier/az-billing-synthesis-go/internal/domain/repository"
	"github.com/fparmentier/az-billing-synthesis-go/internal/shared/types"
)

// BillingRepositoryFactory builds the billing reader for a loaded
// configuration; the separator, encoding and date format only become
// known once the parameter file is read.
type BillingRepositoryFactory func(cfg *types.Config) repository.BillingRepository

// SynthesisUseCase runs the billing synthesis pipeline: load the detailed
// export, grow the reference tables, extract the derived fields, backfill
// the daily window when the file is the current period, aggregate, write
// the synthesis file and sweep the output directories.
type SynthesisUseCase struct {
	billingFactory BillingRepositoryFactory
	referenceRepo  repository.ReferenceRepository
	exportRepo     repository.ExportRepository
	configRepo     repository.ConfigRepository
	retentionRepo  repository.RetentionRepository
	console        types.ConsoleInterface

	// now is replaceable in tests; the current month decides the
	// daily/monthly split.
	now func() time.Time
}

// NewSynthesisUseCase creates a new synthesis use case.
func NewSynthesisUseCase(
	billingFactory BillingRepositoryFactory,
	referenceRepo repository.ReferenceRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	retentionRepo repository.RetentionRepository,
	console types.ConsoleInterface,
) *SynthesisUseCase {
	return &SynthesisUseCase{
		billingFactory: billingFactory,
		referenceRepo:  referenceRepo,
		exportRepo:     exportRepo,
		configRepo:     configRepo,
		retentionRepo:  retentionRepo,
		console:        console,
		now:            time.Now,
	}
}

// RunSynthesis processes one source file to completion. Only
// configuration and path errors surface; extraction misses, a missing
// prior-period file and retention delete failures degrade with a console
// message.
func (uc *SynthesisUseCase) RunSynthesis(args *types.CLIArgs) error {
	start := uc.now()

	cfg, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
	if err != nil {
		return err
	}

	billingRepo := uc.billingFactory(cfg)

	sourceDir := filepath.Join(cfg.PathData, cfg.PathDetailed)
	if _, err := os.Stat(sourceDir); err != nil {
		return types.NewMissingPathError("directory", sourceDir)
	}
	sourcePath := filepath.Join(sourceDir, args.SourceFile)
	if !billingRepo.SourceExists(sourcePath) {
		return types.NewMissingPathError("file", sourcePath)
	}

	token, err := PeriodToken(args.SourceFile)
	if err != nil {
		return err
	}

	status := uc.console.Status("Loading " + args.SourceFile + "...")
	items, err := billingRepo.LoadLineItems(sourcePath)
	if err != nil {
		status.Stop()
		return err
	}
	rowsRead := len(items)

	status.Update("Updating reference tables...")
	newAccounts, newProfiles, err := uc.updateReferences(cfg, items)
	if err != nil {
		status.Stop()
		return err
	}

	frequency := entity.FrequencyMonthly
	if token == uc.now().Format("200601") {
		frequency = entity.FrequencyDaily
	}

	backfilled := 0
	if frequency == entity.FrequencyDaily {
		status.Update("Backfilling the daily window...")
		items, backfilled = uc.backfillDailyWindow(cfg, billingRepo, sourceDir, args.SourceFile, items)
	}

	if cfg.UniformizeTags {
		status.Update("Uniformizing resource tags...")
		items = UniformizeTags(items)
	}

	status.Stop()

	tagKeys := cfg.TagKeys()
	extractor := NewFieldExtractor(cfg.AdditionalInfo, tagKeys)
	progress := uc.console.ProgressWithTotal(len(items))
	rows := NormalizeRowsWithProgress(items, extractor, tagKeys, progress)
	progress.Stop()
	if frequency == entity.FrequencyMonthly {
		rows = GroupRows(rows)
	}

	writeStatus := uc.console.Status("Writing the synthesis file...")
	outPath, err := uc.outputPath(cfg, args.SourceFile, frequency)
	if err != nil {
		writeStatus.Stop()
		return err
	}
	if err := uc.exportRepo.WriteSynthesis(outPath, frequency, tagKeys, rows); err != nil {
		writeStatus.Stop()
		return err
	}
	writeStatus.Stop()

	if !args.NoCleanup {
		uc.sweepOutputs(cfg)
	}

	report := uc.buildReport(args.SourceFile, token, frequency, rowsRead, backfilled, rows, newAccounts, newProfiles, outPath, uc.now().Sub(start))
	uc.displayReport(report)
	uc.exportReport(args, report)

	return nil
}

// updateReferences grows the two reference tables from the batch's
// distinct identifiers.
func (uc *SynthesisUseCase) updateReferences(cfg *types.Config, items []entity.LineItem) (int, int, error) {
	accountPath := filepath.Join(cfg.PathData, cfg.BillingAccount)
	newAccounts, err := uc.referenceRepo.UpdateBillingAccounts(accountPath, collectAccounts(items))
	if err != nil {
		return 0, 0, err
	}

	profilePath := filepath.Join(cfg.PathData, cfg.BillingProfile)
	newProfiles, err := uc.referenceRepo.UpdateBillingProfiles(profilePath, collectProfiles(items))
	if err != nil {
		return newAccounts, 0, err
	}
	return newAccounts, newProfiles, nil
}

// backfillDailyWindow widens the current batch with trailing rows from the
// prior period's raw file. A missing prior file degrades to the current
// batch alone.
func (uc *SynthesisUseCase) backfillDailyWindow(cfg *types.Config, billingRepo repository.BillingRepository, sourceDir, sourceName string, items []entity.LineItem) ([]entity.LineItem, int) {
	if cfg.DailyWindowDays <= 0 {
		return items, 0
	}
	curMin, curMax, ok := batchDateSpan(items)
	if !ok {
		return items, 0
	}
	if int(curMax.Sub(curMin).Hours()/24)+1 >= cfg.DailyWindowDays {
		return items, 0
	}

	priorName, err := PreviousPeriodFileName(sourceName)
	if err != nil {
		uc.console.LogWarning("Cannot derive the previous period file: %s", err)
		return items, 0
	}
	priorPath := filepath.Join(sourceDir, priorName)
	if !billingRepo.SourceExists(priorPath) {
		uc.console.LogWarning("Previous period file %s not found; keeping the current batch only", priorPath)
		return items, 0
	}

	prior, err := billingRepo.LoadLineItems(priorPath)
	if err != nil {
		uc.console.LogWarning("Could not load %s: %s; keeping the current batch only", priorPath, err)
		return items, 0
	}
	return MergeWindow(items, prior, cfg.DailyWindowDays)
}

// outputPath creates the synthesis directory tree and derives the output
// file name from the source name.
func (uc *SynthesisUseCase) outputPath(cfg *types.Config, sourceName string, frequency entity.Frequency) (string, error) {
	targetDir := filepath.Join(cfg.PathData, cfg.PathSynthesis)
	sub := cfg.TargetMonthly
	if frequency == entity.FrequencyDaily {
		sub = cfg.TargetDaily
	}
	targetDir = filepath.Join(targetDir, sub)
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return "", types.NewCreateDirError(targetDir, err)
	}
	name := SynthesisFileName(sourceName, cfg.SourceCategory, string(frequency))
	return filepath.Join(targetDir, name), nil
}

// sweepOutputs applies the retention policy to both frequency
// subdirectories. Delete failures are reported, never fatal.
func (uc *SynthesisUseCase) sweepOutputs(cfg *types.Config) {
	base := filepath.Join(cfg.PathData, cfg.PathSynthesis)
	sweeps := []struct {
		dir    string
		prefix string
		keep   int
	}{
		{filepath.Join(base, cfg.TargetDaily), string(entity.FrequencyDaily), cfg.RetentionDaily},
		{filepath.Join(base, cfg.TargetMonthly), string(entity.FrequencyMonthly), cfg.RetentionMonthly},
	}
	for _, s := range sweeps {
		if s.keep <= 0 {
			continue
		}
		if _, err := os.Stat(s.dir); err != nil {
			continue
		}
		result := uc.retentionRepo.Sweep(s.dir, s.prefix, ".csv", s.keep)
		for _, name := range result.ForeignDeleted {
			uc.console.LogWarning("Removed foreign file %s from %s", name, s.dir)
		}
		for _, name := range result.AgedDeleted {
			uc.console.LogInfo("Removed aged synthesis file %s", name)
		}
		for _, err := range result.Errors {
			uc.console.LogError("Cleanup error in %s: %s", s.dir, err)
		}
	}
}

func (uc *SynthesisUseCase) buildReport(
	sourceName, token string,
	frequency entity.Frequency,
	rowsRead, backfilled int,
	rows []entity.SynthesisRow,
	newAccounts, newProfiles int,
	outPath string,
	elapsed time.Duration,
) entity.RunReport {
	total := 0.0
	for _, row := range rows {
		if frequency == entity.FrequencyMonthly {
			total += row.TotalCost
		} else {
			total += row.Item.Cost
		}
	}
	return entity.RunReport{
		SourceFile:     sourceName,
		Frequency:      frequency,
		PeriodToken:    token,
		RowsRead:       rowsRead,
		RowsBackfilled: backfilled,
		RowsOut:        len(rows),
		TotalCost:      total,
		NewAccounts:    newAccounts,
		NewProfiles:    newProfiles,
		TopCategories:  topCategories(rows, frequency, 10),
		OutputPath:     outPath,
		Duration:       elapsed,
	}
}

// displayReport prints the run summary table and the cost-share panel.
func (uc *SynthesisUseCase) displayReport(report entity.RunReport) {
	table := uc.console.CreateTable()
	table.AddColumn("Source")
	table.AddColumn("Frequency")
	table.AddColumn("Period")
	table.AddColumn("Rows In")
	table.AddColumn("Backfilled")
	table.AddColumn("Rows Out")
	table.AddColumn("Total Cost")
	table.AddRow(
		report.SourceFile,
		string(report.Frequency),
		report.PeriodToken,
		report.RowsRead,
		report.RowsBackfilled,
		report.RowsOut,
		formatAmount(report.TotalCost),
	)
	uc.console.Print(table.Render())

	if len(report.TopCategories) > 0 {
		shares := make([]types.CategoryCost, len(report.TopCategories))
		for i, c := range report.TopCategories {
			shares[i] = types.CategoryCost{Category: c.Category, Cost: c.Cost}
		}
		uc.console.DisplayCostShareBars(shares)
	}

	uc.console.LogSuccess("Synthesis written to %s", report.OutputPath)
	uc.console.LogInfo("Script executed in %s", formatDuration(report.Duration))
}

// exportReport writes the optional run report files.
func (uc *SynthesisUseCase) exportReport(args *types.CLIArgs, report entity.RunReport) {
	if args.ReportName == "" {
		return
	}
	for _, reportType := range args.ReportType {
		switch reportType {
		case "csv":
			path, err := uc.exportRepo.ExportRunReportToCSV(report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export run report to CSV: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported run report to CSV: %s", path)
			}
		case "json":
			path, err := uc.exportRepo.ExportRunReportToJSON(report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export run report to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported run report to JSON: %s", path)
			}
		case "pdf":
			path, err := uc.exportRepo.ExportRunReportToPDF(report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export run report to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported run report to PDF: %s", path)
			}
		}
	}
}

// collectAccounts returns the batch's distinct billing accounts in order
// of first appearance; the first observed name wins.
func collectAccounts(items []entity.LineItem) []entity.BillingAccountRef {
	seen := map[string]bool{}
	var accounts []entity.BillingAccountRef
	for _, item := range items {
		if item.BillingAccountID == "" || seen[item.BillingAccountID] {
			continue
		}
		seen[item.BillingAccountID] = true
		accounts = append(accounts, entity.BillingAccountRef{
			ID:   item.BillingAccountID,
			Name: item.BillingAccountName,
		})
	}
	return accounts
}

// collectProfiles returns the batch's distinct billing profiles in order
// of first appearance.
func collectProfiles(items []entity.LineItem) []entity.BillingProfileRef {
	seen := map[string]bool{}
	var profiles []entity.BillingProfileRef
	for _, item := range items {
		if item.BillingProfileID == "" || seen[item.BillingProfileID] {
			continue
		}
		seen[item.BillingProfileID] = true
		profiles = append(profiles, entity.BillingProfileRef{
			ID:       item.BillingProfileID,
			Name:     item.BillingProfileName,
			Currency: item.BillingCurrency,
		})
	}
	return profiles
}
