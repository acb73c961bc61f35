package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fparmentier/az-billing-synthesis-go/internal/application/usecase"
	"github.com/fparmentier/az-billing-synthesis-go/internal/shared/types"
	"github.com/fparmentier/az-billing-synthesis-go/pkg/version"
	"github.com/spf13/cobra"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd          *cobra.Command
	synthesisUseCase *usecase.SynthesisUseCase
	pricesUseCase    *usecase.PricesUseCase
	version          string
}

// NewCLIApp creates a new CLI application.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "az-billing",
		Short:   "Azure Billing Synthesis CLI",
		Version: formattedVersion,
		RunE:    app.runSynthesis,
	}

	rootCmd.SetVersionTemplate(`{{printf "Azure Billing Synthesis version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON parameter file")
	rootCmd.Flags().StringP("source-file", "s", "", "Name of the detailed export file to process (inside the detailed directory)")
	rootCmd.Flags().StringP("report-name", "n", "", "Specify the base name for the run report file (without extension)")
	rootCmd.Flags().StringSliceP("report-type", "y", []string{"csv"}, "Specify run report types: csv, json, pdf")
	rootCmd.Flags().StringP("dir", "d", "", "Directory to save the run report files (default: current directory)")
	rootCmd.Flags().Bool("no-cleanup", false, "Skip the retention sweep of the synthesis directories")

	pricesCmd := &cobra.Command{
		Use:   "prices",
		Short: "Fetch Azure retail prices",
		RunE:  app.runPrices,
	}
	pricesCmd.Flags().String("service", "", "Filter by service name, e.g. 'Virtual Machines'")
	pricesCmd.Flags().String("region", "", "Filter by ARM region name, e.g. westeurope")
	pricesCmd.Flags().String("sku", "", "Filter by ARM SKU name, e.g. Standard_D2s_v3")
	pricesCmd.Flags().String("currency", "", "Currency code, e.g. EUR")
	pricesCmd.Flags().StringP("report-name", "n", "", "Specify the base name for the price export file (without extension)")
	pricesCmd.Flags().StringSliceP("report-type", "y", []string{"csv"}, "Specify price export types: csv, json")
	pricesCmd.Flags().StringP("dir", "d", "", "Directory to save the price export files (default: current directory)")

	rootCmd.AddCommand(pricesCmd)

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs(cmd *cobra.Command) (*types.CLIArgs, error) {
	configFile, _ := cmd.Flags().GetString("config-file")
	sourceFile, _ := cmd.Flags().GetString("source-file")
	reportName, _ := cmd.Flags().GetString("report-name")
	reportType, _ := cmd.Flags().GetStringSlice("report-type")
	dir, _ := cmd.Flags().GetString("dir")
	noCleanup, _ := cmd.Flags().GetBool("no-cleanup")

	dir, err := resolveDir(dir)
	if err != nil {
		return nil, err
	}

	return &types.CLIArgs{
		ConfigFile: configFile,
		SourceFile: sourceFile,
		ReportName: reportName,
		ReportType: reportType,
		Dir:        dir,
		NoCleanup:  noCleanup,
	}, nil
}

// runSynthesis is the main entry point of the root command.
func (app *CLIApp) runSynthesis(cmd *cobra.Command, args []string) error {
	displayWelcomeBanner(app.version)

	go version.CheckLatestVersion(app.version)

	cliArgs, err := app.parseArgs(cmd)
	if err != nil {
		return err
	}
	if cliArgs.SourceFile == "" {
		return cmd.Help()
	}

	return app.synthesisUseCase.RunSynthesis(cliArgs)
}

// runPrices is the entry point of the prices subcommand.
func (app *CLIApp) runPrices(cmd *cobra.Command, args []string) error {
	service, _ := cmd.Flags().GetString("service")
	region, _ := cmd.Flags().GetString("region")
	sku, _ := cmd.Flags().GetString("sku")
	currency, _ := cmd.Flags().GetString("currency")
	reportName, _ := cmd.Flags().GetString("report-name")
	reportType, _ := cmd.Flags().GetStringSlice("report-type")
	dir, _ := cmd.Flags().GetString("dir")

	dir, err := resolveDir(dir)
	if err != nil {
		return err
	}

	priceArgs := &types.PriceArgs{
		Service:    service,
		Region:     region,
		SKU:        sku,
		Currency:   currency,
		ReportName: reportName,
		ReportType: reportType,
		Dir:        dir,
	}

	ctx := context.Background()
	return app.pricesUseCase.RunPrices(ctx, priceArgs)
}

// resolveDir defaults to the working directory and makes the path absolute.
func resolveDir(dir string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		return cwd, nil
	}
	return filepath.Abs(dir)
}

// SetSynthesisUseCase sets the synthesis use case for the CLI app.
func (app *CLIApp) SetSynthesisUseCase(useCase *usecase.SynthesisUseCase) {
	app.synthesisUseCase = useCase
}

// SetPricesUseCase sets the prices use case for the CLI app.
func (app *CLIApp) SetPricesUseCase(useCase *usecase.PricesUseCase) {
	app.pricesUseCase = useCase
}
