package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile string
	SourceFile string
	ReportName string
	ReportType []string
	Dir        string
	NoCleanup  bool
}

// PriceArgs represents the arguments of the prices subcommand.
type PriceArgs struct {
	Service    string
	Region     string
	SKU        string
	Currency   string
	ReportName string
	ReportType []string
	Dir        string
}
