package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/fparmentier/az-billing-synthesis-go/pkg/version"
)

// displayWelcomeBanner prints the welcome banner with version information.
func displayWelcomeBanner(versionStr string) {
	banner := `
          /$$$$$$            /$$$$$$$  /$$ /$$ /$$ /$$
         /$$__  $$          | $$__  $$|__/| $$| $$|__/
        | $$  \ $$ /$$$$$$$$| $$  \ $$ /$$| $$| $$ /$$ /$$$$$$$   /$$$$$$
        | $$$$$$$$|____ /$$/| $$$$$$$ | $$| $$| $$| $$| $$__  $$ /$$__  $$
        | $$__  $$   /$$$$/ | $$__  $$| $$| $$| $$| $$| $$  \ $$| $$  \ $$
        | $$  | $$  /$$__/  | $$  \ $$| $$| $$| $$| $$| $$  | $$| $$  | $$
        | $$  | $$ /$$$$$$$$| $$$$$$$/| $$| $$| $$| $$| $$  | $$|  $$$$$$$
        |__/  |__/|________/|_______/ |__/|__/|__/|__/|__/  |__/ \____  $$
                                                                 /$$  \ $$
                                                                |  $$$$$$/
                                                                 \______/
        `
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()

	fmt.Println(blue(banner))

	formattedVersion := version.FormatVersion()
	fmt.Println(cyan(fmt.Sprintf("Azure Billing Synthesis CLI (v%s)", formattedVersion)))
}
