// Command tripplanner is the CLI entrypoint over the HOS planning engine.
// It never geocodes or routes — it reads a request whose legs and
// locations have already been resolved by an external provider, per the
// engine's collaborator boundary.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "tripplanner",
	Short:        "HOS trip planning engine CLI",
	Long:         "Plans a two-leg commercial trip under FMCSA hours-of-service rules.",
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
