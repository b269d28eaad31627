package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the current version of the edgescope CLI.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("edgescope version %s\n", version)
		fmt.Println("A personal trading journal with a similarity-based judgment engine")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
