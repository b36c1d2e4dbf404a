package main

import (
	"github.com/mangekyou-lang/mangekyou/cmd"
	"github.com/spf13/cobra"
	"os"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "mangekyou [subcommand]",
	Short:        "mangekyou 🎴\n a Hindley-Milner type checker for the kaleidoscope language",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(cmd.CheckCmd)
	rootCmd.AddCommand(cmd.AstCmd)
}
