package cmd

import (
	"fmt"
	"github.com/mangekyou-lang/mangekyou/internal/log"
	"github.com/spf13/cobra"
	"log/slog"
)

var AstCmd = &cobra.Command{
	Use:          "ast file.ast.yml",
	Short:        "Print a program back from its AST document",
	RunE:         runAst,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func runAst(cmd *cobra.Command, args []string) error {
	log.SetLevel(slog.LevelError)

	prog, err := readProgram(args[0])
	if err != nil {
		return err
	}

	fmt.Println(prog.String())
	return nil
}
