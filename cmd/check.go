package cmd

import (
	"fmt"
	"github.com/mangekyou-lang/mangekyou/frontend"
	"github.com/mangekyou-lang/mangekyou/frontend/ast"
	"github.com/mangekyou-lang/mangekyou/frontend/astio"
	"github.com/mangekyou-lang/mangekyou/frontend/mgkerr"
	"github.com/mangekyou-lang/mangekyou/internal/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"log/slog"
	"os"
	"strings"
)

var CheckCmd = &cobra.Command{
	Use:          "check file.ast.yml",
	Short:        "Type-check a mangekyou program",
	RunE:         runCheck,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

var logLevel *int

func init() {
	logLevel = CheckCmd.Flags().IntP("log-level", "l", int(slog.LevelError), "log level")
}

func runCheck(cmd *cobra.Command, args []string) error {
	log.SetLevel(slog.Level(*logLevel))

	prog, err := readProgram(args[0])
	if err != nil {
		return err
	}

	res := frontend.TypeCheck(prog)
	for _, binding := range res.Bindings {
		fmt.Printf("%s : %s\n", binding.Name, binding.Scheme)
	}

	if res.Errors.HasError() {
		sb := &strings.Builder{}
		for _, mgkError := range res.Errors.Errors() {
			sb.WriteString("\n")
			sb.WriteString(mgkerr.FormatWithCodeAndPos(mgkError))
		}
		return fmt.Errorf("errors found during type checking:\n%s", sb.String())
	}

	return nil
}

func readProgram(path string) (*ast.Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer func() {
		_ = f.Close()
	}()
	return astio.DecodeProgram(f)
}
