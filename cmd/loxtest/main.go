package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lox-lang/loxtest"
)

func main() {
	var (
		interpreterPath string
		skipFilePath    string
		pathPattern     string
		listOnly        bool
		noColor         bool
	)

	cmd := &cobra.Command{
		Use:   "loxtest [flags] <fixture-files-or-dirs>...",
		Short: "Conformance-test harness for Lox interpreters",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if noColor || !term.IsTerminal(int(os.Stdout.Fd())) {
				color.NoColor = true
			}

			skip := loxtest.DefaultSkipList()
			if skipFilePath != "" {
				var err error
				skip, err = loxtest.LoadSkipFile(skipFilePath)
				if err != nil {
					fmt.Fprintf(os.Stderr, "error: %v\n", err)
					os.Exit(1)
				}
			}

			cfg := loxtest.Config{
				InterpreterPath: interpreterPath,
				FixturePaths:    args,
				Skip:            skip,
				PathPattern:     pathPattern,
				Output:          os.Stdout,
				ErrOutput:       os.Stderr,
			}

			if listOnly {
				os.Exit(loxtest.List(cfg))
			}
			os.Exit(loxtest.Run(cfg))
		},
	}

	cmd.Flags().StringVar(&interpreterPath, "interpreter", "", "path to the interpreter executable (required)")
	cmd.Flags().StringVar(&skipFilePath, "skip-file", "", "YAML file replacing the built-in skip list")
	cmd.Flags().StringVar(&pathPattern, "filter", "", "regex selecting fixture paths to run")
	cmd.Flags().BoolVar(&listOnly, "list", false, "list fixtures that would run, without running them")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	cmd.MarkFlagRequired("interpreter")

	cmd.Execute()
}
