package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/frugurt-lang/frugurt/internal/interp"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	showTime bool
	trace    bool
)

var rootCmd = &cobra.Command{
	Use:   "frugurt [file]",
	Short: "Frugurt interpreter",
	Long: `frugurt runs a Frugurt program.

Frugurt is a small dynamically-typed scripting language with
user-defined operators, properties, struct/class/data type flavors,
currying, and first-class scopes. The argument is the program file
produced by the tree-sitter-frugurt grammar tool.`,
	Version:       Version,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runFile,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().BoolVar(&showTime, "time", false, "print execution time")
	rootCmd.Flags().BoolVar(&trace, "trace", false, "trace statement execution (for debugging)")
}

func runFile(_ *cobra.Command, args []string) error {
	interpreter := interp.New(os.Stdout)
	if trace {
		interpreter.SetLogger(hclog.New(&hclog.LoggerOptions{
			Name:   "frugurt",
			Level:  hclog.Trace,
			Output: os.Stderr,
		}))
	}

	start := time.Now()

	_, err := interpreter.ExecuteFile(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("%s", err.Error()))
	}

	if showTime {
		fmt.Printf("Program finished in %dms\n", time.Since(start).Milliseconds())
	}

	return err
}
