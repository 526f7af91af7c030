package main

import (
	"fmt"
	"io"
	"os"

	"statistician/internal/config"
	"statistician/internal/container"
	"statistician/internal/errors"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, describe(err))
		os.Exit(1)
	}
}

// describe prefixes application errors with their code
func describe(err error) string {
	if errors.IsAppError(err) {
		return fmt.Sprintf("[%s] %v", errors.GetCode(err), err)
	}
	return err.Error()
}

func run(in io.Reader, out, errOut io.Writer, args []string) error {
	rootCmd := newRootCmd(in, out, errOut)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "statistician",
		Short: "Interactive DataFrame statistician",
		Long: `Load a CSV file, report descriptive statistics for a column and draw
line, bar or box charts of its numeric columns.

Settings are read from the environment or a .env file:
- LOG_LEVEL=ERROR|WARN|INFO|DEBUG|TRACE (default: WARN)
- CHART_DIR (default: <tmp>/statistician)
- CHART_WIDTH_CM, CHART_HEIGHT_CM (default: 24 x 14)
- CHART_OPEN_VIEWER (default: true)
- CSV_DELIMITER (default: ,)`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(in, out, errOut)
		},
	}
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "statistician %s\n", version)
		},
	})

	return rootCmd
}

func runSession(in io.Reader, out, errOut io.Writer) error {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	c, err := container.New(cfg, out, errOut)
	if err != nil {
		return errors.Wrap(err, "failed to build application")
	}

	if err := c.NewSession(in).Run(); err != nil {
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(out, "\nGoodbye!")
			return nil
		}
		return errors.Wrap(err, "console input failed")
	}
	return nil
}
