// Package cli wires the command surface of pqhead: the root preview
// command and the schema subcommand.
package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/vegasq/pqhead/internal/output"
	"github.com/vegasq/pqhead/internal/reader"
)

var (
	rowsFlag   int
	formatFlag string
)

var rootCmd = &cobra.Command{
	Use:   "pqhead [flags] <file.parquet>",
	Short: "Preview the first rows of an Apache Parquet file",
	Long: `pqhead is head(1) for Apache Parquet files.

It loads a parquet file into memory and prints its first rows to
standard output as an aligned text table, preserving on-file row
order. Use -n to change the number of rows and -f to switch the
output encoding.

Examples:
  pqhead data.parquet
  pqhead -n 20 data.parquet
  pqhead -f jsonl data.parquet
  pqhead schema data.parquet`,
	Args:         cobra.ExactArgs(1),
	RunE:         runPreview,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().IntVarP(&rowsFlag, "rows", "n", 5, "Number of rows to preview (0 = all rows)")
	rootCmd.Flags().StringVarP(&formatFlag, "format", "f", "table", "Output format: table, jsonl, csv")
}

func runPreview(cmd *cobra.Command, args []string) error {
	if rowsFlag < 0 {
		return fmt.Errorf("--rows must be non-negative, got %d", rowsFlag)
	}

	formatter, err := output.New(formatFlag, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	path := args[0]
	tbl, err := reader.Load(path)
	if err != nil {
		return describeLoadError(path, err)
	}

	n := rowsFlag
	if n == 0 {
		n = tbl.NumRows()
	}

	return formatter.Format(tbl.Prefix(n))
}

// describeLoadError rewords a missing-file error for the terminal;
// format errors already carry the path and cause.
func describeLoadError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("file '%s' not found, please check the file path and try again", path)
	}
	return err
}
