package cli

import (
	"github.com/spf13/cobra"

	"github.com/vegasq/pqhead/internal/output"
	"github.com/vegasq/pqhead/internal/reader"
	"github.com/vegasq/pqhead/internal/table"
)

var schemaFormatFlag string

var schemaCmd = &cobra.Command{
	Use:   "schema <file.parquet>",
	Short: "Show per-column schema information",
	Long: `Print name, type and repetition of every leaf column in the file.

Nested fields are flattened with dot notation (address.street).`,
	Args:         cobra.ExactArgs(1),
	RunE:         runSchema,
	SilenceUsage: true,
}

func init() {
	schemaCmd.Flags().StringVarP(&schemaFormatFlag, "format", "f", "table", "Output format: table, jsonl, csv")
	rootCmd.AddCommand(schemaCmd)
}

func runSchema(cmd *cobra.Command, args []string) error {
	formatter, err := output.New(schemaFormatFlag, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	path := args[0]
	r, err := reader.Open(path)
	if err != nil {
		return describeLoadError(path, err)
	}
	defer func() { _ = r.Close() }()

	return formatter.Format(schemaTable(r.SchemaInfo()))
}

// schemaTable renders column metadata through the same formatter
// pipeline as row data, one row per leaf column.
func schemaTable(infos []reader.ColumnInfo) *table.Table {
	tbl := &table.Table{
		Columns: []table.Column{
			{Name: "name", Type: "STRING"},
			{Name: "type", Type: "STRING"},
			{Name: "physical_type", Type: "STRING"},
			{Name: "logical_type", Type: "STRING"},
			{Name: "repetition", Type: "STRING"},
		},
	}

	for _, info := range infos {
		tbl.Rows = append(tbl.Rows, table.Row{
			"name":          info.Name,
			"type":          info.Type,
			"physical_type": info.PhysicalType,
			"logical_type":  info.LogicalType,
			"repetition":    repetition(info),
		})
	}
	return tbl
}

func repetition(info reader.ColumnInfo) string {
	switch {
	case info.Repeated:
		return "repeated"
	case info.Optional:
		return "optional"
	default:
		return "required"
	}
}
