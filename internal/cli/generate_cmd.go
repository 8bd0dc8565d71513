package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"tpcgen/internal/dataset"
	"tpcgen/internal/export"
)

// newGenerateCmd builds the generation subcommand for one benchmark.
// Both subcommands share the same driver; the dataset spec carries
// everything that differs between the variants.
func newGenerateCmd(ds dataset.Spec) *cobra.Command {
	var (
		outputDir   string
		scaleFactor float64
		external    bool
		location    string
	)

	cmd := &cobra.Command{
		Use:   ds.Name,
		Short: fmt.Sprintf("Generate the %s dataset", ds.Display),
		Long: fmt.Sprintf("Generates the %s dataset with DuckDB's %s extension, exports every\n"+
			"table to Parquet under <output-dir>/parquet/, and writes the Hive DDL file\n"+
			"and loader script next to them.", ds.Display, ds.Extension),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := export.Config{
				OutputDir:   outputDir,
				ScaleFactor: scaleFactor,
				External:    external,
				Location:    location,
			}
			return export.Generate(cmd.Context(), ds, cfg, slog.Default())
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", ds.Name, "Output directory")
	cmd.Flags().Float64VarP(&scaleFactor, "scale-factor", "s", 1, "Benchmark scale factor")
	if ds.ExternalTables {
		cmd.Flags().BoolVar(&external, "external", false, "Emit EXTERNAL tables")
		cmd.Flags().StringVar(&location, "location", "", "Storage location for external tables")
	}

	return cmd
}
