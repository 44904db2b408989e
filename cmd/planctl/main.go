// planctl generates tracking plan artifacts from a feature request file,
// covering the export path without running the HTTP service.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/meenams/ai-schema-designer-meena-muthu/internal/plan"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var requestPath, outPath string

	root := &cobra.Command{
		Use:           "planctl",
		Short:         "Generate tracking plan artifacts from a feature request file",
		Long:          "planctl turns a YAML feature request into a tracking plan, a dbt-style schema, synthetic sample events or taxonomy lint warnings.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&requestPath, "request", "f", "", "path to a YAML feature request file")
	root.PersistentFlags().StringVarP(&outPath, "out", "o", "", "write output to a file instead of stdout")
	_ = root.MarkPersistentFlagRequired("request")

	generator := plan.NewGenerator()

	root.AddCommand(
		planCommand(generator, &requestPath, &outPath),
		schemaCommand(generator, &requestPath, &outPath),
		samplesCommand(generator, &requestPath, &outPath),
		lintCommand(generator, &requestPath),
	)

	return root
}

// writeOutput sends data to the --out file when set, stdout otherwise.
func writeOutput(outPath string, data []byte) error {
	if outPath == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(outPath, data, 0o644)
}
