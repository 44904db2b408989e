package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/meenams/ai-schema-designer-meena-muthu/internal/dto"
	"github.com/meenams/ai-schema-designer-meena-muthu/internal/emit"
	"github.com/meenams/ai-schema-designer-meena-muthu/internal/plan"
)

// loadRequest reads the YAML feature request file.
func loadRequest(path string) (*dto.GeneratePlanRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read request file: %w", err)
	}

	var req dto.GeneratePlanRequest
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse request file: %w", err)
	}
	return &req, nil
}

func planCommand(generator *plan.Generator, requestPath, outPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Render the tracking plan as markdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := loadRequest(*requestPath)
			if err != nil {
				return err
			}

			p, err := generator.Generate(req.ToDomain())
			if err != nil {
				return err
			}

			return writeOutput(*outPath, emit.Markdown(p, emit.Validate(p)))
		},
	}
}

func schemaCommand(generator *plan.Generator, requestPath, outPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Render the dbt-style schema YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := loadRequest(*requestPath)
			if err != nil {
				return err
			}

			p, err := generator.Generate(req.ToDomain())
			if err != nil {
				return err
			}

			data, err := emit.Schema(p).YAML()
			if err != nil {
				return err
			}
			return writeOutput(*outPath, data)
		},
	}
}

func samplesCommand(generator *plan.Generator, requestPath, outPath *string) *cobra.Command {
	var (
		count  int
		format string
		seed   int64
	)

	cmd := &cobra.Command{
		Use:   "samples",
		Short: "Generate synthetic sample events",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := loadRequest(*requestPath)
			if err != nil {
				return err
			}

			p, err := generator.Generate(req.ToDomain())
			if err != nil {
				return err
			}

			var opts []emit.SamplerOption
			if cmd.Flags().Changed("seed") {
				opts = append(opts, emit.WithSeed(seed))
			}
			events := emit.NewSampler(opts...).Samples(p, count)

			var data []byte
			switch format {
			case "json":
				data, err = emit.EncodeJSON(events)
			case "csv":
				data, err = emit.EncodeCSV(events)
			default:
				return fmt.Errorf("unknown format %q (supported: json, csv)", format)
			}
			if err != nil {
				return err
			}
			return writeOutput(*outPath, data)
		},
	}

	cmd.Flags().IntVar(&count, "count", 10, "sample events per plan event")
	cmd.Flags().StringVar(&format, "format", "json", "output format: json or csv")
	cmd.Flags().Int64Var(&seed, "seed", 0, "fixed randomness seed for reproducible output")

	return cmd
}

func lintCommand(generator *plan.Generator, requestPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "lint",
		Short: "Report taxonomy warnings for the generated plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := loadRequest(*requestPath)
			if err != nil {
				return err
			}

			p, err := generator.Generate(req.ToDomain())
			if err != nil {
				return err
			}

			warnings := emit.Validate(p)
			if len(warnings) == 0 {
				cmd.Println("No taxonomy issues detected.")
				return nil
			}

			for _, w := range warnings {
				cmd.Printf("%s: %s: %s\n", w.EventName, w.Kind, w.Message)
			}
			return fmt.Errorf("%d taxonomy warnings", len(warnings))
		},
	}
}
