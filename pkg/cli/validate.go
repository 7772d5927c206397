/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/recipeapp/recipegen/pkg/catalog"
	"github.com/recipeapp/recipegen/pkg/recipe"
	"github.com/recipeapp/recipegen/pkg/serializer"
	"github.com/recipeapp/recipegen/pkg/validator"
)

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		EnableShellCompletion: true,
		Usage:                 "Validate a recipe corpus against the compiled-in tables",
		Description: `Re-check every record of a corpus against the tables it was generated from.

Checks include id format and uniqueness, category and difficulty vocabulary,
ingredient count, catalog membership and category, cooking time range,
servings and instructions. All violations are reported.

Examples:

Validate the default output file:
  recipegen validate --corpus recipes_1000.json

Load the corpus from a ConfigMap and write the result as JSON:
  recipegen validate -c cm://recipes/corpus -t json

Fail the command if any record fails (useful for CI/CD):
  recipegen validate -c recipes_1000.json --fail-on-error`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "corpus",
				Aliases:  []string{"c"},
				Required: true,
				Usage: `Path/URI to the corpus.
	Supports: file paths, HTTP/HTTPS URLs, or ConfigMap URIs (cm://namespace/name).`,
			},
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "Exit with non-zero status if any record fails validation",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   `Output target for the result: file path, "-" for stdout (default), or ConfigMap URI`,
			},
			formatFlag(),
			kubeconfigFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			output := cmd.String("output")
			format, err := resolveFormat(cmd, output)
			if err != nil {
				return err
			}

			corpusPath := cmd.String("corpus")
			slog.Info("loading corpus", "uri", corpusPath)

			corpus, err := serializer.FromFileWithKubeconfig[recipe.Corpus](ctx, corpusPath, cmd.String("kubeconfig"))
			if err != nil {
				return fmt.Errorf("failed to load corpus from %q: %w", corpusPath, err)
			}

			cat, err := catalog.Default()
			if err != nil {
				return err
			}

			v := validator.New(cat,
				validator.WithVersion(version),
				validator.WithSource(corpusPath),
			)
			result, err := v.Validate(ctx, *corpus)
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}

			ser, err := newOutputSerializer(cmd, format, output)
			if err != nil {
				return err
			}
			defer closeSerializer(ser)

			if err := ser.Serialize(ctx, result); err != nil {
				return fmt.Errorf("failed to serialize validation result: %w", err)
			}

			slog.Info("validation completed",
				"status", result.Summary.Status,
				"passed", result.Summary.Passed,
				"failed", result.Summary.Failed,
				"violations", result.Summary.Violations,
				"duration", result.Summary.Duration)

			if cmd.Bool("fail-on-error") && !result.Passed() {
				return fmt.Errorf("validation failed: %d record(s) did not pass", result.Summary.Failed)
			}

			return nil
		},
	}
}
