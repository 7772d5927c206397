/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"

	"github.com/recipeapp/recipegen/pkg/catalog"
	"github.com/recipeapp/recipegen/pkg/defaults"
	apperrors "github.com/recipeapp/recipegen/pkg/errors"
	"github.com/recipeapp/recipegen/pkg/oci"
	"github.com/recipeapp/recipegen/pkg/recipe"
	"github.com/recipeapp/recipegen/pkg/serializer"
	"github.com/recipeapp/recipegen/pkg/vocab"
)

const defaultOCITag = "latest"

// generateCmdOptions holds parsed options for the generate command.
type generateCmdOptions struct {
	output           string
	format           serializer.Format
	seed             uint64
	seeded           bool
	counts           catalog.Distribution
	distributionFile string
	parallel         int
	metricsFile      string
	push             *oci.Reference
	plainHTTP        bool
	insecureTLS      bool
	kubeconfig       string
}

// parseGenerateCmdOptions parses and validates command options.
func parseGenerateCmdOptions(cmd *cli.Command) (*generateCmdOptions, error) {
	opts := &generateCmdOptions{
		output:           strings.TrimSpace(cmd.String("output")),
		seed:             cmd.Uint64("seed"),
		seeded:           cmd.IsSet("seed"),
		distributionFile: cmd.String("distribution"),
		parallel:         int(cmd.Int("parallel")),
		metricsFile:      cmd.String("metrics-file"),
		plainHTTP:        cmd.Bool("plain-http"),
		insecureTLS:      cmd.Bool("insecure-tls"),
		kubeconfig:       cmd.String("kubeconfig"),
	}

	var err error
	if opts.format, err = resolveFormat(cmd, opts.output); err != nil {
		return nil, err
	}

	if opts.counts, err = catalog.ParseDistribution(cmd.StringSlice("count")); err != nil {
		return nil, err
	}

	if target := cmd.String("push"); target != "" {
		if !isFileTarget(opts.output) {
			return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "--push requires --output to be a file")
		}
		ref, err := oci.ParseOutputTarget(target)
		if err != nil {
			return nil, err
		}
		if ref.Tag == "" {
			ref = ref.WithTag(defaultOCITag)
		}
		opts.push = ref
	}

	return opts, nil
}

func isFileTarget(output string) bool {
	return output != "" && output != defaults.StdoutTarget &&
		!strings.HasPrefix(output, serializer.ConfigMapURIScheme)
}

func generateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "generate",
		EnableShellCompletion: true,
		Usage:                 "Generate the recipe corpus",
		Description: `Generate a corpus of synthetic recipes from the compiled-in tables.

The default distribution produces 1000 recipes across six categories:
breakfast 200, salad 150, main 250, soup 150, dessert 150, side 100.

Examples:

Write the default corpus to recipes_1000.json:
  recipegen generate

Reproducible corpus with fewer desserts, written as YAML to stdout:
  recipegen generate --seed 42 --count dessert=10 -o - -t yaml

Write to a ConfigMap and push the file to a registry:
  recipegen generate -o cm://recipes/corpus
  recipegen generate --push oci://ghcr.io/recipeapp/corpus:v1`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   defaults.OutputFile,
				Usage:   `Output target: file path, "-" for stdout, or ConfigMap URI (cm://namespace/name)`,
			},
			formatFlag(),
			&cli.Uint64Flag{
				Name:  "seed",
				Usage: "Seed for reproducible output (default: random)",
			},
			&cli.StringSliceFlag{
				Name:  "count",
				Usage: "Per-category count override as key=n (repeatable, e.g. --count salad=20)",
			},
			&cli.StringFlag{
				Name:  "distribution",
				Usage: "YAML or JSON file with an ordered category-to-count mapping replacing the default distribution",
			},
			&cli.IntFlag{
				Name:  "parallel",
				Value: 1,
				Usage: fmt.Sprintf("Categories generated concurrently (1-%d)", defaults.MaxParallelism),
			},
			&cli.StringFlag{
				Name:  "metrics-file",
				Usage: "Write Prometheus metrics in text format to this file after generation",
			},
			&cli.StringFlag{
				Name:  "push",
				Usage: "Push the output file as an OCI artifact (oci://registry/repository[:tag])",
			},
			&cli.BoolFlag{
				Name:  "plain-http",
				Usage: "Use HTTP instead of HTTPS for the OCI registry (local development)",
			},
			&cli.BoolFlag{
				Name:  "insecure-tls",
				Usage: "Skip TLS certificate verification for the OCI registry",
			},
			kubeconfigFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts, err := parseGenerateCmdOptions(cmd)
			if err != nil {
				return err
			}
			return runGenerate(ctx, opts, cmd.Root().Writer, progressWriter(cmd, opts.output))
		},
	}
}

// progressWriter returns where human-readable progress goes: stdout, unless
// the corpus itself is written there.
func progressWriter(cmd *cli.Command, output string) io.Writer {
	root := cmd.Root()
	if output == defaults.StdoutTarget && root.ErrWriter != nil {
		return root.ErrWriter
	}
	if root.Writer != nil {
		return root.Writer
	}
	return io.Discard
}

// runGenerate builds and writes the corpus. stdout receives the corpus when
// the output is "-"; out receives progress and the summary.
func runGenerate(ctx context.Context, opts *generateCmdOptions, stdout, out io.Writer) error {
	cat, err := catalog.Default()
	if err != nil {
		return err
	}

	dist, err := resolveDistribution(ctx, cat, opts)
	if err != nil {
		return err
	}

	builderOpts := []recipe.Option{
		recipe.WithParallelism(opts.parallel),
		recipe.WithProgress(func(category vocab.RecipeCategory, count int) {
			fmt.Fprintf(out, "Генерирую %d рецептов категории %s...\n", count, category)
		}),
	}
	if opts.seeded {
		builderOpts = append(builderOpts, recipe.WithSeed(opts.seed))
	}

	corpus, err := recipe.NewBuilder(cat, builderOpts...).Build(ctx, dist)
	if err != nil {
		return err
	}

	if err := writeCorpus(ctx, opts, corpus, stdout); err != nil {
		return err
	}

	printSummary(out, corpus, dist, opts.output)

	if opts.push != nil {
		result, err := oci.PushFile(ctx, oci.PushOptions{
			FilePath:    opts.output,
			Reference:   opts.push,
			Version:     version,
			PlainHTTP:   opts.plainHTTP,
			InsecureTLS: opts.insecureTLS,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Pushed %s (%s)\n", result.Reference, result.Digest)
	}

	if opts.metricsFile != "" {
		if err := prometheus.WriteToTextfile(opts.metricsFile, prometheus.DefaultGatherer); err != nil {
			return apperrors.WrapWithContext(apperrors.ErrCodeIO, "failed to write metrics file", err,
				map[string]any{"path": opts.metricsFile})
		}
	}

	return nil
}

// resolveDistribution starts from the catalog distribution, replaces it with
// the --distribution file when given, then applies --count overrides.
func resolveDistribution(ctx context.Context, cat *catalog.Catalog, opts *generateCmdOptions) (catalog.Distribution, error) {
	dist := cat.Distribution
	if opts.distributionFile != "" {
		loaded, err := serializer.FromFile[catalog.Distribution](ctx, opts.distributionFile)
		if err != nil {
			return nil, err
		}
		if err := loaded.Validate(); err != nil {
			return nil, err
		}
		dist = *loaded
	}
	if len(opts.counts) > 0 {
		dist = dist.Override(opts.counts)
	}
	slog.Debug("resolved distribution", "categories", len(dist), "total", dist.Total())
	return dist, nil
}

func writeCorpus(ctx context.Context, opts *generateCmdOptions, corpus recipe.Corpus, stdout io.Writer) error {
	if opts.output == defaults.StdoutTarget && stdout != nil {
		return serializer.NewWriter(opts.format, stdout).Serialize(ctx, corpus)
	}

	ser, err := serializer.NewFileWriter(opts.format, opts.output,
		serializer.WithConfigMapKubeconfig(opts.kubeconfig),
		serializer.WithConfigMapVersion(version))
	if err != nil {
		return err
	}

	if err := ser.Serialize(ctx, corpus); err != nil {
		closeSerializer(ser)
		return err
	}

	if closer, ok := ser.(serializer.Closer); ok {
		if err := closer.Close(); err != nil {
			return apperrors.Wrap(apperrors.ErrCodeIO, "failed to close output", err)
		}
	}
	return nil
}

func closeSerializer(ser serializer.Serializer) {
	if closer, ok := ser.(serializer.Closer); ok {
		if err := closer.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}
}

func printSummary(w io.Writer, corpus recipe.Corpus, dist catalog.Distribution, output string) {
	target := output
	if target == defaults.StdoutTarget {
		target = "stdout"
	}
	fmt.Fprintf(w, "\n✅ Сгенерировано %d рецептов!\n", len(corpus))
	fmt.Fprintf(w, "📁 Файл сохранен: %s\n", target)
	fmt.Fprintln(w, "📊 Распределение:")
	for _, a := range dist {
		fmt.Fprintf(w, "   - %s: %d рецептов\n", a.Category, a.Count)
	}
}
