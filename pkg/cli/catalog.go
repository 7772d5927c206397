/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/recipeapp/recipegen/pkg/catalog"
	"github.com/recipeapp/recipegen/pkg/header"
	"github.com/recipeapp/recipegen/pkg/serializer"
	"github.com/recipeapp/recipegen/pkg/vocab"
)

// catalogDocument wraps the compiled-in tables with a header.
type catalogDocument struct {
	header.Header `json:",inline" yaml:",inline"`

	Spec       *catalog.Catalog `json:"spec" yaml:"spec"`
	Vocabulary vocabularyTables `json:"vocabulary" yaml:"vocabulary"`
}

type vocabularyTables struct {
	IngredientCategories vocabularyTable[vocab.IngredientCategory] `json:"ingredientCategories" yaml:"ingredientCategories"`
	RecipeCategories     vocabularyTable[vocab.RecipeCategory]     `json:"recipeCategories" yaml:"recipeCategories"`
	Difficulties         vocabularyTable[vocab.Difficulty]         `json:"difficulties" yaml:"difficulties"`
}

type vocabularyTable[K ~string] struct {
	Default string           `json:"default" yaml:"default"`
	Entries []vocab.Entry[K] `json:"entries" yaml:"entries"`
}

func newVocabularyTable[K ~string](t *vocab.Table[K]) vocabularyTable[K] {
	return vocabularyTable[K]{Default: t.Default(), Entries: t.Entries()}
}

func catalogCmd() *cli.Command {
	return &cli.Command{
		Name:                  "catalog",
		EnableShellCompletion: true,
		Usage:                 "Print the compiled-in generation tables",
		Description: `Print the ingredient catalog, category templates, instruction sequences,
staples and default distribution used by generate.

Examples:
  recipegen catalog -t yaml
  recipegen catalog -o catalog.json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   `Output target: file path, "-" for stdout (default), or ConfigMap URI (cm://namespace/name)`,
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

			cat, err := catalog.Default()
			if err != nil {
				return err
			}

			doc := &catalogDocument{
				Spec: cat,
				Vocabulary: vocabularyTables{
					IngredientCategories: newVocabularyTable(vocab.IngredientCategories),
					RecipeCategories:     newVocabularyTable(vocab.RecipeCategories),
					Difficulties:         newVocabularyTable(vocab.Difficulties),
				},
			}
			doc.Init(header.KindCatalog, header.APIVersion, version)

			ser, err := newOutputSerializer(cmd, format, output)
			if err != nil {
				return err
			}
			defer closeSerializer(ser)

			return ser.Serialize(ctx, doc)
		},
	}
}

// newOutputSerializer resolves an output target, writing to the command's
// writer when output is stdout.
func newOutputSerializer(cmd *cli.Command, format serializer.Format, output string) (serializer.Serializer, error) {
	if isFileTarget(output) || strings.HasPrefix(output, serializer.ConfigMapURIScheme) {
		return serializer.NewFileWriter(format, output,
			serializer.WithConfigMapKubeconfig(cmd.String("kubeconfig")),
			serializer.WithConfigMapVersion(version))
	}
	return serializer.NewWriter(format, progressWriter(cmd, "")), nil
}
