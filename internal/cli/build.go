package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/promtec/gostdoc/internal/build"
)

var (
	buildPath    string
	buildOutput  string
	buildForce   bool
	buildPDF     bool
	buildVerbose bool
	buildQuiet   bool
)

var buildCmd = &cobra.Command{
	Use:   "build [re|tu|ps|all]",
	Short: "Собрать документ в формате ODT",
	Long: `Собирает один документ или все документы проекта.

Примеры:
  gostdoc build re
  gostdoc build all --pdf
  gostdoc build tu -p ./docs -o ./out`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildPath, "path", "p", ".", "каталог проекта")
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "каталог результатов (по умолчанию из конфигурации)")
	buildCmd.Flags().BoolVarP(&buildForce, "force", "f", false, "собирать несмотря на ошибки структуры")
	buildCmd.Flags().BoolVar(&buildPDF, "pdf", false, "дополнительно выпустить защищённый PDF")
	buildCmd.Flags().BoolVarP(&buildVerbose, "verbose", "v", false, "подробный вывод")
	buildCmd.Flags().BoolVarP(&buildQuiet, "quiet", "q", false, "тихий режим")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	target := "all"
	if len(args) == 1 {
		target = args[0]
	}

	logf := func(format string, a ...any) {
		if !buildQuiet {
			fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", a...)
		}
	}

	builder, err := build.New(build.Options{
		RootDir:   buildPath,
		OutputDir: buildOutput,
		Force:     buildForce,
		PDF:       buildPDF,
		Logf:      logf,
	})
	if err != nil {
		return err
	}

	types, err := resolveTypes(builder, target)
	if err != nil {
		return err
	}

	results, err := builder.BuildAll(cmd.Context(), types)
	for _, r := range results {
		if buildVerbose && !buildQuiet {
			for _, p := range r.Problems {
				fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %s\n", r.DocType, p)
			}
		}
	}
	if err != nil {
		return err
	}

	if !buildQuiet {
		for _, r := range results {
			fmt.Fprintln(cmd.OutOrStdout(), r.Path)
		}
	}
	return nil
}

func resolveTypes(builder *build.Builder, target string) ([]string, error) {
	if target == "all" {
		types := builder.Config().DocumentTypes()
		if len(types) == 0 {
			return nil, fmt.Errorf("в конфигурации не задано ни одного документа")
		}
		return types, nil
	}
	if _, ok := builder.Config().DocumentPath(target); !ok {
		return nil, fmt.Errorf("неизвестный тип документа %q (доступны: %s)",
			target, strings.Join(builder.Config().DocumentTypes(), ", "))
	}
	return []string{target}, nil
}
