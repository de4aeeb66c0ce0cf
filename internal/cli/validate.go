package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promtec/gostdoc/internal/build"
)

var validatePath string

var validateCmd = &cobra.Command{
	Use:   "validate [re|tu|ps|all]",
	Short: "Проверить структуру документа",
	Long: `Проверяет YAML-структуру документов: уникальность идентификаторов,
наличие заголовков, корректность блоков содержимого и требования
ГОСТ Р 2.105-2019 к членению текста.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validatePath, "path", "p", ".", "каталог проекта")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	target := "all"
	if len(args) == 1 {
		target = args[0]
	}

	builder, err := build.New(build.Options{RootDir: validatePath})
	if err != nil {
		return err
	}
	types, err := resolveTypes(builder, target)
	if err != nil {
		return err
	}

	failed := false
	for _, t := range types {
		report, err := builder.Validate(t)
		if err != nil {
			return err
		}
		for _, e := range report.Errors {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ошибка: %s\n", t, e)
		}
		for _, w := range report.Warnings {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: предупреждение: %s\n", t, w)
		}
		if !report.OK() {
			failed = true
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: структура корректна\n", t)
		}
	}
	if failed {
		return fmt.Errorf("проверка структуры не пройдена")
	}
	return nil
}
