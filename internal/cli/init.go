package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promtec/gostdoc/internal/config"
)

var initPath string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Создать файл конфигурации проекта",
	RunE: func(cmd *cobra.Command, args []string) error {
		loader := config.NewLoader(initPath)
		if err := loader.Init(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), loader.ConfigPath())
		return nil
	},
}

func init() {
	initCmd.Flags().StringVarP(&initPath, "path", "p", ".", "каталог проекта")
	rootCmd.AddCommand(initCmd)
}
