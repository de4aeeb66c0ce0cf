// Package cli wires the command line interface.
package cli

import (
	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "gostdoc",
	Short: "Генератор эксплуатационной документации по ГОСТ Р 2.105-2019",
	Long: `gostdoc собирает эксплуатационные документы (РЭ, ТУ, ПС) из
YAML-описаний структуры и данных изделия: нумерует разделы, формирует
содержание и выпускает документы ODT, PDF и HTML-сайт.`,
	SilenceUsage: true,
}

// SetVersion sets the binary version shown by the version command.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Показать версию",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("gostdoc %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
