package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promtec/gostdoc/internal/config"
	"github.com/promtec/gostdoc/internal/pdf"
)

var (
	protectOutput   string
	protectPassword string
)

var protectCmd = &cobra.Command{
	Use:   "protect <file.pdf>",
	Short: "Защитить PDF от копирования и изменения",
	Long: `Шифрует PDF с паролем владельца: документ открывается без пароля,
но разрешена только печать. Пароль берётся из флага --password или из
переменной окружения GOSTDOC_PDF_PASSWORD.`,
	Args: cobra.ExactArgs(1),
	RunE: runProtect,
}

func init() {
	protectCmd.Flags().StringVarP(&protectOutput, "output", "o", "", "выходной файл (по умолчанию перезапись исходного)")
	protectCmd.Flags().StringVar(&protectPassword, "password", "", "пароль владельца")
	rootCmd.AddCommand(protectCmd)
}

func runProtect(cmd *cobra.Command, args []string) error {
	inPath := args[0]

	password := protectPassword
	if password == "" {
		password = config.GetEnvOrDefault("GOSTDOC_PDF_PASSWORD", "")
	}
	if password == "" {
		return fmt.Errorf("не задан пароль владельца (--password или GOSTDOC_PDF_PASSWORD)")
	}

	outPath := protectOutput
	if outPath == "" {
		outPath = inPath
	}
	if err := pdf.Protect(inPath, outPath, password); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), outPath)
	return nil
}
