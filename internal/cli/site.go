package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/promtec/gostdoc/internal/build"
	"github.com/promtec/gostdoc/internal/pdf"
	"github.com/promtec/gostdoc/internal/render/site"
)

var (
	sitePath   string
	siteOutput string
	siteTitle  string
	sitePDF    bool
	siteForce  bool
	siteQuiet  bool
)

var siteCmd = &cobra.Command{
	Use:   "site",
	Short: "Собрать статический HTML-сайт с документами",
	Long: `Собирает все документы проекта и публикует их как статический
сайт: страница на документ, общий указатель и ссылки на ODT/PDF.`,
	RunE: runSite,
}

func init() {
	siteCmd.Flags().StringVarP(&sitePath, "path", "p", ".", "каталог проекта")
	siteCmd.Flags().StringVarP(&siteOutput, "output", "o", "", "каталог сайта (по умолчанию из конфигурации)")
	siteCmd.Flags().StringVar(&siteTitle, "title", "", "заголовок сайта")
	siteCmd.Flags().BoolVar(&sitePDF, "pdf", false, "включить PDF-версии документов")
	siteCmd.Flags().BoolVarP(&siteForce, "force", "f", false, "собирать несмотря на ошибки структуры")
	siteCmd.Flags().BoolVarP(&siteQuiet, "quiet", "q", false, "тихий режим")

	rootCmd.AddCommand(siteCmd)
}

func runSite(cmd *cobra.Command, args []string) error {
	logf := func(format string, a ...any) {
		if !siteQuiet {
			fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", a...)
		}
	}

	builder, err := build.New(build.Options{
		RootDir: sitePath,
		Force:   siteForce,
		PDF:     sitePDF,
		Logf:    logf,
	})
	if err != nil {
		return err
	}

	outDir := siteOutput
	if outDir == "" {
		outDir = filepath.Join(sitePath, builder.Config().Dirs.Site)
	}

	results, err := builder.BuildAll(cmd.Context(), builder.Config().DocumentTypes())
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	docs := make([]site.Document, 0, len(results))
	for _, r := range results {
		doc := site.Document{
			Type:     r.DocType,
			Title:    r.Title,
			FileName: r.FileName,
			Stream:   r.Stream,
			Index:    r.Index,
		}
		if err := copyFile(r.Path, filepath.Join(outDir, r.FileName)); err != nil {
			return fmt.Errorf("copy %s: %w", r.FileName, err)
		}
		if r.PDFPath != "" {
			doc.PDF = pdf.OutputName(r.Path)
			if err := copyFile(r.PDFPath, filepath.Join(outDir, doc.PDF)); err != nil {
				return fmt.Errorf("copy %s: %w", doc.PDF, err)
			}
		}
		docs = append(docs, doc)
	}

	sb := site.New(site.Options{
		OutputDir: outDir,
		BaseDir:   sitePath,
		Title:     siteTitle,
	})
	if err := sb.Build(docs); err != nil {
		return err
	}

	if !siteQuiet {
		fmt.Fprintln(cmd.OutOrStdout(), filepath.Join(outDir, "index.html"))
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()
	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
