// Package build orchestrates one document build: configuration and data
// loading, structure validation, numbering, emission and ODT rendering.
package build

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/promtec/gostdoc/internal/config"
	"github.com/promtec/gostdoc/internal/data"
	"github.com/promtec/gostdoc/internal/doctree"
	"github.com/promtec/gostdoc/internal/emit"
	"github.com/promtec/gostdoc/internal/ir"
	"github.com/promtec/gostdoc/internal/pdf"
	"github.com/promtec/gostdoc/internal/render/odt"
	"github.com/promtec/gostdoc/internal/toc"
)

// Document type display titles.
var docTitles = map[string]string{
	toc.DocTypeManual:        "Руководство по эксплуатации",
	toc.DocTypeSpecification: "Технические условия",
	toc.DocTypePassport:      "Паспорт изделия",
}

// GOST document designation suffixes appended to the product code.
var docSuffixes = map[string]string{
	toc.DocTypeManual:        ".РЭ",
	toc.DocTypeSpecification: ".ТУ",
	toc.DocTypePassport:      ".ПС",
}

// Options configures a builder.
type Options struct {
	// RootDir is the project root holding the config file, structure
	// files and data files.
	RootDir string
	// OutputDir overrides the configured output directory when set.
	OutputDir string
	// Force builds even when the structure has validation errors.
	Force bool
	// PDF also converts the result to a protected PDF.
	PDF bool
	// Logf receives progress lines; nil discards them.
	Logf func(format string, args ...any)
}

// Result describes one finished document build.
type Result struct {
	DocType  string
	Title    string
	FileName string
	Path     string
	PDFPath  string
	Tables   int
	Figures  int
	Problems []string
	Stream   *ir.Stream
	Index    *toc.Index
}

// Builder runs document builds over one loaded project.
type Builder struct {
	cfg    *config.Config
	loader *config.Loader
	opts   Options
	res    *data.Resolver
}

// New loads the project at opts.RootDir and returns a ready builder.
func New(opts Options) (*Builder, error) {
	if opts.Logf == nil {
		opts.Logf = func(string, ...any) {}
	}
	loader := config.NewLoader(opts.RootDir)
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, p := range cfg.DataFiles {
		paths = append(paths, loader.Resolve(p))
	}
	values, err := data.Load(paths)
	if err != nil {
		return nil, fmt.Errorf("load data files: %w", err)
	}

	return &Builder{
		cfg:    cfg,
		loader: loader,
		opts:   opts,
		res:    data.NewResolver(values),
	}, nil
}

// Config exposes the loaded configuration.
func (b *Builder) Config() *config.Config { return b.cfg }

// Resolver exposes the loaded placeholder resolver.
func (b *Builder) Resolver() *data.Resolver { return b.res }

// DocTitle returns the display title for a document type code.
func DocTitle(docType string) string {
	if t, ok := docTitles[docType]; ok {
		return t
	}
	return docType
}

// FileName derives the output file name from the product code and the
// document type designation suffix.
func (b *Builder) FileName(docType string) string {
	code, _ := b.res.Lookup("product.code")
	name := strings.TrimSpace(fmt.Sprintf("%v", code))
	if name == "" || name == "<nil>" {
		name = "document"
	}
	if suffix, ok := docSuffixes[docType]; ok {
		name += suffix
	} else {
		name += "." + strings.ToUpper(docType)
	}
	return name + ".odt"
}

func (b *Builder) outputDir() string {
	if b.opts.OutputDir != "" {
		return b.opts.OutputDir
	}
	return b.loader.Resolve(b.cfg.Dirs.Output)
}

func (b *Builder) loadStructure(docType string) (*doctree.Document, error) {
	path, ok := b.cfg.DocumentPath(docType)
	if !ok {
		return nil, fmt.Errorf("unknown document type %q", docType)
	}
	doc, err := doctree.Load(b.loader.Resolve(path))
	if err != nil {
		return nil, fmt.Errorf("load structure %s: %w", path, err)
	}
	return doc, nil
}

// Validate loads and validates the structure of one document type.
func (b *Builder) Validate(docType string) (*doctree.Report, error) {
	doc, err := b.loadStructure(docType)
	if err != nil {
		return nil, err
	}
	return doctree.Validate(doc), nil
}

// fatalErrors filters a validation report down to the errors that stop a
// build. Intro-related errors are tolerated: the intro node is allowed to
// have no title.
func fatalErrors(report *doctree.Report) []string {
	var out []string
	for _, e := range report.Errors {
		if strings.Contains(e, "intro") {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Build produces the ODT (and optionally PDF) for one document type.
func (b *Builder) Build(ctx context.Context, docType string) (*Result, error) {
	doc, err := b.loadStructure(docType)
	if err != nil {
		return nil, err
	}

	report := doctree.Validate(doc)
	fatal := fatalErrors(report)
	if len(fatal) > 0 && !b.opts.Force {
		return nil, fmt.Errorf("structure validation failed:\n  %s", strings.Join(fatal, "\n  "))
	}

	index := toc.Collect(doc, b.res, toc.Options{
		DocType:  docType,
		MaxDepth: b.cfg.TOC.MaxLevels,
	})

	emitter := emit.New(b.res, index, emit.Options{
		DocType:    docType,
		ImageScale: b.cfg.Images.ScaleFactor,
	})
	stream, problems := emitter.Emit(doc)
	problems = append(report.Warnings, problems...)

	result := &Result{
		DocType:  docType,
		Title:    DocTitle(docType),
		FileName: b.FileName(docType),
		Tables:   emitter.Counters().Table,
		Figures:  emitter.Counters().Figure,
		Stream:   stream,
		Index:    index,
	}
	result.Path = filepath.Join(b.outputDir(), result.FileName)

	renderer := &odt.Renderer{
		BaseDir: b.loader.RootDir(),
		Meta: odt.Metadata{
			Title:     result.Title,
			Creator:   b.resolveOr("company.name", ""),
			Generator: "gostdoc",
		},
	}
	renderProblems, err := renderer.WriteFile(result.Path, stream, index)
	problems = append(problems, renderProblems...)
	result.Problems = problems
	if err != nil {
		return result, err
	}
	b.opts.Logf("built %s (%d tables, %d figures)", result.Path, result.Tables, result.Figures)

	if b.opts.PDF {
		if err := b.exportPDF(ctx, result); err != nil {
			return result, err
		}
	}
	return result, nil
}

// BuildAll builds every requested type, collecting results and stopping
// on the first hard error.
func (b *Builder) BuildAll(ctx context.Context, types []string) ([]*Result, error) {
	var results []*Result
	for _, t := range types {
		r, err := b.Build(ctx, t)
		if r != nil {
			results = append(results, r)
		}
		if err != nil {
			return results, fmt.Errorf("build %s: %w", t, err)
		}
	}
	return results, nil
}

func (b *Builder) exportPDF(ctx context.Context, result *Result) error {
	timeout := time.Duration(b.cfg.PDF.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	raw, err := pdf.Convert(ctx, result.Path, b.outputDir())
	if err != nil {
		return err
	}
	result.PDFPath = raw

	if pw := b.cfg.PDF.OwnerPassword; pw != "" {
		protected := raw + ".protected"
		if err := pdf.Protect(raw, protected, pw); err != nil {
			return err
		}
		if err := os.Rename(protected, raw); err != nil {
			return fmt.Errorf("replace with protected pdf: %w", err)
		}
		b.opts.Logf("protected %s", raw)
	}
	return nil
}

func (b *Builder) resolveOr(path, fallback string) string {
	if v, ok := b.res.Lookup(path); ok && v != nil {
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
	return fallback
}
