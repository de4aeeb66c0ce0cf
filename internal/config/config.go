// Package config manages project configuration.
package config

// Config represents the project configuration.
type Config struct {
	Dirs      Dirs              `yaml:"dirs"`
	DataFiles map[string]string `yaml:"data_files"`
	Documents map[string]string `yaml:"documents"`
	TOC       TOCConfig         `yaml:"toc"`
	Images    ImageConfig       `yaml:"images"`
	PDF       PDFConfig         `yaml:"pdf"`
}

// Dirs holds the project directory layout, relative to the project root.
type Dirs struct {
	Content string `yaml:"content"`
	Data    string `yaml:"data"`
	Media   string `yaml:"media"`
	Output  string `yaml:"output"`
	Site    string `yaml:"site"`
}

// TOCConfig controls table-of-contents collection.
type TOCConfig struct {
	MaxLevels int `yaml:"max_levels"`
}

// ImageConfig controls image placement.
type ImageConfig struct {
	ScaleFactor float64 `yaml:"scale_factor"`
}

// PDFConfig controls PDF export and protection.
type PDFConfig struct {
	OwnerPassword  string `yaml:"owner_password"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Dirs: Dirs{
			Content: "content",
			Data:    "data",
			Media:   "media",
			Output:  "build",
			Site:    "site",
		},
		DataFiles: map[string]string{
			"product": "data/product.yaml",
			"company": "data/company.yaml",
		},
		Documents: map[string]string{
			"re": "content/re.yaml",
			"tu": "content/tu.yaml",
			"ps": "content/ps.yaml",
		},
		TOC:    TOCConfig{MaxLevels: 2},
		Images: ImageConfig{ScaleFactor: 0.5},
		PDF: PDFConfig{
			OwnerPassword:  "${GOSTDOC_PDF_PASSWORD}",
			TimeoutSeconds: 120,
		},
	}
}

// DocumentPath returns the structure file for a document type.
func (c *Config) DocumentPath(docType string) (string, bool) {
	p, ok := c.Documents[docType]
	return p, ok
}

// DocumentTypes returns the configured type codes, known types first.
func (c *Config) DocumentTypes() []string {
	var out []string
	for _, t := range []string{"re", "tu", "ps"} {
		if _, ok := c.Documents[t]; ok {
			out = append(out, t)
		}
	}
	for t := range c.Documents {
		switch t {
		case "re", "tu", "ps":
		default:
			out = append(out, t)
		}
	}
	return out
}
