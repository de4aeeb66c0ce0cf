package ir

// Figure is a numbered image instruction. Caption is the full text
// ("Рисунок 2 – Схема подключения"). Path is the source path relative to
// the project root; ArchiveName is the deterministic name the image gets
// inside the ODT container. Width and Height carry a unit suffix.
type Figure struct {
	Number      int
	Caption     string
	Path        string
	ArchiveName string
	Width       string
	Height      string
}
