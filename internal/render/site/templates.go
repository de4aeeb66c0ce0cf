package site

import "html/template"

type pageData struct {
	SiteTitle string
	Title     string
	Nav       []navEntry
	Body      template.HTML
	ODT       string
	PDF       string
}

type indexEntry struct {
	Title string
	Page  string
	ODT   string
	PDF   string
}

type indexData struct {
	SiteTitle string
	Docs      []indexEntry
}

const siteCSS = `
body { font-family: "PT Serif", Georgia, serif; margin: 0; color: #1a1a1a; }
.layout { display: flex; min-height: 100vh; }
nav.sidebar { width: 280px; padding: 1.5rem 1rem; background: #f4f4f2; border-right: 1px solid #ddd; }
nav.sidebar a { display: block; color: #2a4d69; text-decoration: none; padding: 0.15rem 0; font-size: 0.9rem; }
nav.sidebar a.deep { padding-left: 1rem; }
main { flex: 1; max-width: 52rem; padding: 2rem 3rem; }
h1, h2, h3, h4 { font-weight: 600; }
table { border-collapse: collapse; margin: 0.5rem 0 1rem; }
th, td { border: 1px solid #888; padding: 0.3rem 0.6rem; font-size: 0.9rem; }
.table-title, .figure-caption { font-style: italic; }
figure { text-align: center; margin: 1rem 0 0.25rem; }
figure img { max-width: 100%; }
hr.page-break { border: none; border-top: 1px dashed #bbb; margin: 2rem 0; }
.downloads a { margin-right: 1rem; }
`

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="ru">
<head>
<meta charset="utf-8">
<title>{{.Title}} — {{.SiteTitle}}</title>
<style>` + siteCSS + `</style>
</head>
<body>
<div class="layout">
<nav class="sidebar">
<p><a href="index.html">← {{.SiteTitle}}</a></p>
{{range .Nav}}<a href="#{{.Anchor}}"{{if .Deep}} class="deep"{{end}}>{{.Label}}</a>
{{end}}</nav>
<main>
<h1>{{.Title}}</h1>
<p class="downloads">{{if .ODT}}<a href="{{.ODT}}">ODT</a>{{end}}{{if .PDF}}<a href="{{.PDF}}">PDF</a>{{end}}</p>
{{.Body}}
</main>
</div>
</body>
</html>
`))

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="ru">
<head>
<meta charset="utf-8">
<title>{{.SiteTitle}}</title>
<style>` + siteCSS + `</style>
</head>
<body>
<div class="layout">
<main>
<h1>{{.SiteTitle}}</h1>
<ul>
{{range .Docs}}<li><a href="{{.Page}}">{{.Title}}</a>
<span class="downloads">{{if .ODT}}<a href="{{.ODT}}">ODT</a>{{end}}{{if .PDF}}<a href="{{.PDF}}">PDF</a>{{end}}</span></li>
{{end}}</ul>
</main>
</div>
</body>
</html>
`))
