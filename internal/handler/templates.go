package handler

import (
	"embed"
	"html/template"
	"time"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templateFuncs = template.FuncMap{
	"formatDate": func(t time.Time) string {
		if t.IsZero() {
			return "—"
		}
		return t.Format("02/01/2006 15:04")
	},
	"add": func(a, b int) int {
		return a + b
	},
	"percent": func(correct, total int) int {
		if total == 0 {
			return 0
		}
		return int(float64(correct) / float64(total) * 100)
	},
}

func mustTemplate(name string) *template.Template {
	return template.Must(template.New(name).Funcs(templateFuncs).ParseFS(templatesFS, "templates/"+name))
}
