package bundle

import (
	"bytes"
	"embed"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

var bundleTemplates *template.Template

func init() {
	funcs := template.FuncMap{
		"joinStrings": strings.Join,
	}
	bundleTemplates = template.Must(
		template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.tmpl"),
	)
}

// renderTemplate executes a named template with the given data and returns
// the result. Each embedded file defines a template named after its output
// file.
func renderTemplate(name string, data any) string {
	var buf bytes.Buffer
	if err := bundleTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		// Programming error — templates are embedded and tested at init time.
		panic("bundle: failed to render template " + name + ": " + err.Error())
	}
	return buf.String()
}
