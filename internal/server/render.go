// internal/server/render.go
package server

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"strings"

	"dental-site/internal/contact"
	"dental-site/internal/models"
	"dental-site/internal/presentation"
	"dental-site/internal/site"
)

//go:embed templates/page.html
var templateFS embed.FS

var pageTemplate = template.Must(template.New("page.html").Funcs(template.FuncMap{
	"localize": presentation.LocalizeDigits,
	// the JSON-LD is produced by encoding/json, which escapes <, > and &
	"jsonld": func(s string) template.JS { return template.JS(s) },
	// html/template rejects tel: links; PhoneLink only ever emits tel:+digits or "#"
	"telhref": func(s string) template.URL {
		if strings.HasPrefix(s, "tel:") || s == presentation.PlaceholderLink {
			return template.URL(s)
		}
		return template.URL(presentation.PlaceholderLink)
	},
	"repeat": func(n int) []struct{} {
		if n < 0 {
			n = 0
		}
		return make([]struct{}, n)
	},
}).ParseFS(templateFS, "templates/page.html"))

type pageData struct {
	View   site.PageView
	Result *contact.Result
	Form   models.ContactSubmission
}

// renderPage buffers the output so a template error never leaves a
// half-written page behind.
func (s *Server) renderPage(w http.ResponseWriter, data pageData) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		s.logger.Error("page render failed", map[string]interface{}{"error": err.Error()})
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
