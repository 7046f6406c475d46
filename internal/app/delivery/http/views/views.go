// Package views renders the site pages from the embedded template set.
package views

import (
	"bytes"
	"dentalclinic-service/internal/pkg/constvars"
	"dentalclinic-service/internal/pkg/dto/responses"
	"dentalclinic-service/internal/pkg/formatter"
	"embed"
	"fmt"
	"html/template"
	"net/url"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutTemplate = "layout"

type NavLink struct {
	Label  string
	Href   string
	Active bool
}

type ExportLink struct {
	Label string
	Href  string
}

// PageData is what every page template receives. List is nil on the home page.
type PageData struct {
	Title       string
	Description string
	Site        *responses.SiteContent
	Nav         []NavLink
	List        *responses.RecordList
	ExportLinks []ExportLink
}

type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{
		"longDate":    formatter.LongDate,
		"contactHref": contactHref,
	}

	pages := []string{
		constvars.PageHome,
		constvars.PageOwnerBilling,
		constvars.PagePatientRecords,
	}

	renderer := &Renderer{pages: make(map[string]*template.Template, len(pages))}
	for _, page := range pages {
		t, err := template.New(page).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s templates: %w", page, err)
		}
		renderer.pages[page] = t
	}
	return renderer, nil
}

// Render executes page into a buffer so a failing template never leaves a
// half-written response behind.
func (r *Renderer) Render(page string, data PageData) ([]byte, error) {
	t, ok := r.pages[page]
	if !ok {
		return nil, fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, layoutTemplate, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// contactHref lets tel: links through the template URL filter. Anything with
// an unexpected scheme is replaced by "#".
func contactHref(href string) template.URL {
	parsed, err := url.Parse(href)
	if err != nil {
		return "#"
	}
	switch parsed.Scheme {
	case "", "http", "https", "mailto", "tel":
		return template.URL(href)
	}
	return "#"
}
