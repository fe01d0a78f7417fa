package site

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"
)

//go:embed web/templates/*.html web/static/*
var webFS embed.FS

// Pages served at /{name}; home is served at /.
var pageNames = []string{"home", "about", "projects", "contact", "editor"}

var pageTitles = map[string]string{
	"home":     "Home",
	"about":    "About",
	"projects": "Projects",
	"contact":  "Contact",
	"editor":   "Scene Editor",
}

// Project is one card on the projects page.
type Project struct {
	Name    string `yaml:"name"`
	Summary string `yaml:"summary"`
	Link    string `yaml:"link"`
}

// Profile is the content the pages are filled with.
type Profile struct {
	Name       string    `yaml:"name"`
	Email      string    `yaml:"email"`
	Skills     []string  `yaml:"skills"`
	Projects   []Project `yaml:"projects"`
	MaxHistory int       `yaml:"-"`
}

type pageData struct {
	Site       string
	Page       string
	Title      string
	Year       int
	Email      string
	Skills     []string
	Projects   []Project
	MaxHistory int
}

// pages holds one parsed template set per page.
type pages struct {
	profile Profile
	sets    map[string]*template.Template
}

func loadPages(profile Profile) (*pages, error) {
	p := &pages{profile: profile, sets: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		t, err := template.ParseFS(webFS, "web/templates/layout.html", "web/templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		p.sets[name] = t
	}
	return p, nil
}

// render executes a page into a buffer before writing any of it.
func (p *pages) render(w http.ResponseWriter, name string) error {
	t, ok := p.sets[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	data := pageData{
		Site:       p.profile.Name,
		Page:       name,
		Title:      pageTitles[name],
		Year:       time.Now().Year(),
		Email:      p.profile.Email,
		Skills:     p.profile.Skills,
		Projects:   p.profile.Projects,
		MaxHistory: p.profile.MaxHistory,
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := buf.WriteTo(w)
	return err
}

func staticFS() http.FileSystem {
	sub, err := fs.Sub(webFS, "web/static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
