// Package view turns UI state into the page model rendered by the templates.
package view

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kauhanhernandes/portfolio/internal/catalog"
	"github.com/kauhanhernandes/portfolio/internal/contact"
	"github.com/kauhanhernandes/portfolio/internal/notify"
)

// Tab selects which section is visible.
type Tab string

const (
	TabHome     Tab = "home"
	TabAbout    Tab = "about"
	TabProjects Tab = "projects"
	TabContact  Tab = "contact"
)

// DefaultTab is shown when nothing was selected yet.
const DefaultTab = TabHome

// ParseTab maps a tab id to a Tab.
func ParseTab(s string) (Tab, bool) {
	switch Tab(strings.ToLower(strings.TrimSpace(s))) {
	case TabHome:
		return TabHome, true
	case TabAbout:
		return TabAbout, true
	case TabProjects:
		return TabProjects, true
	case TabContact:
		return TabContact, true
	}
	return DefaultTab, false
}

// State is everything the page depends on.
type State struct {
	Active  Tab
	Form    contact.Form
	Errors  map[string]string
	Pending bool
	Toasts  []notify.Toast
	SiteKey string
	Year    int
}

type TabLink struct {
	catalog.Tab
	Active bool
}

type SkillGroup struct {
	Title  string
	Skills []catalog.Skill
}

type ContactView struct {
	Form    contact.Form
	Errors  map[string]string
	SiteKey string
	Pending bool
}

// Page is the template model.
type Page struct {
	Title    string
	Active   Tab
	Tabs     []TabLink
	Profile  catalog.Profile
	Projects []catalog.Project
	Skills   []SkillGroup
	Contact  ContactView
	Toasts   []notify.Toast
	Year     int
}

// NewPage builds the page model. It has no side effects.
func NewPage(state State) Page {
	active, ok := ParseTab(string(state.Active))
	if !ok {
		active = DefaultTab
	}

	tabs := catalog.Tabs()
	links := make([]TabLink, len(tabs))
	title := ""
	for i, t := range tabs {
		links[i] = TabLink{Tab: t, Active: Tab(t.ID) == active}
		if links[i].Active {
			title = t.Label
		}
	}

	groups := catalog.Skills()
	skills := make([]SkillGroup, len(groups))
	for i, g := range groups {
		skills[i] = SkillGroup{Title: Capitalize(g.Category), Skills: g.Skills}
	}

	errs := state.Errors
	if errs == nil {
		errs = map[string]string{}
	}

	profile := catalog.GetProfile()
	return Page{
		Title:    title + " | " + profile.Name,
		Active:   active,
		Tabs:     links,
		Profile:  profile,
		Projects: catalog.Projects(),
		Skills:   skills,
		Contact: ContactView{
			Form:    state.Form,
			Errors:  errs,
			SiteKey: state.SiteKey,
			Pending: state.Pending,
		},
		Toasts: state.Toasts,
		Year:   state.Year,
	}
}

// Capitalize upper-cases the first letter, as the skill headings do.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// FieldHint is the inline message under one contact field.
type FieldHint struct {
	Field   string
	Message string
}
