// Package content holds the literal portfolio data: profile, navigation, skills,
// projects and certifications. A Portfolio is treated as immutable once it has been
// handed to a Store; reloads replace it wholesale.
package content

import (
	"strings"
	"unicode"
)

// Profile is the person behind the portfolio.
type Profile struct {
	Name           string `toml:"name" yaml:"name" json:"name" validate:"required"`
	Brand          string `toml:"brand" yaml:"brand" json:"brand" validate:"required"`
	Badge          string `toml:"badge" yaml:"badge" json:"badge"`
	Headline       string `toml:"headline" yaml:"headline" json:"headline" validate:"required"`
	Bio            string `toml:"bio" yaml:"bio" json:"bio" validate:"required"`
	AboutTitle     string `toml:"about_title" yaml:"about_title" json:"about_title"`
	AboutSummary   string `toml:"about_summary" yaml:"about_summary" json:"about_summary"`
	ContactTitle   string `toml:"contact_title" yaml:"contact_title" json:"contact_title"`
	ContactSummary string `toml:"contact_summary" yaml:"contact_summary" json:"contact_summary"`
	Email          string `toml:"email" yaml:"email" json:"email" validate:"required,email"`
	SceneURL       string `toml:"scene_url" yaml:"scene_url" json:"scene_url" validate:"omitempty,url"`
}

// NavLink is an in-page anchor in the navigation bar.
type NavLink struct {
	Href  string `toml:"href" yaml:"href" json:"href" validate:"required,startswith=#"`
	Label string `toml:"label" yaml:"label" json:"label" validate:"required"`
}

// SocialLink is an external profile. Name doubles as the /out/{name} code.
type SocialLink struct {
	Name  string `toml:"name" yaml:"name" json:"name" validate:"required,alphanum,lowercase"`
	Label string `toml:"label" yaml:"label" json:"label" validate:"required"`
	Icon  string `toml:"icon" yaml:"icon" json:"icon"`
	URL   string `toml:"url" yaml:"url" json:"url" validate:"required,url"`
}

// Pill is a small labelled chip in the about section.
type Pill struct {
	Icon  string `toml:"icon" yaml:"icon" json:"icon"`
	Label string `toml:"label" yaml:"label" json:"label" validate:"required"`
}

// Feature is a card in the about section.
type Feature struct {
	Icon  string `toml:"icon" yaml:"icon" json:"icon"`
	Title string `toml:"title" yaml:"title" json:"title" validate:"required"`
	Desc  string `toml:"desc" yaml:"desc" json:"desc" validate:"required"`
}

// SkillGroup pairs a category with literal skill labels.
type SkillGroup struct {
	Title string   `toml:"title" yaml:"title" json:"title" validate:"required"`
	Items []string `toml:"items" yaml:"items" json:"items" validate:"required,min=1,unique,dive,required"`
}

// Project is a card in the projects grid.
type Project struct {
	Slug  string   `toml:"slug" yaml:"slug" json:"slug" validate:"required,slug"`
	Title string   `toml:"title" yaml:"title" json:"title" validate:"required"`
	Tags  []string `toml:"tags" yaml:"tags" json:"tags" validate:"dive,required"`
	Desc  string   `toml:"desc" yaml:"desc" json:"desc" validate:"required"`
	Link  string   `toml:"link" yaml:"link" json:"link" validate:"required,link"`
}

// Certification is a credential record. Badge is optional.
type Certification struct {
	Name   string `toml:"name" yaml:"name" json:"name" validate:"required"`
	Issuer string `toml:"issuer" yaml:"issuer" json:"issuer" validate:"required"`
	Year   string `toml:"year" yaml:"year" json:"year" validate:"required,year"`
	Badge  string `toml:"badge" yaml:"badge" json:"badge,omitempty"`
}

// Portfolio is the whole site content.
type Portfolio struct {
	Profile        Profile         `toml:"profile" yaml:"profile" json:"profile"`
	Nav            []NavLink       `toml:"nav" yaml:"nav" json:"nav" validate:"required,min=1,dive"`
	Socials        []SocialLink    `toml:"socials" yaml:"socials" json:"socials" validate:"unique=Name,dive"`
	Pills          []Pill          `toml:"pills" yaml:"pills" json:"pills" validate:"dive"`
	Features       []Feature       `toml:"features" yaml:"features" json:"features" validate:"dive"`
	Skills         []SkillGroup    `toml:"skills" yaml:"skills" json:"skills" validate:"required,min=1,dive"`
	Projects       []Project       `toml:"projects" yaml:"projects" json:"projects" validate:"unique=Slug,dive"`
	Certifications []Certification `toml:"certifications" yaml:"certifications" json:"certifications" validate:"dive"`
}

// Project returns the project with the given slug.
func (p *Portfolio) Project(slug string) (Project, bool) {
	for _, pr := range p.Projects {
		if pr.Slug == slug {
			return pr, true
		}
	}
	return Project{}, false
}

// Social returns the social link with the given name.
func (p *Portfolio) Social(name string) (SocialLink, bool) {
	for _, s := range p.Socials {
		if s.Name == name {
			return s, true
		}
	}
	return SocialLink{}, false
}

// Slugify lowercases s and joins its words with hyphens.
func Slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if r > unicode.MaxASCII {
				continue
			}
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
		default:
			dash = true
		}
	}
	return b.String()
}
