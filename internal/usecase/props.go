package usecase

import (
	"strings"

	"portfolio-builder/internal/model"
)

// Section names understood by ToComponentProps.
const (
	SectionHero         = "hero"
	SectionAbout        = "about"
	SectionExperience   = "experience"
	SectionEducation    = "education"
	SectionSkills       = "skills"
	SectionProjects     = "projects"
	SectionShowcase     = "showcase"
	SectionAchievements = "achievements"
	SectionContact      = "contact"
)

// Sections lists every section with a dedicated projection.
func Sections() []string {
	return []string{
		SectionHero, SectionAbout, SectionExperience, SectionEducation, SectionSkills,
		SectionProjects, SectionShowcase, SectionAchievements, SectionContact,
	}
}

// DataProps is the projection of the hero section and of unknown sections.
type DataProps struct {
	Data *model.Portfolio `json:"data"`
}

type AboutProps struct {
	Summary string           `json:"summary"`
	Data    *model.Portfolio `json:"data"`
}

type ExperienceProps struct {
	Jobs []model.Job      `json:"jobs"`
	Data *model.Portfolio `json:"data"`
}

type EducationProps struct {
	Degrees []model.Degree   `json:"degrees"`
	Data    *model.Portfolio `json:"data"`
}

type SkillsProps struct {
	Technical []string         `json:"technical"`
	Soft      []string         `json:"soft"`
	Languages []string         `json:"languages"`
	Data      *model.Portfolio `json:"data"`
}

type ProjectsProps struct {
	Items []model.Project  `json:"items"`
	Data  *model.Portfolio `json:"data"`
}

type AchievementsProps struct {
	Awards         []string         `json:"awards"`
	Certifications []string         `json:"certifications"`
	Publications   []string         `json:"publications"`
	Data           *model.Portfolio `json:"data"`
}

type ContactProps struct {
	Email    string           `json:"email"`
	Phone    string           `json:"phone"`
	LinkedIn string           `json:"linkedin"`
	Location string           `json:"location"`
	Data     *model.Portfolio `json:"data"`
}

// ToComponentProps projects the canonical record onto the prop shape of one
// editor section. The full record always rides along under data; unknown
// sections get nothing else.
func ToComponentProps(p *model.Portfolio, section string) interface{} {
	if p == nil {
		return DataProps{}
	}
	switch section {
	case SectionHero:
		return DataProps{Data: p}
	case SectionAbout:
		return AboutProps{Summary: p.About.Summary, Data: p}
	case SectionExperience:
		return ExperienceProps{Jobs: nonNil(p.Experience.Jobs), Data: p}
	case SectionEducation:
		return EducationProps{Degrees: nonNil(p.Education.Degrees), Data: p}
	case SectionSkills:
		return SkillsProps{
			Technical: FlattenTechnicalSkills(p.Skills.Technical),
			Soft:      pluck(p.Skills.Soft, func(s model.SoftSkill) string { return s.Name }),
			Languages: pluck(p.Skills.Languages, func(l model.Language) string { return l.Name }),
			Data:      p,
		}
	case SectionProjects, SectionShowcase:
		return ProjectsProps{Items: nonNil(p.Projects.Items), Data: p}
	case SectionAchievements:
		a := p.Achievements
		return AchievementsProps{
			Awards:         pluck(a.Awards, func(x model.Award) string { return x.Title }),
			Certifications: pluck(a.Certifications, func(x model.Certification) string { return x.Name }),
			Publications:   pluck(a.Publications, func(x model.Publication) string { return x.Title }),
			Data:           p,
		}
	case SectionContact:
		return ContactProps{
			Email:    orElse(p.Personal.Email, p.Contact.Email),
			Phone:    orElse(p.Personal.Phone, p.Contact.Phone),
			LinkedIn: p.Personal.Social.LinkedIn,
			Location: FormatLocation(p.Personal.Location),
			Data:     p,
		}
	}
	return DataProps{Data: p}
}

// FlattenTechnicalSkills returns the skill names of every category in order.
func FlattenTechnicalSkills(categories []model.SkillCategory) []string {
	out := []string{}
	for _, c := range categories {
		for _, s := range c.Skills {
			out = append(out, s.Name)
		}
	}
	return out
}

// FormatLocation joins the non-empty location parts with ", ".
func FormatLocation(loc model.Location) string {
	parts := make([]string, 0, 3)
	for _, s := range []string{loc.City, loc.State, loc.Country} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

func pluck[T any](items []T, fn func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, fn(it))
	}
	return out
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func orElse(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
