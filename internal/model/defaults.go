package model

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Empty returns a new, fully populated canonical record. Each call builds an
// independent value; there is no shared instance to mutate.
func Empty() *Portfolio {
	return &Portfolio{
		Personal: Personal{},
		About: About{
			Interests:      []string{},
			PersonalValues: []string{},
			FunFacts:       []string{},
		},
		Experience: Experience{Jobs: []Job{}},
		Education:  Education{Degrees: []Degree{}},
		Skills: Skills{
			Technical: []SkillCategory{},
			Soft:      []SoftSkill{},
			Languages: []Language{},
		},
		Projects: Projects{Items: []Project{}},
		Achievements: Achievements{
			Awards:         []Award{},
			Certifications: []Certification{},
			Publications:   []Publication{},
			Patents:        []Patent{},
		},
		Contact: Contact{
			PreferredContact: "email",
			Services:         []string{},
		},
		Metadata: Metadata{
			Keywords: []string{},
			Schema:   map[string]any{},
		},
		Theme: Theme{
			PrimaryColor:    "#3B82F6",
			SecondaryColor:  "#1E40AF",
			AccentColor:     "#F59E0B",
			BackgroundColor: "#FFFFFF",
			TextColor:       "#1F2937",
			Font:            "Inter",
			DarkMode:        false,
			Animations:      true,
			Layout:          "modern",
		},
		Analytics: Analytics{CustomEvents: []string{}},
	}
}

// NewID returns a fresh identifier for a list item. Identifiers are not stable
// across transforms.
func NewID() string {
	return uuid.NewString()
}

func NewJob() Job {
	return Job{
		Responsibilities: []string{},
		Achievements:     []string{},
		Technologies:     []string{},
		Projects:         []string{},
	}
}

func NewDegree() Degree {
	return Degree{Courses: []string{}, Activities: []string{}, Honors: []string{}}
}

func NewSkillCategory(name string) SkillCategory {
	return SkillCategory{Category: name, Skills: []Skill{}}
}

func NewSoftSkill(name string) SoftSkill {
	return SoftSkill{Name: name, Examples: []string{}}
}

func NewProject() Project {
	return Project{
		Tags:         []string{},
		Technologies: []string{},
		Images:       []string{},
		Videos:       []string{},
		Features:     []string{},
		Challenges:   []string{},
		Learnings:    []string{},
	}
}

func NewCertification() Certification {
	return Certification{Skills: []string{}}
}

func NewPublication() Publication {
	return Publication{CoAuthors: []string{}}
}

func NewPatent() Patent {
	return Patent{Inventors: []string{}}
}

// Decode parses a stored canonical document. Keys missing from b keep the
// values of Empty().
func Decode(b []byte) (*Portfolio, error) {
	p := Empty()
	if err := json.Unmarshal(b, p); err != nil {
		return nil, fmt.Errorf("decode portfolio: %w", err)
	}
	return p, nil
}

// FromMap converts a generic document (as produced by encoding/json) into a
// canonical record.
func FromMap(m map[string]any) (*Portfolio, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return Decode(b)
}

// UnmarshalJSON decodes onto Empty() so partial documents stay structurally
// complete.
func (p *Portfolio) UnmarshalJSON(b []byte) error {
	type plain Portfolio
	v := plain(*Empty())
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*p = Portfolio(v)
	p.fill()
	return nil
}

// fill replaces explicit nulls with empty values.
func (p *Portfolio) fill() {
	orEmpty(&p.About.Interests)
	orEmpty(&p.About.PersonalValues)
	orEmpty(&p.About.FunFacts)
	orEmpty(&p.Experience.Jobs)
	orEmpty(&p.Education.Degrees)
	orEmpty(&p.Skills.Technical)
	orEmpty(&p.Skills.Soft)
	orEmpty(&p.Skills.Languages)
	orEmpty(&p.Projects.Items)
	orEmpty(&p.Achievements.Awards)
	orEmpty(&p.Achievements.Certifications)
	orEmpty(&p.Achievements.Publications)
	orEmpty(&p.Achievements.Patents)
	orEmpty(&p.Contact.Services)
	orEmpty(&p.Metadata.Keywords)
	orEmpty(&p.Analytics.CustomEvents)
	if p.Metadata.Schema == nil {
		p.Metadata.Schema = map[string]any{}
	}
}

func orEmpty[T any](s *[]T) {
	if *s == nil {
		*s = []T{}
	}
}

func (j *Job) UnmarshalJSON(b []byte) error {
	type plain Job
	v := plain(NewJob())
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*j = Job(v)
	orEmpty(&j.Responsibilities)
	orEmpty(&j.Achievements)
	orEmpty(&j.Technologies)
	orEmpty(&j.Projects)
	return nil
}

func (d *Degree) UnmarshalJSON(b []byte) error {
	type plain Degree
	v := plain(NewDegree())
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*d = Degree(v)
	orEmpty(&d.Courses)
	orEmpty(&d.Activities)
	orEmpty(&d.Honors)
	return nil
}

func (c *SkillCategory) UnmarshalJSON(b []byte) error {
	type plain SkillCategory
	v := plain(NewSkillCategory(""))
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*c = SkillCategory(v)
	orEmpty(&c.Skills)
	return nil
}

func (s *SoftSkill) UnmarshalJSON(b []byte) error {
	type plain SoftSkill
	v := plain(NewSoftSkill(""))
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*s = SoftSkill(v)
	orEmpty(&s.Examples)
	return nil
}

func (pr *Project) UnmarshalJSON(b []byte) error {
	type plain Project
	v := plain(NewProject())
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*pr = Project(v)
	orEmpty(&pr.Tags)
	orEmpty(&pr.Technologies)
	orEmpty(&pr.Images)
	orEmpty(&pr.Videos)
	orEmpty(&pr.Features)
	orEmpty(&pr.Challenges)
	orEmpty(&pr.Learnings)
	return nil
}

func (c *Certification) UnmarshalJSON(b []byte) error {
	type plain Certification
	v := plain(NewCertification())
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*c = Certification(v)
	orEmpty(&c.Skills)
	return nil
}

func (pub *Publication) UnmarshalJSON(b []byte) error {
	type plain Publication
	v := plain(NewPublication())
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*pub = Publication(v)
	orEmpty(&pub.CoAuthors)
	return nil
}

func (pt *Patent) UnmarshalJSON(b []byte) error {
	type plain Patent
	v := plain(NewPatent())
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*pt = Patent(v)
	orEmpty(&pt.Inventors)
	return nil
}
