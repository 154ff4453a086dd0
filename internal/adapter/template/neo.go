package template

import (
	"portfolio-builder/internal/model"
)

const (
	neoMaxSkills        = 8
	neoMaxProjects      = 6
	neoProjectImage     = "https://images.unsplash.com/photo-1542831371-29b0f74f9713?w=600&h=400&fit=crop"
	neoPlaceholderImage = "https://images.unsplash.com/photo-1517180102446-f3ece451e9d8?w=600&h=400&fit=crop"
)

type NeoPersonalInfo struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Tagline  string `json:"tagline"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Avatar   string `json:"avatar"`
	Location string `json:"location"`
}

type NeoSkill struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

type NeoProject struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Image        string   `json:"image"`
}

// NeoData is the flat view model of the neo-brutalist template.
type NeoData struct {
	PersonalInfo NeoPersonalInfo `json:"personal_info"`
	Skills       []NeoSkill      `json:"skills"`
	Projects     []NeoProject    `json:"projects"`
	SocialLinks  []SocialLink    `json:"social_links"`
}

// NeoBrutalist maps the record onto the neo-brutalist template.
func NeoBrutalist(p *model.Portfolio) NeoData {
	personal := p.Personal
	loc := personal.Location
	data := NeoData{
		PersonalInfo: NeoPersonalInfo{
			Name:     firstNonEmpty(personal.FullName(), personal.Title),
			Title:    firstNonEmpty(personal.Title, personal.Subtitle),
			Tagline:  firstNonEmpty(personal.Tagline, personal.Subtitle),
			Email:    personal.Email,
			Phone:    personal.Phone,
			Avatar:   personal.Avatar,
			Location: joinNonEmpty(", ", loc.City, loc.State, loc.Country),
		},
		Skills:      []NeoSkill{},
		Projects:    []NeoProject{},
		SocialLinks: socialLinks(personal.Social),
	}

	for _, s := range limit(allSkills(p), neoMaxSkills) {
		data.Skills = append(data.Skills, NeoSkill{Name: s.Name, Level: SkillLevel(s.Years)})
	}
	if len(data.Skills) == 0 {
		data.Skills = []NeoSkill{
			{Name: "React", Level: 90},
			{Name: "JavaScript", Level: 85},
			{Name: "Web Development", Level: 88},
		}
	}

	for _, pr := range limit(p.Projects.Items, neoMaxProjects) {
		img := neoProjectImage
		if len(pr.Images) > 0 && pr.Images[0] != "" {
			img = pr.Images[0]
		}
		data.Projects = append(data.Projects, NeoProject{
			Title:        pr.Title,
			Description:  pr.Description,
			Technologies: nonNilStrings(pr.Technologies),
			Image:        img,
		})
	}
	if len(data.Projects) == 0 {
		data.Projects = []NeoProject{{Title: "Project", Technologies: []string{}, Image: neoPlaceholderImage}}
	}
	return data
}

// SkillLevel converts years of experience into a 0-100 bar value. Skills
// without a year count show as 85.
func SkillLevel(years int) int {
	level := 85
	if years > 0 {
		level = 60 + min(40, years*8)
	}
	return max(0, min(100, level))
}

func joinNonEmpty(sep string, parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += sep
		}
		out += p
	}
	return out
}
