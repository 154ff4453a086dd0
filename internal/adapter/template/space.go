package template

import (
	"portfolio-builder/internal/model"
)

const (
	spaceMaxInterests = 12
	spaceMaxSkills    = 12
	spaceSkillIcon    = "/spacefolio/public/skills/ts.png"
	spaceProjectImage = "/projects/project-1.png"
)

type SpaceLink struct {
	Name string `json:"name"`
	Link string `json:"link"`
	Icon string `json:"icon,omitempty"`
}

type SpaceNavLink struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

type SpaceNavbar struct {
	FullName string         `json:"fullName"`
	NavLinks []SpaceNavLink `json:"navLinks"`
	Socials  []SpaceLink    `json:"socials"`
}

type SpaceHero struct {
	FullName          string `json:"fullName"`
	Tagline           string `json:"tagline"`
	HeadlinePrefix    string `json:"headlinePrefix"`
	HeadlineHighlight string `json:"headlineHighlight"`
	HeadlineSuffix    string `json:"headlineSuffix"`
}

type SpaceAbout struct {
	Summary   string   `json:"summary"`
	Interests []string `json:"interests"`
}

type SpaceSkill struct {
	SkillName string `json:"skill_name"`
	Image     string `json:"image"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

type SpaceProject struct {
	Src         string `json:"src"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

type SpaceContactItem struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Link  string `json:"link"`
}

type SpaceContact struct {
	Items   []SpaceContactItem `json:"items"`
	Socials []SpaceLink        `json:"socials"`
}

type SpaceFooterColumn struct {
	Title string      `json:"title"`
	Data  []SpaceLink `json:"data"`
}

// SpaceData is the view model of the space-themed template.
type SpaceData struct {
	Navbar   SpaceNavbar         `json:"navbar"`
	Hero     SpaceHero           `json:"hero"`
	About    SpaceAbout          `json:"about"`
	Skills   []SpaceSkill        `json:"skills"`
	Projects []SpaceProject      `json:"projects"`
	Contact  SpaceContact        `json:"contact"`
	Footer   []SpaceFooterColumn `json:"footer"`
}

// Space maps the record onto the space-themed template.
func Space(p *model.Portfolio) SpaceData {
	personal := p.Personal
	social := personal.Social
	email := firstNonEmpty(p.Contact.Email, personal.Email)
	phone := firstNonEmpty(p.Contact.Phone, personal.Phone)

	data := SpaceData{
		Navbar: SpaceNavbar{
			FullName: displayName(personal, firstNonEmpty(personal.Title, "Portfolio")),
			NavLinks: []SpaceNavLink{
				{Title: "About", Link: "#about"},
				{Title: "Skills", Link: "#skills"},
				{Title: "Projects", Link: "#projects"},
				{Title: "Contact", Link: "#contact"},
			},
			Socials: []SpaceLink{
				{Name: "GitHub", Link: orHash(social.GitHub), Icon: "🐙"},
				{Name: "LinkedIn", Link: orHash(social.LinkedIn), Icon: "💼"},
				{Name: "Twitter", Link: orHash(social.Twitter), Icon: "🐦"},
				{Name: "Email", Link: "mailto:" + orHash(email), Icon: "📧"},
			},
		},
		Hero: SpaceHero{
			FullName:          displayName(personal, personal.Title),
			Tagline:           firstNonEmpty(personal.Tagline, p.About.Summary),
			HeadlinePrefix:    "I am a",
			HeadlineHighlight: firstNonEmpty(personal.Subtitle, personal.Title, "Professional"),
			HeadlineSuffix:    "focused on quality & impact.",
		},
		About: SpaceAbout{
			Summary:   firstNonEmpty(p.About.Summary, p.About.Bio, personal.Tagline),
			Interests: append([]string{}, limit(p.About.Interests, spaceMaxInterests)...),
		},
		Skills:   []SpaceSkill{},
		Projects: []SpaceProject{},
		Contact:  SpaceContact{Items: []SpaceContactItem{}, Socials: []SpaceLink{}},
		Footer: []SpaceFooterColumn{
			{Title: "Contact", Data: []SpaceLink{
				{Name: "Email", Link: "mailto:" + orHash(email), Icon: "📧"},
				{Name: "Phone", Link: "tel:" + orHash(phone), Icon: "📞"},
				{Name: "Location", Link: "#", Icon: "📍"},
			}},
			{Title: "Social", Data: []SpaceLink{
				{Name: "GitHub", Link: orHash(social.GitHub), Icon: "🐙"},
				{Name: "LinkedIn", Link: orHash(social.LinkedIn), Icon: "💼"},
				{Name: "Twitter", Link: orHash(social.Twitter), Icon: "🐦"},
			}},
		},
	}

	for _, s := range limit(allSkills(p), spaceMaxSkills) {
		data.Skills = append(data.Skills, SpaceSkill{SkillName: s.Name, Image: spaceSkillIcon, Width: 80, Height: 80})
	}

	for _, pr := range p.Projects.Items {
		src := spaceProjectImage
		if len(pr.Images) > 0 && pr.Images[0] != "" {
			src = pr.Images[0]
		}
		data.Projects = append(data.Projects, SpaceProject{
			Src:         src,
			Title:       pr.Title,
			Description: pr.Description,
			Link:        orHash(firstNonEmpty(pr.Links.Live, pr.Links.GitHub)),
		})
	}

	if email != "" {
		data.Contact.Items = append(data.Contact.Items, SpaceContactItem{Name: "Email", Value: email, Link: "mailto:" + email})
	}
	if phone != "" {
		data.Contact.Items = append(data.Contact.Items, SpaceContactItem{Name: "Phone", Value: phone, Link: "tel:" + phone})
	}
	for _, l := range []SpaceLink{
		{Name: "GitHub", Link: social.GitHub},
		{Name: "LinkedIn", Link: social.LinkedIn},
		{Name: "Twitter", Link: social.Twitter},
	} {
		if l.Link != "" {
			data.Contact.Socials = append(data.Contact.Socials, l)
		}
	}
	return data
}
