package template

import (
	"portfolio-builder/internal/model"
)

const (
	modernDefaultTitle       = "My Portfolio"
	modernDefaultDescription = "Welcome to my personal portfolio website. Explore my projects, learn about me, and get in touch!"
	modernDefaultImage       = "/prismic/thank-you-complete.png"
	modernProjectImage       = "https://images.unsplash.com/photo-1519125323398-675f0ddb6308?auto=format&fit=crop&w=600&q=80"
	modernMaxProjects        = 6
)

type ModernImage struct {
	Src    string `json:"src"`
	Alt    string `json:"alt"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ModernNavLink struct {
	Text string `json:"text"`
	Link string `json:"link"`
}

type ModernNavigation struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Image       ModernImage     `json:"image"`
	Navigation  []ModernNavLink `json:"navigation"`
}

type ModernProject struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Technologies []string    `json:"technologies"`
	Image        ModernImage `json:"image"`
	Link         string      `json:"link"`
}

// ModernData feeds the modern template's header and project grid.
type ModernData struct {
	Navigation ModernNavigation `json:"navigation"`
	Projects   []ModernProject  `json:"projects"`
}

// Modern maps the record onto the modern template.
func Modern(p *model.Portfolio) ModernData {
	title := displayName(p.Personal, firstNonEmpty(p.Personal.Title, modernDefaultTitle))
	data := ModernData{
		Navigation: ModernNavigation{
			Title:       title,
			Description: firstNonEmpty(p.About.Summary, p.About.Bio, modernDefaultDescription),
			Image: ModernImage{
				Src:    firstNonEmpty(p.Personal.Avatar, modernDefaultImage),
				Alt:    title + " - Portfolio",
				Width:  500,
				Height: 500,
			},
			Navigation: []ModernNavLink{
				{Text: "Home", Link: "/"},
				{Text: "Projects", Link: "/#projects"},
				{Text: "About", Link: "/about"},
				{Text: "Contact", Link: "/#contact"},
			},
		},
		Projects: []ModernProject{},
	}
	for _, pr := range limit(p.Projects.Items, modernMaxProjects) {
		src := modernProjectImage
		if len(pr.Images) > 0 && pr.Images[0] != "" {
			src = pr.Images[0]
		}
		data.Projects = append(data.Projects, ModernProject{
			ID:           pr.ID,
			Title:        pr.Title,
			Description:  pr.Description,
			Technologies: nonNilStrings(pr.Technologies),
			Image:        ModernImage{Src: src, Alt: pr.Title, Width: 600, Height: 400},
			Link:         orHash(firstNonEmpty(pr.Links.Live, pr.Links.GitHub)),
		})
	}
	return data
}
