package template

import (
	"strings"

	"portfolio-builder/internal/model"
)

// Slice is one block of the colorful template's slice-based page.
type Slice struct {
	SliceType  string                 `json:"slice_type"`
	SliceLabel *string                `json:"slice_label"`
	Variation  string                 `json:"variation"`
	Version    string                 `json:"version"`
	Primary    map[string]interface{} `json:"primary"`
	Items      []interface{}          `json:"items"`
}

type Paragraph struct {
	Type    string           `json:"type"`
	Content ParagraphContent `json:"content"`
}

type ParagraphContent struct {
	Text string `json:"text"`
}

type Link struct {
	LinkType string `json:"link_type"`
	URL      string `json:"url"`
}

type Image struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type TechItem struct {
	TechName     string `json:"tech_name"`
	TechCategory string `json:"tech_category"`
}

type NavItem struct {
	Link  Link   `json:"link"`
	Label string `json:"label"`
}

type ColorfulPage struct {
	MetaTitle       string  `json:"meta_title"`
	MetaDescription string  `json:"meta_description"`
	Slices          []Slice `json:"slices"`
}

type ColorfulSettings struct {
	Name          string    `json:"name"`
	NavItem       []NavItem `json:"nav_item"`
	CTALink       Link      `json:"cta_link"`
	CTALabel      string    `json:"cta_label"`
	GitHubLink    Link      `json:"github_link"`
	TwitterLink   Link      `json:"twitter_link"`
	LinkedInLink  Link      `json:"linkdin_link"`
	InstagramLink Link      `json:"intagram_link"`
}

// ColorfulBundle is everything the colorful template renders from: the page
// slices and the header/footer settings.
type ColorfulBundle struct {
	Homepage ColorfulPage     `json:"homepage"`
	Settings ColorfulSettings `json:"settings"`
}

// Colorful maps the record onto the slice-based colorful template.
func Colorful(p *model.Portfolio) ColorfulBundle {
	return ColorfulBundle{
		Homepage: ColorfulPage{
			MetaTitle:       p.Metadata.Title,
			MetaDescription: p.Metadata.Description,
			Slices:          ColorfulSlices(p),
		},
		Settings: colorfulSettings(p),
	}
}

func newSlice(kind string, primary map[string]interface{}, items []interface{}) Slice {
	if items == nil {
		items = []interface{}{}
	}
	return Slice{SliceType: kind, Variation: "default", Version: "initial", Primary: primary, Items: items}
}

func paragraphs(texts ...string) []Paragraph {
	out := make([]Paragraph, 0, len(texts))
	for _, t := range texts {
		out = append(out, Paragraph{Type: "paragraph", Content: ParagraphContent{Text: t}})
	}
	return out
}

// ColorfulSlices builds the homepage slices in display order.
func ColorfulSlices(p *model.Portfolio) []Slice {
	personal := p.Personal
	slices := []Slice{
		newSlice("hero", map[string]interface{}{
			"first_name": personal.FirstName,
			"last_name":  personal.LastName,
			"tag_line":   firstNonEmpty(personal.Tagline, personal.Subtitle),
		}, nil),
	}

	// A record with neither a summary nor any location part gets no biography.
	if p.About.Summary != "" || personal.Location != (model.Location{}) {
		body := paragraphs(p.About.Summary)
		if p.About.Bio != "" {
			body = append(body, paragraphs(p.About.Bio)...)
		}
		var avatar *Image
		if personal.Avatar != "" {
			avatar = &Image{URL: personal.Avatar, Width: 800, Height: 800}
		}
		slices = append(slices, newSlice("biography", map[string]interface{}{
			"heading":     "About Me",
			"body":        body,
			"button_text": "View My Work",
			"button_link": Link{LinkType: "Web", URL: "#portfolio"},
			"avatar":      avatar,
		}, nil))
	}

	if len(p.Skills.Technical) > 0 {
		items := []interface{}{}
		for _, cat := range p.Skills.Technical {
			for _, s := range cat.Skills {
				items = append(items, TechItem{TechName: s.Name, TechCategory: cat.Category})
			}
		}
		slices = append(slices, newSlice("tech_list", map[string]interface{}{
			"heading": "Technologies I Work With",
		}, items))
	}

	if len(p.Education.Degrees) > 0 {
		slices = append(slices, newSlice("text_block", map[string]interface{}{
			"heading": "Education",
			"body":    paragraphs(educationLine(p.Education.Degrees[0])),
		}, nil))
	}

	if len(p.Experience.Jobs) > 0 {
		j := p.Experience.Jobs[0]
		slices = append(slices, newSlice("content_index", map[string]interface{}{
			"heading":        "Experience",
			"content_type":   "Blog",
			"view_more_text": "View",
			"description":    strings.TrimSpace(j.Position + " • " + j.Company),
		}, nil))
	}

	if len(p.Projects.Items) > 0 {
		slices = append(slices, newSlice("content_index", map[string]interface{}{
			"heading":        "Featured Projects",
			"content_type":   "Project",
			"view_more_text": "View Project",
			"description":    "Here are some of my recent projects that showcase my skills and experience.",
		}, nil))
	}

	slices = append(slices, newSlice("text_block", map[string]interface{}{
		"heading": "Get In Touch",
		"body":    paragraphs("I'm always interested in new opportunities and collaborations."),
	}, nil))
	return slices
}

func educationLine(d model.Degree) string {
	head := d.Degree
	if d.Field != "" {
		head = strings.TrimSpace(head + " in " + d.Field)
	}
	return strings.TrimSpace(head + " • " + d.Institution)
}

func colorfulSettings(p *model.Portfolio) ColorfulSettings {
	social := p.Personal.Social
	name := p.Personal.FullName()
	if name == "" {
		name = "Portfolio"
	}
	web := func(url string) Link { return Link{LinkType: "Web", URL: url} }
	return ColorfulSettings{
		Name: name,
		NavItem: []NavItem{
			{Link: web("#about"), Label: "About"},
			{Link: web("#skills"), Label: "Skills"},
			{Link: web("#portfolio"), Label: "Projects"},
			{Link: web("#contact"), Label: "Contact"},
		},
		CTALink:       web("#contact"),
		CTALabel:      "Contact",
		GitHubLink:    web(orHash(social.GitHub)),
		TwitterLink:   web(orHash(social.Twitter)),
		LinkedInLink:  web(orHash(social.LinkedIn)),
		InstagramLink: web(orHash(social.Instagram)),
	}
}
