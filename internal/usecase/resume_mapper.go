package usecase

import (
	"strings"

	"portfolio-builder/internal/model"
)

// FromResume maps the parsing service output onto the canonical record.
// portfolioType is informational only and does not change the mapping.
//
// A nil or empty input yields Empty() and no error. If mapping fails the
// returned record is Empty() and the error wraps ErrTransform.
func FromResume(raw map[string]interface{}, portfolioType string) (*model.Portfolio, error) {
	if len(raw) == 0 {
		return model.Empty(), nil
	}
	return guard("resume", func() (*model.Portfolio, error) {
		return mapResume(raw), nil
	})
}

func mapResume(raw map[string]interface{}) *model.Portfolio {
	p := model.Empty()

	hero := asMap(raw["hero"])
	if hero == nil {
		hero = asMap(raw["personal"])
	}
	if hero != nil {
		applyHero(&p.Personal, hero)
	}

	if contact := asMap(raw["contact"]); contact != nil {
		p.Personal.Email = str(contact, "email")
		p.Personal.Phone = str(contact, "phone")
		if loc := str(contact, "location"); loc != "" {
			p.Personal.Location = ParseLocation(loc)
		}
		social := &p.Personal.Social
		if s := str(contact, "linkedin"); s != "" {
			social.LinkedIn = s
		}
		if s := str(contact, "github"); s != "" {
			social.GitHub = s
		}
		if s := str(contact, "twitter"); s != "" {
			social.Twitter = s
		}
		if s := firstString(contact, "website", "portfolio"); s != "" {
			social.Portfolio = s
		}
	}

	if about := asMap(raw["about"]); about != nil {
		p.About.Summary = str(about, "summary")
		p.About.Bio = firstString(about, "bio", "summary")
		if years := str(about, "yearsOfExperience"); years != "" && years != "0" {
			p.About.Bio += "\n\nExperience: " + years + " years"
		}
		if v, ok := about["interests"]; ok {
			p.About.Interests = stringList(v)
		}
	}

	if exp := asMap(raw["experience"]); exp != nil {
		if v, ok := exp["jobs"]; ok {
			p.Experience.Jobs = jobs(v)
		}
	}
	if edu := asMap(raw["education"]); edu != nil {
		if v, ok := edu["degrees"]; ok {
			p.Education.Degrees = degrees(v)
		}
	}

	applySkills(&p.Skills, asMap(raw["skills"]))

	if proj := asMap(raw["projects"]); proj != nil {
		if v, ok := proj["items"]; ok {
			p.Projects.Items = projects(v)
		}
	}

	applyAchievements(&p.Achievements, asMap(raw["achievements"]))

	p.Contact.Email = p.Personal.Email
	p.Contact.Phone = p.Personal.Phone
	p.Contact.PreferredContact = "email"

	if name := p.Personal.FullName(); name != "" {
		p.Metadata.Title = name + " - Portfolio"
	}
	p.Metadata.Description = p.About.Summary
	if p.Metadata.Description == "" {
		p.Metadata.Description = "Professional portfolio"
	}
	return p
}

// applyHero reads name and headline fields. Explicit first/last names win
// over a combined title.
func applyHero(dst *model.Personal, hero map[string]interface{}) {
	if title, ok := hero["title"].(string); ok && strings.TrimSpace(title) != "" {
		dst.FirstName, dst.LastName = SplitName(title)
	}
	if s := str(hero, "firstName"); s != "" {
		dst.FirstName = s
	}
	if s := str(hero, "lastName"); s != "" {
		dst.LastName = s
	}
	if s := str(hero, "subtitle"); s != "" {
		dst.Title = s
	}
	if s := str(hero, "tagline"); s != "" {
		dst.Tagline = s
	}
	if s := str(hero, "avatar"); s != "" {
		dst.Avatar = s
	}
}
