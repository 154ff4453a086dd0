package usecase

import (
	"portfolio-builder/internal/model"
)

// FromLegacy maps the older editor shape (props keyed by UI section) onto
// the canonical record. Failure semantics match FromResume.
func FromLegacy(raw map[string]interface{}) (*model.Portfolio, error) {
	if len(raw) == 0 {
		return model.Empty(), nil
	}
	return guard("legacy", func() (*model.Portfolio, error) {
		return mapLegacy(raw), nil
	})
}

func mapLegacy(raw map[string]interface{}) *model.Portfolio {
	p := model.Empty()

	if hero := asMap(raw["hero"]); hero != nil {
		p.Personal.FirstName, p.Personal.LastName = SplitName(str(hero, "title"))
		p.Personal.Title = str(hero, "subtitle")
		p.Personal.Tagline = str(hero, "tagline")
	}

	if about := asMap(raw["about"]); about != nil {
		p.About.Summary = str(about, "summary")
		p.About.Bio = str(about, "bio")
	}

	if contact := asMap(raw["contact"]); contact != nil {
		p.Personal.Email = str(contact, "email")
		p.Personal.Phone = str(contact, "phone")
		p.Personal.Social.LinkedIn = str(contact, "linkedin")
		if loc := str(contact, "location"); loc != "" {
			p.Personal.Location = ParseLocation(loc)
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

	showcase := asMap(raw["showcase"])
	if showcase == nil {
		showcase = asMap(raw["projects"])
	}
	if showcase != nil {
		if s, ok := showcase["projects"].(string); ok && s != "" {
			p.Projects.Items = projectTitles(s)
		} else if v, ok := showcase["items"]; ok {
			p.Projects.Items = projects(v)
		}
	}

	applyAchievements(&p.Achievements, asMap(raw["achievements"]))
	return p
}
