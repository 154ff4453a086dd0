package model

import "sort"

// PortfolioType describes which sections a portfolio flavour expects and the
// categories the editor suggests for it.
type PortfolioType struct {
	RequiredSections  []string `json:"requiredSections"`
	OptionalSections  []string `json:"optionalSections"`
	SkillCategories   []string `json:"skillCategories"`
	ProjectCategories []string `json:"projectCategories"`
}

const DefaultPortfolioType = "developer"

// PortfolioTypes returns the known portfolio flavours keyed by name.
func PortfolioTypes() map[string]PortfolioType {
	return map[string]PortfolioType{
		"developer": {
			RequiredSections:  []string{"personal", "about", "experience", "skills", "projects", "contact"},
			OptionalSections:  []string{"education", "achievements"},
			SkillCategories:   []string{"Frontend", "Backend", "Database", "DevOps", "Mobile", "Other"},
			ProjectCategories: []string{"Web App", "Mobile App", "API", "Library", "Tool", "Game"},
		},
		"designer": {
			RequiredSections:  []string{"personal", "about", "projects", "skills", "contact"},
			OptionalSections:  []string{"experience", "education", "achievements"},
			SkillCategories:   []string{"UI/UX", "Visual Design", "Motion Graphics", "Branding", "Tools", "Other"},
			ProjectCategories: []string{"Web Design", "Mobile Design", "Branding", "Print", "Motion Graphics", "Illustration"},
		},
		"marketing": {
			RequiredSections:  []string{"personal", "about", "experience", "skills", "achievements", "contact"},
			OptionalSections:  []string{"education", "projects"},
			SkillCategories:   []string{"Digital Marketing", "Analytics", "Content", "Social Media", "Tools", "Other"},
			ProjectCategories: []string{"Campaign", "Strategy", "Content", "Analytics", "Automation", "Brand"},
		},
		"academic": {
			RequiredSections:  []string{"personal", "about", "education", "achievements", "contact"},
			OptionalSections:  []string{"experience", "skills", "projects"},
			SkillCategories:   []string{"Research", "Teaching", "Technical", "Languages", "Tools", "Other"},
			ProjectCategories: []string{"Research", "Publication", "Grant", "Teaching", "Conference", "Collaboration"},
		},
	}
}

// IsPortfolioType reports whether name is a known flavour.
func IsPortfolioType(name string) bool {
	_, ok := PortfolioTypes()[name]
	return ok
}

// PortfolioTypeNames lists the known flavours in sorted order.
func PortfolioTypeNames() []string {
	types := PortfolioTypes()
	names := make([]string, 0, len(types))
	for n := range types {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
