package usecase

import (
	"regexp"
	"sort"
	"strings"

	"portfolio-builder/internal/model"
)

// Field parsers shared by the resume and legacy mappers.

const technicalCategory = "Technical Skills"

var (
	monthYearRe = regexp.MustCompile(`(\w+\s+\d{4})`)
	yearRe      = regexp.MustCompile(`\b\d{4}\b`)
	bulletRe    = regexp.MustCompile(`^[•\-*]\s*`)
)

// SplitName splits a combined display name: the first token is the first name
// and the remaining tokens form the last name.
func SplitName(full string) (first, last string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// ParseLocation splits "city, state, country". With two segments the state
// doubles as the country; a single segment only sets the city.
func ParseLocation(s string) model.Location {
	var loc model.Location
	if strings.TrimSpace(s) == "" {
		return loc
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) == 1 {
		loc.City = parts[0]
		return loc
	}
	loc.City = parts[0]
	loc.State = parts[1]
	loc.Country = parts[1]
	if len(parts) > 2 && parts[2] != "" {
		loc.Country = parts[2]
	}
	return loc
}

// Duration is the decomposed form of a free-text date range.
type Duration struct {
	StartDate string
	EndDate   string
	Current   bool
}

// ParseDuration decomposes strings like "Jan 2020 - Present".
func ParseDuration(s string) Duration {
	var d Duration
	if strings.TrimSpace(s) == "" {
		return d
	}
	d.Current = isOngoing(s)
	if m := monthYearRe.FindStringSubmatch(s); m != nil {
		d.StartDate = m[1]
	} else if y := yearRe.FindString(s); y != "" {
		d.StartDate = y
	}
	if !d.Current {
		if _, end, ok := strings.Cut(s, " - "); ok {
			if i := strings.Index(end, " - "); i >= 0 {
				end = end[:i]
			}
			d.EndDate = strings.TrimSpace(end)
		}
	}
	return d
}

func isOngoing(s string) bool {
	lower := strings.ToLower(s)
	return strings.Contains(lower, "present") || strings.Contains(lower, "current")
}

// ParseResponsibilities turns a bulleted description into one entry per line.
func ParseResponsibilities(description string) []string {
	out := []string{}
	for _, line := range strings.Split(description, "\n") {
		line = strings.TrimSpace(bulletRe.ReplaceAllString(strings.TrimSpace(line), ""))
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// InferProficiency maps a free-text descriptor onto the proficiency scale.
func InferProficiency(s string) string {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "native"), strings.Contains(lower, "fluent"):
		return model.ProficiencyNative
	case strings.Contains(lower, "advanced"):
		return model.ProficiencyFluent
	case strings.Contains(lower, "intermediate"):
		return model.ProficiencyConversational
	case strings.Contains(lower, "basic"), strings.Contains(lower, "beginner"):
		return model.ProficiencyBasic
	}
	return model.ProficiencyConversational
}

// ParseLanguage reads "English (fluent)" style entries.
func ParseLanguage(s string) model.Language {
	name, _, _ := strings.Cut(s, "(")
	return model.Language{
		Name:        strings.TrimSpace(name),
		Proficiency: InferProficiency(s),
	}
}

func isLevel(s string) bool {
	switch s {
	case model.LevelBeginner, model.LevelIntermediate, model.LevelAdvanced, model.LevelExpert:
		return true
	}
	return false
}

// toSkill reads one technical skill entry. Unknown levels fall back to
// intermediate.
func toSkill(v interface{}) (model.Skill, bool) {
	sk := model.Skill{Level: model.LevelIntermediate}
	m := asMap(v)
	if m == nil {
		sk.Name = asString(v)
		return sk, sk.Name != ""
	}
	sk.Name = firstString(m, "name", "title", "skill")
	if lvl := strings.ToLower(str(m, "level")); isLevel(lvl) {
		sk.Level = lvl
	}
	sk.Years = asInt(m["years"])
	sk.Icon = str(m, "icon")
	sk.Certified = asBool(m["certified"])
	return sk, sk.Name != ""
}

// technicalSkills collapses any technical skills input (flat list, list of
// categories, map of category to list, or a comma-separated string) into the
// single "Technical Skills" category.
func technicalSkills(v interface{}) []model.SkillCategory {
	cat := model.NewSkillCategory(technicalCategory)
	collectSkills(v, &cat.Skills)
	return []model.SkillCategory{cat}
}

func collectSkills(v interface{}, dst *[]model.Skill) {
	if s, ok := v.(string); ok {
		for _, name := range splitCSV(s) {
			*dst = append(*dst, model.Skill{Name: name, Level: model.LevelIntermediate})
		}
		return
	}
	if m := asMap(v); m != nil {
		if nested, ok := m["skills"]; ok {
			collectSkills(nested, dst)
			return
		}
		if _, named := m["name"]; !named {
			keys := make([]string, 0, len(m))
			for k := range m {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				collectSkills(m[k], dst)
			}
			return
		}
	}
	for _, it := range asList(v) {
		if m := asMap(it); m != nil {
			if nested, ok := m["skills"]; ok {
				collectSkills(nested, dst)
				continue
			}
		}
		if sk, ok := toSkill(it); ok {
			*dst = append(*dst, sk)
		}
	}
}

func softSkills(v interface{}) []model.SoftSkill {
	out := []model.SoftSkill{}
	for _, name := range stringList(v) {
		out = append(out, model.NewSoftSkill(name))
	}
	return out
}

func languages(v interface{}) []model.Language {
	out := []model.Language{}
	for _, it := range asList(v) {
		if m := asMap(it); m != nil {
			name := str(m, "name")
			if name == "" {
				continue
			}
			lang := ParseLanguage(name)
			if p := str(m, "proficiency"); p != "" {
				lang.Proficiency = InferProficiency(p)
			}
			lang.Certification = str(m, "certification")
			out = append(out, lang)
			continue
		}
		if s := asString(it); s != "" {
			out = append(out, ParseLanguage(s))
		}
	}
	return out
}

func jobs(v interface{}) []model.Job {
	out := []model.Job{}
	for _, it := range asList(v) {
		m := asMap(it)
		if m == nil {
			continue
		}
		out = append(out, toJob(m))
	}
	return out
}

func toJob(m map[string]interface{}) model.Job {
	j := model.NewJob()
	j.ID = model.NewID()
	j.Company = str(m, "company")
	j.Position = firstString(m, "title", "position")
	j.Location = str(m, "location")
	j.Description = str(m, "description")
	j.Responsibilities = ParseResponsibilities(j.Description)
	j.Technologies = stringList(m["technologies"])
	j.Achievements = stringList(m["achievements"])
	j.CompanyWebsite = firstString(m, "companyWebsite", "website")

	duration := str(m, "duration")
	if duration == "" {
		start, end := str(m, "startDate"), str(m, "endDate")
		switch {
		case start != "" && end != "":
			duration = start + " - " + end
		case start != "":
			duration = start
		}
	}
	d := ParseDuration(duration)
	j.StartDate, j.EndDate, j.Current = d.StartDate, d.EndDate, d.Current
	return j
}

func degrees(v interface{}) []model.Degree {
	out := []model.Degree{}
	for _, it := range asList(v) {
		m := asMap(it)
		if m == nil {
			continue
		}
		d := model.NewDegree()
		d.ID = model.NewID()
		d.Institution = firstString(m, "institution", "school")
		d.Degree = str(m, "degree")
		d.Field = firstString(m, "field", "major")
		d.Grade = firstString(m, "gpa", "grade")
		d.StartDate = str(m, "startDate")
		d.EndDate = firstString(m, "year", "endDate")
		d.Description = str(m, "description")
		d.Courses = stringList(m["courses"])
		d.Honors = stringList(m["honors"])
		out = append(out, d)
	}
	return out
}

func projects(v interface{}) []model.Project {
	out := []model.Project{}
	for _, it := range asList(v) {
		switch v := it.(type) {
		case nil:
		case string:
			if title := strings.TrimSpace(v); title != "" {
				out = append(out, titledProject(title))
			}
		default:
			// objects map field by field; other scalars keep their slot untitled
			out = append(out, toProject(asMap(v)))
		}
	}
	return out
}

func toProject(m map[string]interface{}) model.Project {
	p := model.NewProject()
	p.ID = model.NewID()
	p.Title = firstString(m, "name", "title")
	p.Description = str(m, "description")
	p.Category = "Web Development"
	p.Status = "completed"

	tech := stringList(m["technologies"])
	if len(tech) == 0 {
		tech = stringList(m["tools"])
	}
	p.Technologies = tech
	if tags := stringList(m["technologies"]); len(tags) > 0 {
		p.Tags = tags
	} else {
		p.Tags = stringList(m["tags"])
	}

	link := firstString(m, "url", "link")
	p.Links.Live = link
	p.Links.Demo = link
	p.Links.GitHub = str(m, "github")
	p.Images = stringList(m["images"])
	return p
}

func titledProject(title string) model.Project {
	p := model.NewProject()
	p.ID = model.NewID()
	p.Title = title
	p.Category = "Web Development"
	p.Status = "completed"
	return p
}

// projectTitles splits a comma-separated project list into minimal records.
func projectTitles(s string) []model.Project {
	out := []model.Project{}
	for _, title := range splitCSV(s) {
		out = append(out, titledProject(title))
	}
	return out
}

func awards(v interface{}) []model.Award {
	out := []model.Award{}
	for _, it := range asList(v) {
		a := model.Award{ID: model.NewID(), Category: "recognition"}
		if m := asMap(it); m != nil {
			a.Title = firstString(m, "title", "name")
			a.Organization = firstString(m, "organization", "issuer")
			a.Date = str(m, "date")
			a.Description = str(m, "description")
			a.Link = firstString(m, "link", "url")
		} else {
			a.Title = asString(it)
		}
		if a.Title != "" {
			out = append(out, a)
		}
	}
	return out
}

func certifications(v interface{}) []model.Certification {
	out := []model.Certification{}
	for _, it := range asList(v) {
		c := model.NewCertification()
		c.ID = model.NewID()
		if m := asMap(it); m != nil {
			c.Name = firstString(m, "name", "title")
			c.Organization = firstString(m, "organization", "issuer")
			c.IssueDate = firstString(m, "issueDate", "date")
			c.VerificationLink = firstString(m, "verificationLink", "url", "link")
		} else {
			c.Name = asString(it)
		}
		if c.Name != "" {
			out = append(out, c)
		}
	}
	return out
}

func publications(v interface{}) []model.Publication {
	out := []model.Publication{}
	for _, it := range asList(v) {
		p := model.NewPublication()
		p.ID = model.NewID()
		p.Type = "article"
		if m := asMap(it); m != nil {
			p.Title = firstString(m, "title", "name")
			p.Publisher = firstString(m, "publisher", "organization")
			p.Date = str(m, "date")
			p.Link = firstString(m, "link", "url")
		} else {
			p.Title = asString(it)
		}
		if p.Title != "" {
			out = append(out, p)
		}
	}
	return out
}

// applySkills fills the skills section from any of the known input shapes.
func applySkills(dst *model.Skills, m map[string]interface{}) {
	if m == nil {
		return
	}
	if v, ok := m["technical"]; ok && v != nil {
		dst.Technical = technicalSkills(v)
	}
	if v, ok := m["soft"]; ok && v != nil {
		dst.Soft = softSkills(v)
	}
	if v, ok := m["languages"]; ok && v != nil {
		dst.Languages = languages(v)
	}
}

func applyAchievements(dst *model.Achievements, m map[string]interface{}) {
	if m == nil {
		return
	}
	if v, ok := m["awards"]; ok {
		dst.Awards = awards(v)
	}
	if v, ok := m["certifications"]; ok {
		dst.Certifications = certifications(v)
	}
	if v, ok := m["publications"]; ok {
		dst.Publications = publications(v)
	}
}
