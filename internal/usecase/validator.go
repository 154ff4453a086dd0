package usecase

import (
	"errors"
	"math"
	"regexp"

	"go.uber.org/multierr"

	"portfolio-builder/internal/model"
)

const (
	MsgFirstNameRequired = "First name is required"
	MsgLastNameRequired  = "Last name is required"
	MsgEmailRequired     = "Email is required"
	MsgEmailInvalid      = "Please provide a valid email address"

	MsgSummaryRecommended = "Professional summary is recommended"
	MsgAddExperience      = "Adding work experience will make your portfolio more compelling"
	MsgAddSkills          = "Adding technical skills will help showcase your expertise"
	MsgAddProjects        = "Adding projects will demonstrate your practical experience"

	MsgUnexpectedFormat = "Data validation failed due to unexpected format"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidationResult separates blocking errors from advisory warnings.
type ValidationResult struct {
	IsValid      bool     `json:"isValid"`
	Errors       []string `json:"errors"`
	Warnings     []string `json:"warnings"`
	Completeness int      `json:"completeness"`
}

// Err folds the blocking errors into a single error, or nil when valid.
func (r ValidationResult) Err() error {
	var err error
	for _, msg := range r.Errors {
		err = multierr.Append(err, errors.New(msg))
	}
	return err
}

func unexpectedFormat() ValidationResult {
	return ValidationResult{
		IsValid:  false,
		Errors:   []string{MsgUnexpectedFormat},
		Warnings: []string{},
	}
}

// Validate checks required fields and scores completeness.
func Validate(p *model.Portfolio) (res ValidationResult) {
	if p == nil {
		return unexpectedFormat()
	}
	defer func() {
		if r := recover(); r != nil {
			res = unexpectedFormat()
		}
	}()

	res.Errors = []string{}
	res.Warnings = []string{}

	if p.Personal.FirstName == "" {
		res.Errors = append(res.Errors, MsgFirstNameRequired)
	}
	if p.Personal.LastName == "" {
		res.Errors = append(res.Errors, MsgLastNameRequired)
	}
	if p.Personal.Email == "" {
		res.Errors = append(res.Errors, MsgEmailRequired)
	}
	if p.About.Summary == "" {
		res.Warnings = append(res.Warnings, MsgSummaryRecommended)
	}
	if p.Personal.Email != "" && !IsValidEmail(p.Personal.Email) {
		res.Errors = append(res.Errors, MsgEmailInvalid)
	}
	if len(p.Experience.Jobs) == 0 {
		res.Warnings = append(res.Warnings, MsgAddExperience)
	}
	if len(p.Skills.Technical) == 0 {
		res.Warnings = append(res.Warnings, MsgAddSkills)
	}
	if len(p.Projects.Items) == 0 {
		res.Warnings = append(res.Warnings, MsgAddProjects)
	}

	res.IsValid = len(res.Errors) == 0
	res.Completeness = Completeness(p)
	return res
}

// ValidateDocument validates an untyped document. Documents that do not fit
// the canonical shape get the generic failure result.
func ValidateDocument(doc map[string]interface{}) ValidationResult {
	if doc == nil {
		return unexpectedFormat()
	}
	if err := model.ValidateMap(doc); err != nil {
		return unexpectedFormat()
	}
	p, err := model.FromMap(doc)
	if err != nil {
		return unexpectedFormat()
	}
	return Validate(p)
}

// IsValidEmail applies a loose something@something.tld check.
func IsValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

type sectionWeight struct {
	name     string
	weight   int
	complete func(*model.Portfolio) bool
}

var completenessWeights = []sectionWeight{
	{"personal", 20, func(p *model.Portfolio) bool {
		return p.Personal.FirstName != "" && p.Personal.LastName != "" && p.Personal.Email != ""
	}},
	{"about", 15, func(p *model.Portfolio) bool { return p.About.Summary != "" }},
	{"experience", 20, func(p *model.Portfolio) bool { return len(p.Experience.Jobs) > 0 }},
	{"skills", 15, func(p *model.Portfolio) bool { return len(p.Skills.Technical) > 0 }},
	{"projects", 20, func(p *model.Portfolio) bool { return len(p.Projects.Items) > 0 }},
	{"contact", 10, func(p *model.Portfolio) bool { return p.Personal.Email != "" || p.Contact.Email != "" }},
}

// Completeness returns the weighted share (0-100) of complete sections.
func Completeness(p *model.Portfolio) int {
	if p == nil {
		return 0
	}
	total, done := 0, 0
	for _, s := range completenessWeights {
		total += s.weight
		if s.complete(p) {
			done += s.weight
		}
	}
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(done) / float64(total) * 100))
}
