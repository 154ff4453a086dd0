package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"portfolio-builder/internal/model"
)

func TestValidateEmptyRecord(t *testing.T) {
	res := Validate(model.Empty())
	assert.False(t, res.IsValid)
	assert.Equal(t, []string{MsgFirstNameRequired, MsgLastNameRequired, MsgEmailRequired}, res.Errors)
	assert.Equal(t, []string{MsgSummaryRecommended, MsgAddExperience, MsgAddSkills, MsgAddProjects}, res.Warnings)
	assert.Equal(t, 0, res.Completeness)
}

func TestValidateInvalidEmail(t *testing.T) {
	p := model.Empty()
	p.Personal.FirstName = "Jane"
	p.Personal.LastName = "Doe"
	p.Personal.Email = "not-an-email"

	res := Validate(p)
	assert.False(t, res.IsValid)
	assert.Equal(t, []string{MsgEmailInvalid}, res.Errors)
}

func TestValidateMissingFirstNameAlwaysErrors(t *testing.T) {
	p := richRecord()
	p.Personal.FirstName = ""
	p.Experience.Jobs = []model.Job{model.NewJob()}
	p.Projects.Items = []model.Project{model.NewProject()}

	res := Validate(p)
	assert.False(t, res.IsValid)
	assert.Contains(t, res.Errors, MsgFirstNameRequired)
	assert.Empty(t, res.Warnings)
}

func TestValidateCompleteRecord(t *testing.T) {
	p := richRecord()
	p.Experience.Jobs = []model.Job{model.NewJob()}
	p.Projects.Items = []model.Project{model.NewProject()}

	res := Validate(p)
	assert.True(t, res.IsValid)
	assert.Empty(t, res.Errors)
	assert.Empty(t, res.Warnings)
	assert.Equal(t, 100, res.Completeness)
	assert.NoError(t, res.Err())
}

func TestValidateNil(t *testing.T) {
	res := Validate(nil)
	assert.False(t, res.IsValid)
	assert.Equal(t, []string{MsgUnexpectedFormat}, res.Errors)
	assert.Equal(t, 0, res.Completeness)
}

func TestValidationResultErr(t *testing.T) {
	res := Validate(model.Empty())
	err := res.Err()
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 3)
	assert.Contains(t, err.Error(), MsgEmailRequired)
}

func TestCompleteness(t *testing.T) {
	personalOnly := model.Empty()
	personalOnly.Personal.FirstName = "Jane"
	personalOnly.Personal.LastName = "Doe"
	personalOnly.Personal.Email = "jane@example.com"
	personalOnly.Contact.Email = "jane@example.com"

	contactOnly := model.Empty()
	contactOnly.Contact.Email = "jane@example.com"

	partial := model.Empty()
	partial.About.Summary = "Engineer"
	partial.Skills.Technical = []model.SkillCategory{model.NewSkillCategory("Technical Skills")}

	tests := []struct {
		name string
		p    *model.Portfolio
		want int
	}{
		{"empty", model.Empty(), 0},
		{"personal and contact", personalOnly, 30},
		{"contact only", contactOnly, 10},
		{"about and skills", partial, 30},
		{"nil", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Completeness(tt.p))
		})
	}
}

func TestCompletenessWeightsSumTo100(t *testing.T) {
	total := 0
	for _, w := range completenessWeights {
		total += w.weight
	}
	assert.Equal(t, 100, total)
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"jane@example.com", true},
		{"jane.doe+tag@mail.example.co.uk", true},
		{"not-an-email", false},
		{"jane@example", false},
		{"jane doe@example.com", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidEmail(tt.in))
		})
	}
}

func TestValidateDocument(t *testing.T) {
	res := ValidateDocument(map[string]interface{}{
		"personal": map[string]interface{}{"firstName": "Jane", "lastName": "Doe", "email": "jane@example.com"},
		"contact":  map[string]interface{}{"email": "jane@example.com"},
	})
	assert.True(t, res.IsValid)
	assert.Equal(t, 30, res.Completeness)

	for name, doc := range map[string]map[string]interface{}{
		"nil":          nil,
		"wrong shapes": {"personal": []interface{}{"Jane"}},
		"jobs string":  {"experience": map[string]interface{}{"jobs": "Acme"}},
	} {
		t.Run(name, func(t *testing.T) {
			res := ValidateDocument(doc)
			assert.False(t, res.IsValid)
			assert.Equal(t, []string{MsgUnexpectedFormat}, res.Errors)
			assert.Equal(t, 0, res.Completeness)
		})
	}
}
