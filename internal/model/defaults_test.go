package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyReturnsIndependentCopies(t *testing.T) {
	a := Empty()
	b := Empty()

	a.Personal.FirstName = "Jane"
	a.About.Interests = append(a.About.Interests, "climbing")
	a.Metadata.Schema["@type"] = "Person"
	a.Theme.DarkMode = true

	assert.Empty(t, b.Personal.FirstName)
	assert.Empty(t, b.About.Interests)
	assert.Empty(t, b.Metadata.Schema)
	assert.False(t, b.Theme.DarkMode)
	assert.Equal(t, Empty(), b)
}

func TestEmptyHasEveryCollection(t *testing.T) {
	b, err := json.Marshal(Empty())
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &doc))

	for _, key := range []string{"personal", "about", "experience", "education", "skills", "projects", "achievements", "contact", "metadata", "theme", "analytics"} {
		assert.Contains(t, doc, key)
	}

	personal := doc["personal"].(map[string]interface{})
	assert.IsType(t, map[string]interface{}{}, personal["location"])
	assert.IsType(t, map[string]interface{}{}, personal["social"])
	assert.Equal(t, "", personal["social"].(map[string]interface{})["linkedin"])

	assert.Equal(t, []interface{}{}, doc["experience"].(map[string]interface{})["jobs"])
	assert.Equal(t, []interface{}{}, doc["skills"].(map[string]interface{})["technical"])
	assert.Equal(t, []interface{}{}, doc["achievements"].(map[string]interface{})["patents"])
	assert.Equal(t, "email", doc["contact"].(map[string]interface{})["preferredContact"])
}

func TestDecodeKeepsDefaultsForMissingKeys(t *testing.T) {
	p, err := Decode([]byte(`{
		"personal": {"firstName": "Jane"},
		"experience": {"jobs": [{"company": "Acme"}]},
		"skills": {"technical": null}
	}`))
	require.NoError(t, err)

	assert.Equal(t, "Jane", p.Personal.FirstName)
	require.Len(t, p.Experience.Jobs, 1)
	assert.Equal(t, "Acme", p.Experience.Jobs[0].Company)
	assert.NotNil(t, p.Experience.Jobs[0].Responsibilities)
	assert.NotNil(t, p.Experience.Jobs[0].Technologies)

	assert.NotNil(t, p.Skills.Technical)
	assert.Empty(t, p.Skills.Technical)
	assert.NotNil(t, p.Projects.Items)
	assert.Equal(t, "#3B82F6", p.Theme.PrimaryColor)
	assert.True(t, p.Theme.Animations)
	assert.NotNil(t, p.Metadata.Schema)
}

func TestDecodeRejectsMalformedJSON(t *testing.T) {
	_, err := Decode([]byte(`{"personal": `))
	assert.Error(t, err)

	_, err = Decode([]byte(`{"personal": "Jane"}`))
	assert.Error(t, err)
}

func TestFromMap(t *testing.T) {
	p, err := FromMap(map[string]any{
		"personal": map[string]any{"email": "jane@example.com"},
		"projects": map[string]any{"items": []any{map[string]any{"title": "Site"}}},
	})
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", p.Personal.Email)
	require.Len(t, p.Projects.Items, 1)
	assert.Equal(t, "Site", p.Projects.Items[0].Title)
	assert.NotNil(t, p.Projects.Items[0].Tags)
}

func TestFullName(t *testing.T) {
	tests := []struct {
		first, last, want string
	}{
		{"Jane", "Doe", "Jane Doe"},
		{"Jane", "", "Jane"},
		{"", "Doe", "Doe"},
		{"", "", ""},
	}
	for _, tt := range tests {
		p := Personal{FirstName: tt.first, LastName: tt.last}
		assert.Equal(t, tt.want, p.FullName())
	}
}

func TestSocialLinksSkipsEmpty(t *testing.T) {
	s := Social{GitHub: "https://github.com/jane", Medium: "https://medium.com/@jane"}
	assert.Equal(t, []SocialLink{
		{Platform: "github", URL: "https://github.com/jane"},
		{Platform: "medium", URL: "https://medium.com/@jane"},
	}, s.Links())
	assert.Empty(t, Social{}.Links())
}

func TestPortfolioTypes(t *testing.T) {
	assert.Equal(t, []string{"academic", "designer", "developer", "marketing"}, PortfolioTypeNames())
	assert.True(t, IsPortfolioType(DefaultPortfolioType))
	assert.False(t, IsPortfolioType("astronaut"))
	assert.Contains(t, PortfolioTypes()["academic"].RequiredSections, "education")
}
