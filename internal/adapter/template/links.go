package template

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"

	"portfolio-builder/internal/model"
)

// SocialLink is a profile link as the templates display it.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Label    string `json:"label"`
}

// URLLabel returns a short domain-only label for a link, e.g.
// "github.com" for "https://www.github.com/jane". fallback is used when the
// link has no usable host.
func URLLabel(raw, fallback string) string {
	candidate := strings.TrimSpace(raw)
	if candidate == "" || candidate == "#" {
		return fallback
	}
	// ensure scheme present for parsing
	if !strings.HasPrefix(candidate, "http://") && !strings.HasPrefix(candidate, "https://") {
		candidate = "https://" + candidate
	}
	parsed, err := url.Parse(candidate)
	if err != nil {
		return fallback
	}
	host := parsed.Hostname()
	if host == "" {
		return fallback
	}
	if etld, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return strings.TrimPrefix(etld, "www.")
	}
	return strings.TrimPrefix(host, "www.")
}

func socialLinks(s model.Social) []SocialLink {
	out := []SocialLink{}
	for _, l := range s.Links() {
		out = append(out, SocialLink{Platform: l.Platform, URL: l.URL, Label: URLLabel(l.URL, l.Platform)})
	}
	return out
}

// displayName is "First Last" when both parts exist, else fallback.
func displayName(p model.Personal, fallback string) string {
	if p.FirstName != "" && p.LastName != "" {
		return p.FirstName + " " + p.LastName
	}
	return fallback
}

func orHash(s string) string {
	if s == "" {
		return "#"
	}
	return s
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func allSkills(p *model.Portfolio) []model.Skill {
	var out []model.Skill
	for _, c := range p.Skills.Technical {
		out = append(out, c.Skills...)
	}
	return out
}

func limit[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
