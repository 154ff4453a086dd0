package model

// Go models that match portfolio.schema.json. Every mapper in the repo converges
// on Portfolio; every template adapter reads from it.

type Location struct {
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

type Social struct {
	LinkedIn  string `json:"linkedin"`
	GitHub    string `json:"github"`
	Portfolio string `json:"portfolio"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
	Behance   string `json:"behance"`
	Dribbble  string `json:"dribbble"`
	Medium    string `json:"medium"`
	YouTube   string `json:"youtube"`
}

// SocialLink is a single non-empty entry of Social.
type SocialLink struct {
	Platform string
	URL      string
}

// Links returns the non-empty social links in declaration order.
func (s Social) Links() []SocialLink {
	all := []SocialLink{
		{"linkedin", s.LinkedIn},
		{"github", s.GitHub},
		{"portfolio", s.Portfolio},
		{"twitter", s.Twitter},
		{"instagram", s.Instagram},
		{"behance", s.Behance},
		{"dribbble", s.Dribbble},
		{"medium", s.Medium},
		{"youtube", s.YouTube},
	}
	out := make([]SocialLink, 0, len(all))
	for _, l := range all {
		if l.URL != "" {
			out = append(out, l)
		}
	}
	return out
}

type Personal struct {
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	Title        string   `json:"title"`
	Subtitle     string   `json:"subtitle"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	Location     Location `json:"location"`
	Social       Social   `json:"social"`
	Avatar       string   `json:"avatar"`
	Tagline      string   `json:"tagline"`
	Availability string   `json:"availability"`
}

type About struct {
	Summary        string   `json:"summary"`
	Bio            string   `json:"bio"`
	Interests      []string `json:"interests"`
	PersonalValues []string `json:"personalValues"`
	FunFacts       []string `json:"funFacts"`
}

type Job struct {
	ID               string   `json:"id"`
	Company          string   `json:"company"`
	Position         string   `json:"position"`
	Location         string   `json:"location"`
	StartDate        string   `json:"startDate"`
	EndDate          string   `json:"endDate"`
	Current          bool     `json:"current"`
	Description      string   `json:"description"`
	Responsibilities []string `json:"responsibilities"`
	Achievements     []string `json:"achievements"`
	Technologies     []string `json:"technologies"`
	Projects         []string `json:"projects"`
	CompanyLogo      string   `json:"companyLogo"`
	CompanyWebsite   string   `json:"companyWebsite"`
}

type Experience struct {
	Jobs []Job `json:"jobs"`
}

type Degree struct {
	ID          string   `json:"id"`
	Institution string   `json:"institution"`
	Degree      string   `json:"degree"`
	Field       string   `json:"field"`
	Grade       string   `json:"grade"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Current     bool     `json:"current"`
	Description string   `json:"description"`
	Courses     []string `json:"courses"`
	Activities  []string `json:"activities"`
	Honors      []string `json:"honors"`
	Thesis      string   `json:"thesis"`
	Logo        string   `json:"logo"`
}

type Education struct {
	Degrees []Degree `json:"degrees"`
}

// Skill levels.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
	LevelExpert       = "expert"
)

// Language proficiencies.
const (
	ProficiencyNative         = "native"
	ProficiencyFluent         = "fluent"
	ProficiencyConversational = "conversational"
	ProficiencyBasic          = "basic"
)

type Skill struct {
	Name      string `json:"name"`
	Level     string `json:"level"`
	Years     int    `json:"years"`
	Icon      string `json:"icon"`
	Certified bool   `json:"certified"`
}

type SkillCategory struct {
	Category string  `json:"category"`
	Skills   []Skill `json:"skills"`
}

type SoftSkill struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Examples    []string `json:"examples"`
}

type Language struct {
	Name          string `json:"name"`
	Proficiency   string `json:"proficiency"`
	Certification string `json:"certification"`
}

type Skills struct {
	Technical []SkillCategory `json:"technical"`
	Soft      []SoftSkill     `json:"soft"`
	Languages []Language      `json:"languages"`
}

type ProjectLinks struct {
	Live          string `json:"live"`
	GitHub        string `json:"github"`
	Demo          string `json:"demo"`
	Documentation string `json:"documentation"`
}

type ProjectMetrics struct {
	Users       string `json:"users"`
	Performance string `json:"performance"`
	Impact      string `json:"impact"`
}

type Testimonial struct {
	Text   string `json:"text"`
	Author string `json:"author"`
	Title  string `json:"title"`
	Avatar string `json:"avatar"`
}

type Project struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	LongDescription string         `json:"longDescription"`
	Category        string         `json:"category"`
	Tags            []string       `json:"tags"`
	Technologies    []string       `json:"technologies"`
	Status          string         `json:"status"`
	StartDate       string         `json:"startDate"`
	EndDate         string         `json:"endDate"`
	Images          []string       `json:"images"`
	Videos          []string       `json:"videos"`
	Links           ProjectLinks   `json:"links"`
	Features        []string       `json:"features"`
	Challenges      []string       `json:"challenges"`
	Learnings       []string       `json:"learnings"`
	TeamSize        int            `json:"teamSize"`
	Role            string         `json:"role"`
	Client          string         `json:"client"`
	Metrics         ProjectMetrics `json:"metrics"`
	Testimonial     Testimonial    `json:"testimonial"`
}

type Projects struct {
	Items []Project `json:"items"`
}

type Award struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Organization string `json:"organization"`
	Date         string `json:"date"`
	Description  string `json:"description"`
	Image        string `json:"image"`
	Link         string `json:"link"`
	Category     string `json:"category"`
}

type Certification struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Organization     string   `json:"organization"`
	IssueDate        string   `json:"issueDate"`
	ExpiryDate       string   `json:"expiryDate"`
	CredentialID     string   `json:"credentialId"`
	VerificationLink string   `json:"verificationLink"`
	Image            string   `json:"image"`
	Skills           []string `json:"skills"`
}

type Publication struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Type        string   `json:"type"`
	Publisher   string   `json:"publisher"`
	Date        string   `json:"date"`
	Description string   `json:"description"`
	Link        string   `json:"link"`
	CoAuthors   []string `json:"coAuthors"`
	Citations   int      `json:"citations"`
}

type Patent struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Number      string   `json:"number"`
	Status      string   `json:"status"`
	Date        string   `json:"date"`
	Description string   `json:"description"`
	Inventors   []string `json:"inventors"`
	Assignee    string   `json:"assignee"`
}

type Achievements struct {
	Awards         []Award         `json:"awards"`
	Certifications []Certification `json:"certifications"`
	Publications   []Publication   `json:"publications"`
	Patents        []Patent        `json:"patents"`
}

type Rates struct {
	Hourly   string `json:"hourly"`
	Project  string `json:"project"`
	Retainer string `json:"retainer"`
}

type Contact struct {
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	PreferredContact string   `json:"preferredContact"`
	Timezone         string   `json:"timezone"`
	Availability     string   `json:"availability"`
	Rates            Rates    `json:"rates"`
	Services         []string `json:"services"`
	WorkingHours     string   `json:"workingHours"`
	ResponseTime     string   `json:"responseTime"`
}

type Metadata struct {
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Keywords     []string       `json:"keywords"`
	OGImage      string         `json:"ogImage"`
	CanonicalURL string         `json:"canonicalUrl"`
	Schema       map[string]any `json:"schema"`
}

type Theme struct {
	PrimaryColor    string `json:"primaryColor"`
	SecondaryColor  string `json:"secondaryColor"`
	AccentColor     string `json:"accentColor"`
	BackgroundColor string `json:"backgroundColor"`
	TextColor       string `json:"textColor"`
	Font            string `json:"font"`
	DarkMode        bool   `json:"darkMode"`
	Animations      bool   `json:"animations"`
	Layout          string `json:"layout"`
}

type Analytics struct {
	GoogleAnalytics  string   `json:"googleAnalytics"`
	GoogleTagManager string   `json:"googleTagManager"`
	Hotjar           string   `json:"hotjar"`
	Mixpanel         string   `json:"mixpanel"`
	CustomEvents     []string `json:"customEvents"`
}

// Portfolio is the canonical portfolio record.
type Portfolio struct {
	Personal     Personal     `json:"personal"`
	About        About        `json:"about"`
	Experience   Experience   `json:"experience"`
	Education    Education    `json:"education"`
	Skills       Skills       `json:"skills"`
	Projects     Projects     `json:"projects"`
	Achievements Achievements `json:"achievements"`
	Contact      Contact      `json:"contact"`
	Metadata     Metadata     `json:"metadata"`
	Theme        Theme        `json:"theme"`
	Analytics    Analytics    `json:"analytics"`
}

// FullName joins first and last name, skipping empty parts.
func (p *Personal) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}
