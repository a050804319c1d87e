package domain

// Project is a portfolio project card. Tech doubles as its tag list.
type Project struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tech        []string `json:"tech"`
	Demo        string   `json:"demo,omitempty"`
	Repo        string   `json:"repo,omitempty"`
}

// Tags returns the project's technology tags.
func (p Project) Tags() []string { return p.Tech }

// SearchText returns the fields matched by free-text search.
func (p Project) SearchText() (title, description string, tags []string) {
	return p.Title, p.Description, p.Tech
}

// Skill is a named skill; the name is also a project filter tag.
type Skill struct {
	Name string `json:"name"`
}

// Experience is one entry of the work history.
type Experience struct {
	Role     string   `json:"role"`
	Company  string   `json:"company"`
	Period   string   `json:"period"`
	Location string   `json:"location,omitempty"`
	Summary  string   `json:"summary,omitempty"`
	Details  []string `json:"details,omitempty"`
}

// About holds the portfolio owner's profile. Stats are kept raw since the
// documents in the wild carry them as either numbers or strings like "3+".
type About struct {
	Name            string `json:"name"`
	Role            string `json:"role"`
	Bio             string `json:"bio"`
	Avatar          string `json:"avatar,omitempty"`
	Email           string `json:"email"`
	Phone           string `json:"phone,omitempty"`
	LinkedIn        string `json:"linkedin,omitempty"`
	GitHub          string `json:"github,omitempty"`
	Portfolio       string `json:"portfolio,omitempty"`
	ExperienceYears Stat   `json:"experience_years,omitempty"`
	ProjectsCount   Stat   `json:"projects_count,omitempty"`
}

// ProjectsDocument is the wire shape of projects.json.
type ProjectsDocument struct {
	Projects []Project `json:"projects"`
}

// SkillsDocument is the wire shape of skills.json.
type SkillsDocument struct {
	Skills []Skill `json:"skills"`
}

// ExperienceDocument is the wire shape of experience.json.
type ExperienceDocument struct {
	Experience []Experience `json:"experience"`
}
