package render

import (
	"strings"

	"github.com/Zachkp/folio/internal/domain"
)

// Fallbacks for absent profile values.
const (
	DefaultAvatar = "/static/img/avatar.svg"
	MissingLink   = "#"
	MissingStat   = "—"
)

// Projects builds one card per project; chips equal to active are marked.
func Projects(projects []domain.Project, active string) View {
	if len(projects) == 0 {
		return View{Empty: NoProjects}
	}

	cards := make([]Card, 0, len(projects))
	for _, p := range projects {
		card := Card{
			Title:       p.Title,
			Description: p.Description,
			Chips:       chips(p.Tech, active),
		}
		if p.Demo != "" {
			card.Links = append(card.Links, Link{Label: "Live", Href: p.Demo})
		}
		if p.Repo != "" {
			card.Links = append(card.Links, Link{Label: "Code", Href: p.Repo})
		}
		cards = append(cards, card)
	}
	return View{Cards: cards}
}

// Skills renders the skill list as filter chips.
func Skills(skills []domain.Skill, active string) []Chip {
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Name)
	}
	return chips(names, active)
}

func chips(labels []string, active string) []Chip {
	out := make([]Chip, 0, len(labels))
	for _, l := range labels {
		out = append(out, Chip{Label: l, Active: active != "" && l == active})
	}
	return out
}

// ExperienceItem is one entry of the work history with a show-more body.
type ExperienceItem struct {
	Heading string
	Company string
	Meta    string
	Summary string
	Details []string
}

// Experience renders the work history in input order.
func Experience(items []domain.Experience) []ExperienceItem {
	out := make([]ExperienceItem, 0, len(items))
	for _, e := range items {
		out = append(out, ExperienceItem{
			Heading: e.Role,
			Company: e.Company,
			Meta:    e.Period + " • " + e.Location,
			Summary: e.Summary,
			Details: e.Details,
		})
	}
	return out
}

// AboutView is the header and contact block of the portfolio.
type AboutView struct {
	Name            string
	Role            string
	Bio             string
	Avatar          string
	Email           string
	EmailHref       string
	Phone           string
	LinkedIn        string
	GitHub          string
	Portfolio       string
	ExperienceYears string
	ProjectsCount   string
}

// About renders the profile with fallbacks for absent values.
func About(a domain.About) AboutView {
	v := AboutView{
		Name:            a.Name,
		Role:            a.Role,
		Bio:             a.Bio,
		Avatar:          orDefault(a.Avatar, DefaultAvatar),
		Email:           a.Email,
		Phone:           a.Phone,
		LinkedIn:        orDefault(a.LinkedIn, MissingLink),
		GitHub:          orDefault(a.GitHub, MissingLink),
		Portfolio:       orDefault(a.Portfolio, MissingLink),
		ExperienceYears: orDefault(string(a.ExperienceYears), MissingStat),
		ProjectsCount:   orDefault(string(a.ProjectsCount), MissingStat),
	}
	if a.Email != "" {
		v.EmailHref = "mailto:" + a.Email
	}
	return v
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
