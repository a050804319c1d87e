package portfolio

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/Zachkp/folio/internal/domain"
	"github.com/Zachkp/folio/internal/filter"
	"github.com/Zachkp/folio/internal/loader"
	"github.com/Zachkp/folio/internal/render"
)

// Page is the whole portfolio display model.
type Page struct {
	About       render.AboutView
	Skills      []render.Chip
	Experience  []render.ExperienceItem
	Projects    render.View
	Active      string
	ContactHref string
}

// ProjectsResult is what a project filter action re-renders: the project
// region plus the chips whose active state may have changed.
type ProjectsResult struct {
	Projects render.View
	Skills   []render.Chip
	Active   string
}

// ResultObserver is told the size of every result list.
type ResultObserver interface {
	ObserveResults(view, action string, n int)
}

// Service serves the portfolio view over a published snapshot.
type Service struct {
	snap     *loader.Snapshot[Portfolio]
	observer ResultObserver
}

// NewService creates a Service over snap.
func NewService(snap *loader.Snapshot[Portfolio]) *Service {
	return &Service{snap: snap}
}

// WithObserver attaches a result size observer.
func (s *Service) WithObserver(o ResultObserver) *Service {
	s.observer = o
	return s
}

// Status returns the portfolio load status.
func (s *Service) Status() loader.Status {
	return s.snap.Status()
}

// Page renders the full portfolio with sess applied to the projects.
func (s *Service) Page(sess Session) (Page, error) {
	p, err := s.portfolio()
	if err != nil {
		return Page{Projects: render.Projects(nil, "")}, err
	}

	projects := filter.ByTag(p.Projects, sess.Active())
	return Page{
		About:       render.About(p.About),
		Skills:      render.Skills(p.Skills, sess.Active()),
		Experience:  render.Experience(p.Experience),
		Projects:    s.projectsView("page", projects, sess.Active()),
		Active:      sess.Active(),
		ContactHref: MailtoLink(p.About.Email, p.About.Name),
	}, nil
}

// Projects renders the projects filtered by the session's active tag.
func (s *Service) Projects(sess Session) (ProjectsResult, error) {
	p, err := s.portfolio()
	if err != nil {
		return ProjectsResult{Projects: render.Projects(nil, "")}, err
	}

	active := sess.Active()
	return ProjectsResult{
		Projects: s.projectsView("tag", filter.ByTag(p.Projects, active), active),
		Skills:   render.Skills(p.Skills, active),
		Active:   active,
	}, nil
}

// Search renders the projects matching query. The tag filter is not applied
// to search results; only one criterion is active at a time.
func (s *Service) Search(query string) (ProjectsResult, error) {
	p, err := s.portfolio()
	if err != nil {
		return ProjectsResult{Projects: render.Projects(nil, "")}, err
	}

	return ProjectsResult{
		Projects: s.projectsView("search", filter.BySubstring(p.Projects, query), ""),
		Skills:   render.Skills(p.Skills, ""),
	}, nil
}

// ContactHref returns the mail link for the loaded profile.
func (s *Service) ContactHref() (string, error) {
	p, err := s.portfolio()
	if err != nil {
		return "", err
	}
	if p.About.Email == "" {
		return "", fmt.Errorf("contact: no email in profile: %w", domain.ErrNotReady)
	}
	return MailtoLink(p.About.Email, p.About.Name), nil
}

func (s *Service) portfolio() (Portfolio, error) {
	p, status := s.snap.Get()
	if status != loader.Loaded {
		return Portfolio{}, fmt.Errorf("portfolio %s: %w", status, domain.ErrNotReady)
	}
	return p, nil
}

func (s *Service) projectsView(action string, projects []domain.Project, active string) render.View {
	if s.observer != nil {
		s.observer.ObserveResults("projects", action, len(projects))
	}
	return render.Projects(projects, active)
}

// MailtoLink builds the "let's talk" mail link addressed to email. The
// subject greets the first word of name.
func MailtoLink(email, name string) string {
	if email == "" {
		return ""
	}
	subject := "Let's talk"
	if first, _, _ := strings.Cut(strings.TrimSpace(name), " "); first != "" {
		subject = "Hi " + first + " — Let's talk"
	}
	return "mailto:" + email + "?subject=" + url.PathEscape(subject)
}
