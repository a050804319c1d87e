// Package portfolio loads the portfolio documents and serves the project
// filters, the skill chips and the contact link.
package portfolio

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/Zachkp/folio/internal/domain"
	"github.com/Zachkp/folio/internal/loader"
)

// Portfolio is every document the page renders.
type Portfolio struct {
	About      domain.About
	Skills     []domain.Skill
	Experience []domain.Experience
	Projects   []domain.Project
}

// Sources locates the four portfolio documents.
type Sources struct {
	About      string
	Skills     string
	Experience string
	Projects   string
}

// Fetcher reads a JSON document into v.
type Fetcher interface {
	FetchJSON(ctx context.Context, src string, v any) error
}

// Load returns a LoadFunc fetching all four documents concurrently. The
// portfolio is published only when every document decodes.
func Load(f Fetcher, src Sources) loader.LoadFunc[Portfolio] {
	return func(ctx context.Context) (Portfolio, error) {
		var (
			about      domain.About
			skills     domain.SkillsDocument
			experience domain.ExperienceDocument
			projects   domain.ProjectsDocument
		)

		g, gctx := errgroup.WithContext(ctx)
		fetch := func(name, path string, v any) {
			g.Go(func() error {
				if err := f.FetchJSON(gctx, path, v); err != nil {
					return fmt.Errorf("load %s: %w", name, err)
				}
				return nil
			})
		}
		fetch("about", src.About, &about)
		fetch("skills", src.Skills, &skills)
		fetch("experience", src.Experience, &experience)
		fetch("projects", src.Projects, &projects)

		if err := g.Wait(); err != nil {
			return Portfolio{}, err
		}

		return Portfolio{
			About:      about,
			Skills:     skills.Skills,
			Experience: experience.Experience,
			Projects:   projects.Projects,
		}, nil
	}
}
