// Package recipes is the recipe finder controller: it reads the published
// recipe list, runs the matching filter and hands the result to the renderer.
package recipes

import (
	"context"
	"fmt"

	"github.com/Zachkp/folio/internal/domain"
	"github.com/Zachkp/folio/internal/filter"
	"github.com/Zachkp/folio/internal/loader"
	"github.com/Zachkp/folio/internal/render"
)

// Fetcher reads a JSON document into v.
type Fetcher interface {
	FetchJSON(ctx context.Context, src string, v any) error
}

// Load returns a LoadFunc that reads the recipe array at src.
func Load(f Fetcher, src string) loader.LoadFunc[[]domain.Recipe] {
	return func(ctx context.Context) ([]domain.Recipe, error) {
		var recipes []domain.Recipe
		if err := f.FetchJSON(ctx, src, &recipes); err != nil {
			return nil, fmt.Errorf("load recipes: %w", err)
		}
		return recipes, nil
	}
}

// ResultObserver is told the size of every result list.
type ResultObserver interface {
	ObserveResults(view, action string, n int)
}

// Finder serves the recipe finder actions.
type Finder struct {
	snap     *loader.Snapshot[[]domain.Recipe]
	intn     func(n int) int
	observer ResultObserver
}

// NewFinder creates a Finder over snap. intn picks random indices.
func NewFinder(snap *loader.Snapshot[[]domain.Recipe], intn func(n int) int) *Finder {
	return &Finder{snap: snap, intn: intn}
}

// WithObserver attaches a result size observer.
func (f *Finder) WithObserver(o ResultObserver) *Finder {
	f.observer = o
	return f
}

// Ready reports whether the finder's actions are enabled.
func (f *Finder) Ready() bool {
	return f.snap.Status() == loader.Loaded
}

// Status returns the recipe load status.
func (f *Finder) Status() loader.Status {
	return f.snap.Status()
}

// Matches renders the recipes containing every ingredient in input, a
// comma-separated list.
func (f *Finder) Matches(input string) (render.View, error) {
	recipes, err := f.recipes()
	if err != nil {
		return render.Recipes(nil), err
	}
	return f.view("matches", filter.ByIngredients(recipes, filter.SplitInput(input))), nil
}

// All renders every recipe.
func (f *Finder) All() (render.View, error) {
	recipes, err := f.recipes()
	if err != nil {
		return render.Recipes(nil), err
	}
	return f.view("all", recipes), nil
}

// Random renders one recipe chosen uniformly at random.
func (f *Finder) Random() (render.View, error) {
	recipes, err := f.recipes()
	if err != nil {
		return render.Recipes(nil), err
	}
	return f.view("random", filter.PickRandom(recipes, f.intn)), nil
}

func (f *Finder) recipes() ([]domain.Recipe, error) {
	recipes, status := f.snap.Get()
	if status != loader.Loaded {
		return nil, fmt.Errorf("recipes %s: %w", status, domain.ErrNotReady)
	}
	return recipes, nil
}

func (f *Finder) view(action string, recipes []domain.Recipe) render.View {
	if f.observer != nil {
		f.observer.ObserveResults("recipes", action, len(recipes))
	}
	return render.Recipes(recipes)
}
