// Package filter holds the pure list filters behind every view. No function
// here mutates or reorders its input; each returns a freshly allocated slice.
package filter

import (
	"strings"

	"github.com/Zachkp/folio/internal/domain"
)

// SplitInput splits the raw ingredient text box value on commas.
func SplitInput(raw string) []string {
	return strings.Split(raw, ",")
}

// ByIngredients keeps the recipes whose ingredient set contains every user
// token. Recipes may list extra ingredients. Recipes with no ingredients are
// never returned.
func ByIngredients(recipes []domain.Recipe, userTokens []string) []domain.Recipe {
	want := normalizeSet(userTokens)

	out := make([]domain.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if r.Ingredients == "" {
			continue
		}
		have := normalizeSet(strings.Split(r.Ingredients, ","))
		if containsAll(have, want) {
			out = append(out, r)
		}
	}
	return out
}

// normalizeSet trims and lowercases every token; blanks are dropped.
func normalizeSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		set[t] = struct{}{}
	}
	return set
}

func containsAll(have, want map[string]struct{}) bool {
	for t := range want {
		if _, ok := have[t]; !ok {
			return false
		}
	}
	return true
}
