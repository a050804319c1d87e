package web

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/folio/internal/render"
)

func TestTemplates_Parse(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	for _, name := range []string{"portfolio.html", "recipes.html", "recipes-results.html", "projects-results.html", "recipes-controls.html", "portfolio-status.html"} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestRecipeCards_NoStaleContent(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	var region bytes.Buffer
	replace := func(v render.View) string {
		region.Reset()
		require.NoError(t, tmpl.ExecuteTemplate(&region, "recipes-results.html", v))
		return region.String()
	}

	full := replace(render.View{Cards: []render.Card{{Title: "A"}, {Title: "B"}, {Title: "C"}}})
	assert.Equal(t, 3, strings.Count(full, `class="recipe-card"`))

	empty := replace(render.Recipes(nil))
	assert.Equal(t, 0, strings.Count(empty, `class="recipe-card"`))
	assert.Contains(t, empty, render.NoRecipes)
}

func TestRecipeCards_EscapesValues(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	var out bytes.Buffer
	v := render.View{Cards: []render.Card{{Title: "<script>alert(1)</script>"}}}
	require.NoError(t, tmpl.ExecuteTemplate(&out, "recipes-results.html", v))

	assert.NotContains(t, out.String(), "<script>")
	assert.NotContains(t, out.String(), "undefined")
}

func TestFuncs_TagQuery(t *testing.T) {
	tagQuery := Funcs["tagQuery"].(func(string, string) string)
	assert.Equal(t, "active=Go&tag=C%2B%2B", tagQuery("Go", "C++"))
}

func TestStatic_ServesStylesheet(t *testing.T) {
	f, err := Static().Open("/style.css")
	require.NoError(t, err)
	defer f.Close()

	body, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Contains(t, string(body), "data-theme")
}
