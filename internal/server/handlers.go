package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/folio/internal/domain"
	"github.com/Zachkp/folio/internal/health"
	"github.com/Zachkp/folio/internal/loader"
	logpkg "github.com/Zachkp/folio/internal/logger"
	"github.com/Zachkp/folio/internal/portfolio"
	"github.com/Zachkp/folio/internal/prefs"
	"github.com/Zachkp/folio/internal/render"
)

const systemThemeHeader = "Sec-CH-Prefers-Color-Scheme"

// statusFor maps a controller error to the fragment's status code. htmx only
// swaps 2xx responses, so a not-ready fragment answers 200 with its
// empty-state body.
func statusFor(c *gin.Context, err error) int {
	switch {
	case err == nil, errors.Is(err, domain.ErrNotReady):
		return http.StatusOK
	default:
		logpkg.FromGin(c).Error("render fragment", zap.Error(err))
		return http.StatusInternalServerError
	}
}

// systemTheme reads the colour scheme client hint. Browsers send it as a
// structured-field string, quotes included.
func systemTheme(c *gin.Context) string {
	return strings.Trim(strings.TrimSpace(c.GetHeader(systemThemeHeader)), `"`)
}

func (s *Server) theme(c *gin.Context) prefs.Theme {
	cookie, _ := c.Cookie(themeCookie)
	return s.themes.Current(c.Request.Context(), c.GetString(visitorKey), cookie, systemTheme(c))
}

// pageData is what every full page template gets besides its content.
func (s *Server) pageData(c *gin.Context, title string) gin.H {
	c.Header("Accept-CH", systemThemeHeader)
	c.Header("Vary", systemThemeHeader)
	return gin.H{
		"Title":  title,
		"Theme":  s.theme(c),
		"Return": c.Request.URL.RequestURI(),
	}
}

// Portfolio

func (s *Server) portfolioPage(c *gin.Context) {
	page, err := s.portfolio.Page(portfolio.NewSession(c.Query("active")))
	if err != nil && !errors.Is(err, domain.ErrNotReady) {
		logpkg.FromGin(c).Error("render portfolio", zap.Error(err))
	}

	data := s.pageData(c, "Portfolio")
	data["Ready"] = err == nil
	data["Load"] = stateOf(s.portfolio.Status())
	data["Page"] = page
	data["Filters"] = portfolio.ProjectsResult{Skills: page.Skills, Active: page.Active}
	if page.About.Name != "" {
		data["Title"] = page.About.Name
	}
	c.HTML(http.StatusOK, "portfolio.html", data)
}

func (s *Server) renderProjects(c *gin.Context, res portfolio.ProjectsResult, err error) {
	c.HTML(statusFor(c, err), "projects-results.html", res)
}

func (s *Server) toggleTag(c *gin.Context) {
	sess := portfolio.NewSession(c.Query("active")).Toggle(c.Query("tag"))
	res, err := s.portfolio.Projects(sess)
	s.renderProjects(c, res, err)
}

func (s *Server) selectTag(c *gin.Context) {
	sess := portfolio.NewSession("").Select(c.Query("tag"))
	res, err := s.portfolio.Projects(sess)
	s.renderProjects(c, res, err)
}

func (s *Server) clearTags(c *gin.Context) {
	res, err := s.portfolio.Projects(portfolio.NewSession("").Clear())
	s.renderProjects(c, res, err)
}

func (s *Server) searchProjects(c *gin.Context) {
	res, err := s.portfolio.Search(c.Query("q"))
	s.renderProjects(c, res, err)
}

// portfolioReady is polled by a page rendered before the documents loaded.
// Once they are, htmx reloads the page so every section renders with data.
func (s *Server) portfolioReady(c *gin.Context) {
	state := stateOf(s.portfolio.Status())
	if state.Ready {
		c.Header("HX-Refresh", "true")
		c.Status(http.StatusOK)
		return
	}
	c.HTML(http.StatusOK, "portfolio-status.html", state)
}

func (s *Server) contact(c *gin.Context) {
	href, err := s.portfolio.ContactHref()
	if err != nil {
		c.String(http.StatusServiceUnavailable, "contact unavailable")
		return
	}
	c.Redirect(http.StatusFound, href)
}

// Theme

func (s *Server) toggleTheme(c *gin.Context) {
	cookie, _ := c.Cookie(themeCookie)
	next := s.themes.Toggle(c.Request.Context(), c.GetString(visitorKey), cookie, systemTheme(c))

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(themeCookie, string(next), cookieMaxAge, "/", "", s.opts.SecureCookies, true)
	c.Redirect(http.StatusSeeOther, safeReturn(c.PostForm("return")))
}

// safeReturn only allows local absolute paths as redirect targets.
func safeReturn(path string) string {
	if !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") || strings.HasPrefix(path, "/\\") {
		return "/"
	}
	return path
}

// Recipes

// loadState is what the control templates need to know about a load.
type loadState struct {
	Ready   bool
	Failed  bool
	Pending bool
}

func stateOf(status loader.Status) loadState {
	return loadState{
		Ready:   status == loader.Loaded,
		Failed:  status == loader.Failed,
		Pending: status == loader.Pending,
	}
}

func (s *Server) recipesPage(c *gin.Context) {
	data := s.pageData(c, "Aaj Kya Banau?")
	data["Controls"] = stateOf(s.recipes.Status())
	c.HTML(http.StatusOK, "recipes.html", data)
}

// recipeControls is polled by a pending page; the first response after a
// successful load carries the enabled buttons and stops the polling.
func (s *Server) recipeControls(c *gin.Context) {
	c.HTML(http.StatusOK, "recipes-controls.html", stateOf(s.recipes.Status()))
}

func (s *Server) renderRecipes(c *gin.Context, v render.View, err error) {
	c.HTML(statusFor(c, err), "recipes-results.html", v)
}

func (s *Server) recipeMatches(c *gin.Context) {
	v, err := s.recipes.Matches(c.Query("ingredients"))
	s.renderRecipes(c, v, err)
}

func (s *Server) recipesAll(c *gin.Context) {
	v, err := s.recipes.All()
	s.renderRecipes(c, v, err)
}

func (s *Server) recipeRandom(c *gin.Context) {
	v, err := s.recipes.Random()
	s.renderRecipes(c, v, err)
}

// Operations

func (s *Server) healthz(c *gin.Context) {
	report := s.health.Check(c.Request.Context())
	code := http.StatusOK
	if report.Status != health.Healthy {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, report)
}
