// Package server wires the folio views into a gin engine.
package server

import (
	"context"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Zachkp/folio/internal/health"
	"github.com/Zachkp/folio/internal/loader"
	"github.com/Zachkp/folio/internal/metrics"
	"github.com/Zachkp/folio/internal/portfolio"
	"github.com/Zachkp/folio/internal/prefs"
	"github.com/Zachkp/folio/internal/render"
)

// Recipes is the recipe finder controller.
type Recipes interface {
	Status() loader.Status
	Matches(input string) (render.View, error)
	All() (render.View, error)
	Random() (render.View, error)
}

// Portfolio is the portfolio controller.
type Portfolio interface {
	Status() loader.Status
	Page(sess portfolio.Session) (portfolio.Page, error)
	Projects(sess portfolio.Session) (portfolio.ProjectsResult, error)
	Search(query string) (portfolio.ProjectsResult, error)
	ContactHref() (string, error)
}

// Themes resolves and flips visitor themes.
type Themes interface {
	Current(ctx context.Context, visitorID, cookie, system string) prefs.Theme
	Toggle(ctx context.Context, visitorID, cookie, system string) prefs.Theme
}

// Health reports component status.
type Health interface {
	Check(ctx context.Context) health.Report
}

// Options tune the router.
type Options struct {
	DataDir       string // served under /data when set
	SecureCookies bool
}

// Server holds the handlers' collaborators.
type Server struct {
	recipes   Recipes
	portfolio Portfolio
	themes    Themes
	health    Health
	logger    *zap.Logger
	hasher    clientHasher
	opts      Options
}

// New creates a Server.
func New(r Recipes, p Portfolio, t Themes, h Health, logger *zap.Logger, opts Options) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		recipes:   r,
		portfolio: p,
		themes:    t,
		health:    h,
		logger:    logger,
		hasher:    newClientHasher(),
		opts:      opts,
	}
}

// Router builds the gin engine serving every page, fragment and asset.
func (s *Server) Router(tmpl *template.Template, static http.FileSystem) *gin.Engine {
	r := gin.New()
	r.Use(s.recoverer())
	r.Use(s.requestLogger())
	r.Use(metrics.Middleware())
	r.Use(s.visitorMiddleware())
	r.SetHTMLTemplate(tmpl)

	r.StaticFS("/static", static)
	if s.opts.DataDir != "" {
		r.Static("/data", s.opts.DataDir)
	}

	r.GET("/", s.portfolioPage)
	r.GET("/contact", s.contact)
	r.POST("/theme", s.toggleTheme)

	projects := r.Group("/projects")
	projects.GET("", s.toggleTag)
	projects.GET("/select", s.selectTag)
	projects.GET("/clear", s.clearTags)
	projects.GET("/search", s.searchProjects)
	projects.GET("/ready", s.portfolioReady)

	r.GET("/recipes", s.recipesPage)
	rec := r.Group("/recipes")
	rec.GET("/matches", s.recipeMatches)
	rec.GET("/all", s.recipesAll)
	rec.GET("/random", s.recipeRandom)
	rec.GET("/controls", s.recipeControls)

	r.GET("/healthz", s.healthz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
