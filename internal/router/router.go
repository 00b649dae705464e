package router

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/AlexeyAndrrr/konoramenidk/internal/branch"
	"github.com/AlexeyAndrrr/konoramenidk/internal/menu"
	"github.com/AlexeyAndrrr/konoramenidk/internal/middleware"
	"github.com/AlexeyAndrrr/konoramenidk/internal/order"
	"github.com/AlexeyAndrrr/konoramenidk/internal/review"
	"github.com/AlexeyAndrrr/konoramenidk/internal/tips"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Deps are the handlers and settings the router mounts.
type Deps struct {
	Log         *zap.Logger
	PublicDir   string
	CORSOrigins []string

	Menu    *menu.Handler
	Orders  *order.Handler
	Branch  *branch.Handler
	Reviews *review.Handler
	Tips    *tips.Handler
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(d.Log), middleware.RequestLogger(d.Log))

	if len(d.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins: d.CORSOrigins,
			AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
			AllowHeaders: []string{"Origin", "Content-Type"},
			MaxAge:       12 * time.Hour,
		}))
	}

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// ───────────── MENU ─────────────
		api.GET("/menu", d.Menu.List)
		sessions := api.Group("/menu/filter-sessions")
		{
			sessions.POST("", d.Menu.CreateSession)
			sessions.GET("/:id", d.Menu.GetSession)
			sessions.PATCH("/:id", d.Menu.UpdateSession)
			sessions.DELETE("/:id", d.Menu.DeleteSession)
		}

		api.POST("/orders", d.Orders.Place)

		// ───────────── BRANCHES ─────────────
		api.GET("/branches", d.Branch.List)
		api.GET("/visitors/:visitorId/branch", d.Branch.GetSelection)
		api.PUT("/visitors/:visitorId/branch", d.Branch.PutSelection)

		// ───────────── REVIEWS / TIPS ─────────────
		api.GET("/reviews/:branchId", d.Reviews.ListForBranch)
		api.POST("/reviews", d.Reviews.Submit)
		api.GET("/tips/stats", d.Tips.Stats)
	}

	// ───────────── PAGES ─────────────
	r.GET("/", page(d.PublicDir, "index.html"))
	r.GET("/menu", page(d.PublicDir, "menu.html"))
	r.GET("/reviews", page(d.PublicDir, "reviews.html"))

	r.NoRoute(notFound(d.PublicDir))

	return r
}

func page(dir, name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.File(filepath.Join(dir, name))
	}
}

// notFound serves files from the public dir, the 404 page for anything
// else, and JSON for unknown API paths.
func notFound(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		if strings.HasPrefix(path, "/api/") || path == "/api" {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}

		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
			// Clean against "/" so the result cannot climb out of dir.
			file := filepath.Join(dir, filepath.Clean("/"+path))
			if info, err := os.Stat(file); err == nil && !info.IsDir() {
				c.File(file)
				return
			}
		}

		body, err := os.ReadFile(filepath.Join(dir, "404.html"))
		if err != nil {
			c.String(http.StatusNotFound, "404 page not found")
			return
		}
		c.Data(http.StatusNotFound, "text/html; charset=utf-8", body)
	}
}
