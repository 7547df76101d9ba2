// Package server assembles the HTTP router from the domain handlers.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"boolbnb/internal/domain/image"
	"boolbnb/internal/domain/like"
	"boolbnb/internal/domain/message"
	"boolbnb/internal/domain/property"
	"boolbnb/internal/domain/review"
	"boolbnb/internal/domain/user"
	"boolbnb/internal/mailer"
	"boolbnb/internal/metrics"
	"boolbnb/internal/middleware"
	"boolbnb/internal/pkg/response"
	"boolbnb/internal/storage"
)

type Deps struct {
	DB     *gorm.DB
	Store  storage.Store
	Mailer mailer.Mailer
	Log    *slog.Logger

	AllowedOrigins []string
	RequestTimeout time.Duration
	// StaticDir and StaticURLBase expose locally stored images; empty StaticDir disables it.
	StaticDir     string
	StaticURLBase string
}

// NewRouter wires every handler onto one engine.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Recovery(d.Log),
		middleware.RequestLogger(d.Log),
		middleware.Metrics(),
		middleware.CORS(d.AllowedOrigins),
	)
	if d.RequestTimeout > 0 {
		r.Use(middleware.Timeout(d.RequestTimeout))
	}

	if d.StaticDir != "" {
		r.Static(d.StaticURLBase, d.StaticDir)
	}
	r.GET("/healthz", healthz(d.DB))
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	root := &r.RouterGroup

	propertyRepo := property.NewRepository(d.DB)
	property.NewHandler(property.NewService(propertyRepo, d.Store)).RegisterRoutes(root)
	review.NewHandler(review.NewService(review.NewRepository(d.DB))).RegisterRoutes(root)
	image.NewHandler(image.NewService(image.NewRepository(d.DB), d.Store)).RegisterRoutes(root)
	message.NewHandler(message.NewService(d.DB, d.Mailer)).RegisterRoutes(root)
	like.NewHandler(like.NewService(like.NewRepository(d.DB))).RegisterRoutes(root)
	user.NewHandler(user.NewService(user.NewRepository(d.DB))).RegisterRoutes(root)

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "Not found")
	})
	return r
}

func healthz(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			_ = c.Error(err)
			response.Error(c, http.StatusServiceUnavailable, "database unavailable")
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
