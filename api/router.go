package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"food-api/config"
	_ "food-api/docs"
)

// NewRouter wires middleware, routes, and the swagger viewer.
func NewRouter(cfg *config.Config, pool *pgxpool.Pool, logger *zap.Logger) *gin.Engine {
	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(requestID())
	r.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(logger, true))
	r.Use(cors.Default())

	h := NewHandler(logger)
	registerRoutes(r, h, acquireConn(poolProvider{pool: pool}, cfg.DB.AcquireTimeout, logger))

	r.GET("/api-docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/health", func(c *gin.Context) {
		if err := pool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "database unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}

// registerRoutes attaches the CRUD endpoints under /api. The connMW
// middleware checks a pool connection out for every request in the group.
func registerRoutes(r *gin.Engine, h *Handler, connMW gin.HandlerFunc) {
	g := r.Group("/api", connMW)

	g.POST("/foods", h.CreateFood)
	g.PATCH("/foods/:itemId", h.UpdateFood)
	g.PUT("/foods/:itemId", h.UpsertFood)
	g.GET("/foods", h.ListFoods)

	g.GET("/customers", h.ListCustomers)
	g.DELETE("/customers/:custCode", h.DeleteCustomer)

	g.GET("/students", h.ListStudents)
}
