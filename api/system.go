package api

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/skyrelay/emptylegs/internal/database"
)

// SystemHandler serves the liveness message and the store diagnostics
// endpoint. Neither is load-bearing for business logic; /test never
// fails the request, a degraded store is reported in the body.
type SystemHandler struct {
	db *mongo.Database
}

func NewSystemHandler(db *mongo.Database) *SystemHandler {
	return &SystemHandler{db: db}
}

func (h *SystemHandler) Register(router *gin.Engine) {
	router.GET("/", h.root)
	router.GET("/test", h.test)
}

func (h *SystemHandler) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Empty Leg Flights API running"})
}

func (h *SystemHandler) test(c *gin.Context) {
	resp := gin.H{
		"backend":           "running",
		"database":          "not available",
		"database_url":      envStatus("DATABASE_URL"),
		"database_name":     envStatus("DATABASE_NAME"),
		"connection_status": "not connected",
		"collections":       []string{},
	}

	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := h.db.Client().Ping(ctx, nil); err != nil {
			resp["database"] = "error: " + truncate(err.Error(), 50)
		} else {
			resp["database"] = "connected"
			resp["connection_status"] = "connected"
			if names, err := database.CollectionNames(ctx, h.db, 10); err != nil {
				resp["database"] = "connected but error: " + truncate(err.Error(), 50)
			} else {
				resp["collections"] = names
			}
		}
	}

	c.JSON(http.StatusOK, resp)
}

func envStatus(key string) string {
	if os.Getenv(key) != "" {
		return "set"
	}
	return "not set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
