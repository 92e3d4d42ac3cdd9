package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Health reports whether the database connection is alive.
func Health(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database not connected"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Database connected"})
	}
}
