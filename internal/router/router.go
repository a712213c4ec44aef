package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/masonwr/huffman-encoding/internal/handler"
)

type Dependencies struct {
	CodecHandler *handler.CodecHandler
	MaxBody      int64
}

func Register(r *gin.Engine, d Dependencies) {
	// public routes
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	// v1 group
	v1 := r.Group("/api/v1", limitBody(d.MaxBody))
	{
		v1.POST("/encode", d.CodecHandler.Encode)
		v1.POST("/decode", d.CodecHandler.Decode)
		v1.POST("/stats", d.CodecHandler.Stats)
	}
}

func limitBody(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if n > 0 {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		}
		c.Next()
	}
}
