package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dog-personality-quiz/internal/service"
)

// Placeholder maneja GET /placeholders/:file y sirve el SVG del rasgo.
func Placeholder(c *gin.Context) {
	trait, ok := service.TraitFromPlaceholderFile(c.Param("file"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "placeholder not found"})
		return
	}
	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, "image/svg+xml", []byte(service.PlaceholderSVG(trait)))
}
