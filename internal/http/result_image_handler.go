package http

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// ImageFiles resuelve la clave de una imagen guardada a su archivo local.
type ImageFiles interface {
	Path(key string) (string, error)
}

// ResultImage maneja GET /results/:file y sirve la imagen guardada de un
// rasgo. Los nombres llevan timestamp, así que el contenido no cambia.
func ResultImage(files ImageFiles) gin.HandlerFunc {
	return func(c *gin.Context) {
		path, err := files.Path("results/" + c.Param("file"))
		if err == nil {
			var info os.FileInfo
			if info, err = os.Stat(path); err == nil && info.IsDir() {
				err = os.ErrNotExist
			}
		}
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "image not found"})
			return
		}
		c.Header("Cache-Control", "public, max-age=31536000, immutable")
		c.File(path)
	}
}
