package handlers

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static/index.html
var viewerPage []byte

// Viewer serves the canvas page that draws the table and sends keys.
func Viewer(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", viewerPage)
}
