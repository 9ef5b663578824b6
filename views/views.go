package views

import (
	"embed"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed *.html layouts/*.html campgrounds/*.html
var files embed.FS

// Engine returns the fiber view engine backed by the embedded templates, so
// the binary renders without a views directory on disk.
func Engine() *html.Engine {
	return html.NewFileSystem(http.FS(files), ".html")
}
