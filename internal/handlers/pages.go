package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// Статические страницы отдаются из staticDir, при отсутствии файла -
// встроенная заглушка, как на исходном сайте.

// Index - GET /
func (h *Handlers) Index(c *gin.Context) {
	h.servePage(c, "index.html", "<h1>Главная страница</h1>")
}

// About - GET /about
func (h *Handlers) About(c *gin.Context) {
	h.servePage(c, "about.html", "<h1>О поездках</h1>")
}

// Contacts - GET /contacts
func (h *Handlers) Contacts(c *gin.Context) {
	h.servePage(c, "contacts.html", "<h1>Контакты</h1>")
}

func (h *Handlers) servePage(c *gin.Context, name, fallback string) {
	path := filepath.Join(h.staticDir, name)
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		c.File(path)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(fallback))
}
