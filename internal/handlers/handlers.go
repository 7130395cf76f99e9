package handlers

import (
	"chernotour/internal/cache"
	"chernotour/internal/service"
)

type Handlers struct {
	services  *service.Services
	cache     *cache.Client
	staticDir string
}

// NewHandlers создает обработчики. cacheClient может быть nil - тогда список
// туров всегда читается из базы.
func NewHandlers(services *service.Services, cacheClient *cache.Client, staticDir string) *Handlers {
	return &Handlers{
		services:  services,
		cache:     cacheClient,
		staticDir: staticDir,
	}
}
