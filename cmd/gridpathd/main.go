// Command gridpathd serves the pathfinder over HTTP.
//
// Routes:
//
//	POST /api/v1/search  run a search over a grid given in the body
//	GET  /api/v1/health  liveness
//	GET  /metrics        Prometheus metrics
package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/gridpath/api"
	"github.com/katalvlaran/gridpath/api/i"
	searchapi "github.com/katalvlaran/gridpath/api/search"
	"github.com/katalvlaran/gridpath/config"
)

// searchTimeout bounds a single search request.
const searchTimeout = 30 * time.Second

func main() {
	logger := log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("[APP] [FATAL] %v", err)
	}
	gin.SetMode(cfg.GinMode)

	search := searchapi.NewSearchServer(searchapi.Config{
		MaxSide:    cfg.MaxSide,
		StepBudget: cfg.StepBudget,
		Options:    cfg.GridOptions(),
		Logger:     logger,
		Timeout:    searchTimeout,
	})
	router := api.NewRouter(api.Config{
		Addr:        cfg.HTTPAddr,
		BaseURL:     "/api",
		Controllers: []i.Controller{search},
	})

	logger.Printf("[APP] [INFO] listening on %s (max side %d)", cfg.HTTPAddr, cfg.MaxSide)
	if err = router.Run(); err != nil {
		logger.Fatalf("[APP] [FATAL] server stopped: %v", err)
	}
}
