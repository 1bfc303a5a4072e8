package main

import (
	"log"

	"resume-intel/internal/bootstrap"
	"resume-intel/internal/shared/config"
	"resume-intel/internal/shared/server"
)

func main() {
	cfg := config.Load()

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}
	defer app.Close()

	r := server.NewRouter(cfg, server.RouterDeps{
		Documents: app.DocumentsHandler,
		Analyses:  app.AnalysesHandler,
		Jobs:      app.JobsHandler,
	})

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
