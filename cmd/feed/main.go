package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"fractal-gallery/internal/feed"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	maxNodes := flag.Int("max-nodes", feed.DefaultLimits.MaxNodes, "largest solid description served")
	maxCells := flag.Int("max-cells", feed.DefaultLimits.MaxCells, "largest automaton description served")
	flag.Parse()

	log.SetFlags(log.Ltime | log.Lshortfile)

	s := feed.NewServer(log.Default())
	s.Limits = feed.Limits{MaxNodes: *maxNodes, MaxCells: *maxCells}

	srv := &http.Server{
		Addr:              *addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Printf("scene feed listening on %s", *addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("feed: %v", err)
	}
}
