// Command portfolio-api runs the portfolio backend.
package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/akshdev/portfolio-api/internal/config"
	"github.com/akshdev/portfolio-api/internal/hackerrank"
	"github.com/akshdev/portfolio-api/internal/log"
	"github.com/akshdev/portfolio-api/internal/music"
	"github.com/akshdev/portfolio-api/internal/spotify"
	"github.com/akshdev/portfolio-api/internal/web"
	webfs "github.com/akshdev/portfolio-api/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	log.Configure(log.Config{Level: cfg.LogLevel})

	static, err := fs.Sub(webfs.StaticFS, "static")
	if err != nil {
		return fmt.Errorf("creating static filesystem: %w", err)
	}

	snapshots := music.NewService(spotify.NewClient(cfg.Spotify))
	badges := hackerrank.NewClient(cfg.HackerRank)

	server := web.NewServer(web.ServerConfig{
		Addr:        cfg.Addr,
		CORSOrigins: cfg.CORSOrigins,
		StaticFS:    static,
	}, snapshots, badges)

	return server.Run()
}
