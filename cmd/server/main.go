package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hazyhaar/lexiscore/pkg/api"
	"github.com/hazyhaar/lexiscore/pkg/dataset"
	"github.com/hazyhaar/lexiscore/pkg/vocab"
	"github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"
)

const version = "1.0.0"

type config struct {
	Addr      string `yaml:"addr"`
	VocabsDir string `yaml:"vocabs_dir"`
	Dataset   struct {
		Path     string `yaml:"path"`
		SkipRows int    `yaml:"skip_rows"`
	} `yaml:"dataset"`
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		cmdServe(os.Args[2:])
	case "import":
		cmdImport(os.Args[2:])
	case "score":
		cmdScore(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: lexiscore <command>\n\nCommands:\n  serve    Start the HTTP server (or MCP stdio with --mcp)\n  import   Build vocabularies from external sources\n  score    Score a text from a file or stdin\n")
}

func cmdServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	cfgPath := fs.String("config", "config.yaml", "path to config file")
	mcpMode := fs.Bool("mcp", false, "serve MCP over stdio instead of HTTP")
	fs.Parse(args)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg := loadConfig(*cfgPath, logger)

	// Load vocabularies.
	reg := vocab.NewRegistry(cfg.VocabsDir)
	if err := reg.Load(); err != nil {
		logger.Error("failed to load vocabularies", "error", err)
		os.Exit(1)
	}
	logger.Info("vocabularies loaded", "count", reg.VocabCount(), "terms", reg.TotalTerms())

	if *mcpMode {
		srv := server.NewMCPServer("lexiscore", version)
		api.RegisterMCPTools(srv, reg, logger)
		if err := server.ServeStdio(srv); err != nil {
			logger.Error("mcp server error", "error", err)
			os.Exit(1)
		}
		return
	}

	// Optional auxiliary dataset.
	var ds *dataset.Dataset
	if cfg.Dataset.Path != "" {
		var err error
		ds, err = dataset.Load(cfg.Dataset.Path, cfg.Dataset.SkipRows)
		if err != nil {
			logger.Error("failed to load dataset", "error", err)
			os.Exit(1)
		}
		logger.Info("dataset loaded", "path", cfg.Dataset.Path, "rows", ds.Len())
	}

	// HTTP router.
	router := api.NewRouter(reg, ds, logger)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	// SIGHUP: hot reload vocabularies.
	// SIGINT/SIGTERM: graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sighup := make(chan os.Signal, 1)
	signal.Notify(sighup, syscall.SIGHUP)
	go func() {
		for range sighup {
			logger.Info("SIGHUP received, reloading vocabularies")
			if err := reg.Reload(); err != nil {
				logger.Error("reload failed", "error", err)
			} else {
				logger.Info("vocabularies reloaded", "count", reg.VocabCount(), "terms", reg.TotalTerms())
			}
		}
	}()

	// Start server.
	go func() {
		logger.Info("lexiscore listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	srv.Shutdown(context.Background())
}

func loadConfig(path string, logger *slog.Logger) config {
	cfg := config{
		Addr:      ":8420",
		VocabsDir: "vocabs",
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info("no config file, using defaults", "path", path)
			return cfg
		}
		logger.Error("read config", "error", err)
		os.Exit(1)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logger.Error("parse config", "error", err)
		os.Exit(1)
	}
	return cfg
}
