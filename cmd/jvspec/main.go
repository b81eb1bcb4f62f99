// Package main is the jvspec CLI entry point.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/keibalab/jvspec/internal/cli"
	"github.com/keibalab/jvspec/internal/config"
	"github.com/keibalab/jvspec/internal/models"
	"github.com/keibalab/jvspec/internal/pipeline"
	"github.com/keibalab/jvspec/internal/search"
	"github.com/keibalab/jvspec/internal/server"
	"github.com/keibalab/jvspec/internal/watcher"
	"github.com/keibalab/jvspec/pkg/utils"
	"go.uber.org/zap"
)

var version = "dev"

const defaultConfigPath = "config.yaml"

// loadConfig loads the config at path. A missing file at the default path
// falls back to the built-in defaults so the tool runs from a fresh
// checkout without setup; an explicit path must exist.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		if path == defaultConfigPath && errors.Is(err, os.ErrNotExist) {
			return config.DefaultConfig(), nil
		}
		return nil, err
	}
	return cfg, nil
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "generate":
		runGenerate()
	case "catalog":
		runCatalog()
	case "search":
		runSearch()
	case "serve":
		runServe()
	case "watch":
		runWatch()
	case "version", "--version", "-v":
		fmt.Printf("jvspec version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func runGenerate() {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	p := pipeline.New(cfg, pipeline.WithLogger(logger))
	result, err := p.Run()
	if err != nil {
		logger.Fatal("Pipeline failed", zap.Error(err))
	}
	out, err := json.MarshalIndent(result.Summary, "", "  ")
	if err != nil {
		logger.Fatal("Failed to encode summary", zap.Error(err))
	}
	fmt.Println(string(out))
}

func runCatalog() {
	fs := flag.NewFlagSet("catalog", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	rewrite := fs.Bool("rewrite", true, "rewrite the error table from the normalized records")
	_ = fs.Parse(os.Args[2:])

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	p := pipeline.New(cfg, pipeline.WithLogger(logger))
	if err := p.Catalog(*rewrite); err != nil {
		logger.Fatal("Catalog generation failed", zap.Error(err))
	}
	fmt.Printf("Catalog written: %s\n", cfg.Output.CatalogPath)
}

// buildSearchQuery joins all positional args with spaces so multi-word
// queries work the same with or without shell quoting.
func buildSearchQuery(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

// searchArgsReorder moves any flags (and their values) that appear after the
// query to the front of the slice so that flag.Parse() sees them. Go's flag
// package stops at the first non-flag argument, so "jvspec search JVOpen
// -limit 5" would otherwise leave -limit unparsed.
func searchArgsReorder(args []string) []string {
	for i, a := range args {
		if len(a) > 0 && a[0] == '-' {
			if i == 0 {
				return args
			}
			reordered := make([]string, 0, len(args))
			reordered = append(reordered, args[i:]...)
			reordered = append(reordered, args[:i]...)
			return reordered
		}
	}
	return args
}

func printSearchUsage(fs *flag.FlagSet) {
	fmt.Fprintf(fs.Output(), "Usage: jvspec search [flags] <query>\n\n")
	fmt.Fprintf(fs.Output(), "Query is all remaining arguments joined by spaces. Multi-word queries work with or without quotes.\n\n")
	fs.PrintDefaults()
	fmt.Fprintf(fs.Output(), `
Examples:
  jvspec search JVOpen
  jvspec search "レコード種別"
  jvspec search -kind error 認証
  jvspec search -limit 20 -output json データ
`)
}

func runSearch() {
	searchArgs := searchArgsReorder(os.Args[2:])

	fs := flag.NewFlagSet("search", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	limit := fs.Int("limit", 0, "number of results (default from config)")
	kind := fs.String("kind", "", "restrict to one record kind: method, property, error, record")
	outputFormat := fs.String("output", "text", "output format: text (human-readable) or json (parseable)")
	fs.Usage = func() { printSearchUsage(fs) }
	_ = fs.Parse(searchArgs)

	if fs.NArg() < 1 {
		printSearchUsage(fs)
		os.Exit(1)
	}
	queryStr := buildSearchQuery(fs.Args())
	if queryStr == "" {
		printSearchUsage(fs)
		os.Exit(1)
	}

	format := cli.OutputText
	switch *outputFormat {
	case "json":
		format = cli.OutputJSON
	case "text":
		format = cli.OutputText
	default:
		fmt.Printf("Unknown output format %q; use text or json\n", *outputFormat)
		os.Exit(1)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	p := pipeline.New(cfg, pipeline.WithLogger(logger))
	ex, err := p.Extract()
	if err != nil {
		logger.Fatal("Extraction failed", zap.Error(err))
	}
	index, err := search.New(ex)
	if err != nil {
		logger.Fatal("Failed to build search index", zap.Error(err))
	}
	defer index.Close()

	searchLimit := *limit
	if searchLimit <= 0 {
		searchLimit = cfg.Search.DefaultLimit
	}
	if searchLimit > cfg.Search.MaxLimit {
		searchLimit = cfg.Search.MaxLimit
	}
	query := &models.SearchQuery{Query: queryStr, Limit: searchLimit, Kind: *kind}
	response, err := index.Search(context.Background(), query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Search failed: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteSearchResults(os.Stdout, response, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runServe() {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	watch := fs.Bool("watch", true, "regenerate and reload when a source document changes")
	_ = fs.Parse(os.Args[2:])

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	p := pipeline.New(cfg, pipeline.WithLogger(logger))
	result, err := p.Run()
	if err != nil {
		logger.Fatal("Pipeline failed", zap.Error(err))
	}
	index, err := search.New(result.Extraction)
	if err != nil {
		logger.Fatal("Failed to build search index", zap.Error(err))
	}
	srv := server.NewServer(result.Extraction, index, cfg, logger)

	watchCtx, watchCancel := context.WithCancel(context.Background())
	defer watchCancel()
	if *watch {
		watchOpts := []watcher.WatcherOption{watcher.WithDebounce(cfg.Watch.Debounce())}
		if debugMode {
			watchOpts = append(watchOpts, watcher.WithLogger(logger))
		}
		w := watcher.NewWatcher(
			[]string{cfg.Sources.Document, cfg.Sources.Workbook},
			func(path string) {
				logger.Info("source changed; regenerating", zap.String("path", path))
				res, err := p.Run()
				if err != nil {
					logger.Error("regeneration failed", zap.Error(err))
					return
				}
				newIndex, err := search.New(res.Extraction)
				if err != nil {
					logger.Error("failed to rebuild search index", zap.Error(err))
					return
				}
				srv.SetSnapshot(res.Extraction, newIndex)
			},
			watchOpts...,
		)
		if err := w.Start(watchCtx); err != nil {
			logger.Fatal("Failed to start watcher", zap.Error(err))
		}
		defer w.Stop()
	}

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	watchCancel()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

func runWatch() {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	p := pipeline.New(cfg, pipeline.WithLogger(logger))
	if _, err := p.Run(); err != nil {
		logger.Fatal("Pipeline failed", zap.Error(err))
	}

	watchOpts := []watcher.WatcherOption{watcher.WithDebounce(cfg.Watch.Debounce())}
	if debugMode {
		watchOpts = append(watchOpts, watcher.WithLogger(logger))
	}
	w := watcher.NewWatcher(
		[]string{cfg.Sources.Document, cfg.Sources.Workbook},
		func(path string) {
			logger.Info("source changed; regenerating", zap.String("path", path))
			if _, err := p.Run(); err != nil {
				logger.Error("regeneration failed", zap.Error(err))
			}
		},
		watchOpts...,
	)
	watchCtx, watchCancel := context.WithCancel(context.Background())
	defer watchCancel()
	if err := w.Start(watchCtx); err != nil {
		logger.Fatal("Failed to start watcher", zap.Error(err))
	}
	defer w.Stop()
	logger.Info("watching sources", zap.Strings("paths", w.Paths()))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
	logger.Info("Shutting down...")
}

func printUsage() {
	fmt.Println(`jvspec - JV-Link reference extraction toolkit

Usage:
  jvspec generate [flags]         Run the document pipeline and print the run summary
  jvspec catalog [flags]          Consolidate the error table into the generated catalog
  jvspec search [flags] <query>   Search the extracted records
  jvspec serve [flags]            Run the pipeline once, then serve the HTTP API and docs
  jvspec watch [flags]            Regenerate whenever a source document changes
  jvspec version                  Show version
  jvspec help                     Show this help

Common Flags:
  --config string    Config file path (default: config.yaml; built-in defaults when absent)
  --debug            Enable debug logging

Catalog Flags:
  --rewrite          Rewrite the error table from the normalized records (default: true)

Search Flags:
  --limit int        Number of results (default from config)
  --kind string      Restrict to one record kind: method, property, error, record
  --output string    Output format: text or json (default: text)

Serve Flags:
  --watch            Regenerate and reload when a source document changes (default: true)

Examples:
  jvspec generate
  jvspec catalog -rewrite=false
  jvspec search JVOpen
  jvspec search -kind error 認証
  jvspec serve
  jvspec watch`)
}
