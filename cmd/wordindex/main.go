package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Adithya-Monish-Kumar-K/wordindex/internal/indexer/builder"
	"github.com/Adithya-Monish-Kumar-K/wordindex/internal/indexer/index"
	"github.com/Adithya-Monish-Kumar-K/wordindex/internal/jsonwriter"
	"github.com/Adithya-Monish-Kumar-K/wordindex/internal/searcher/executor"
	"github.com/Adithya-Monish-Kumar-K/wordindex/pkg/config"
	"github.com/Adithya-Monish-Kumar-K/wordindex/pkg/logger"
	"github.com/Adithya-Monish-Kumar-K/wordindex/pkg/metrics"
	"github.com/Adithya-Monish-Kumar-K/wordindex/pkg/tracing"
)

type options struct {
	configPath  string
	path        string
	queryPath   string
	metricsPath string
	exact       bool
	index       outputFlag
	results     outputFlag
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("wordindex", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "path to YAML config file")
	fs.StringVar(&opts.path, "path", "", "HTML file or directory to index")
	fs.StringVar(&opts.queryPath, "query", "", "file of query lines to search")
	fs.StringVar(&opts.metricsPath, "metrics", "", "write Prometheus metrics textfile to this path")
	fs.BoolVar(&opts.exact, "exact", false, "use exact search instead of partial search")
	fs.Var(&opts.index, "index", "write the index as JSON (bare for the configured path, or -index file)")
	fs.Var(&opts.results, "results", "write query results as JSON (bare for the configured path, or -results file)")
	if err := fs.Parse(joinOutputValues(args, "index", "results")); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger.SetupWriter(stderr, cfg.Logging.Level, cfg.Logging.Format)
	if opts.exact {
		cfg.Search.Exact = true
	}
	if opts.metricsPath != "" {
		cfg.Metrics.Enabled = true
		cfg.Metrics.TextfilePath = opts.metricsPath
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	ctx, root := tracing.StartSpan(ctx, "run")
	defer func() {
		root.End()
		root.Log(slog.Default())
	}()

	idx := index.NewInvertedIndex()
	if opts.path != "" {
		_, span := tracing.StartSpan(ctx, "build-index")
		err := builder.New(idx, cfg.Indexer, m).Build(ctx, opts.path)
		span.SetAttr("documents", idx.DocCount())
		span.SetAttr("words", idx.WordCount())
		span.End()
		if err != nil {
			return fmt.Errorf("building index: %w", err)
		}
	}

	w := jsonwriter.New(cfg.Output.Indent)
	if path, ok := opts.index.resolve(cfg.Output.IndexPath); ok {
		_, span := tracing.StartSpan(ctx, "write-index")
		span.SetAttr("path", path)
		err := w.WriteIndexFile(path, idx)
		span.End()
		if err != nil {
			return err
		}
	}

	exec := executor.New(idx, cfg.Search.Exact, m)
	if opts.queryPath != "" {
		f, err := os.Open(opts.queryPath)
		if err != nil {
			return fmt.Errorf("opening queries: %w", err)
		}
		_, span := tracing.StartSpan(ctx, "execute-queries")
		err = exec.ExecuteAll(ctx, f)
		f.Close()
		span.SetAttr("queries", exec.Len())
		span.End()
		if err != nil {
			return err
		}
	}
	if path, ok := opts.results.resolve(cfg.Output.ResultsPath); ok {
		_, span := tracing.StartSpan(ctx, "write-results")
		span.SetAttr("path", path)
		err := w.WriteResultsFile(path, exec.Results())
		span.End()
		if err != nil {
			return err
		}
	}

	if m != nil {
		if err := m.WriteTextfile(cfg.Metrics.TextfilePath); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		slog.Error("wordindex failed", "error", err)
		os.Exit(1)
	}
}
