// Package builder populates an inverted index from HTML files on disk. It
// discovers documents, strips their markup, tokenizes the remaining text and
// hands each document's word stream to the index.
package builder

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/Adithya-Monish-Kumar-K/wordindex/internal/indexer/htmlclean"
	"github.com/Adithya-Monish-Kumar-K/wordindex/internal/indexer/index"
	"github.com/Adithya-Monish-Kumar-K/wordindex/internal/indexer/tokenizer"
	"github.com/Adithya-Monish-Kumar-K/wordindex/pkg/config"
	apperrors "github.com/Adithya-Monish-Kumar-K/wordindex/pkg/errors"
	"github.com/Adithya-Monish-Kumar-K/wordindex/pkg/logger"
	"github.com/Adithya-Monish-Kumar-K/wordindex/pkg/metrics"
)

// Document is one location and its normalised words in reading order.
type Document struct {
	Location string
	Words    []string
}

type Builder struct {
	idx     *index.InvertedIndex
	cfg     config.IndexerConfig
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// New returns a Builder that writes into idx. m may be nil.
func New(idx *index.InvertedIndex, cfg config.IndexerConfig, m *metrics.Metrics) *Builder {
	return &Builder{
		idx:     idx,
		cfg:     cfg,
		metrics: m,
		logger:  logger.WithComponent("index-builder"),
	}
}

// Add inserts one already-normalised document.
func (b *Builder) Add(doc Document) error {
	if err := b.idx.AddAll(doc.Words, doc.Location); err != nil {
		return fmt.Errorf("indexing %s: %w", doc.Location, err)
	}
	if b.metrics != nil {
		b.metrics.DocsIndexedTotal.Inc()
		b.metrics.WordsIndexedTotal.Add(float64(len(doc.Words)))
	}
	b.logger.Debug("document indexed",
		"location", doc.Location,
		"word_count", len(doc.Words),
	)
	return nil
}

// Build indexes every matching file under root. A root that is a regular
// file is indexed whatever its extension. The first read or parse failure
// cancels the remaining work and is returned.
func (b *Builder) Build(ctx context.Context, root string) error {
	paths, err := b.Discover(root)
	if err != nil {
		return err
	}
	b.logger.Info("documents discovered", "root", root, "count", len(paths))

	workers := b.cfg.Workers
	if workers < 1 {
		workers = 1
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, path := range paths {
		path := path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, err := ParseFile(path)
			if err != nil {
				if b.metrics != nil {
					b.metrics.DocsFailedTotal.Inc()
				}
				return err
			}
			return b.Add(doc)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if b.metrics != nil {
		b.metrics.IndexWords.Set(float64(b.idx.WordCount()))
	}
	b.logger.Info("index built",
		"documents", b.idx.DocCount(),
		"words", b.idx.WordCount(),
	)
	return nil
}

// Discover lists the documents Build would index, in lexical order.
func (b *Builder) Discover(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("reading document root: %w", err)
	}
	if info.Mode().IsRegular() {
		return []string{root}, nil
	}
	if !info.IsDir() {
		return nil, apperrors.Newf(apperrors.ErrUnsupportedInput, "%s is neither a file nor a directory", root)
	}
	paths := make([]string, 0)
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && b.matches(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	sort.Strings(paths)
	return paths, nil
}

func (b *Builder) matches(path string) bool {
	name := strings.ToLower(path)
	for _, ext := range b.cfg.Extensions {
		if strings.HasSuffix(name, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}

// ParseFile reads an HTML file and returns its words with the path as the
// location.
func ParseFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("opening document: %w", err)
	}
	defer f.Close()
	text, err := htmlclean.Strip(f)
	if err != nil {
		return Document{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return Document{
		Location: path,
		Words:    tokenizer.Tokenize(text),
	}, nil
}
