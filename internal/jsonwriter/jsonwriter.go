// Package jsonwriter renders the inverted index and query result sets as
// deterministic, indented JSON documents.
//
// The index document maps word -> location -> ascending positions with both
// object levels in ascending key order. The results document is an array of
// {"queries", "results"} objects in ascending query order; result order is
// taken as given.
package jsonwriter

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Adithya-Monish-Kumar-K/wordindex/internal/indexer/index"
	"github.com/Adithya-Monish-Kumar-K/wordindex/internal/searcher/executor"
	"github.com/Adithya-Monish-Kumar-K/wordindex/internal/searcher/ranker"
	"github.com/Adithya-Monish-Kumar-K/wordindex/pkg/logger"
)

const DefaultIndent = "\t"

// Snapshotter is anything that can list its words and postings in order.
type Snapshotter interface {
	Snapshot() []index.TermEntry
}

type Writer struct {
	indent string
	logger *slog.Logger
}

func New(indent string) *Writer {
	return &Writer{
		indent: indent,
		logger: logger.WithComponent("jsonwriter"),
	}
}

// WriteIndex writes the index document for idx to out. An empty index is
// written as {}.
func (w *Writer) WriteIndex(out io.Writer, idx Snapshotter) error {
	entries := idx.Snapshot()
	doc := make(map[string]map[string][]int, len(entries))
	for _, entry := range entries {
		locations := make(map[string][]int, len(entry.Postings))
		for _, p := range entry.Postings {
			locations[p.Location] = p.Positions
		}
		doc[entry.Word] = locations
	}
	if err := w.encode(out, doc); err != nil {
		return fmt.Errorf("writing index: %w", err)
	}
	return nil
}

// WriteResults writes one object per query result in the given order. An
// empty slice is written as [].
func (w *Writer) WriteResults(out io.Writer, results []executor.QueryResult) error {
	doc := make([]executor.QueryResult, 0, len(results))
	for _, r := range results {
		if r.Results == nil {
			r.Results = []ranker.Result{}
		}
		doc = append(doc, r)
	}
	if err := w.encode(out, doc); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}
	return nil
}

func (w *Writer) encode(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", w.indent)
	return enc.Encode(v)
}

// WriteIndexFile creates path and writes the index document to it.
func (w *Writer) WriteIndexFile(path string, idx Snapshotter) error {
	return w.writeFile(path, func(out io.Writer) error {
		return w.WriteIndex(out, idx)
	})
}

// WriteResultsFile creates path and writes the results document to it.
func (w *Writer) WriteResultsFile(path string, results []executor.QueryResult) error {
	return w.writeFile(path, func(out io.Writer) error {
		return w.WriteResults(out, results)
	})
}

func (w *Writer) writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()
	buf := bufio.NewWriter(f)
	if err := write(buf); err != nil {
		return err
	}
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	w.logger.Info("json written", "path", path)
	return nil
}
