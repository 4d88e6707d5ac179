package executor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/Adithya-Monish-Kumar-K/wordindex/internal/searcher/parser"
	"github.com/Adithya-Monish-Kumar-K/wordindex/internal/searcher/ranker"
	"github.com/Adithya-Monish-Kumar-K/wordindex/pkg/logger"
	"github.com/Adithya-Monish-Kumar-K/wordindex/pkg/metrics"
)

// Searcher is the read side of the inverted index.
type Searcher interface {
	ExactSearch(words []string) []ranker.Result
	PartialSearch(words []string) []ranker.Result
}

// QueryResult is the ranked result set of one canonical query.
type QueryResult struct {
	Query   string          `json:"queries"`
	Results []ranker.Result `json:"results"`
}

// Executor runs query lines against an index and keeps one result set per
// canonical query. It is not safe for concurrent use.
type Executor struct {
	searcher Searcher
	exact    bool
	results  map[string][]ranker.Result
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// New returns an Executor fixed to exact or partial search for its whole
// lifetime. m may be nil.
func New(searcher Searcher, exact bool, m *metrics.Metrics) *Executor {
	return &Executor{
		searcher: searcher,
		exact:    exact,
		results:  make(map[string][]ranker.Result),
		metrics:  m,
		logger:   logger.WithComponent("query-executor"),
	}
}

func (e *Executor) mode() string {
	if e.exact {
		return "exact"
	}
	return "partial"
}

// Execute searches one raw query line. Lines without words are skipped.
// A line whose canonical key was already seen is also skipped: the first
// occurrence wins. It returns the canonical key and whether a new result
// set was stored.
func (e *Executor) Execute(line string) (string, bool) {
	plan := parser.Parse(line)
	if plan.Empty() {
		e.record("empty")
		return "", false
	}
	if _, seen := e.results[plan.Key]; seen {
		e.logger.Debug("duplicate query skipped", "query", plan.RawQuery, "key", plan.Key)
		e.record("duplicate")
		return plan.Key, false
	}

	start := time.Now()
	var results []ranker.Result
	if e.exact {
		results = e.searcher.ExactSearch(plan.Words)
	} else {
		results = e.searcher.PartialSearch(plan.Words)
	}
	elapsed := time.Since(start)
	e.results[plan.Key] = results

	resultType := "hit"
	if len(results) == 0 {
		resultType = "zero_result"
	}
	e.record(resultType)
	if e.metrics != nil {
		e.metrics.SearchLatency.WithLabelValues(e.mode()).Observe(elapsed.Seconds())
		e.metrics.SearchResultsCount.Observe(float64(len(results)))
	}
	e.logger.Debug("query executed",
		"query", plan.RawQuery,
		"key", plan.Key,
		"mode", e.mode(),
		"results", len(results),
		"elapsed", elapsed,
	)
	return plan.Key, true
}

func (e *Executor) record(resultType string) {
	if e.metrics != nil {
		e.metrics.SearchQueriesTotal.WithLabelValues(e.mode(), resultType).Inc()
	}
}

// ExecuteAll runs every line read from r. Lines may be of any length; a
// trailing "\r" is dropped. Read failures are returned after the lines read
// so far have been run.
func (e *Executor) ExecuteAll(ctx context.Context, r io.Reader) error {
	br := bufio.NewReader(r)
	lines := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			e.Execute(line)
			lines++
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("reading queries: %w", err)
		}
	}
	e.logger.Info("queries processed",
		"lines", lines,
		"distinct", len(e.results),
		"mode", e.mode(),
	)
	return nil
}

// Lookup returns the stored result set for a canonical key.
func (e *Executor) Lookup(key string) ([]ranker.Result, bool) {
	results, ok := e.results[key]
	return results, ok
}

// Keys returns the stored canonical keys in ascending order.
func (e *Executor) Keys() []string {
	keys := make([]string, 0, len(e.results))
	for key := range e.results {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Results returns every stored result set ordered by canonical key.
func (e *Executor) Results() []QueryResult {
	keys := e.Keys()
	out := make([]QueryResult, 0, len(keys))
	for _, key := range keys {
		out = append(out, QueryResult{
			Query:   key,
			Results: e.results[key],
		})
	}
	return out
}

func (e *Executor) Len() int {
	return len(e.results)
}
