package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsolatedRegistries(t *testing.T) {
	a := New()
	b := New()
	a.DocsIndexedTotal.Add(3)
	assert.Equal(t, 3.0, testutil.ToFloat64(a.DocsIndexedTotal))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.DocsIndexedTotal))
}

func TestWriteTextfile(t *testing.T) {
	m := New()
	m.DocsIndexedTotal.Inc()
	m.IndexWords.Set(42)
	m.SearchQueriesTotal.WithLabelValues("partial", "hit").Inc()

	path := filepath.Join(t.TempDir(), "wordindex.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "wordindex_docs_indexed_total 1")
	assert.Contains(t, out, "wordindex_index_words 42")
	assert.True(t, strings.Contains(out, `wordindex_search_queries_total{mode="partial",result_type="hit"} 1`))
}

func TestWriteTextfileBadPath(t *testing.T) {
	m := New()
	err := m.WriteTextfile(filepath.Join(t.TempDir(), "missing", "dir", "x.prom"))
	assert.Error(t, err)
}
