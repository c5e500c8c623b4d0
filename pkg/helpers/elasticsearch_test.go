package helpers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func esStub(t *testing.T, existing bool) (*elasticsearch.Client, func() []string) {
	t.Helper()
	var mu sync.Mutex
	var calls []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.ReadAll(r.Body)
		mu.Lock()
		calls = append(calls, r.Method+" "+r.URL.Path)
		mu.Unlock()
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodHead && existing:
			w.WriteHeader(http.StatusOK)
		case r.Method == http.MethodHead:
			w.WriteHeader(http.StatusNotFound)
		default:
			_, _ = w.Write([]byte(`{"acknowledged":true}`))
		}
	}))
	t.Cleanup(srv.Close)

	es, err := NewESClient([]string{srv.URL}, "", "")
	require.NoError(t, err)
	return es, func() []string {
		mu.Lock()
		defer mu.Unlock()
		return append([]string(nil), calls...)
	}
}

func TestEnsureESIndex_CreatesMissingIndex(t *testing.T) {
	es, calls := esStub(t, false)

	require.NoError(t, EnsureESIndex(context.Background(), es, "users", `{"mappings":{}}`))
	assert.Equal(t, []string{"HEAD /users", "PUT /users"}, calls())
}

func TestEnsureESIndex_ExistingIndexIsLeftAlone(t *testing.T) {
	es, calls := esStub(t, true)

	require.NoError(t, EnsureESIndex(context.Background(), es, "users", `{"mappings":{}}`))
	assert.Equal(t, []string{"HEAD /users"}, calls())
}
