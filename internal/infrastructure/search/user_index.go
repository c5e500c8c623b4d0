package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/oksasatya/go-ddd-user-registry/internal/application"
)

// UsersIndexMapping is applied when the users index is created.
const UsersIndexMapping = `{
  "mappings": {
    "properties": {
      "id":         {"type": "keyword"},
      "name":       {"type": "text", "fields": {"raw": {"type": "keyword"}}},
      "updated_at": {"type": "date"}
    }
  }
}`

const requestTimeout = 3 * time.Second

// UserIndex keeps a searchable projection of users in Elasticsearch.
type UserIndex struct {
	es    *elasticsearch.Client
	index string
}

func NewUserIndex(es *elasticsearch.Client, index string) *UserIndex {
	return &UserIndex{es: es, index: index}
}

type userDoc struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	UpdatedAt string `json:"updated_at"`
}

// externalVersion orders writes by event time, so a redelivered older event
// cannot overwrite or resurrect a newer state. A zero time is unversioned.
func externalVersion(at time.Time) (*int, string) {
	if at.IsZero() {
		return nil, ""
	}
	v := int(at.UnixNano())
	return &v, "external"
}

// Index upserts the user document under its id, versioned by at. A write
// older than the stored version is skipped.
func (i *UserIndex) Index(ctx context.Context, u application.UserData, at time.Time) error {
	b, err := json.Marshal(userDoc{ID: u.ID, Name: u.Name, UpdatedAt: at.UTC().Format(time.RFC3339Nano)})
	if err != nil {
		return err
	}
	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	version, versionType := externalVersion(at)
	req := esapi.IndexRequest{
		Index:       i.index,
		DocumentID:  u.ID,
		Body:        bytes.NewReader(b),
		Refresh:     "false",
		Version:     version,
		VersionType: versionType,
	}
	res, err := req.Do(c, i.es)
	if err != nil {
		return fmt.Errorf("index user %s: %w", u.ID, err)
	}
	defer func() { _ = res.Body.Close() }()
	if res.StatusCode == http.StatusConflict {
		return nil
	}
	if res.IsError() {
		return fmt.Errorf("index user %s: %s", u.ID, res.Status())
	}
	return nil
}

// Delete removes the user document as of deletedAt. A missing document or
// one written after deletedAt is not an error.
func (i *UserIndex) Delete(ctx context.Context, id string, deletedAt time.Time) error {
	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	version, versionType := externalVersion(deletedAt)
	req := esapi.DeleteRequest{Index: i.index, DocumentID: id, Version: version, VersionType: versionType}
	res, err := req.Do(c, i.es)
	if err != nil {
		return fmt.Errorf("delete user %s from index: %w", id, err)
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && res.StatusCode != http.StatusNotFound && res.StatusCode != http.StatusConflict {
		return fmt.Errorf("delete user %s from index: %s", id, res.Status())
	}
	return nil
}

// Search runs a fuzzy match on user names.
func (i *UserIndex) Search(ctx context.Context, q string, size int) ([]application.UserData, error) {
	query := map[string]any{
		"query": map[string]any{
			"match": map[string]any{
				"name": map[string]any{
					"query":     q,
					"fuzziness": "AUTO",
				},
			},
		},
		"size": size,
	}
	b, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	res, err := i.es.Search(
		i.es.Search.WithContext(c),
		i.es.Search.WithIndex(i.index),
		i.es.Search.WithBody(bytes.NewReader(b)),
	)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	defer func() { _ = res.Body.Close() }()
	// the worker creates the index on first start; until then nothing is indexed
	if res.StatusCode == http.StatusNotFound {
		return []application.UserData{}, nil
	}
	if res.IsError() {
		return nil, fmt.Errorf("search users: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source userDoc `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	out := make([]application.UserData, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, application.UserData{ID: h.Source.ID, Name: h.Source.Name})
	}
	return out, nil
}

var _ application.UserSearcher = (*UserIndex)(nil)
