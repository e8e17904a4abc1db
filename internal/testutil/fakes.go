package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fekuna/comics-store-service/pkg/broker"
	"github.com/fekuna/comics-store-service/pkg/search"
)

// MemCache is an in-memory stand-in for the redis cache.
type MemCache struct {
	mu      sync.Mutex
	Entries map[string][]byte
	Gets    int
	Hits    int
}

func NewMemCache() *MemCache {
	return &MemCache{Entries: map[string][]byte{}}
}

func (m *MemCache) GetJSON(_ context.Context, key string, dest interface{}) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Gets++
	data, ok := m.Entries[key]
	if !ok {
		return false, nil
	}
	m.Hits++
	return true, json.Unmarshal(data, dest)
}

func (m *MemCache) SetJSON(_ context.Context, key string, value interface{}, _ time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries[key] = data
	return nil
}

func (m *MemCache) DeletePrefix(_ context.Context, prefix string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k := range m.Entries {
		if strings.HasPrefix(k, prefix) {
			delete(m.Entries, k)
		}
	}
	return nil
}

func (m *MemCache) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.Entries[key]
	return ok
}

// RecordingPublisher keeps every published event.
type RecordingPublisher struct {
	mu     sync.Mutex
	Events []broker.Event
	Err    error
}

func (p *RecordingPublisher) Publish(_ context.Context, events ...broker.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return p.Err
	}
	p.Events = append(p.Events, events...)
	return nil
}

func (p *RecordingPublisher) Types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.Events))
	for i, e := range p.Events {
		out[i] = e.EventType
	}
	return out
}

// FakeSearch records indexing calls. Search answers with Hits when set;
// otherwise a term query is matched against Docs and any other query
// returns every doc of the index.
type FakeSearch struct {
	mu        sync.Mutex
	Docs      map[string][]byte
	Deleted   []string
	Queries   []map[string]interface{}
	Hits      []search.Hit
	SearchErr error
	IndexErr  error
}

func NewFakeSearch() *FakeSearch {
	return &FakeSearch{Docs: map[string][]byte{}}
}

func (f *FakeSearch) CreateIndex(context.Context, string, string) error {
	return nil
}

func (f *FakeSearch) Index(_ context.Context, index, id string, doc interface{}) error {
	if f.IndexErr != nil {
		return f.IndexErr
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Docs[index+"/"+id] = data
	return nil
}

func (f *FakeSearch) Delete(_ context.Context, index, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.Docs, index+"/"+id)
	f.Deleted = append(f.Deleted, index+"/"+id)
	return nil
}

// Doc decodes the stored document into a generic map, or nil when absent.
func (f *FakeSearch) Doc(index, id string) map[string]interface{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.Docs[index+"/"+id]
	if !ok {
		return nil
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil
	}
	return doc
}

func (f *FakeSearch) Search(_ context.Context, index string, query map[string]interface{}) (*search.SearchResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Queries = append(f.Queries, query)
	if f.SearchErr != nil {
		return nil, f.SearchErr
	}

	res := &search.SearchResponse{}
	if f.Hits != nil {
		res.Hits.Hits = append(res.Hits.Hits, f.Hits...)
		res.Hits.Total.Value = len(f.Hits)
		return res, nil
	}

	field, want, isTerm := termOf(query)
	for key, data := range f.Docs {
		id, ok := strings.CutPrefix(key, index+"/")
		if !ok {
			continue
		}
		if isTerm {
			var doc map[string]interface{}
			if err := json.Unmarshal(data, &doc); err != nil {
				return nil, err
			}
			if fmt.Sprint(doc[field]) != fmt.Sprint(want) {
				continue
			}
		}
		res.Hits.Hits = append(res.Hits.Hits, search.Hit{ID: id, Source: data})
	}
	sort.Slice(res.Hits.Hits, func(i, j int) bool { return res.Hits.Hits[i].ID < res.Hits.Hits[j].ID })
	res.Hits.Total.Value = len(res.Hits.Hits)
	return res, nil
}

func termOf(query map[string]interface{}) (string, interface{}, bool) {
	q, _ := query["query"].(map[string]interface{})
	term, _ := q["term"].(map[string]interface{})
	for field, v := range term {
		return field, v, true
	}
	return "", nil, false
}
