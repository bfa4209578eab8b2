package pathfinder

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/persistorai/wikipath/internal/models"
)

var errTransport = errors.New("connection reset")

func testLogger() *logrus.Entry {
	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)
	return logrus.NewEntry(log)
}

// mockSource serves a synthetic link graph and records every call.
type mockSource struct {
	mu sync.Mutex

	graph     map[string][]string // canonical title -> outbound link titles
	redirects map[string]string   // alias -> canonical title
	ids       map[string]models.PageID

	lookupErr map[string]error        // title -> transport error
	fetchErr  map[models.PageID]error // page -> fetch error
	extra     map[models.PageID][]models.Link

	lookups map[string]int
	fetches map[models.PageID]int
}

func newMockSource(graph map[string][]string) *mockSource {
	m := &mockSource{
		graph:     graph,
		redirects: map[string]string{},
		ids:       map[string]models.PageID{},
		lookupErr: map[string]error{},
		fetchErr:  map[models.PageID]error{},
		extra:     map[models.PageID][]models.Link{},
		lookups:   map[string]int{},
		fetches:   map[models.PageID]int{},
	}

	titles := make([]string, 0, len(graph))
	for t := range graph {
		titles = append(titles, t)
	}
	sort.Strings(titles)
	for i, t := range titles {
		m.ids[t] = models.PageID(i + 1)
	}

	return m
}

func (m *mockSource) id(title string) models.PageID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ids[title]
}

func (m *mockSource) LookupIdentifier(_ context.Context, title string) (models.Lookup, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lookups[title]++

	if err, ok := m.lookupErr[title]; ok {
		return models.Lookup{}, err
	}

	canonical := title
	if to, ok := m.redirects[title]; ok {
		canonical = to
	}

	id, ok := m.ids[canonical]
	if !ok {
		return models.Lookup{Found: false, Reason: "missing"}, nil
	}

	return models.Lookup{Found: true, ID: id, CanonicalTitle: canonical}, nil
}

func (m *mockSource) ListOutboundLinks(_ context.Context, id models.PageID) ([]models.Link, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.fetches[id]++

	if err, ok := m.fetchErr[id]; ok {
		return nil, err
	}

	for title, pid := range m.ids {
		if pid != id {
			continue
		}
		links := make([]models.Link, 0, len(m.graph[title]))
		for _, to := range m.graph[title] {
			links = append(links, models.Link{Title: to, Namespace: models.MainNamespace})
		}
		return append(links, m.extra[id]...), nil
	}

	return nil, models.ErrPageMissing
}

func (m *mockSource) lookupCount(title string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lookups[title]
}

func (m *mockSource) fetchCount(id models.PageID) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fetches[id]
}

func (m *mockSource) totalFetches() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.fetches {
		n += c
	}
	return n
}
