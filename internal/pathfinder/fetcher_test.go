package pathfinder

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/persistorai/wikipath/internal/models"
)

func TestFetcher_CacheHit(t *testing.T) {
	src := newMockSource(map[string][]string{"A": {"B", "C"}, "B": nil, "C": nil})
	f := NewFetcher(src)
	ctx := context.Background()
	id := src.id("A")

	for range 3 {
		got, err := f.Neighbors(ctx, id)
		if err != nil {
			t.Fatalf("neighbors: %v", err)
		}
		if !reflect.DeepEqual(got, []string{"B", "C"}) {
			t.Fatalf("got %v", got)
		}
	}

	if got := src.fetchCount(id); got != 1 {
		t.Errorf("expected 1 remote fetch, got %d", got)
	}
}

func TestFetcher_FiltersNamespacesAndDuplicates(t *testing.T) {
	src := newMockSource(map[string][]string{"A": {"B", "C", "B"}, "B": nil, "C": nil})
	id := src.id("A")
	src.extra[id] = []models.Link{
		{Title: "Category:Letters", Namespace: 14},
		{Title: "Talk:A", Namespace: 1},
		{Title: "File:A.png", Namespace: 6},
		{Title: "D", Namespace: models.MainNamespace},
	}
	f := NewFetcher(src)

	got, err := f.Neighbors(context.Background(), id)
	if err != nil {
		t.Fatalf("neighbors: %v", err)
	}

	want := []string{"B", "C", "D"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFetcher_ErrorIsNotCached(t *testing.T) {
	src := newMockSource(map[string][]string{"A": {"B"}, "B": nil})
	id := src.id("A")
	src.fetchErr[id] = errTransport
	f := NewFetcher(src)
	ctx := context.Background()

	_, err := f.Neighbors(ctx, id)
	var fe *FetchError
	if !errors.As(err, &fe) || fe.ID != id {
		t.Fatalf("expected FetchError for %d, got %v", id, err)
	}
	if !errors.Is(err, errTransport) {
		t.Errorf("expected wrapped cause, got %v", err)
	}

	delete(src.fetchErr, id)
	if _, err := f.Neighbors(ctx, id); err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	if got := src.fetchCount(id); got != 2 {
		t.Errorf("expected 2 fetches, got %d", got)
	}
}
