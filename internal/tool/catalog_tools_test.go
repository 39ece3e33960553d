package tool

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kinomaniac/kinoagent/internal/catalog"
	"github.com/kinomaniac/kinoagent/internal/resolver"
)

func newCatalogRegistry(t *testing.T) *Registry {
	t.Helper()
	store, err := catalog.NewStore(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(store.Close)

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	records := []catalog.Record{
		{
			Title:    "Interstellar",
			Year:     2014,
			Genres:   []string{"Adventure", "Drama", "Sci-Fi"},
			Director: "Christopher Nolan",
			Cast:     []string{"Matthew McConaughey", "Anne Hathaway"},
			Rating:   8.6,
			Overview: "A team of explorers travel through a wormhole in space.",
		},
		{
			Title:    "The Dark Knight",
			Year:     2008,
			Genres:   []string{"Action", "Crime", "Drama"},
			Director: "Christopher Nolan",
			Cast:     []string{"Christian Bale", "Heath Ledger"},
			Rating:   9.0,
			Overview: "Batman faces the Joker in Gotham.",
		},
	}
	if err := store.Replace(ctx, records); err != nil {
		t.Fatalf("failed to seed catalog: %v", err)
	}

	r := NewRegistry()
	res := resolver.New(records, resolver.DefaultOptions())
	if err := RegisterCatalogTools(r, store, res); err != nil {
		t.Fatalf("failed to register catalog tools: %v", err)
	}
	return r
}

func TestMovieInfoResolvesTypo(t *testing.T) {
	r := newCatalogRegistry(t)

	result, err := r.Dispatch(context.Background(), "movie_info", map[string]any{"title": "Intersellar"})
	if err != nil {
		t.Fatalf("expected dispatch to succeed, got %v", err)
	}
	if !strings.Contains(result, "Interstellar") || !strings.Contains(result, "Christopher Nolan") {
		t.Fatalf("unexpected movie info: %s", result)
	}
}

func TestMovieInfoNoMatchReturnsDescriptiveText(t *testing.T) {
	r := newCatalogRegistry(t)

	result, err := r.Dispatch(context.Background(), "movie_info", map[string]any{"title": "квантовый бутерброд"})
	if err != nil {
		t.Fatalf("no-match is a valid outcome, got error %v", err)
	}
	if !strings.Contains(result, "не найден") {
		t.Fatalf("expected a not-found text, got %s", result)
	}
}

func TestMovieRating(t *testing.T) {
	r := newCatalogRegistry(t)

	result, err := r.Dispatch(context.Background(), "movie_rating", map[string]any{"title": "the dark knight"})
	if err != nil {
		t.Fatalf("expected dispatch to succeed, got %v", err)
	}
	if !strings.Contains(result, "9.0") {
		t.Fatalf("expected the rating in the text, got %s", result)
	}
}

func TestMoviesWithActorHonorsLimitArgument(t *testing.T) {
	r := newCatalogRegistry(t)

	result, err := r.Dispatch(context.Background(), "movies_with_actor",
		map[string]any{"actor": "christian bale", "limit": float64(1)})
	if err != nil {
		t.Fatalf("expected dispatch to succeed, got %v", err)
	}
	if !strings.Contains(result, "The Dark Knight") {
		t.Fatalf("unexpected actor results: %s", result)
	}
}

func TestTopByGenreEmpty(t *testing.T) {
	r := newCatalogRegistry(t)

	result, err := r.Dispatch(context.Background(), "top_by_genre", map[string]any{"genre": "western"})
	if err != nil {
		t.Fatalf("expected dispatch to succeed, got %v", err)
	}
	if !strings.Contains(result, "Нет фильмов") {
		t.Fatalf("expected an empty-genre text, got %s", result)
	}
}

func TestSearchByKeyword(t *testing.T) {
	r := newCatalogRegistry(t)

	result, err := r.Dispatch(context.Background(), "search_by_keyword", map[string]any{"keyword": "wormhole"})
	if err != nil {
		t.Fatalf("expected dispatch to succeed, got %v", err)
	}
	if !strings.Contains(result, "Interstellar") {
		t.Fatalf("unexpected keyword results: %s", result)
	}
}
