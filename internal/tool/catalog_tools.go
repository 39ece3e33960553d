package tool

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/kinomaniac/kinoagent/internal/catalog"
	"github.com/kinomaniac/kinoagent/internal/resolver"
)

const defaultListLimit = 5

// RegisterCatalogTools adds the local-dataset lookups backed by the resolver
// and the catalog store.
func RegisterCatalogTools(r *Registry, store *catalog.Store, res *resolver.Resolver) error {
	tools := []*Tool{
		{
			Name:        "movie_info",
			Description: "Вернуть форматированное описание фильма из локального датасета IMDb Top 1000. Понимает неточные и опечатанные названия.",
			Parameters: objectSchema(map[string]*jsonschema.Schema{
				"title": stringParam("Название фильма (можно неточное)"),
			}, "title"),
			Handler: func(ctx context.Context, args map[string]any) (string, error) {
				title := stringArg(args, "title")
				result := res.Resolve(title)
				if !result.Matched() {
					return notFoundText(title), nil
				}
				return formatMovieInfo(*result.Record), nil
			},
		},
		{
			Name:        "movie_rating",
			Description: "Вернуть рейтинг IMDb фильма из локального датасета. Понимает неточные названия.",
			Parameters: objectSchema(map[string]*jsonschema.Schema{
				"title": stringParam("Название фильма (можно неточное)"),
			}, "title"),
			Handler: func(ctx context.Context, args map[string]any) (string, error) {
				title := stringArg(args, "title")
				result := res.Resolve(title)
				if !result.Matched() {
					return fmt.Sprintf("Рейтинг фильма '%s' не найден в датасете IMDb Top 1000.", title), nil
				}
				return fmt.Sprintf("Рейтинг IMDb фильма '%s' — %.1f", result.Record.Title, result.Record.Rating), nil
			},
		},
		{
			Name:        "movies_with_actor",
			Description: "Вернуть список фильмов с указанным актёром из датасета, лучшие по рейтингу.",
			Parameters: objectSchema(map[string]*jsonschema.Schema{
				"actor": stringParam("Имя актёра"),
				"limit": integerParam("Максимум фильмов в ответе"),
			}, "actor"),
			Handler: func(ctx context.Context, args map[string]any) (string, error) {
				actor := stringArg(args, "actor")
				limit := intArg(args, "limit", defaultListLimit)
				records, err := store.ByActor(ctx, actor, limit)
				if err != nil {
					return "", err
				}
				if len(records) == 0 {
					return fmt.Sprintf("Фильмы с актёром '%s' не найдены в топ-1000.", actor), nil
				}
				lines := make([]string, 0, len(records))
				for _, rec := range records {
					lines = append(lines, fmt.Sprintf("%s (%d) — рейтинг %.1f", rec.Title, rec.Year, rec.Rating))
				}
				return fmt.Sprintf("Фильмы с актёром '%s':\n%s", actor, strings.Join(lines, "\n")), nil
			},
		},
		{
			Name:        "top_by_genre",
			Description: "Вернуть топ фильмов по жанру из датасета, отсортированных по рейтингу.",
			Parameters: objectSchema(map[string]*jsonschema.Schema{
				"genre": stringParam("Жанр, например drama или sci-fi"),
				"limit": integerParam("Максимум фильмов в ответе"),
			}, "genre"),
			Handler: func(ctx context.Context, args map[string]any) (string, error) {
				genre := stringArg(args, "genre")
				limit := intArg(args, "limit", defaultListLimit)
				records, err := store.ByGenre(ctx, genre, limit)
				if err != nil {
					return "", err
				}
				if len(records) == 0 {
					return fmt.Sprintf("Нет фильмов в жанре '%s' в датасете IMDb Top 1000.", genre), nil
				}
				lines := make([]string, 0, len(records))
				for _, rec := range records {
					lines = append(lines, fmt.Sprintf("%s (%d) — %.1f", rec.Title, rec.Year, rec.Rating))
				}
				return fmt.Sprintf("Топ %d фильмов жанра '%s':\n%s", limit, genre, strings.Join(lines, "\n")), nil
			},
		},
		{
			Name:        "search_by_keyword",
			Description: "Найти фильмы по ключевому слову в описании сюжета.",
			Parameters: objectSchema(map[string]*jsonschema.Schema{
				"keyword": stringParam("Ключевое слово из сюжета"),
				"limit":   integerParam("Максимум фильмов в ответе"),
			}, "keyword"),
			Handler: func(ctx context.Context, args map[string]any) (string, error) {
				keyword := stringArg(args, "keyword")
				limit := intArg(args, "limit", defaultListLimit)
				records, err := store.ByKeyword(ctx, keyword, limit)
				if err != nil {
					return "", err
				}
				if len(records) == 0 {
					return fmt.Sprintf("Нет фильмов, содержащих слово '%s', в описании.", keyword), nil
				}
				lines := make([]string, 0, len(records))
				for _, rec := range records {
					lines = append(lines, fmt.Sprintf("%s — %s...", rec.Title, truncate(rec.Overview, 150)))
				}
				return fmt.Sprintf("Фильмы по ключевому слову '%s':\n%s", keyword, strings.Join(lines, "\n")), nil
			},
		},
	}

	for _, t := range tools {
		if err := r.Register(t); err != nil {
			return err
		}
	}
	return nil
}

func notFoundText(title string) string {
	return fmt.Sprintf("Фильм '%s' не найден в датасете IMDb Top 1000.", title)
}

func formatMovieInfo(rec catalog.Record) string {
	actors := "—"
	if len(rec.Cast) > 0 {
		actors = strings.Join(rec.Cast, ", ")
	}
	return fmt.Sprintf(
		"🎬 %s (%d)\nЖанр: %s\nРейтинг IMDb: %.1f\nРежиссёр: %s\nАктёры: %s\n\nОписание: %s",
		rec.Title, rec.Year, strings.Join(rec.Genres, ", "), rec.Rating, rec.Director, actors, rec.Overview)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
