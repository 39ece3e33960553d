package tool

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/kinomaniac/kinoagent/internal/omdb"
)

const omdbUnavailableText = "OMDb API ключ не найден. Укажи OMDB_API_KEY в .env."

// RegisterOMDbTools adds the remote OMDb lookups. A nil client means no API
// key was configured; the tools then explain that instead of failing.
func RegisterOMDbTools(r *Registry, client *omdb.Client) error {
	tools := []*Tool{
		{
			Name:        "omdb_movie_info",
			Description: "Получить подробную информацию о фильме из онлайн-базы OMDb.",
			Parameters: objectSchema(map[string]*jsonschema.Schema{
				"title": stringParam("Название фильма"),
			}, "title"),
			Handler: func(ctx context.Context, args map[string]any) (string, error) {
				if client == nil {
					return omdbUnavailableText, nil
				}
				movie, err := client.Lookup(ctx, stringArg(args, "title"), true)
				if err != nil {
					return "", err
				}
				return fmt.Sprintf(
					"🎬 %s (%s)\nРежиссёр: %s\nАктёры: %s\nЖанр: %s\nРейтинг IMDb: %s\n\nСюжет: %s",
					movie.Title, movie.Year, movie.Director, movie.Actors, movie.Genre, movie.Rating, movie.Plot), nil
			},
		},
		{
			Name:        "omdb_movie_rating",
			Description: "Получить рейтинг IMDb фильма из онлайн-базы OMDb.",
			Parameters: objectSchema(map[string]*jsonschema.Schema{
				"title": stringParam("Название фильма"),
			}, "title"),
			Handler: func(ctx context.Context, args map[string]any) (string, error) {
				if client == nil {
					return omdbUnavailableText, nil
				}
				movie, err := client.Lookup(ctx, stringArg(args, "title"), false)
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("Рейтинг IMDb фильма '%s' — %s", movie.Title, movie.Rating), nil
			},
		},
		{
			Name:        "omdb_search",
			Description: "Найти фильмы по ключевому слову через онлайн-базу OMDb.",
			Parameters: objectSchema(map[string]*jsonschema.Schema{
				"keyword": stringParam("Ключевое слово для поиска"),
				"limit":   integerParam("Максимум фильмов в ответе"),
			}, "keyword"),
			Handler: func(ctx context.Context, args map[string]any) (string, error) {
				if client == nil {
					return omdbUnavailableText, nil
				}
				keyword := stringArg(args, "keyword")
				hits, err := client.Search(ctx, keyword)
				if err != nil {
					return "", err
				}
				limit := intArg(args, "limit", defaultListLimit)
				if len(hits) > limit {
					hits = hits[:limit]
				}
				lines := make([]string, 0, len(hits))
				for _, hit := range hits {
					lines = append(lines, fmt.Sprintf("%s (%s)", hit.Title, hit.Year))
				}
				return fmt.Sprintf("Результаты поиска OMDb по запросу '%s':\n%s", keyword, strings.Join(lines, "\n")), nil
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
