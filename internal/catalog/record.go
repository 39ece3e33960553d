// Package catalog provides read-only access to the local movie dataset.
package catalog

import "strings"

// Record is one movie from the catalog. Records are loaded once at process
// start and never mutated afterwards.
type Record struct {
	Title    string
	Year     int
	Genres   []string
	Director string
	Cast     []string
	Rating   float64
	Overview string
}

// MetaText joins overview, genres, director and cast into one lowercase
// blob used for metadata token matching.
func (r Record) MetaText() string {
	parts := make([]string, 0, 3+len(r.Cast))
	if r.Overview != "" {
		parts = append(parts, r.Overview)
	}
	if len(r.Genres) > 0 {
		parts = append(parts, strings.Join(r.Genres, " "))
	}
	if r.Director != "" {
		parts = append(parts, r.Director)
	}
	parts = append(parts, r.Cast...)
	return strings.ToLower(strings.Join(parts, " "))
}

func splitGenres(genre string) []string {
	if genre == "" {
		return nil
	}
	raw := strings.Split(genre, ",")
	genres := make([]string, 0, len(raw))
	for _, g := range raw {
		if g = strings.TrimSpace(g); g != "" {
			genres = append(genres, g)
		}
	}
	return genres
}

func joinCast(stars ...string) []string {
	cast := make([]string, 0, len(stars))
	for _, s := range stars {
		if s = strings.TrimSpace(s); s != "" {
			cast = append(cast, s)
		}
	}
	return cast
}
