// Package profile keeps the persistent user profile: the user's name and the
// preferences (genres, actors, directors, movies) accumulated over sessions.
package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Category is a preference bucket in the profile.
type Category string

const (
	CategoryGenre    Category = "genre"
	CategoryActor    Category = "actor"
	CategoryDirector Category = "director"
	CategoryMovie    Category = "movie"
)

// UserProfile is the persisted record. Preferences are append-only sets.
type UserProfile struct {
	Name        string                `json:"name,omitempty"`
	Preferences map[Category][]string `json:"preferences"`
}

// NewProfile returns an empty profile.
func NewProfile() *UserProfile {
	return &UserProfile{Preferences: make(map[Category][]string)}
}

// Add appends a value to a category unless it is already present,
// case-insensitively. Reports whether the profile changed.
func (p *UserProfile) Add(category Category, value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}
	if p.Preferences == nil {
		p.Preferences = make(map[Category][]string)
	}
	for _, existing := range p.Preferences[category] {
		if strings.EqualFold(existing, value) {
			return false
		}
	}
	p.Preferences[category] = append(p.Preferences[category], value)
	return true
}

// Summary renders the preferences as one human-readable sentence for the
// model context, or "" when nothing is known yet.
func (p *UserProfile) Summary() string {
	var parts []string
	if genres := p.Preferences[CategoryGenre]; len(genres) > 0 {
		parts = append(parts, "любимые жанры: "+strings.Join(genres, ", "))
	}
	if actors := p.Preferences[CategoryActor]; len(actors) > 0 {
		parts = append(parts, "любимые актёры: "+strings.Join(actors, ", "))
	}
	if directors := p.Preferences[CategoryDirector]; len(directors) > 0 {
		parts = append(parts, "любимые режиссёры: "+strings.Join(directors, ", "))
	}
	if movies := p.Preferences[CategoryMovie]; len(movies) > 0 {
		parts = append(parts, "любимые фильмы: "+strings.Join(movies, ", "))
	}
	if len(parts) == 0 {
		return ""
	}
	return "У пользователя " + strings.Join(parts, "; ") + "."
}

// Store persists the profile as a single JSON file, rewritten whole on every
// mutation.
type Store struct {
	path string
}

// NewStore returns a Store writing to path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the profile from disk. A missing file yields an empty profile
// without error; a broken file yields an empty profile plus the error so the
// caller can log it and continue in memory.
func (s *Store) Load() (*UserProfile, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewProfile(), nil
		}
		return NewProfile(), fmt.Errorf("failed to read profile: %w", err)
	}
	p := NewProfile()
	if err := json.Unmarshal(data, p); err != nil {
		return NewProfile(), fmt.Errorf("failed to decode profile: %w", err)
	}
	if p.Preferences == nil {
		p.Preferences = make(map[Category][]string)
	}
	return p, nil
}

// Save rewrites the profile file.
func (s *Store) Save(p *UserProfile) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}
	return nil
}
