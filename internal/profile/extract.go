package profile

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	nameRe      = regexp.MustCompile(`(?i)меня зовут\s+([A-Za-zА-Яа-яЁё\-]+)`)
	directorsRe = regexp.MustCompile(`(?i)я люблю фильмы\s+([a-zа-яё \-]+)`)
	genresRe    = regexp.MustCompile(`(?i)я люблю\s+([a-zа-яё ,]+)`)
	moviesRe    = regexp.MustCompile(`(?i)фильм\s+([A-Za-zА-Яа-яЁё \-]+)`)
	alsoRe      = regexp.MustCompile(`(?i)\bтоже\b`)
)

// UpdateFromText mines preference facts from a user message and applies them
// to the profile. Misspellings are corrected first. Reports whether anything
// changed.
func UpdateFromText(p *UserProfile, text string) bool {
	clean := strings.TrimSpace(ApplyCorrection(text))
	if clean == "" {
		return false
	}
	low := strings.ToLower(clean)
	changed := false

	if m := nameRe.FindStringSubmatch(clean); m != nil {
		if name := strings.TrimSpace(m[1]); name != "" && name != p.Name {
			p.Name = name
			changed = true
		}
	}

	if strings.Contains(low, "джеки чан") || strings.Contains(low, "jackie chan") {
		changed = p.Add(CategoryActor, "Джеки Чан") || changed
	}

	for _, m := range directorsRe.FindAllStringSubmatch(low, -1) {
		if name := strings.TrimSpace(m[1]); name != "" {
			changed = p.Add(CategoryDirector, capitalize(name)) || changed
		}
	}

	// Drop the director phrases so they do not resurface as genres.
	lowForGenres := directorsRe.ReplaceAllString(low, "")

	for _, m := range genresRe.FindAllStringSubmatch(lowForGenres, -1) {
		for _, piece := range strings.Split(m[1], ",") {
			piece = strings.TrimSpace(alsoRe.ReplaceAllString(piece, ""))
			if piece != "" {
				changed = p.Add(CategoryGenre, piece) || changed
			}
		}
	}

	for _, m := range moviesRe.FindAllStringSubmatch(clean, -1) {
		if title := strings.TrimSpace(m[1]); title != "" {
			changed = p.Add(CategoryMovie, title) || changed
		}
	}

	return changed
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
