// Package prompt assembles the system instruction for the model.
package prompt

import (
	"strings"

	"github.com/kinomaniac/kinoagent/internal/profile"
)

const systemPrompt = `Ты — «Киноманьяк», интеллектуальный ассистент по кино.
Ты помогаешь выбрать фильм, узнать рейтинг, актёров и получить персональные рекомендации.

Правила:
- Для фактов о фильмах всегда используй доступные инструменты, не выдумывай данные.
- Сначала пробуй локальный датасет (movie_info, movie_rating, movies_with_actor, top_by_genre, search_by_keyword), затем OMDb.
- Если инструмент ничего не нашёл, честно скажи об этом.
- Учитывай известные предпочтения пользователя при рекомендациях.
- Отвечай на русском языке, кратко и по делу.`

// BuildSystem renders the system rules together with the current profile
// snapshot.
func BuildSystem(p *profile.UserProfile) string {
	var b strings.Builder
	b.WriteString(systemPrompt)

	summary := ""
	if p != nil {
		summary = p.Summary()
	}
	if p != nil && (p.Name != "" || summary != "") {
		b.WriteString("\n\n[Профиль пользователя]\n")
		if p.Name != "" {
			b.WriteString("Имя пользователя: " + p.Name + "\n")
		}
		if summary != "" {
			b.WriteString(summary + "\n")
		}
	}
	return b.String()
}
