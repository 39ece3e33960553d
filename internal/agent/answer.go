package agent

import (
	"strings"

	"github.com/kinomaniac/kinoagent/internal/profile"
)

const stepBudgetFallback = "Похоже, запрос получился слишком сложным для одного диалога, " +
	"и я достиг лимита шагов рассуждения."

const defaultExplanation = "Пояснение: Я сформировал этот ответ, опираясь на твой запрос, " +
	"контекст диалога и данные из доступных инструментов и своей памяти, если это было необходимо."

// formatFinalAnswer guarantees every final answer carries a «Пояснение:» line.
func formatFinalAnswer(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "Я не смог сформировать осмысленный ответ.\n" +
			"Пояснение: Я столкнулся с внутренней ошибкой при обработке запроса."
	}
	if strings.Contains(strings.ToLower(text), "пояснение:") {
		return text
	}
	return text + "\n\n" + defaultExplanation
}

// answerFromMemory answers simple profile questions without a model call.
// Returns "" when the question is not one of them.
func (s *Session) answerFromMemory(userText string) string {
	low := strings.ToLower(userText)

	if strings.Contains(low, "как меня зовут") {
		if s.profile.Name != "" {
			return "Тебя зовут " + s.profile.Name + "."
		}
		return "Я ещё не знаю, как тебя зовут."
	}

	if strings.Contains(low, "какие жанры я люблю") {
		if genres := s.profile.Preferences[profile.CategoryGenre]; len(genres) > 0 {
			return "Ты любишь " + strings.Join(genres, ", ") + "."
		}
		return "Я пока не знаю, какие жанры ты любишь."
	}

	if strings.Contains(low, "что я люблю") {
		if summary := s.profile.Summary(); summary != "" {
			return summary
		}
		return "Ты пока не рассказал мне, что ты любишь."
	}

	return ""
}
