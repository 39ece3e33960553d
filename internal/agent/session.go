// Package agent drives the per-turn orchestration loop: it requests model
// decisions, executes requested tools in order, feeds the results back and
// stops on a final answer or when the step budget runs out.
package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/openai/openai-go/v3"

	"github.com/kinomaniac/kinoagent/internal/llm"
	"github.com/kinomaniac/kinoagent/internal/profile"
	"github.com/kinomaniac/kinoagent/internal/prompt"
	"github.com/kinomaniac/kinoagent/internal/tool"
)

// maxHistory bounds the session history kept in memory.
const maxHistory = 100

// Turn is one role-tagged message of the session history. Only user and
// assistant turns are kept across steps; tool results live inside a single
// turn's model context.
type Turn struct {
	Role    string
	Content string
}

// ProfileStore persists the user profile.
type ProfileStore interface {
	Load() (*profile.UserProfile, error)
	Save(*profile.UserProfile) error
}

// Session is one single-threaded conversation. A turn runs start to finish
// before the next one is accepted.
type Session struct {
	model        llm.Client
	registry     *tool.Registry
	store        ProfileStore
	profile      *profile.UserProfile
	history      []Turn
	stepBudget   int
	historyLimit int
}

// NewSession loads the profile (falling back to an in-memory one on
// persistence failure) and returns a ready session.
func NewSession(model llm.Client, registry *tool.Registry, store ProfileStore, stepBudget, historyLimit int) *Session {
	p, err := store.Load()
	if err != nil {
		slog.Error("failed to load profile, continuing in memory", "error", err.Error())
	}
	if stepBudget <= 0 {
		stepBudget = 8
	}
	if historyLimit <= 0 {
		historyLimit = 12
	}
	return &Session{
		model:        model,
		registry:     registry,
		store:        store,
		profile:      p,
		stepBudget:   stepBudget,
		historyLimit: historyLimit,
	}
}

// Profile exposes the current profile snapshot.
func (s *Session) Profile() *profile.UserProfile {
	return s.profile
}

// RunTurn processes one user message to a final answer.
func (s *Session) RunTurn(ctx context.Context, userText string) (string, error) {
	userText = strings.TrimSpace(userText)
	s.appendTurn("user", userText)

	// Some questions are answered straight from memory without a model call.
	if direct := s.answerFromMemory(userText); direct != "" {
		final := formatFinalAnswer(direct)
		s.finalize(userText, final)
		return final, nil
	}

	messages := s.buildMessages()
	tools := s.registry.Specs()

	for step := 0; step < s.stepBudget; step++ {
		decision, err := s.model.Decide(ctx, messages, tools)
		if err != nil {
			return "", fmt.Errorf("model decision failed: %w", err)
		}

		if len(decision.ToolCalls) == 0 {
			final := formatFinalAnswer(decision.Final)
			s.finalize(userText, final)
			return final, nil
		}

		// Tool calls run strictly in request order; later calls may rely on
		// earlier results already being in the context.
		messages = append(messages, decision.Assistant)
		for _, call := range decision.ToolCalls {
			result := s.executeTool(ctx, call)
			messages = append(messages, openai.ToolMessage(result, call.ID))
		}
	}

	final := formatFinalAnswer(stepBudgetFallback)
	s.finalize(userText, final)
	return final, nil
}

// buildMessages assembles system rules + profile snapshot + the recent
// history window (which already ends with the current user message).
func (s *Session) buildMessages() []openai.ChatCompletionMessageParamUnion {
	messages := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(prompt.BuildSystem(s.profile)),
	}
	window := s.history
	if len(window) > s.historyLimit {
		window = window[len(window)-s.historyLimit:]
	}
	for _, t := range window {
		switch t.Role {
		case "assistant":
			messages = append(messages, openai.AssistantMessage(t.Content))
		default:
			messages = append(messages, openai.UserMessage(t.Content))
		}
	}
	return messages
}

// executeTool dispatches one invocation and converts any failure into
// in-band error text the model can observe and react to.
func (s *Session) executeTool(ctx context.Context, call llm.ToolCall) string {
	args := map[string]any{}
	if call.Arguments != "" {
		if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
			slog.Warn("failed to parse tool arguments", "tool", call.Name, "error", err.Error())
			args = map[string]any{}
		}
	}

	result, err := s.registry.Dispatch(ctx, call.Name, args)
	if err != nil {
		slog.Warn("tool dispatch failed", "tool", call.Name, "error", err.Error())
		if errors.Is(err, tool.ErrUnknownTool) {
			return fmt.Sprintf("[ERROR] Инструмент '%s' не найден.", call.Name)
		}
		return fmt.Sprintf("[ERROR] Ошибка инструмента '%s': %v", call.Name, err)
	}
	return result
}

// finalize records the answer, mines preference facts from the turn's user
// message and persists the profile. A persistence failure is logged and the
// turn continues on the in-memory profile.
func (s *Session) finalize(userText, answer string) {
	s.appendTurn("assistant", answer)
	if changed := profile.UpdateFromText(s.profile, userText); changed {
		if err := s.store.Save(s.profile); err != nil {
			slog.Error("failed to persist profile", "error", err.Error())
		}
	}
}

func (s *Session) appendTurn(role, content string) {
	s.history = append(s.history, Turn{Role: role, Content: content})
	if len(s.history) > maxHistory {
		s.history = s.history[len(s.history)-maxHistory:]
	}
}
