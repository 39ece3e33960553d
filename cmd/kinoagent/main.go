// Package main is the console entry point for the KinoAgent assistant.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/kinomaniac/kinoagent/internal/agent"
	"github.com/kinomaniac/kinoagent/internal/catalog"
	"github.com/kinomaniac/kinoagent/internal/config"
	"github.com/kinomaniac/kinoagent/internal/llm"
	"github.com/kinomaniac/kinoagent/internal/omdb"
	"github.com/kinomaniac/kinoagent/internal/profile"
	"github.com/kinomaniac/kinoagent/internal/resolver"
	"github.com/kinomaniac/kinoagent/internal/tool"
)

const banner = `
 🛰️ Радиосигнал получен...
.--. .-. .. . --, .--. .-. .. . --

🎬 «Киноманьяк» выходит на связь!
Я — Киноманьяк, твой интеллектуальный ассистент по кино.

Я помогу тебе выбрать фильм, понять его рейтинг, узнать больше об актёрах
и подобрать персональные рекомендации.

Задай свой вопрос — и мы отправимся в путешествие по кино-вселенной 🚀
Для завершения сеанса: /exit`

const byeText = `🛰️ Связь завершается...
Спасибо за сеанс ✨

Когда захочешь вернуться — я включу передатчик. Я всегда на орбите 🚀
До следующего сигнала! 👋`

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nЗавершаю сеанс...")
		cancel()
		// The REPL may be blocked on stdin, which context cancellation
		// cannot interrupt.
		time.Sleep(500 * time.Millisecond)
		os.Exit(0)
	}()

	store, err := catalog.NewStore(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("failed to open catalog: %v", err)
	}
	defer store.Close()

	records, err := store.Load(ctx)
	if err != nil {
		log.Fatalf("failed to load catalog (run cmd/importer first): %v", err)
	}

	res := resolver.New(records, resolver.Options{
		EditWeight:  cfg.FuzzyEditWeight,
		TokenWeight: cfg.FuzzyTokenWeight,
		MetaWeight:  cfg.FuzzyMetaWeight,
		Threshold:   cfg.FuzzyThreshold,
	})

	var omdbClient *omdb.Client
	if cfg.OMDbAPIKey != "" {
		omdbClient = omdb.NewClient(cfg.OMDbAPIKey)
	}

	registry := tool.NewRegistry()
	if err := tool.RegisterCatalogTools(registry, store, res); err != nil {
		log.Fatalf("failed to register catalog tools: %v", err)
	}
	if err := tool.RegisterOMDbTools(registry, omdbClient); err != nil {
		log.Fatalf("failed to register omdb tools: %v", err)
	}

	model, err := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.LLMModel, cfg.Temperature)
	if err != nil {
		log.Fatalf("failed to create model client: %v", err)
	}

	session := agent.NewSession(model, registry, profile.NewStore(cfg.MemoryPath), cfg.StepBudget, cfg.HistoryLimit)

	fmt.Println(banner)
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\nТы: ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if low := strings.ToLower(input); low == "/exit" || low == "выход" || low == "пока" {
			fmt.Println("Киноманьяк:", byeText)
			break
		}

		answer, err := session.RunTurn(ctx, input)
		if err != nil {
			fmt.Println("Киноманьяк: Произошла ошибка при обработке запроса, попробуй ещё раз.")
			continue
		}
		fmt.Println("Киноманьяк:", answer)
	}
}
