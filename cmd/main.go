package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"uiTests/internal/config"
	"uiTests/internal/database"
	"uiTests/internal/demosite"
	"uiTests/internal/llm"
	"uiTests/internal/logger"
	"uiTests/internal/migrations"
	"uiTests/internal/runner"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logger.Env, cfg.Logger.Level)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// uiTests serve — поднять демо-приложение для ручной проверки
	if len(os.Args) > 1 && os.Args[1] == "serve" {
		site := demosite.New(log)
		if err := site.Run(context.Background(), cfg.App.Host, cfg.App.Port); err != nil {
			log.Fatal("Ошибка демо-приложения", zap.Error(err))
		}
		return
	}

	if err := migrations.Run(cfg, log); err != nil {
		log.Fatal("Ошибка миграций", zap.Error(err))
	}

	var repo *database.RunRepository
	if cfg.Database.Host != "" {
		db, err := database.New(cfg, log)
		if err != nil {
			log.Fatal("Ошибка подключения к БД", zap.Error(err))
		}
		defer db.Close(log)
		repo = database.NewRunRepository(db.DB)
	}

	// uiTests journal — показать последние прогоны и записи журнала действий
	if len(os.Args) > 1 && os.Args[1] == "journal" {
		if repo == nil {
			log.Fatal("Журнал требует настроенной БД")
		}
		printJournal(repo, log)
		return
	}

	var triage *llm.Client
	if cfg.OpenAI.KeyAI != "" {
		triage = llm.NewClient(cfg.OpenAI.KeyAI, cfg.OpenAI.Model, cfg.OpenAI.MaxTokens, nil)
	}

	r := runner.New(log, repo, triage, "./e2e/...")
	summary, err := r.Run(context.Background())
	if err != nil {
		log.Fatal("Прогон не состоялся", zap.Error(err))
	}
	if summary.Failed > 0 {
		os.Exit(1)
	}
}

func printJournal(repo *database.RunRepository, log *logger.Zap) {
	runs, err := repo.ListRuns(10, 0)
	if err != nil {
		log.Fatal("Ошибка чтения журнала прогонов", zap.Error(err))
	}
	for _, run := range runs {
		fmt.Printf("#%d %s %s: passed=%d failed=%d skipped=%d (%dms)\n",
			run.ID, run.CreatedAt.Format(time.RFC3339), run.Status,
			run.Passed, run.Failed, run.Skipped, run.ElapsedMS)
	}

	entries, err := repo.ListActions(0, 50, 0)
	if err != nil {
		log.Fatal("Ошибка чтения журнала действий", zap.Error(err))
	}
	for _, entry := range entries {
		line := entry.Action + " " + entry.Target
		if entry.Error != "" {
			line += " — " + entry.Error
		}
		fmt.Println(line)
	}
}
