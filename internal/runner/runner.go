// Package runner запускает e2e-сьют как подпроцесс go test -json,
// агрегирует результаты, при настроенной БД пишет их в журнал прогонов
// и при настроенном OpenAI запрашивает сводку по упавшим тестам.
package runner

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"go.uber.org/zap"

	"uiTests/internal/database"
	"uiTests/internal/llm"
	"uiTests/internal/logger"
)

type Runner struct {
	log     *logger.Zap
	repo    *database.RunRepository // nil — журнал отключен
	triage  *llm.Client             // nil — triage отключен
	pattern string
}

func New(log *logger.Zap, repo *database.RunRepository, triage *llm.Client, pattern string) *Runner {
	if pattern == "" {
		pattern = "./e2e/..."
	}
	return &Runner{
		log:     log,
		repo:    repo,
		triage:  triage,
		pattern: pattern,
	}
}

// Run выполняет прогон. Упавшие тесты не считаются ошибкой Run:
// они попадают в итог и журнал. Ошибкой является только невозможность
// запустить или разобрать сам прогон.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	cmd := exec.CommandContext(ctx, "go", "test", "-json", r.pattern)
	cmd.Stderr = os.Stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("ошибка создания пайпа: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("не удалось запустить go test: %w", err)
	}

	summary, parseErr := ParseEvents(stdout)
	waitErr := cmd.Wait()
	if parseErr != nil {
		return nil, fmt.Errorf("ошибка разбора вывода go test: %w", parseErr)
	}
	if waitErr != nil && summary.Failed == 0 {
		// go test упал не из-за тестов (сборка, паника раннера)
		return nil, fmt.Errorf("go test завершился с ошибкой: %w", waitErr)
	}

	r.log.Info("Прогон завершен",
		zap.Int("passed", summary.Passed),
		zap.Int("failed", summary.Failed),
		zap.Int("skipped", summary.Skipped),
		zap.Duration("elapsed", summary.Elapsed),
	)

	triageSummary := r.runTriage(ctx, summary)

	if r.repo != nil {
		if err := r.persist(summary, triageSummary); err != nil {
			r.log.Error("Ошибка записи прогона в журнал", zap.Error(err))
		}
	}
	return summary, nil
}

func (r *Runner) runTriage(ctx context.Context, summary *Summary) string {
	if r.triage == nil || summary.Failed == 0 {
		return ""
	}

	text, err := r.triage.SummarizeFailures(ctx, summary.FailureOutputs())
	if err != nil {
		r.log.Error("Ошибка triage", zap.Error(err))
		return ""
	}
	if text != "" {
		r.log.Info("Triage упавших тестов", zap.String("summary", text))
	}
	return text
}

func (r *Runner) persist(summary *Summary, triageSummary string) error {
	status := "passed"
	if summary.Failed > 0 {
		status = "failed"
	}

	run := &database.TestRun{Suite: r.pattern, Status: "running"}
	if err := r.repo.CreateRun(run); err != nil {
		return err
	}

	results := make([]database.TestResult, 0, len(summary.Results))
	for _, res := range summary.Results {
		record := database.TestResult{
			RunID:     run.ID,
			Package:   res.Package,
			Name:      res.Name,
			Status:    res.Status,
			ElapsedMS: res.Elapsed.Milliseconds(),
		}
		if res.Status == "fail" {
			record.Output = res.Output
		}
		results = append(results, record)
	}
	if err := r.repo.AddResults(results); err != nil {
		return err
	}

	return r.repo.FinishRun(
		run.ID,
		status,
		summary.Passed,
		summary.Failed,
		summary.Skipped,
		summary.Elapsed.Milliseconds(),
		triageSummary,
	)
}
