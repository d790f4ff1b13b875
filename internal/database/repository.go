package database

import "gorm.io/gorm"

type RunRepository struct {
	db *gorm.DB
}

func NewRunRepository(db *gorm.DB) *RunRepository {
	return &RunRepository{db: db}
}

func (r *RunRepository) CreateRun(run *TestRun) error {
	return r.db.Create(run).Error
}

func (r *RunRepository) GetRunByID(id uint) (*TestRun, error) {
	var run TestRun
	if err := r.db.First(&run, id).Error; err != nil {
		return nil, err
	}
	return &run, nil
}

func (r *RunRepository) ListRuns(limit, offset int) ([]TestRun, error) {
	var runs []TestRun
	if err := r.db.Order("id DESC").Limit(limit).Offset(offset).Find(&runs).Error; err != nil {
		return nil, err
	}
	return runs, nil
}

func (r *RunRepository) FinishRun(id uint, status string, passed, failed, skipped int, elapsedMS int64, summary string) error {
	return r.db.Model(&TestRun{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     status,
			"passed":     passed,
			"failed":     failed,
			"skipped":    skipped,
			"elapsed_ms": elapsedMS,
			"summary":    summary,
		}).Error
}

func (r *RunRepository) AddResult(result *TestResult) error {
	return r.db.Create(result).Error
}

func (r *RunRepository) AddResults(results []TestResult) error {
	if len(results) == 0 {
		return nil
	}
	return r.db.Create(&results).Error
}

func (r *RunRepository) LogAction(log *ActionLog) error {
	return r.db.Create(log).Error
}

// ListActions возвращает записи журнала действий. runID == 0 — записи
// без фильтра по прогону (рекордер тестового окружения пишет без run ID).
func (r *RunRepository) ListActions(runID uint, limit, offset int) ([]ActionLog, error) {
	q := r.db.Order("id DESC").Limit(limit).Offset(offset)
	if runID != 0 {
		q = q.Where("run_id = ?", runID)
	}

	var logs []ActionLog
	if err := q.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// ActionRecorder реализует интерфейс рекордера обертки действий
// и пишет каждую операцию в журнал. Ошибки записи глотаются:
// журналирование не должно ронять тест.
type ActionRecorder struct {
	repo  *RunRepository
	runID *uint
}

func NewActionRecorder(repo *RunRepository, runID *uint) *ActionRecorder {
	return &ActionRecorder{repo: repo, runID: runID}
}

func (a *ActionRecorder) Record(action, target string, err error) {
	entry := &ActionLog{
		RunID:  a.runID,
		Action: action,
		Target: target,
	}
	if err != nil {
		entry.Error = err.Error()
	}
	_ = a.repo.LogAction(entry)
}
