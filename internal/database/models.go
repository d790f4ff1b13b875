// Package database предоставляет модели данных и репозиторий журнала
// тестовых прогонов в PostgreSQL. Использует GORM ORM.
package database

import "time"

// TestRun представляет один прогон сьюта.
// Статусы: running, passed, failed.
type TestRun struct {
	ID        uint      `gorm:"primaryKey"`
	Suite     string    `gorm:"type:varchar(128);not null"`                  // Шаблон пакетов прогона (./e2e/...)
	Status    string    `gorm:"type:varchar(32);not null;default:'running'"` // Статус прогона
	Passed    int       // Количество прошедших тестов
	Failed    int       // Количество упавших тестов
	Skipped   int       // Количество пропущенных тестов
	ElapsedMS int64     // Длительность прогона
	Summary   string    `gorm:"type:text"` // Итог прогона, включая triage от LLM
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TestResult представляет результат одного теста внутри прогона.
type TestResult struct {
	ID        uint      `gorm:"primaryKey"`
	RunID     uint      `gorm:"index;not null"`             // ID прогона
	Package   string    `gorm:"type:varchar(256);not null"` // Пакет теста
	Name      string    `gorm:"type:varchar(256);not null"` // Имя теста
	Status    string    `gorm:"type:varchar(32);not null"`  // pass, fail, skip
	ElapsedMS int64     // Длительность теста
	Output    string    `gorm:"type:text"` // Вывод теста (для упавших)
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// ActionLog представляет одну операцию обертки действий
// (click, fill, check), записанную рекордером.
type ActionLog struct {
	ID        uint      `gorm:"primaryKey"`
	RunID     *uint     `gorm:"index"`                     // ID прогона (опционально)
	Action    string    `gorm:"type:varchar(64);not null"` // Тип действия
	Target    string    `gorm:"type:text"`                 // Селектор или локатор
	Error     string    `gorm:"type:text"`                 // Текст ошибки, пусто при успехе
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
