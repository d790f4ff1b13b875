// Package testutil — общее окружение e2e-пакетов: демо-приложение
// на httptest и жизненный цикл Playwright. Если Playwright не установлен,
// браузерные тесты пропускаются, а не падают.
package testutil

import (
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"

	"uiTests/internal/actions"
	"uiTests/internal/config"
	"uiTests/internal/database"
	"uiTests/internal/demosite"
	"uiTests/internal/logger"
	"uiTests/internal/pom"
)

// Таймауты тестового прогона короче боевых дефолтов обертки:
// демо-приложение локальное, ждать по 10 секунд нет смысла.
const (
	ActionTimeout   = 5 * time.Second
	NavigateTimeout = 10 * time.Second
	TypeDelay       = 10 * time.Millisecond
)

type Env struct {
	Server  *httptest.Server
	BaseURL string

	pw       *playwright.Playwright
	browser  playwright.Browser
	db       *database.Database
	recorder actions.Recorder
	log      *logger.Zap
	mu       sync.Mutex
}

var (
	envMu  sync.Mutex
	shared *Env
)

// Setup возвращает общее окружение пакета, создавая его при первом
// обращении. Каждый тестовый пакет живет в своем процессе, поэтому
// окружение разделяется только внутри пакета.
func Setup(t *testing.T) *Env {
	t.Helper()

	envMu.Lock()
	defer envMu.Unlock()

	if shared == nil {
		site := demosite.New(logger.Nop())
		server := httptest.NewServer(site.Handler())
		shared = &Env{
			Server:  server,
			BaseURL: server.URL,
		}
		shared.initJournal(t)

		if os.Getenv("E2E_DEBUG") != "" {
			if log, err := logger.New("dev", "debug"); err == nil {
				shared.log = log
			}
		}
	}
	return shared
}

// initJournal подключает рекордер действий, если настроена БД.
// Журнал опционален: недоступная БД не роняет прогон.
func (env *Env) initJournal(t *testing.T) {
	cfg, err := config.Load()
	if err != nil || cfg.Database.Host == "" {
		return
	}

	db, err := database.New(cfg, logger.Nop())
	if err != nil {
		t.Logf("журнал действий недоступен: %v", err)
		return
	}
	env.db = db
	env.recorder = database.NewActionRecorder(database.NewRunRepository(db.DB), nil)
}

// Cleanup закрывает общее окружение; вызывается из TestMain пакета.
func Cleanup() {
	envMu.Lock()
	defer envMu.Unlock()

	if shared == nil {
		return
	}
	if shared.browser != nil {
		_ = shared.browser.Close()
	}
	if shared.pw != nil {
		_ = shared.pw.Stop()
	}
	if shared.db != nil {
		shared.db.Close(logger.Nop())
	}
	shared.Server.Close()
	shared = nil
}

// InitBrowser запускает Playwright и Chromium один раз на пакет.
func (env *Env) InitBrowser(t *testing.T) {
	t.Helper()

	env.mu.Lock()
	defer env.mu.Unlock()

	if env.browser != nil {
		return
	}

	pw, err := playwright.Run()
	if err != nil {
		t.Skip("Playwright недоступен:", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		_ = pw.Stop()
		t.Skip("Не удалось запустить браузер:", err)
	}

	env.pw = pw
	env.browser = browser
}

// NewPage создает новую страницу и закрывает ее по окончании теста.
func (env *Env) NewPage(t *testing.T) playwright.Page {
	t.Helper()

	env.InitBrowser(t)

	page, err := env.browser.NewPage()
	if err != nil {
		t.Fatalf("не удалось создать страницу: %v", err)
	}
	page.SetDefaultTimeout(float64(ActionTimeout.Milliseconds()))
	page.SetDefaultNavigationTimeout(float64(NavigateTimeout.Milliseconds()))

	t.Cleanup(func() {
		_ = page.Close()
	})
	return page
}

// Timeouts — конфиг обертки действий для тестов.
func Timeouts() actions.Timeouts {
	return actions.Timeouts{
		Action:    ActionTimeout,
		Navigate:  NavigateTimeout,
		TypeDelay: TypeDelay,
	}
}

// NewManager создает страницу и фабрику page-объектов для одного теста.
// Если журнал действий подключен, каждая операция обертки пишется в него.
func (env *Env) NewManager(t *testing.T) *pom.Manager {
	t.Helper()

	mgr := pom.New(env.NewPage(t), env.BaseURL, Timeouts())
	if env.log != nil {
		mgr.SetLogger(env.log)
	}
	if env.recorder != nil {
		mgr.SetRecorder(env.recorder)
	}
	return mgr
}
