// Package pom — фабрика page-объектов с ленивым кэшем: не более одного
// экземпляра каждого вида на один тест. Менеджер создается заново в каждом
// тесте, сброса и вытеснения нет — его время жизни совпадает с тестом.
package pom

import (
	"github.com/playwright-community/playwright-go"

	"uiTests/internal/actions"
	"uiTests/internal/logger"
	"uiTests/internal/pages"
)

type Manager struct {
	page     playwright.Page
	baseURL  string
	cfg      actions.Timeouts
	log      *logger.Zap
	recorder actions.Recorder

	login      *pages.LoginPage
	secureArea *pages.SecureAreaPage
	checkboxes *pages.CheckboxesPage
	todo       *pages.TodoPage
}

// New создает менеджер для одной страницы браузера. Конструирование
// page-объектов не выполняет I/O, поэтому ошибок здесь не бывает.
func New(page playwright.Page, baseURL string, cfg actions.Timeouts) *Manager {
	return &Manager{
		page:    page,
		baseURL: baseURL,
		cfg:     cfg,
	}
}

// Page возвращает страницу браузера, с которой связан менеджер.
func (m *Manager) Page() playwright.Page {
	return m.page
}

// SetLogger устанавливает логгер операций для всех page-объектов
// менеджера, включая уже созданные.
func (m *Manager) SetLogger(log *logger.Zap) {
	m.log = log
	m.each(func(a *actions.Actions) { a.SetLogger(log) })
}

// SetRecorder устанавливает рекордер операций (журнал действий)
// для всех page-объектов менеджера, включая уже созданные.
func (m *Manager) SetRecorder(r actions.Recorder) {
	m.recorder = r
	m.each(func(a *actions.Actions) { a.SetRecorder(r) })
}

func (m *Manager) each(f func(*actions.Actions)) {
	if m.login != nil {
		f(m.login.Actions())
	}
	if m.secureArea != nil {
		f(m.secureArea.Actions())
	}
	if m.checkboxes != nil {
		f(m.checkboxes.Actions())
	}
	if m.todo != nil {
		f(m.todo.Actions())
	}
}

// apply переносит логгер и рекордер менеджера на свежесозданный page-объект.
func (m *Manager) apply(a *actions.Actions) {
	if m.log != nil {
		a.SetLogger(m.log)
	}
	if m.recorder != nil {
		a.SetRecorder(m.recorder)
	}
}

// Login возвращает единственный экземпляр LoginPage, создавая его при
// первом обращении. Повторные вызовы возвращают тот же указатель.
func (m *Manager) Login() *pages.LoginPage {
	if m.login == nil {
		m.login = pages.NewLoginPage(m.page, m.baseURL, m.cfg)
		m.apply(m.login.Actions())
	}
	return m.login
}

func (m *Manager) SecureArea() *pages.SecureAreaPage {
	if m.secureArea == nil {
		m.secureArea = pages.NewSecureAreaPage(m.page, m.baseURL, m.cfg)
		m.apply(m.secureArea.Actions())
	}
	return m.secureArea
}

func (m *Manager) Checkboxes() *pages.CheckboxesPage {
	if m.checkboxes == nil {
		m.checkboxes = pages.NewCheckboxesPage(m.page, m.baseURL, m.cfg)
		m.apply(m.checkboxes.Actions())
	}
	return m.checkboxes
}

func (m *Manager) Todo() *pages.TodoPage {
	if m.todo == nil {
		m.todo = pages.NewTodoPage(m.page, m.baseURL, m.cfg)
		m.apply(m.todo.Actions())
	}
	return m.todo
}
