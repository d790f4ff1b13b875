// Package pages содержит page-объекты: по одной структуре на логический
// экран проверяемого приложения. Каждый page-объект владеет набором
// селекторов, объявленных при создании, и работает со страницей только
// через обертку actions.
package pages

import (
	"strings"

	"github.com/playwright-community/playwright-go"

	"uiTests/internal/actions"
)

// Base — общий набор полей каждого page-объекта: обертка действий,
// привязанная к той же странице, и базовый URL приложения.
// Композиция вместо наследования: конкретные страницы добавляют
// только свои методы.
type Base struct {
	act     *actions.Actions
	baseURL string
}

func newBase(page playwright.Page, baseURL string, cfg actions.Timeouts) Base {
	return Base{
		act:     actions.New(page, cfg),
		baseURL: baseURL,
	}
}

func (b Base) Actions() *actions.Actions {
	return b.act
}

func (b Base) url(path string) string {
	return strings.TrimRight(b.baseURL, "/") + path
}
