package actions

import "github.com/playwright-community/playwright-go"

// Target — помеченный вариант "строковый селектор или готовый локатор".
// Разрешение в конкретный локатор происходит только в момент действия,
// поэтому устаревших ссылок на элементы не бывает.
type Target struct {
	selector string
	locator  playwright.Locator
}

// Selector создает цель из CSS/text/role селектора, привязанного к странице.
func Selector(s string) Target {
	return Target{selector: s}
}

// FromLocator оборачивает уже разрешенный локатор (например, после Nth).
func FromLocator(l playwright.Locator) Target {
	return Target{locator: l}
}

func (t Target) resolve(page playwright.Page) playwright.Locator {
	if t.locator != nil {
		return t.locator
	}
	return page.Locator(t.selector)
}

func (t Target) String() string {
	if t.locator != nil {
		return "<locator>"
	}
	return t.selector
}

func (t Target) IsZero() bool {
	return t.locator == nil && t.selector == ""
}
