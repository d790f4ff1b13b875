package pages

import (
	"context"
	"fmt"

	"github.com/playwright-community/playwright-go"

	"uiTests/internal/actions"
)

const (
	todoPath           = "/todo"
	newTodoInput       = "#new-todo"
	todoItemLabels     = "#todo-list li label"
	todoItemToggles    = "#todo-list li input.toggle"
	todoCompletedItems = "#todo-list li.completed"
	todoRemainingCount = "#todo-count"
	clearCompletedBtn  = "#clear-completed"
)

type TodoPage struct {
	Base
}

func NewTodoPage(page playwright.Page, baseURL string, cfg actions.Timeouts) *TodoPage {
	return &TodoPage{Base: newBase(page, baseURL, cfg)}
}

func (p *TodoPage) Navigate(ctx context.Context) error {
	return p.act.Navigate(ctx, p.url(todoPath))
}

// AddItem вводит текст задачи и подтверждает Enter.
func (p *TodoPage) AddItem(ctx context.Context, text string) error {
	if err := p.act.Fill(ctx, actions.Selector(newTodoInput), text); err != nil {
		return err
	}
	return p.act.Press(ctx, actions.Selector(newTodoInput), "Enter")
}

// Items возвращает тексты задач в порядке списка.
func (p *TodoPage) Items(ctx context.Context) ([]string, error) {
	n, err := p.act.Count(ctx, actions.Selector(todoItemLabels))
	if err != nil {
		return nil, err
	}

	items := make([]string, 0, n)
	for i := 0; i < n; i++ {
		target := actions.FromLocator(p.act.Locator(todoItemLabels).Nth(i))
		text, err := p.act.GetText(ctx, target)
		if err != nil {
			return nil, err
		}
		items = append(items, text)
	}
	return items, nil
}

// ToggleItem переключает выполненность n-й задачи. Нумерация с единицы:
// Nth с отрицательным индексом молча выбрал бы последний элемент.
func (p *TodoPage) ToggleItem(ctx context.Context, n int) error {
	if n < 1 {
		return fmt.Errorf("номер задачи должен начинаться с 1, получен %d", n)
	}
	target := actions.FromLocator(p.act.Locator(todoItemToggles).Nth(n - 1))
	return p.act.Click(ctx, target)
}

func (p *TodoPage) CompletedCount(ctx context.Context) (int, error) {
	return p.act.Count(ctx, actions.Selector(todoCompletedItems))
}

func (p *TodoPage) ClearCompleted(ctx context.Context) error {
	return p.act.Click(ctx, actions.Selector(clearCompletedBtn))
}

// RemainingText возвращает текст счетчика оставшихся задач.
func (p *TodoPage) RemainingText(ctx context.Context) (string, error) {
	return p.act.GetText(ctx, actions.Selector(todoRemainingCount))
}
