package pages

import (
	"context"
	"fmt"
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"

	"uiTests/internal/actions"
)

const (
	checkboxesPath = "/checkboxes"
	checkboxInputs = "#checkboxes input[type='checkbox']"
)

type CheckboxesPage struct {
	Base
}

func NewCheckboxesPage(page playwright.Page, baseURL string, cfg actions.Timeouts) *CheckboxesPage {
	return &CheckboxesPage{Base: newBase(page, baseURL, cfg)}
}

func (p *CheckboxesPage) Navigate(ctx context.Context) error {
	return p.act.Navigate(ctx, p.url(checkboxesPath))
}

// checkbox возвращает цель для n-го чекбокса по структурной позиции.
// Нумерация с единицы.
func (p *CheckboxesPage) checkbox(n int) (actions.Target, error) {
	if n < 1 {
		return actions.Target{}, fmt.Errorf("номер чекбокса должен начинаться с 1, получен %d", n)
	}
	return actions.FromLocator(p.act.Locator(checkboxInputs).Nth(n - 1)), nil
}

func (p *CheckboxesPage) CheckCheckbox(ctx context.Context, n int) error {
	target, err := p.checkbox(n)
	if err != nil {
		return err
	}
	return p.act.Check(ctx, target)
}

func (p *CheckboxesPage) UncheckCheckbox(ctx context.Context, n int) error {
	target, err := p.checkbox(n)
	if err != nil {
		return err
	}
	return p.act.Uncheck(ctx, target)
}

// ToggleCheckbox читает текущее состояние и ставит противоположное.
// Чтение и запись не атомарны, но в однопоточном сценарии между ними
// никто не вмешивается.
func (p *CheckboxesPage) ToggleCheckbox(ctx context.Context, n int) error {
	target, err := p.checkbox(n)
	if err != nil {
		return err
	}

	checked, err := p.act.IsChecked(ctx, target)
	if err != nil {
		return err
	}
	return p.act.SetChecked(ctx, target, !checked)
}

// CheckAll отмечает все чекбоксы, трогая только те, чье состояние
// отличается от целевого.
func (p *CheckboxesPage) CheckAll(ctx context.Context) error {
	return p.setAll(ctx, true)
}

func (p *CheckboxesPage) UncheckAll(ctx context.Context) error {
	return p.setAll(ctx, false)
}

func (p *CheckboxesPage) setAll(ctx context.Context, want bool) error {
	states, err := p.CheckboxStates(ctx)
	if err != nil {
		return err
	}

	for i, checked := range states {
		if checked == want {
			continue
		}
		target, err := p.checkbox(i + 1)
		if err != nil {
			return err
		}
		if err := p.act.SetChecked(ctx, target, want); err != nil {
			return err
		}
	}
	return nil
}

// CheckboxStates читает состояния всех чекбоксов в порядке DOM.
// Каждый вызов читает страницу заново, состояние нигде не кэшируется.
func (p *CheckboxesPage) CheckboxStates(ctx context.Context) ([]bool, error) {
	n, err := p.CheckboxCount(ctx)
	if err != nil {
		return nil, err
	}

	states := make([]bool, 0, n)
	for i := 1; i <= n; i++ {
		target, err := p.checkbox(i)
		if err != nil {
			return nil, err
		}
		checked, err := p.act.IsChecked(ctx, target)
		if err != nil {
			return nil, err
		}
		states = append(states, checked)
	}
	return states, nil
}

// CheckboxCount возвращает число чекбоксов на странице без ожидания.
func (p *CheckboxesPage) CheckboxCount(ctx context.Context) (int, error) {
	return p.act.Count(ctx, actions.Selector(checkboxInputs))
}

func (p *CheckboxesPage) ValidateCheckboxState(t *testing.T, ctx context.Context, n int, want bool) {
	t.Helper()

	target, err := p.checkbox(n)
	require.NoError(t, err)

	checked, err := p.act.IsChecked(ctx, target)
	require.NoError(t, err)
	require.Equal(t, want, checked, "чекбокс %d", n)
}

// ValidateAllCheckboxStates сравнивает фактические состояния с ожидаемыми
// поэлементно и по порядку.
func (p *CheckboxesPage) ValidateAllCheckboxStates(t *testing.T, ctx context.Context, want []bool) {
	t.Helper()

	states, err := p.CheckboxStates(ctx)
	require.NoError(t, err)
	require.Equal(t, want, states)
}
