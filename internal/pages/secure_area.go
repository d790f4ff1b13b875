package pages

import (
	"context"
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"

	"uiTests/internal/actions"
)

const (
	securePath    = "/secure"
	secureHeading = "#content h2"
	logoutLink    = "a[href='/logout']"
)

type SecureAreaPage struct {
	Base
}

func NewSecureAreaPage(page playwright.Page, baseURL string, cfg actions.Timeouts) *SecureAreaPage {
	return &SecureAreaPage{Base: newBase(page, baseURL, cfg)}
}

func (p *SecureAreaPage) Navigate(ctx context.Context) error {
	return p.act.Navigate(ctx, p.url(securePath))
}

func (p *SecureAreaPage) Heading(ctx context.Context) (string, error) {
	return p.act.GetText(ctx, actions.Selector(secureHeading))
}

// FlashMessage читает тот же flash-регион, что и LoginPage: приложение
// выводит успех и ошибку в один элемент.
func (p *SecureAreaPage) FlashMessage(ctx context.Context) (string, error) {
	return p.act.GetText(ctx, actions.Selector(flashRegion))
}

func (p *SecureAreaPage) Logout(ctx context.Context) error {
	return p.act.Click(ctx, actions.Selector(logoutLink))
}

// AssertFlashContains ждет появления flash-региона перед чтением,
// как и одноименный метод LoginPage.
func (p *SecureAreaPage) AssertFlashContains(t *testing.T, ctx context.Context, want string) {
	t.Helper()

	require.NoError(t, p.act.WaitFor(ctx, actions.Selector(flashRegion), "visible"))
	msg, err := p.FlashMessage(ctx)
	require.NoError(t, err)
	require.Contains(t, msg, want)
}
