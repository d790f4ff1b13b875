package pages

import (
	"context"
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"

	"uiTests/internal/actions"
)

const (
	loginPath         = "/login"
	usernameInput     = "#username"
	passwordInput     = "#password"
	loginSubmitButton = "button[type='submit']"

	// Один и тот же flash-регион используется приложением и для успеха,
	// и для ошибки. Это свойство проверяемого приложения, его нельзя
	// "исправлять" на два отдельных селектора.
	flashRegion = "#flash"
)

type LoginPage struct {
	Base
}

func NewLoginPage(page playwright.Page, baseURL string, cfg actions.Timeouts) *LoginPage {
	return &LoginPage{Base: newBase(page, baseURL, cfg)}
}

func (p *LoginPage) Navigate(ctx context.Context) error {
	return p.act.Navigate(ctx, p.url(loginPath))
}

// Login заполняет имя, пароль и жмет submit — три строго последовательных
// вызова обертки. Входные значения не валидируются: пустые строки уходят
// в приложение как есть.
func (p *LoginPage) Login(ctx context.Context, username, password string) error {
	if err := p.act.Fill(ctx, actions.Selector(usernameInput), username); err != nil {
		return err
	}
	if err := p.act.Fill(ctx, actions.Selector(passwordInput), password); err != nil {
		return err
	}
	return p.act.Click(ctx, actions.Selector(loginSubmitButton))
}

// FillUsername заполняет поле имени без отправки формы.
func (p *LoginPage) FillUsername(ctx context.Context, username string) error {
	return p.act.Fill(ctx, actions.Selector(usernameInput), username)
}

// FlashMessage читает текст общего flash-региона.
// Пустая строка — регион отсутствует на странице.
func (p *LoginPage) FlashMessage(ctx context.Context) (string, error) {
	return p.act.GetText(ctx, actions.Selector(flashRegion))
}

// UsernameValue возвращает текущее значение поля имени (round-trip проверки).
func (p *LoginPage) UsernameValue(ctx context.Context) (string, error) {
	return p.act.InputValue(ctx, actions.Selector(usernameInput))
}

// AssertFlashContains ждет появления flash-региона и проверяет, что
// сообщение содержит ожидаемый текст. Ожидание обязательно: сразу после
// submit редирект мог еще не завершиться, и мгновенное чтение увидело бы
// страницу без региона.
func (p *LoginPage) AssertFlashContains(t *testing.T, ctx context.Context, want string) {
	t.Helper()

	require.NoError(t, p.act.WaitFor(ctx, actions.Selector(flashRegion), "visible"))
	msg, err := p.FlashMessage(ctx)
	require.NoError(t, err)
	require.Contains(t, msg, want)
}
