// Package actions — типизированная обертка над примитивами playwright-go
// с едиными дефолтными таймаутами. Page-объекты работают только через нее
// и никогда не вызывают библиотеку напрямую.
package actions

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"

	"uiTests/internal/logger"
)

// Timeouts задает дефолтные таймауты по классам операций.
// Нулевые значения заменяются дефолтами в New.
type Timeouts struct {
	Action    time.Duration // click, fill, check, чтение текста и атрибутов
	Navigate  time.Duration // переходы, ожидание URL и load state
	TypeDelay time.Duration // пауза между нажатиями клавиш в Type
}

// Recorder получает уведомление о каждой выполненной операции.
// Журнал прогона реализует этот интерфейс; nil — ничего не записывается.
type Recorder interface {
	Record(action, target string, err error)
}

type Actions struct {
	page     playwright.Page
	cfg      Timeouts
	log      *logger.Zap
	recorder Recorder
}

func New(page playwright.Page, cfg Timeouts) *Actions {
	if cfg.Action == 0 {
		cfg.Action = 10 * time.Second
	}
	if cfg.Navigate == 0 {
		cfg.Navigate = 30 * time.Second
	}
	if cfg.TypeDelay == 0 {
		cfg.TypeDelay = 100 * time.Millisecond
	}

	return &Actions{
		page: page,
		cfg:  cfg,
		log:  logger.Nop(),
	}
}

func (a *Actions) SetLogger(log *logger.Zap) {
	if log != nil {
		a.log = log
	}
}

func (a *Actions) SetRecorder(r Recorder) {
	a.recorder = r
}

// Recorder возвращает установленный рекордер операций; nil — запись отключена.
func (a *Actions) Recorder() Recorder {
	return a.recorder
}

// Config возвращает фактические таймауты после подстановки дефолтов.
func (a *Actions) Config() Timeouts {
	return a.cfg
}

func (a *Actions) Page() playwright.Page {
	return a.page
}

// Locator возвращает сырой локатор страницы; используется page-объектами
// для позиционных выборок (Nth) с последующим FromLocator.
func (a *Actions) Locator(selector string) playwright.Locator {
	return a.page.Locator(selector)
}

func (a *Actions) timeout(override, fallback time.Duration) *float64 {
	if override == 0 {
		override = fallback
	}
	return playwright.Float(float64(override.Milliseconds()))
}

// done — единая точка записи результата операции в лог и рекордер.
// Ошибки не перехватываются и не транслируются, только дополняются контекстом.
func (a *Actions) done(op string, target Target, err error) error {
	if a.recorder != nil {
		a.recorder.Record(op, target.String(), err)
	}
	a.log.Debug("действие",
		zap.String("op", op),
		zap.String("target", target.String()),
		zap.Error(err),
	)
	return err
}

type ClickOpts struct {
	Force   bool
	Timeout time.Duration
}

// Click ждет видимости элемента и кликает по нему.
func (a *Actions) Click(ctx context.Context, target Target, opts ...ClickOpts) error {
	var o ClickOpts
	if len(opts) > 0 {
		o = opts[0]
	}

	loc := target.resolve(a.page)
	timeout := a.timeout(o.Timeout, a.cfg.Action)

	if err := loc.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: timeout,
	}); err != nil {
		return a.done("click", target, fmt.Errorf("элемент не виден: %w", err))
	}

	clickOpts := playwright.LocatorClickOptions{Timeout: timeout}
	if o.Force {
		clickOpts.Force = playwright.Bool(true)
	}
	return a.done("click", target, loc.Click(clickOpts))
}

type FillOpts struct {
	Timeout time.Duration
}

// Fill заменяет текущее значение поля ввода. Явного ожидания видимости нет:
// actionability-проверки выполняет сама библиотека.
func (a *Actions) Fill(ctx context.Context, target Target, text string, opts ...FillOpts) error {
	var o FillOpts
	if len(opts) > 0 {
		o = opts[0]
	}

	loc := target.resolve(a.page)
	err := loc.Fill(text, playwright.LocatorFillOptions{
		Timeout: a.timeout(o.Timeout, a.cfg.Action),
	})
	return a.done("fill", target, err)
}

// Type вводит текст посимвольно с паузой TypeDelay между нажатиями.
func (a *Actions) Type(ctx context.Context, target Target, text string, opts ...FillOpts) error {
	var o FillOpts
	if len(opts) > 0 {
		o = opts[0]
	}

	loc := target.resolve(a.page)
	err := loc.PressSequentially(text, playwright.LocatorPressSequentiallyOptions{
		Delay:   playwright.Float(float64(a.cfg.TypeDelay.Milliseconds())),
		Timeout: a.timeout(o.Timeout, a.cfg.Action),
	})
	return a.done("type", target, err)
}

// Press нажимает одну клавишу (например, "Enter").
func (a *Actions) Press(ctx context.Context, target Target, key string, opts ...FillOpts) error {
	var o FillOpts
	if len(opts) > 0 {
		o = opts[0]
	}

	loc := target.resolve(a.page)
	err := loc.Press(key, playwright.LocatorPressOptions{
		Timeout: a.timeout(o.Timeout, a.cfg.Action),
	})
	return a.done("press", target, err)
}

type CheckOpts struct {
	Timeout time.Duration
}

// Check ставит галочку. Повторный Check на отмеченном элементе — no-op
// со стороны библиотеки.
func (a *Actions) Check(ctx context.Context, target Target, opts ...CheckOpts) error {
	var o CheckOpts
	if len(opts) > 0 {
		o = opts[0]
	}

	loc := target.resolve(a.page)
	err := loc.Check(playwright.LocatorCheckOptions{
		Timeout: a.timeout(o.Timeout, a.cfg.Action),
	})
	return a.done("check", target, err)
}

func (a *Actions) Uncheck(ctx context.Context, target Target, opts ...CheckOpts) error {
	var o CheckOpts
	if len(opts) > 0 {
		o = opts[0]
	}

	loc := target.resolve(a.page)
	err := loc.Uncheck(playwright.LocatorUncheckOptions{
		Timeout: a.timeout(o.Timeout, a.cfg.Action),
	})
	return a.done("uncheck", target, err)
}

func (a *Actions) SetChecked(ctx context.Context, target Target, checked bool, opts ...CheckOpts) error {
	var o CheckOpts
	if len(opts) > 0 {
		o = opts[0]
	}

	loc := target.resolve(a.page)
	err := loc.SetChecked(checked, playwright.LocatorSetCheckedOptions{
		Timeout: a.timeout(o.Timeout, a.cfg.Action),
	})
	return a.done("setChecked", target, err)
}

// IsChecked ждет появления элемента в DOM и возвращает его состояние.
func (a *Actions) IsChecked(ctx context.Context, target Target, opts ...CheckOpts) (bool, error) {
	var o CheckOpts
	if len(opts) > 0 {
		o = opts[0]
	}

	loc := target.resolve(a.page)
	timeout := a.timeout(o.Timeout, a.cfg.Action)

	if err := loc.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateAttached,
		Timeout: timeout,
	}); err != nil {
		return false, a.done("isChecked", target, fmt.Errorf("элемент не найден: %w", err))
	}

	checked, err := loc.IsChecked(playwright.LocatorIsCheckedOptions{Timeout: timeout})
	return checked, a.done("isChecked", target, err)
}

type TextOpts struct {
	Timeout time.Duration
	NoTrim  bool
}

// GetText ждет видимости элемента и возвращает его текст. Если элементов
// по цели нет, возвращается пустая строка без ошибки — это контракт
// "отсутствующего значения", а не подавление ошибки.
func (a *Actions) GetText(ctx context.Context, target Target, opts ...TextOpts) (string, error) {
	var o TextOpts
	if len(opts) > 0 {
		o = opts[0]
	}

	loc := target.resolve(a.page)

	n, err := loc.Count()
	if err != nil {
		return "", a.done("getText", target, err)
	}
	if n == 0 {
		return "", a.done("getText", target, nil)
	}

	timeout := a.timeout(o.Timeout, a.cfg.Action)
	if err := loc.First().WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: timeout,
	}); err != nil {
		return "", a.done("getText", target, fmt.Errorf("элемент не виден: %w", err))
	}

	text, err := loc.First().TextContent(playwright.LocatorTextContentOptions{Timeout: timeout})
	if err != nil {
		return "", a.done("getText", target, err)
	}
	if !o.NoTrim {
		text = strings.TrimSpace(text)
	}
	return text, a.done("getText", target, nil)
}

// GetAttribute возвращает значение атрибута элемента.
func (a *Actions) GetAttribute(ctx context.Context, target Target, name string, opts ...TextOpts) (string, error) {
	var o TextOpts
	if len(opts) > 0 {
		o = opts[0]
	}

	loc := target.resolve(a.page)
	value, err := loc.GetAttribute(name, playwright.LocatorGetAttributeOptions{
		Timeout: a.timeout(o.Timeout, a.cfg.Action),
	})
	return value, a.done("getAttribute", target, err)
}

// InputValue возвращает текущее значение поля ввода.
func (a *Actions) InputValue(ctx context.Context, target Target, opts ...TextOpts) (string, error) {
	var o TextOpts
	if len(opts) > 0 {
		o = opts[0]
	}

	loc := target.resolve(a.page)
	value, err := loc.InputValue(playwright.LocatorInputValueOptions{
		Timeout: a.timeout(o.Timeout, a.cfg.Action),
	})
	return value, a.done("inputValue", target, err)
}

// Count возвращает число элементов, подходящих под цель, без ожидания.
func (a *Actions) Count(ctx context.Context, target Target) (int, error) {
	loc := target.resolve(a.page)
	n, err := loc.Count()
	return n, a.done("count", target, err)
}

type NavigateOpts struct {
	WaitUntil *playwright.WaitUntilState
	Timeout   time.Duration
}

// Navigate загружает URL и ждет указанной стадии загрузки
// (по умолчанию domcontentloaded). Превышение ctx прерывает ожидание.
func (a *Actions) Navigate(ctx context.Context, url string, opts ...NavigateOpts) error {
	var o NavigateOpts
	if len(opts) > 0 {
		o = opts[0]
	}

	timeout := o.Timeout
	if timeout == 0 {
		timeout = a.cfg.Navigate
	}
	waitUntil := o.WaitUntil
	if waitUntil == nil {
		waitUntil = playwright.WaitUntilStateDomcontentloaded
	}

	navCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	errChan := make(chan error, 1)
	go func() {
		_, err := a.page.Goto(url, playwright.PageGotoOptions{
			WaitUntil: waitUntil,
			Timeout:   playwright.Float(float64(timeout.Milliseconds())),
		})
		errChan <- err
	}()

	var err error
	select {
	case <-navCtx.Done():
		err = fmt.Errorf("navigate timeout after %v", timeout)
	case err = <-errChan:
	}
	return a.done("navigate", Selector(url), err)
}

type WaitOpts struct {
	Timeout time.Duration
}

// WaitFor ждет, пока элемент достигнет состояния
// visible / hidden / attached / detached.
func (a *Actions) WaitFor(ctx context.Context, target Target, state string, opts ...WaitOpts) error {
	var o WaitOpts
	if len(opts) > 0 {
		o = opts[0]
	}

	var waitState *playwright.WaitForSelectorState
	switch strings.ToLower(state) {
	case "hidden":
		waitState = playwright.WaitForSelectorStateHidden
	case "attached":
		waitState = playwright.WaitForSelectorStateAttached
	case "detached":
		waitState = playwright.WaitForSelectorStateDetached
	default:
		waitState = playwright.WaitForSelectorStateVisible
	}

	loc := target.resolve(a.page)
	err := loc.WaitFor(playwright.LocatorWaitForOptions{
		State:   waitState,
		Timeout: a.timeout(o.Timeout, a.cfg.Action),
	})
	return a.done("waitFor", target, err)
}

// WaitForURL ждет, пока URL страницы совпадет с шаблоном (glob).
func (a *Actions) WaitForURL(ctx context.Context, pattern string, opts ...WaitOpts) error {
	var o WaitOpts
	if len(opts) > 0 {
		o = opts[0]
	}

	err := a.page.WaitForURL(pattern, playwright.PageWaitForURLOptions{
		Timeout: a.timeout(o.Timeout, a.cfg.Navigate),
	})
	return a.done("waitForURL", Selector(pattern), err)
}

// WaitForLoadState ждет стадии загрузки: load, domcontentloaded, networkidle.
func (a *Actions) WaitForLoadState(ctx context.Context, state string, opts ...WaitOpts) error {
	var o WaitOpts
	if len(opts) > 0 {
		o = opts[0]
	}

	var loadState *playwright.LoadState
	switch strings.ToLower(state) {
	case "load":
		loadState = playwright.LoadStateLoad
	case "networkidle":
		loadState = playwright.LoadStateNetworkidle
	default:
		loadState = playwright.LoadStateDomcontentloaded
	}

	err := a.page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State:   loadState,
		Timeout: a.timeout(o.Timeout, a.cfg.Navigate),
	})
	return a.done("waitForLoadState", Selector(state), err)
}
