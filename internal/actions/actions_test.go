package actions

import (
	"errors"
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"
)

// embeddedLocator — алиас, чтобы имя встроенного поля не совпадало с
// методом Locator интерфейса playwright.Locator.
type embeddedLocator = playwright.Locator

// fakeLocator — пустышка: методы не вызываются, важна только идентичность.
type fakeLocator struct {
	embeddedLocator
}

func TestNewFillsDefaultTimeouts(t *testing.T) {
	a := New(nil, Timeouts{})

	cfg := a.Config()
	require.Equal(t, 10*time.Second, cfg.Action)
	require.Equal(t, 30*time.Second, cfg.Navigate)
	require.Equal(t, 100*time.Millisecond, cfg.TypeDelay)
}

func TestNewKeepsExplicitTimeouts(t *testing.T) {
	a := New(nil, Timeouts{
		Action:    2 * time.Second,
		TypeDelay: 5 * time.Millisecond,
	})

	cfg := a.Config()
	require.Equal(t, 2*time.Second, cfg.Action)
	require.Equal(t, 30*time.Second, cfg.Navigate) // не задан — дефолт
	require.Equal(t, 5*time.Millisecond, cfg.TypeDelay)
}

func TestTimeoutOverride(t *testing.T) {
	a := New(nil, Timeouts{Action: 10 * time.Second})

	require.Equal(t, float64(10000), *a.timeout(0, a.cfg.Action))
	require.Equal(t, float64(500), *a.timeout(500*time.Millisecond, a.cfg.Action))
}

func TestSelectorTarget(t *testing.T) {
	target := Selector("#username")

	require.Equal(t, "#username", target.String())
	require.False(t, target.IsZero())
	require.True(t, Target{}.IsZero())
}

type captureRecorder struct {
	entries []string
}

func (c *captureRecorder) Record(action, target string, err error) {
	entry := action + " " + target
	if err != nil {
		entry += " !"
	}
	c.entries = append(c.entries, entry)
}

// Установленный рекордер получает каждую операцию, включая упавшие;
// ошибка при этом возвращается вызывающему без изменений.
func TestRecorderReceivesOperations(t *testing.T) {
	a := New(nil, Timeouts{})
	rec := &captureRecorder{}
	a.SetRecorder(rec)
	require.Equal(t, Recorder(rec), a.Recorder())

	require.NoError(t, a.done("click", Selector("#login"), nil))

	opErr := errors.New("элемент не найден")
	require.Equal(t, opErr, a.done("fill", Selector("#username"), opErr))

	require.Equal(t, []string{"click #login", "fill #username !"}, rec.entries)
}

func TestTargetResolvePrefersLocator(t *testing.T) {
	// Готовый локатор возвращается как есть, страница не используется
	loc := fakeLocator{}
	target := FromLocator(loc)

	require.Equal(t, loc, target.resolve(nil))
	require.Equal(t, "<locator>", target.String())
}
