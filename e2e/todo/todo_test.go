package todo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"uiTests/e2e/testutil"
	"uiTests/internal/pages"
)

func openPage(t *testing.T) *pages.TodoPage {
	t.Helper()

	env := testutil.Setup(t)
	tp := env.NewManager(t).Todo()
	require.NoError(t, tp.Navigate(context.Background()))
	return tp
}

func TestAddItems(t *testing.T) {
	tp := openPage(t)
	ctx := context.Background()

	require.NoError(t, tp.AddItem(ctx, "buy milk"))
	require.NoError(t, tp.AddItem(ctx, "write tests"))

	items, err := tp.Items(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"buy milk", "write tests"}, items)

	remaining, err := tp.RemainingText(ctx)
	require.NoError(t, err)
	require.Equal(t, "2", remaining)
}

func TestToggleItem(t *testing.T) {
	tp := openPage(t)
	ctx := context.Background()

	require.NoError(t, tp.AddItem(ctx, "first"))
	require.NoError(t, tp.AddItem(ctx, "second"))
	require.NoError(t, tp.ToggleItem(ctx, 1))

	done, err := tp.CompletedCount(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, done)

	remaining, err := tp.RemainingText(ctx)
	require.NoError(t, err)
	require.Equal(t, "1", remaining)
}

func TestClearCompleted(t *testing.T) {
	tp := openPage(t)
	ctx := context.Background()

	require.NoError(t, tp.AddItem(ctx, "keep me"))
	require.NoError(t, tp.AddItem(ctx, "drop me"))
	require.NoError(t, tp.ToggleItem(ctx, 2))
	require.NoError(t, tp.ClearCompleted(ctx))

	items, err := tp.Items(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"keep me"}, items)

	done, err := tp.CompletedCount(ctx)
	require.NoError(t, err)
	require.Zero(t, done)
}

func TestToggleItemRejectsZeroIndex(t *testing.T) {
	tp := openPage(t)

	require.NoError(t, tp.AddItem(context.Background(), "only one"))
	require.Error(t, tp.ToggleItem(context.Background(), 0))
}

// Пустой ввод игнорируется приложением.
func TestEmptyItemIgnored(t *testing.T) {
	tp := openPage(t)
	ctx := context.Background()

	require.NoError(t, tp.AddItem(ctx, "   "))

	items, err := tp.Items(ctx)
	require.NoError(t, err)
	require.Empty(t, items)
}
