package checkboxes

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"uiTests/e2e/testutil"
	"uiTests/internal/pages"
)

func openPage(t *testing.T) *pages.CheckboxesPage {
	t.Helper()

	env := testutil.Setup(t)
	cp := env.NewManager(t).Checkboxes()
	require.NoError(t, cp.Navigate(context.Background()))
	return cp
}

// prepare приводит чекбоксы к заданному стартовому состоянию.
func prepare(t *testing.T, cp *pages.CheckboxesPage, states []bool) {
	t.Helper()
	ctx := context.Background()

	for i, want := range states {
		if want {
			require.NoError(t, cp.CheckCheckbox(ctx, i+1))
		} else {
			require.NoError(t, cp.UncheckCheckbox(ctx, i+1))
		}
	}
}

func TestCheckboxCount(t *testing.T) {
	cp := openPage(t)

	n, err := cp.CheckboxCount(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

// Свежезагруженная страница всегда в исходном состоянии [false, true].
func TestInitialStates(t *testing.T) {
	cp := openPage(t)
	cp.ValidateAllCheckboxStates(t, context.Background(), []bool{false, true})
}

func TestCheckAndUncheckByIndex(t *testing.T) {
	cp := openPage(t)
	ctx := context.Background()

	cp.ValidateAllCheckboxStates(t, ctx, []bool{false, true})

	require.NoError(t, cp.CheckCheckbox(ctx, 1))
	require.NoError(t, cp.UncheckCheckbox(ctx, 2))

	cp.ValidateAllCheckboxStates(t, ctx, []bool{true, false})
}

func TestCheckAllFromAnyStart(t *testing.T) {
	starts := [][]bool{
		{false, false},
		{true, false},
		{false, true},
		{true, true},
	}

	for _, start := range starts {
		t.Run(fmt.Sprintf("from_%v", start), func(t *testing.T) {
			cp := openPage(t)
			ctx := context.Background()

			prepare(t, cp, start)
			require.NoError(t, cp.CheckAll(ctx))
			cp.ValidateAllCheckboxStates(t, ctx, []bool{true, true})
		})
	}
}

func TestUncheckAllFromAnyStart(t *testing.T) {
	starts := [][]bool{
		{false, false},
		{true, false},
		{false, true},
		{true, true},
	}

	for _, start := range starts {
		t.Run(fmt.Sprintf("from_%v", start), func(t *testing.T) {
			cp := openPage(t)
			ctx := context.Background()

			prepare(t, cp, start)
			require.NoError(t, cp.UncheckAll(ctx))
			cp.ValidateAllCheckboxStates(t, ctx, []bool{false, false})
		})
	}
}

// Двойной toggle возвращает чекбокс в исходное состояние.
func TestDoubleToggleIsIdentity(t *testing.T) {
	cp := openPage(t)
	ctx := context.Background()

	before, err := cp.CheckboxStates(ctx)
	require.NoError(t, err)

	for i := 1; i <= len(before); i++ {
		require.NoError(t, cp.ToggleCheckbox(ctx, i))
		require.NoError(t, cp.ToggleCheckbox(ctx, i))
	}

	cp.ValidateAllCheckboxStates(t, ctx, before)
}

func TestSingleToggleFlipsState(t *testing.T) {
	cp := openPage(t)
	ctx := context.Background()

	require.NoError(t, cp.ToggleCheckbox(ctx, 1))
	require.NoError(t, cp.ToggleCheckbox(ctx, 2))

	cp.ValidateAllCheckboxStates(t, ctx, []bool{true, false})
}

// Check на уже отмеченном чекбоксе — no-op, состояние не меняется.
func TestCheckIsIdempotent(t *testing.T) {
	cp := openPage(t)
	ctx := context.Background()

	require.NoError(t, cp.CheckCheckbox(ctx, 2))
	require.NoError(t, cp.CheckCheckbox(ctx, 2))
	cp.ValidateCheckboxState(t, ctx, 2, true)
}

func TestToggleRejectsZeroIndex(t *testing.T) {
	cp := openPage(t)
	require.Error(t, cp.ToggleCheckbox(context.Background(), 0))
}
