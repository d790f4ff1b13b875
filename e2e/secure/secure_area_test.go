package secure

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"uiTests/e2e/testutil"
	"uiTests/internal/pom"
)

func login(t *testing.T, mgr *pom.Manager) {
	t.Helper()
	ctx := context.Background()

	lp := mgr.Login()
	require.NoError(t, lp.Navigate(ctx))
	require.NoError(t, lp.Login(ctx, "tomsmith", "SuperSecretPassword!"))
	require.NoError(t, lp.Actions().WaitForURL(ctx, "**/secure"))
}

func TestLogout(t *testing.T) {
	env := testutil.Setup(t)
	mgr := env.NewManager(t)
	ctx := context.Background()

	login(t, mgr)

	sp := mgr.SecureArea()
	require.NoError(t, sp.Logout(ctx))
	require.NoError(t, sp.Actions().WaitForURL(ctx, "**/login"))

	// После выхода успех и ошибка по-прежнему читаются из одного региона
	mgr.Login().AssertFlashContains(t, ctx, "You logged out of the secure area!")
}

func TestSecureAreaRequiresLogin(t *testing.T) {
	env := testutil.Setup(t)
	mgr := env.NewManager(t)
	ctx := context.Background()

	sp := mgr.SecureArea()
	require.NoError(t, sp.Navigate(ctx))

	require.NoError(t, sp.Actions().WaitForURL(ctx, "**/login"))
	mgr.Login().AssertFlashContains(t, ctx, "You must login to view the secure area!")
}

func TestSecureAreaHeading(t *testing.T) {
	env := testutil.Setup(t)
	mgr := env.NewManager(t)
	ctx := context.Background()

	login(t, mgr)

	heading, err := mgr.SecureArea().Heading(ctx)
	require.NoError(t, err)
	require.Equal(t, "Secure Area", heading)
}
