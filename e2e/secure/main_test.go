package secure

import (
	"os"
	"testing"

	"uiTests/e2e/testutil"
)

func TestMain(m *testing.M) {
	code := m.Run()
	testutil.Cleanup()
	os.Exit(code)
}
