package runner

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const sampleStream = `{"Action":"run","Package":"uiTests/e2e/login","Test":"TestLoginSuccess"}
{"Action":"output","Package":"uiTests/e2e/login","Test":"TestLoginSuccess","Output":"=== RUN   TestLoginSuccess\n"}
{"Action":"pass","Package":"uiTests/e2e/login","Test":"TestLoginSuccess","Elapsed":1.5}
{"Action":"run","Package":"uiTests/e2e/login","Test":"TestLoginWrongPassword"}
{"Action":"output","Package":"uiTests/e2e/login","Test":"TestLoginWrongPassword","Output":"=== RUN   TestLoginWrongPassword\n"}
{"Action":"output","Package":"uiTests/e2e/login","Test":"TestLoginWrongPassword","Output":"    login_test.go:42: flash mismatch\n"}
{"Action":"fail","Package":"uiTests/e2e/login","Test":"TestLoginWrongPassword","Elapsed":0.7}
{"Action":"run","Package":"uiTests/e2e/checkboxes","Test":"TestCheckboxCount"}
{"Action":"skip","Package":"uiTests/e2e/checkboxes","Test":"TestCheckboxCount","Elapsed":0}
{"Action":"fail","Package":"uiTests/e2e/login","Elapsed":2.3}
{"Action":"pass","Package":"uiTests/e2e/checkboxes","Elapsed":0.1}
`

func TestParseEventsAggregates(t *testing.T) {
	summary, err := ParseEvents(strings.NewReader(sampleStream))
	require.NoError(t, err)

	require.Equal(t, 1, summary.Passed)
	require.Equal(t, 1, summary.Failed)
	require.Equal(t, 1, summary.Skipped)
	require.Len(t, summary.Results, 3)

	// Итоги пакетов складываются в общую длительность
	require.Equal(t, 2400*time.Millisecond, summary.Elapsed)
}

func TestParseEventsCollectsFailureOutput(t *testing.T) {
	summary, err := ParseEvents(strings.NewReader(sampleStream))
	require.NoError(t, err)

	failures := summary.FailureOutputs()
	require.Len(t, failures, 1)
	require.Contains(t, failures[0], "TestLoginWrongPassword")
	require.Contains(t, failures[0], "flash mismatch")
}

func TestParseEventsSortsResults(t *testing.T) {
	summary, err := ParseEvents(strings.NewReader(sampleStream))
	require.NoError(t, err)

	require.Equal(t, "uiTests/e2e/checkboxes", summary.Results[0].Package)
	require.Equal(t, "TestLoginSuccess", summary.Results[1].Name)
	require.Equal(t, "TestLoginWrongPassword", summary.Results[2].Name)
}

func TestParseEventsEmptyStream(t *testing.T) {
	summary, err := ParseEvents(strings.NewReader(""))
	require.NoError(t, err)
	require.Zero(t, summary.Passed)
	require.Empty(t, summary.Results)
}
