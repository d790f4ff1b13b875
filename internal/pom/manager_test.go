package pom

import (
	"testing"

	"github.com/stretchr/testify/require"

	"uiTests/internal/actions"
)

// Конструирование page-объектов не выполняет I/O, поэтому кэш фабрики
// проверяется без браузера.
func TestManagerReturnsIdenticalInstances(t *testing.T) {
	m := New(nil, "http://127.0.0.1:0", actions.Timeouts{})

	require.Same(t, m.Login(), m.Login())
	require.Same(t, m.SecureArea(), m.SecureArea())
	require.Same(t, m.Checkboxes(), m.Checkboxes())
	require.Same(t, m.Todo(), m.Todo())
}

func TestManagerBuildsLazily(t *testing.T) {
	m := New(nil, "http://127.0.0.1:0", actions.Timeouts{})

	require.Nil(t, m.login)
	require.Nil(t, m.checkboxes)

	_ = m.Login()
	require.NotNil(t, m.login)
	require.Nil(t, m.checkboxes)
}

func TestSeparateManagersDoNotShareCache(t *testing.T) {
	first := New(nil, "http://127.0.0.1:0", actions.Timeouts{})
	second := New(nil, "http://127.0.0.1:0", actions.Timeouts{})

	require.NotSame(t, first.Login(), second.Login())
}

type stubRecorder struct{}

func (stubRecorder) Record(action, target string, err error) {}

// Рекордер доходит и до уже созданных page-объектов, и до будущих.
func TestSetRecorderPropagates(t *testing.T) {
	m := New(nil, "http://127.0.0.1:0", actions.Timeouts{})
	lp := m.Login()

	rec := stubRecorder{}
	m.SetRecorder(rec)

	require.Equal(t, actions.Recorder(rec), lp.Actions().Recorder())
	require.Equal(t, actions.Recorder(rec), m.Checkboxes().Actions().Recorder())
}
