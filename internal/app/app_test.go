package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shellingo/shellingo/internal/group"
	"github.com/shellingo/shellingo/internal/practice"
	"github.com/shellingo/shellingo/internal/router"
	"github.com/shellingo/shellingo/internal/screens/setup"
	"github.com/shellingo/shellingo/internal/screens/welcome"
	sess "github.com/shellingo/shellingo/internal/session"
)

func testSession(t *testing.T) *sess.Session {
	t.Helper()
	path := filepath.Join(t.TempDir(), "files.sll")
	require.NoError(t, os.WriteFile(path, []byte("list files | ls\n"), 0o644))
	return sess.New(sess.Options{
		Catalog: group.Discover([]string{path}),
		Rand:    practice.NewSource(1),
	})
}

// drain feeds the messages produced by cmd back into the model, one level
// deep, which is enough for navigation messages.
func drain(m AppModel, cmd tea.Cmd) AppModel {
	if cmd == nil {
		return m
	}
	next, _ := m.Update(cmd())
	return next.(AppModel)
}

func sized(m AppModel) AppModel {
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(AppModel)
}

func TestNewAppModel_StartScreen(t *testing.T) {
	s := testSession(t)

	plain := newAppModel(context.Background(), Options{Session: s})
	assert.IsType(t, &setup.SetupScreen{}, plain.router.Active())

	splash := newAppModel(context.Background(), Options{Session: s, Splash: true})
	assert.IsType(t, &welcome.WelcomeScreen{}, splash.router.Active())
	assert.NotNil(t, splash.Init(), "splash animates")
}

func TestSplashHandsOverToSetup(t *testing.T) {
	m := sized(newAppModel(context.Background(), Options{Session: testSession(t), Splash: true}))

	next, cmd := m.Update(tea.KeyPressMsg{Code: ' '})
	m = drain(next.(AppModel), cmd)

	assert.IsType(t, &setup.SetupScreen{}, m.router.Active())
	assert.Equal(t, 1, m.router.Depth())
}

func TestCtrlCQuits(t *testing.T) {
	m := newAppModel(context.Background(), Options{Session: testSession(t)})

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestPracticeRoundTrip(t *testing.T) {
	s := testSession(t)
	m := sized(newAppModel(context.Background(), Options{Session: s}))

	next, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeySpace})
	m = drain(next.(AppModel), cmd)
	next, cmd = m.Update(tea.KeyPressMsg{Code: 'p', Text: "p"})
	m = drain(next.(AppModel), cmd)

	require.Equal(t, 2, m.router.Depth())
	assert.Equal(t, sess.PhasePractice, s.Phase())

	content := m.render()
	assert.Contains(t, content, "Practice")
	assert.Contains(t, content, "list files")
	assert.Contains(t, content, "✓ 0")

	next, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	m = drain(next.(AppModel), cmd)

	assert.Equal(t, sess.PhaseSetup, s.Phase())
	require.Equal(t, 2, m.router.Depth(), "summary replaces practice")
	assert.Contains(t, m.render(), "Practice complete!")

	next, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	m = drain(next.(AppModel), cmd)

	assert.Equal(t, 1, m.router.Depth())
	assert.IsType(t, &setup.SetupScreen{}, m.router.Active())
}

func TestView(t *testing.T) {
	m := newAppModel(context.Background(), Options{Session: testSession(t)})
	assert.True(t, m.View().AltScreen)

	assert.Empty(t, m.render(), "nothing before the first size message")

	next, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 5})
	assert.True(t, strings.Contains(next.(AppModel).render(), "Terminal too small"))

	content := sized(m).render()
	assert.Contains(t, content, "shellingo")
	assert.Contains(t, content, "Choose groups")
	assert.Contains(t, content, "Toggle")
}

func TestRouterMessagesReachRouter(t *testing.T) {
	m := newAppModel(context.Background(), Options{Session: testSession(t)})

	next, _ := m.Update(router.PopScreenMsg{})

	assert.Equal(t, 1, next.(AppModel).router.Depth())
}
