package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/pview/internal/catalog"
	"github.com/alexisbeaulieu97/pview/internal/palette"
	"github.com/alexisbeaulieu97/pview/internal/session"
)

func newTestModel(t *testing.T, policy session.LoadPolicy) (Model, string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.hex"), []byte("000000 FFFFFF FF0000 00FF00"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.hex"), []byte("123456"), 0o644))

	cat, err := catalog.Discover(dir, catalog.Options{})
	require.NoError(t, err)
	s, err := session.New(cat, palette.NewStore(palette.ParseOptions{}, nil), session.Options{OnLoadError: policy})
	require.NoError(t, err)

	return NewModel(s, Options{}), dir
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)
	updated, ok := next.(Model)
	require.True(t, ok)
	return updated, cmd
}

func TestUpdate_WindowSizeMsg(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, session.PolicyFatal)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Equal(t, 80, m.width)
	assert.Equal(t, 24, m.height)
	assert.Equal(t, session.Viewport{Width: 40, Height: 23}, m.Viewport())
}

func TestUpdate_NavigationKeys(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, session.PolicyFatal)

	cases := []struct {
		name  string
		msg   tea.KeyMsg
		index int
	}{
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, 1},
		{"l wraps to first", runes("l"), 0},
		{"n", runes("n"), 1},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, 0},
		{"left arrow wraps to last", tea.KeyMsg{Type: tea.KeyLeft}, 1},
		{"h", runes("h"), 0},
		{"p", runes("p"), 1},
	}

	for _, tc := range cases {
		var cmd tea.Cmd
		m, cmd = update(t, m, tc.msg)
		assert.Nil(t, cmd, tc.name)
		assert.Equal(t, tc.index, m.Session().Index(), tc.name)
	}
}

func TestUpdate_ThemeAndHelp(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t, session.PolicyFatal)

	m, _ = update(t, m, runes("t"))
	assert.Equal(t, session.Dark, m.Session().Theme())
	assert.Equal(t, 0, m.Session().Index())

	m, _ = update(t, m, runes("?"))
	assert.True(t, m.help.ShowAll)
	m, _ = update(t, m, runes("?"))
	assert.False(t, m.help.ShowAll)
}

func TestUpdate_QuitKeys(t *testing.T) {
	t.Parallel()

	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		m, _ := newTestModel(t, session.PolicyFatal)
		m, cmd := update(t, m, msg)
		require.NotNil(t, cmd, msg.String())
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.True(t, m.quitting)
		assert.NoError(t, m.Err())
		assert.Empty(t, m.View())
	}
}

func TestUpdate_FatalLoadFailureQuits(t *testing.T) {
	t.Parallel()

	m, dir := newTestModel(t, session.PolicyFatal)
	require.NoError(t, os.Remove(filepath.Join(dir, "b.hex")))

	m, cmd := update(t, m, runes("n"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	var failure *session.LoadFailure
	require.ErrorAs(t, m.Err(), &failure)
	assert.Equal(t, 0, m.Session().Index())
}

func TestUpdate_KeepPolicyShowsNotice(t *testing.T) {
	t.Parallel()

	m, dir := newTestModel(t, session.PolicyKeep)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	require.NoError(t, os.Remove(filepath.Join(dir, "b.hex")))

	m, cmd := update(t, m, runes("n"))
	assert.Nil(t, cmd)
	assert.NoError(t, m.Err())
	assert.Contains(t, m.notice, "b.hex")
	assert.Contains(t, m.View(), "load b.hex")
	assert.Equal(t, 0, m.Session().Index())

	// A successful transition clears the notice.
	m, _ = update(t, m, runes("t"))
	assert.Empty(t, m.notice)
}

func TestUpdate_ChangeMsgReloadsCurrentPalette(t *testing.T) {
	t.Parallel()

	m, dir := newTestModel(t, session.PolicyFatal)
	path := filepath.Join(dir, "a.hex")
	require.NoError(t, os.WriteFile(path, []byte("AAAAAA BBBBBB"), 0o644))

	abs, err := filepath.Abs(path)
	require.NoError(t, err)

	m, _ = update(t, m, ChangeMsg{Path: abs})
	assert.Equal(t, 2, m.Session().Palette().Len())
}

func TestUpdate_ChangeMsgIgnoresOtherSources(t *testing.T) {
	t.Parallel()

	m, dir := newTestModel(t, session.PolicyFatal)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.hex"), []byte("AAAAAA"), 0o644))

	other, err := filepath.Abs(filepath.Join(dir, "b.hex"))
	require.NoError(t, err)

	m, _ = update(t, m, ChangeMsg{Path: other})
	assert.Equal(t, 4, m.Session().Palette().Len(), "palette on screen is untouched")
}

func TestUpdate_ChangeMsgRemovedSourceIsFatal(t *testing.T) {
	t.Parallel()

	m, dir := newTestModel(t, session.PolicyFatal)
	path := filepath.Join(dir, "a.hex")
	require.NoError(t, os.Remove(path))
	abs, err := filepath.Abs(path)
	require.NoError(t, err)

	m, cmd := update(t, m, ChangeMsg{Path: abs, Removed: true})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Error(t, m.Err())
}
