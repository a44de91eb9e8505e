package coordinator

import (
	"errors"
	"testing"

	"github.com/bnema/appshell/internal/application/port"
	"github.com/bnema/appshell/internal/application/port/mocks"
	"github.com/bnema/appshell/internal/domain/entity"
	"github.com/bnema/appshell/internal/testutil/fakehost"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestShell(t *testing.T, f *fixture) *Shell {
	t.Helper()
	s, err := NewShell(testCtx(), f.deps)
	require.NoError(t, err)
	return s
}

func TestCreatePrimary_BuildsWindowFromOptions(t *testing.T) {
	opts := &entity.AppOptions{
		Name:            "Mail",
		UserAgent:       "Mail/1.0",
		Zoom:            1.2,
		MinWidth:        400,
		HideWindowFrame: true,
		AlwaysOnTop:     true,
		Insecure:        true,
	}
	f := newFixture(t, opts, true)
	f.deps.Icon = "/usr/share/icons/mail.png"
	f.deps.Preload = "/opt/mail/preload.js"
	s := newTestShell(t, f)

	w, err := s.Factory().CreatePrimary(testCtx())
	require.NoError(t, err)
	require.NotNil(t, w)
	assert.Same(t, w, s.Factory().Primary())

	got := f.host.Options(w.ID())
	assert.Equal(t, "Mail", got.Title)
	assert.Equal(t, "Mail", got.TabbingIdentifier)
	assert.Equal(t, entity.DefaultWindowWidth, got.Width)
	assert.Equal(t, entity.DefaultWindowHeight, got.Height)
	assert.Equal(t, 400, got.MinWidth)
	assert.Nil(t, got.X)
	assert.False(t, got.Frame)
	assert.True(t, got.AutoHideMenuBar)
	assert.True(t, got.AlwaysOnTop)
	assert.Equal(t, "/usr/share/icons/mail.png", got.Icon)
	assert.Equal(t, port.WebPreferences{
		JavaScript:  true,
		Plugins:     true,
		WebSecurity: false,
		Preload:     "/opt/mail/preload.js",
		ZoomFactor:  1.2,
	}, got.WebPreferences)

	fw := f.host.Window(0)
	assert.Equal(t, "Mail/1.0", fw.UserAgent())
	assert.Equal(t, targetURL, fw.URL())
	assert.Equal(t, []string{
		"w1 create",
		"w1 user-agent Mail/1.0",
		"w1 load " + targetURL,
	}, f.host.Journal())
}

func TestCreatePrimary_NoTabbingWithoutNativeTabs(t *testing.T) {
	f := newFixture(t, &entity.AppOptions{Name: "Mail"}, false)
	s := newTestShell(t, f)

	w, err := s.Factory().CreatePrimary(testCtx())
	require.NoError(t, err)

	assert.Empty(t, f.host.Options(w.ID()).TabbingIdentifier)
	assert.True(t, f.host.Options(w.ID()).Frame)
}

func TestCreatePrimary_RestoresPersistedGeometry(t *testing.T) {
	f := newFixture(t, &entity.AppOptions{Width: 1000, Height: 600}, false)
	store := mocks.NewMockGeometryStore(t)
	store.EXPECT().Load(mock.Anything, entity.WindowGeometry{Width: 1000, Height: 600}).
		Return(&entity.WindowGeometry{X: intPtr(10), Y: intPtr(20), Width: 900, Height: 700, Maximized: true}, nil).
		Once()
	f.deps.Geometry = store
	s := newTestShell(t, f)

	w, err := s.Factory().CreatePrimary(testCtx())
	require.NoError(t, err)

	got := f.host.Options(w.ID())
	assert.Equal(t, 900, got.Width)
	assert.Equal(t, 700, got.Height)
	require.NotNil(t, got.X)
	assert.Equal(t, 10, *got.X)
	assert.True(t, w.IsMaximized())
	assert.Contains(t, f.host.Journal(), "w1 maximize")
}

func TestCreatePrimary_GeometryLoadErrorFallsBackToDefaults(t *testing.T) {
	f := newFixture(t, &entity.AppOptions{X: intPtr(5), Y: intPtr(6)}, false)
	store := mocks.NewMockGeometryStore(t)
	store.EXPECT().Load(mock.Anything, mock.Anything).Return(nil, errors.New("disk gone")).Once()
	f.deps.Geometry = store
	s := newTestShell(t, f)

	w, err := s.Factory().CreatePrimary(testCtx())
	require.NoError(t, err)

	got := f.host.Options(w.ID())
	assert.Equal(t, entity.DefaultWindowWidth, got.Width)
	require.NotNil(t, got.X)
	assert.Equal(t, 5, *got.X)
	assert.Equal(t, 6, *got.Y)
}

func TestCreatePrimary_OnlyOnce(t *testing.T) {
	f := newFixture(t, &entity.AppOptions{}, false)
	s := newTestShell(t, f)

	_, err := s.Factory().CreatePrimary(testCtx())
	require.NoError(t, err)

	w, err := s.Factory().CreatePrimary(testCtx())
	assert.ErrorIs(t, err, ErrPrimaryExists)
	assert.Nil(t, w)
	assert.Len(t, f.host.Windows(), 1)
}

func TestCreatePrimary_HostFailure(t *testing.T) {
	f := newFixture(t, &entity.AppOptions{}, false)
	f.host.FailCreate = true
	s := newTestShell(t, f)

	w, err := s.Factory().CreatePrimary(testCtx())
	assert.ErrorIs(t, err, fakehost.ErrCreateFailed)
	assert.Nil(t, w)
	assert.Nil(t, s.Factory().Primary())
}

func TestCreatePrimary_MaximizeAppliedOnce(t *testing.T) {
	opts := &entity.AppOptions{Maximize: true}
	f := newFixture(t, opts, false)
	markers := mocks.NewMockMarkerStore(t)
	writer := mocks.NewMockOptionsWriter(t)
	markers.EXPECT().Has(mock.Anything, "maximized-once").Return(false, nil).Once()
	writer.EXPECT().PersistOptions(mock.Anything, mock.MatchedBy(func(o *entity.AppOptions) bool {
		return !o.Maximize
	})).Return(nil).Once()
	markers.EXPECT().Set(mock.Anything, "maximized-once").Return(nil).Once()
	f.deps.Markers = markers
	f.deps.Writer = writer
	s := newTestShell(t, f)

	w, err := s.Factory().CreatePrimary(testCtx())
	require.NoError(t, err)

	assert.True(t, w.IsMaximized())
	assert.True(t, opts.Maximize, "session options stay untouched")

	maximizes := 0
	for _, entry := range f.host.Journal() {
		if entry == "w1 maximize" {
			maximizes++
		}
	}
	assert.Equal(t, 1, maximizes)
}

func TestCreatePrimary_MaximizePersistErrorIsReturned(t *testing.T) {
	f := newFixture(t, &entity.AppOptions{Maximize: true}, false)
	markers := mocks.NewMockMarkerStore(t)
	writer := mocks.NewMockOptionsWriter(t)
	markers.EXPECT().Has(mock.Anything, mock.Anything).Return(false, nil).Once()
	writer.EXPECT().PersistOptions(mock.Anything, mock.Anything).Return(errors.New("read-only")).Once()
	f.deps.Markers = markers
	f.deps.Writer = writer
	s := newTestShell(t, f)

	w, err := s.Factory().CreatePrimary(testCtx())
	require.Error(t, err)
	assert.NotNil(t, w)
	assert.Contains(t, err.Error(), "read-only")
}

func TestCreateSecondary_InheritsContentHandlers(t *testing.T) {
	f := newFixture(t, &entity.AppOptions{Name: "Mail", UserAgent: "Mail/1.0"}, true)
	f.deps.Style = staticStyle("body { color: red }")
	s := newTestShell(t, f)

	_, err := s.Factory().CreatePrimary(testCtx())
	require.NoError(t, err)
	primary := f.host.Window(0)

	ev := primary.RequestNewWindow("https://mail.example.com/compose", entity.DispositionNewWindow)
	assert.True(t, ev.DefaultPrevented())
	require.Len(t, f.host.Windows(), 2)
	secondary := f.host.Window(1)
	assert.Same(t, secondary, ev.Guest())

	got := f.host.Options(secondary.ID())
	assert.Equal(t, "Mail", got.TabbingIdentifier)
	assert.True(t, got.Frame)
	assert.Zero(t, got.Width)
	assert.Empty(t, got.Title)
	assert.Equal(t, "Mail/1.0", secondary.UserAgent())
	assert.Equal(t, "https://mail.example.com/compose", secondary.URL())

	secondary.StartNavigation("https://mail.example.com/compose")
	secondary.ReceiveResponse("https://mail.example.com/compose")
	assert.Equal(t, []string{"body { color: red }"}, secondary.InsertedCSS())

	secondary.FinishLoad()
	msgs := secondary.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, port.ParamsChannel, msgs[0].Channel)

	f.opener.EXPECT().OpenExternal(mock.Anything, "https://evil.example.net/").Return(nil).Once()
	ev = secondary.RequestNewWindow("https://evil.example.net/", entity.DispositionNewWindow)
	assert.True(t, ev.DefaultPrevented())
	assert.Nil(t, ev.Guest())
	assert.Len(t, f.host.Windows(), 2)
}

func TestCreateTab_BackgroundKeepsParentFocused(t *testing.T) {
	f := newFixture(t, &entity.AppOptions{Name: "Mail"}, true)
	s := newTestShell(t, f)

	_, err := s.Factory().CreatePrimary(testCtx())
	require.NoError(t, err)
	primary := f.host.Window(0)

	primary.RequestNewWindow("https://mail.example.com/y", entity.DispositionBackgroundTab)

	require.Len(t, f.host.Windows(), 2)
	tab := f.host.Window(1)
	assert.Same(t, primary, tab.Parent())
	assert.True(t, primary.IsFocused())
	assert.False(t, tab.IsFocused())
}

func TestCreateTab_ForegroundFocusesTab(t *testing.T) {
	f := newFixture(t, &entity.AppOptions{Name: "Mail"}, true)
	s := newTestShell(t, f)

	_, err := s.Factory().CreatePrimary(testCtx())
	require.NoError(t, err)
	primary := f.host.Window(0)

	primary.RequestNewWindow("https://elsewhere.example.org/", entity.DispositionForegroundTab)

	require.Len(t, f.host.Windows(), 2)
	tab := f.host.Window(1)
	assert.Equal(t, []*fakehost.Window{tab}, primary.Tabs())
	assert.True(t, tab.IsFocused())
}

func TestCreateTab_NilParentUsesFocusedWindow(t *testing.T) {
	f := newFixture(t, &entity.AppOptions{Name: "Mail"}, true)
	s := newTestShell(t, f)

	_, err := s.Factory().CreateTab(testCtx(), nil, targetURL, true)
	assert.ErrorIs(t, err, ErrNoFocusedWindow)
	assert.Empty(t, f.host.Windows())

	_, err = s.Factory().CreatePrimary(testCtx())
	require.NoError(t, err)
	primary := f.host.Window(0)
	primary.Focus()

	tab, err := s.Factory().CreateTab(testCtx(), nil, targetURL, true)
	require.NoError(t, err)
	assert.Equal(t, primary, tab.(*fakehost.Window).Parent())
}

func TestCreatePrimary_NewTabButtonOpensTarget(t *testing.T) {
	f := newFixture(t, &entity.AppOptions{Name: "Mail"}, true)
	s := newTestShell(t, f)

	_, err := s.Factory().CreatePrimary(testCtx())
	require.NoError(t, err)
	primary := f.host.Window(0)

	primary.RequestNewTab()

	require.Len(t, f.host.Windows(), 2)
	tab := f.host.Window(1)
	assert.Equal(t, targetURL, tab.URL())
	assert.Same(t, primary, tab.Parent())
	assert.True(t, tab.IsFocused())
}

func TestWireContent_ContextMenu(t *testing.T) {
	t.Run("attached to every window", func(t *testing.T) {
		f := newFixture(t, &entity.AppOptions{}, false)
		menu := mocks.NewMockContextMenu(t)
		menu.EXPECT().Attach(mock.Anything, mock.Anything, mock.MatchedBy(func(b port.ContextMenuBindings) bool {
			return b.OpenInNewWindow != nil && b.OpenInNewTab == nil
		})).Return().Times(2)
		f.deps.ContextMenu = menu
		s := newTestShell(t, f)

		_, err := s.Factory().CreatePrimary(testCtx())
		require.NoError(t, err)
		_, err = s.Factory().CreateSecondary(testCtx(), targetURL)
		require.NoError(t, err)
	})

	t.Run("skipped when disabled", func(t *testing.T) {
		f := newFixture(t, &entity.AppOptions{DisableContextMenu: true}, false)
		f.deps.ContextMenu = mocks.NewMockContextMenu(t)
		s := newTestShell(t, f)

		_, err := s.Factory().CreatePrimary(testCtx())
		require.NoError(t, err)
	})
}

func TestCreateSecondary_DoesNotBecomePrimary(t *testing.T) {
	f := newFixture(t, &entity.AppOptions{}, false)
	s := newTestShell(t, f)

	w, err := s.Factory().CreateSecondary(testCtx(), "https://mail.example.com/other")
	require.NoError(t, err)
	assert.NotNil(t, w)
	assert.Nil(t, s.Factory().Primary())
	assert.Zero(t, w.(*fakehost.Window).Listeners(port.EventCloseRequested))
}
