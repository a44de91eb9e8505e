package usecase

import (
	"context"
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

func newMaximizeWindow(t *testing.T) *fakehost.Window {
	t.Helper()
	w, err := fakehost.New().CreateWindow(context.Background(), port.WindowOptions{})
	require.NoError(t, err)
	return w.(*fakehost.Window)
}

func TestMaximizeOnce_FirstRunMaximizesAndPersists(t *testing.T) {
	markers := mocks.NewMockMarkerStore(t)
	writer := mocks.NewMockOptionsWriter(t)
	w := newMaximizeWindow(t)
	opts := &entity.AppOptions{TargetURL: targetURL, Maximize: true}

	markers.EXPECT().Has(mock.Anything, MarkerMaximizedOnce).Return(false, nil).Once()
	writer.EXPECT().PersistOptions(mock.Anything, mock.MatchedBy(func(o *entity.AppOptions) bool {
		return !o.Maximize && o.TargetURL == targetURL
	})).Return(nil).Once()
	markers.EXPECT().Set(mock.Anything, MarkerMaximizedOnce).Return(nil).Once()

	maximized, err := NewMaximizeOnceUseCase(markers, writer).Apply(testCtx(), w, opts)

	require.NoError(t, err)
	assert.True(t, maximized)
	assert.True(t, w.IsMaximized())
	// The session options are left untouched.
	assert.True(t, opts.Maximize)
}

func TestMaximizeOnce_MarkerPresentIsNoop(t *testing.T) {
	markers := mocks.NewMockMarkerStore(t)
	writer := mocks.NewMockOptionsWriter(t)
	w := newMaximizeWindow(t)

	markers.EXPECT().Has(mock.Anything, MarkerMaximizedOnce).Return(true, nil).Once()

	maximized, err := NewMaximizeOnceUseCase(markers, writer).Apply(testCtx(), w, &entity.AppOptions{Maximize: true})

	require.NoError(t, err)
	assert.False(t, maximized)
	assert.False(t, w.IsMaximized())
}

func TestMaximizeOnce_FlagUnsetSkipsStores(t *testing.T) {
	markers := mocks.NewMockMarkerStore(t)
	writer := mocks.NewMockOptionsWriter(t)

	maximized, err := NewMaximizeOnceUseCase(markers, writer).Apply(testCtx(), newMaximizeWindow(t), &entity.AppOptions{})

	require.NoError(t, err)
	assert.False(t, maximized)
}

func TestMaximizeOnce_PersistFailurePropagates(t *testing.T) {
	markers := mocks.NewMockMarkerStore(t)
	writer := mocks.NewMockOptionsWriter(t)
	persistErr := errors.New("read-only file system")

	markers.EXPECT().Has(mock.Anything, MarkerMaximizedOnce).Return(false, nil).Once()
	writer.EXPECT().PersistOptions(mock.Anything, mock.Anything).Return(persistErr).Once()

	maximized, err := NewMaximizeOnceUseCase(markers, writer).Apply(testCtx(), newMaximizeWindow(t), &entity.AppOptions{Maximize: true})

	require.ErrorIs(t, err, persistErr)
	assert.True(t, maximized)
}
