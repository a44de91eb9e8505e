package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/appshell/internal/application/port"
	"github.com/bnema/appshell/internal/application/port/mocks"
	"github.com/bnema/appshell/internal/testutil/fakehost"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newClearDataFixture(t *testing.T) (*fakehost.Host, *fakehost.Window, *mocks.MockConfirmer) {
	t.Helper()
	host := fakehost.New()
	w, err := host.CreateWindow(context.Background(), port.WindowOptions{})
	require.NoError(t, err)
	host.ResetJournal()
	return host, w.(*fakehost.Window), mocks.NewMockConfirmer(t)
}

func answer(button int) func(context.Context, port.Window, port.ConfirmRequest, func(int)) {
	return func(_ context.Context, _ port.Window, _ port.ConfirmRequest, cb func(int)) {
		cb(button)
	}
}

func TestClearAppData_ConfirmedChain(t *testing.T) {
	host, w, confirmer := newClearDataFixture(t)
	confirmer.EXPECT().Confirm(mock.Anything, w, mock.MatchedBy(func(req port.ConfirmRequest) bool {
		return req.Warning && req.DefaultButton == 1 && len(req.Buttons) == 2 && req.Buttons[0] == "Yes"
	}), mock.Anything).Run(answer(0)).Once()

	NewClearAppDataUseCase(confirmer, targetURL).Request(testCtx(), w)

	assert.Equal(t, []string{
		"session clear-storage",
		"session clear-cache",
		"w1 load " + targetURL,
	}, host.Journal())
}

func TestClearAppData_CancelIsNoop(t *testing.T) {
	host, w, confirmer := newClearDataFixture(t)
	confirmer.EXPECT().Confirm(mock.Anything, w, mock.Anything, mock.Anything).Run(answer(1)).Once()

	NewClearAppDataUseCase(confirmer, targetURL).Request(testCtx(), w)

	assert.Empty(t, host.Journal())
}

func TestClearAppData_FailuresDoNotStopTheChain(t *testing.T) {
	host, w, confirmer := newClearDataFixture(t)
	host.Session().StorageErr = errors.New("locked")
	host.Session().CacheErr = errors.New("busy")
	confirmer.EXPECT().Confirm(mock.Anything, w, mock.Anything, mock.Anything).Run(answer(0)).Once()

	NewClearAppDataUseCase(confirmer, targetURL).Request(testCtx(), w)

	assert.Equal(t, targetURL, w.URL())
}

func TestClearAppData_WaitsForAsyncCompletion(t *testing.T) {
	host, w, confirmer := newClearDataFixture(t)
	host.Session().Manual = true
	confirmer.EXPECT().Confirm(mock.Anything, w, mock.Anything, mock.Anything).Run(answer(0)).Once()

	NewClearAppDataUseCase(confirmer, targetURL).Request(testCtx(), w)
	assert.Equal(t, []string{"session clear-storage"}, host.Journal())

	require.True(t, host.Session().Complete())
	assert.Equal(t, []string{"session clear-storage", "session clear-cache"}, host.Journal())

	require.True(t, host.Session().Complete())
	assert.Equal(t, targetURL, w.URL())
}
