package usecase

import (
	"context"

	"github.com/bnema/appshell/internal/application/port"
	"github.com/bnema/appshell/internal/logging"
)

// Buttons of the clear-data confirmation dialog.
const (
	clearDataButtonYes    = 0
	clearDataButtonCancel = 1
)

// ClearAppDataUseCase wipes the shared session after user confirmation and
// reloads the target URL.
type ClearAppDataUseCase struct {
	confirmer port.Confirmer
	targetURL string
}

// NewClearAppDataUseCase creates the clear-data flow.
func NewClearAppDataUseCase(confirmer port.Confirmer, targetURL string) *ClearAppDataUseCase {
	return &ClearAppDataUseCase{confirmer: confirmer, targetURL: targetURL}
}

// Request asks for confirmation, then clears storage, then the cache, then
// reloads the target URL in w. Failures are logged and the chain continues.
func (uc *ClearAppDataUseCase) Request(ctx context.Context, w port.Window) {
	log := logging.FromContext(ctx)

	req := port.ConfirmRequest{
		Title:         "Clear app data",
		Message:       "Clearing cache and storage will log you out and reset app settings. Continue?",
		Buttons:       []string{"Yes", "Cancel"},
		DefaultButton: clearDataButtonCancel,
		CancelButton:  clearDataButtonCancel,
		Warning:       true,
	}

	uc.confirmer.Confirm(ctx, w, req, func(button int) {
		if button != clearDataButtonYes {
			log.Debug().Msg("clear app data cancelled")
			return
		}
		uc.clear(ctx, w)
	})
}

func (uc *ClearAppDataUseCase) clear(ctx context.Context, w port.Window) {
	log := logging.FromContext(ctx)
	session := w.Session()

	session.ClearStorageData(func(err error) {
		if err != nil {
			log.Warn().Err(err).Msg("failed to clear storage data")
		}
		session.ClearCache(func(err error) {
			if err != nil {
				log.Warn().Err(err).Msg("failed to clear cache")
			}
			if err := w.LoadURL(ctx, uc.targetURL); err != nil {
				log.Warn().Err(err).Str("url", uc.targetURL).Msg("failed to reload after clearing data")
				return
			}
			log.Info().Msg("app data cleared")
		})
	})
}
