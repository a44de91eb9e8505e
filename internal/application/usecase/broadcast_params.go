package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bnema/appshell/internal/application/port"
	"github.com/bnema/appshell/internal/domain/entity"
	"github.com/bnema/appshell/internal/logging"
)

// BroadcastParamsUseCase sends the session options to page scripts each time
// a page finishes loading.
type BroadcastParamsUseCase struct {
	payload string
}

// NewBroadcastParamsUseCase serializes opts once for every later send.
func NewBroadcastParamsUseCase(opts *entity.AppOptions) (*BroadcastParamsUseCase, error) {
	data, err := json.Marshal(opts)
	if err != nil {
		return nil, fmt.Errorf("serialize options: %w", err)
	}
	return &BroadcastParamsUseCase{payload: string(data)}, nil
}

// Payload returns the JSON sent on the params channel.
func (uc *BroadcastParamsUseCase) Payload() string {
	return uc.payload
}

// Attach sends the params message on every load completion of w.
func (uc *BroadcastParamsUseCase) Attach(ctx context.Context, w port.Window) port.ListenerID {
	return w.Events().On(port.EventLoadFinished, func(*port.Event) {
		if err := w.Send(ctx, port.ParamsChannel, uc.payload); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Uint64("window_id", uint64(w.ID())).Msg("failed to send params")
		}
	})
}
