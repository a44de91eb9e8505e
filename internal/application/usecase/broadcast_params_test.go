package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/bnema/appshell/internal/application/port"
	"github.com/bnema/appshell/internal/domain/entity"
	"github.com/bnema/appshell/internal/testutil/fakehost"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastParams_SentOnEveryLoad(t *testing.T) {
	opts := &entity.AppOptions{Name: "Mail", TargetURL: targetURL, Counter: true, Zoom: 1}
	uc, err := NewBroadcastParamsUseCase(opts)
	require.NoError(t, err)

	host := fakehost.New()
	pw, err := host.CreateWindow(context.Background(), port.WindowOptions{})
	require.NoError(t, err)
	w := pw.(*fakehost.Window)
	uc.Attach(testCtx(), w)

	w.FinishLoad()
	w.FinishLoad()

	msgs := w.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, port.ParamsChannel, msgs[0].Channel)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(msgs[1].Payload), &decoded))
	assert.Equal(t, "Mail", decoded["name"])
	assert.Equal(t, targetURL, decoded["targetUrl"])
	assert.Equal(t, true, decoded["counter"])
}

func TestBroadcastParams_SendFailureIsIgnored(t *testing.T) {
	uc, err := NewBroadcastParamsUseCase(&entity.AppOptions{})
	require.NoError(t, err)

	host := fakehost.New()
	pw, err := host.CreateWindow(context.Background(), port.WindowOptions{})
	require.NoError(t, err)
	w := pw.(*fakehost.Window)
	w.SendErr = errors.New("page gone")
	uc.Attach(testCtx(), w)

	w.FinishLoad()

	assert.Empty(t, w.Messages())
	assert.NotEmpty(t, uc.Payload())
}
