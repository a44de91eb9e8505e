package coordinator

import (
	"context"
	"testing"

	"github.com/bnema/appshell/internal/application/port/mocks"
	"github.com/bnema/appshell/internal/domain/entity"
	"github.com/bnema/appshell/internal/logging"
	"github.com/bnema/appshell/internal/testutil/fakehost"
)

const targetURL = "https://mail.example.com/x"

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

type staticStyle string

func (s staticStyle) CSS(context.Context) string { return string(s) }

type fixture struct {
	host      *fakehost.Host
	scheduler *fakehost.Scheduler
	messages  *fakehost.Messages
	platform  *mocks.MockPlatform
	opener    *mocks.MockExternalOpener
	confirm   *mocks.MockConfirmer
	deps      Dependencies
}

func newFixture(t *testing.T, opts *entity.AppOptions, nativeTabs bool) *fixture {
	t.Helper()
	if opts.TargetURL == "" {
		opts.TargetURL = targetURL
	}

	platform := mocks.NewMockPlatform(t)
	platform.EXPECT().NativeTabsSupported().Return(nativeTabs).Maybe()
	platform.EXPECT().IsMacOS().Return(false).Maybe()

	f := &fixture{
		host:      fakehost.New(),
		scheduler: &fakehost.Scheduler{},
		messages:  fakehost.NewMessages(),
		platform:  platform,
		opener:    mocks.NewMockExternalOpener(t),
		confirm:   mocks.NewMockConfirmer(t),
	}
	f.deps = Dependencies{
		Options:   opts,
		Host:      f.host,
		Scheduler: f.scheduler,
		Platform:  platform,
		Opener:    f.opener,
		Messages:  f.messages,
		Confirm:   f.confirm,
	}
	return f
}

func intPtr(v int) *int { return &v }
