package coordinator

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/appshell/internal/application/port"
	"github.com/bnema/appshell/internal/domain/entity"
	"github.com/bnema/appshell/internal/logging"
	"github.com/bnema/appshell/internal/ui/mainloop"
)

const geometrySaveKey = "geometry"

// GeometryKeeper persists the primary window geometry. Bursts of resize and
// move events are coalesced into one save; a close request saves at once.
type GeometryKeeper struct {
	store     port.GeometryStore
	coalescer *mainloop.Coalescer

	mu       sync.Mutex
	geometry entity.WindowGeometry
	now      func() time.Time
}

// NewGeometryKeeper creates a keeper starting from the restored geometry.
func NewGeometryKeeper(store port.GeometryStore, scheduler port.Scheduler, initial *entity.WindowGeometry) *GeometryKeeper {
	k := &GeometryKeeper{
		store:     store,
		coalescer: mainloop.NewCoalescer(scheduler.Post),
		now:       time.Now,
	}
	if initial != nil {
		k.geometry = *initial
	}
	return k
}

// Geometry returns the last captured geometry.
func (k *GeometryKeeper) Geometry() entity.WindowGeometry {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.geometry
}

// Attach follows w's geometry events.
func (k *GeometryKeeper) Attach(ctx context.Context, w port.Window) {
	ctx = logging.WithComponent(ctx, "geometry")
	events := w.Events()

	schedule := func(*port.Event) {
		k.coalescer.Post(geometrySaveKey, func() { k.save(ctx, w) })
	}
	for _, kind := range []port.EventKind{
		port.EventResized,
		port.EventMoved,
		port.EventMaximized,
		port.EventUnmaximized,
		port.EventEnteredFullScreen,
		port.EventLeftFullScreen,
	} {
		events.On(kind, schedule)
	}

	events.On(port.EventCloseRequested, func(*port.Event) {
		k.coalescer.Post(geometrySaveKey, func() { k.save(ctx, w) })
		k.coalescer.Flush(geometrySaveKey)
	})
	events.On(port.EventClosed, func(*port.Event) {
		k.coalescer.Destroy()
	})
}

func (k *GeometryKeeper) save(ctx context.Context, w port.Window) {
	k.mu.Lock()
	k.geometry.Apply(w.Bounds(), w.IsMaximized(), w.IsFullScreen())
	k.geometry.UpdatedAt = k.now()
	snapshot := k.geometry
	k.mu.Unlock()

	if k.store == nil {
		return
	}
	if err := k.store.Save(ctx, &snapshot); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to save window geometry")
		return
	}
	logging.FromContext(ctx).Trace().
		Int("width", snapshot.Width).
		Int("height", snapshot.Height).
		Bool("maximized", snapshot.Maximized).
		Msg("window geometry saved")
}
