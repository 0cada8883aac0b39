package views

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/dmitrijs2005/farmchainx/internal/common"
	"github.com/dmitrijs2005/farmchainx/internal/logging"
)

// view is the lifecycle shared by every screen.
type view struct {
	name string
	log  logging.Logger

	// mu guards the embedding view's data as well as the fields below.
	mu      sync.RWMutex
	mounted bool
	// epoch changes on every Mount and Unmount; gens counts loads per slot.
	epoch uint64
	gens  map[string]uint64

	writes singleflight.Group
}

func (v *view) init(name string, log logging.Logger) {
	if log == nil {
		log = logging.Nop()
	}
	v.name = name
	v.log = log.With("view", name)
}

func (v *view) Mount() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.mounted = true
	v.epoch++
}

// Unmount invalidates every load in flight.
func (v *view) Unmount() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.mounted = false
	v.epoch++
}

func (v *view) Mounted() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.mounted
}

// slotAll is the slot of views that hold a single list.
const slotAll = ""

// load identifies one load in flight: the epoch it started in and the
// generation it took for each slot it fills.
type load struct {
	epoch uint64
	gens  map[string]uint64
}

// begin starts a load of the given slots (slotAll when none). A later load
// of the same slot supersedes it; loads of other slots do not.
func (v *view) begin(slots ...string) (load, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.mounted {
		return load{}, fmt.Errorf("%s: %w", v.name, common.ErrViewUnmounted)
	}
	if len(slots) == 0 {
		slots = []string{slotAll}
	}
	if v.gens == nil {
		v.gens = make(map[string]uint64)
	}
	l := load{epoch: v.epoch, gens: make(map[string]uint64, len(slots))}
	for _, slot := range slots {
		v.gens[slot]++
		l.gens[slot] = v.gens[slot]
	}
	return l, nil
}

// current reports whether l still owns slot. Callers hold mu.
func (v *view) current(l load, slot string) bool {
	gen, ok := l.gens[slot]
	return ok && v.mounted && v.epoch == l.epoch && v.gens[slot] == gen
}

// commit runs apply under the write lock if every slot of l is still
// current and reports whether it did.
func (v *view) commit(ctx context.Context, l load, apply func()) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	for slot := range l.gens {
		if !v.current(l, slot) {
			v.log.Debug(ctx, "discarding stale result", "slot", slot, "generation", l.gens[slot])
			return false
		}
	}
	apply()
	return true
}

// commitSlot is commit for one slot of a multi-slot load.
func (v *view) commitSlot(ctx context.Context, l load, slot string, apply func()) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.current(l, slot) {
		v.log.Debug(ctx, "discarding stale result", "slot", slot, "generation", l.gens[slot])
		return false
	}
	apply()
	return true
}

// patch applies a local edit if the view is still mounted.
func (v *view) patch(apply func()) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.mounted {
		apply()
	}
}

// write runs fn once per key among concurrent callers.
func (v *view) write(ctx context.Context, key string, fn func() error) error {
	_, err := writeResult(ctx, v, key, func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}

// writeResult is write for actions whose result the caller needs. Callers
// that joined an in-flight write receive the same result.
func writeResult[T any](ctx context.Context, v *view, key string, fn func() (T, error)) (T, error) {
	res, err, shared := v.writes.Do(key, func() (any, error) {
		return fn()
	})
	if shared {
		v.log.Debug(ctx, "joined in-flight write", "key", key)
	}
	if err != nil {
		v.log.Warn(ctx, "write failed", "key", key, "error", err)
		var zero T
		return zero, err
	}
	out, _ := res.(T)
	return out, nil
}

// refresh reloads after a write. A view unmounted meanwhile is not an error.
func (v *view) refresh(ctx context.Context, reload func(context.Context) error) error {
	if err := reload(ctx); err != nil && !errors.Is(err, common.ErrViewUnmounted) {
		return err
	}
	return nil
}

func (v *view) loadFailed(ctx context.Context, err error) error {
	v.log.Warn(ctx, "load failed", "error", err)
	return fmt.Errorf("%s: %w", v.name, err)
}
