package views

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/farmchainx/internal/client/client"
	"github.com/dmitrijs2005/farmchainx/internal/client/models"
	"github.com/dmitrijs2005/farmchainx/internal/common"
	"github.com/dmitrijs2005/farmchainx/internal/logging"
)

type TraceAPI interface {
	client.BatchAPI
	client.CropAPI
}

// Traceability shows the custody history of one batch and the crops in it.
type Traceability struct {
	view
	api TraceAPI

	batchID string
	trace   models.BatchTrace
	crops   []models.Crop
}

func NewTraceability(api TraceAPI, log logging.Logger) *Traceability {
	t := &Traceability{api: api}
	t.init("traceability", log)
	return t
}

// Load fetches batchID's trace. Loading another batch supersedes it.
func (t *Traceability) Load(ctx context.Context, batchID string) error {
	batchID = strings.TrimSpace(batchID)
	if batchID == "" {
		return fmt.Errorf("%w: batch id is required", common.ErrorValidation)
	}
	gen, err := t.begin()
	if err != nil {
		return err
	}

	var trace models.BatchTrace
	var crops []models.Crop

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { trace, err = t.api.BatchTrace(gctx, batchID); return })
	g.Go(func() (err error) { crops, err = t.api.CropsByBatch(gctx, batchID); return })
	if err := g.Wait(); err != nil {
		return t.loadFailed(ctx, err)
	}

	t.commit(ctx, gen, func() {
		t.batchID = batchID
		t.trace = trace
		t.crops = crops
	})
	return nil
}

func (t *Traceability) BatchID() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.batchID
}

func (t *Traceability) Trace() models.BatchTrace {
	t.mu.RLock()
	defer t.mu.RUnlock()
	tr := t.trace
	tr.Traces = slices.Clone(t.trace.Traces)
	return tr
}

func (t *Traceability) Crops() []models.Crop {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.crops)
}
