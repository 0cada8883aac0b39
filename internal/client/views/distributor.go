package views

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/farmchainx/internal/client/client"
	"github.com/dmitrijs2005/farmchainx/internal/client/models"
	"github.com/dmitrijs2005/farmchainx/internal/common"
	"github.com/dmitrijs2005/farmchainx/internal/logging"
)

type DistributorAPI interface {
	client.BatchAPI
	client.OrderAPI
}

// DistributorDashboard shows pending and approved batches plus the orders
// routed to the distributor.
type DistributorDashboard struct {
	view
	api         DistributorAPI
	distributor models.ID

	pending  []models.Batch
	approved []models.Batch
	orders   []models.Order
}

func NewDistributorDashboard(api DistributorAPI, user *models.Session, log logging.Logger) *DistributorDashboard {
	d := &DistributorDashboard{api: api}
	if user != nil {
		d.distributor = user.ID
	}
	d.init("distributor-dashboard", log)
	return d
}

const slotOrders = "orders"

// Load fetches batches and orders in parallel and commits each slot on its own.
func (d *DistributorDashboard) Load(ctx context.Context) error {
	l, err := d.begin(slotBatches, slotOrders)
	if err != nil {
		return err
	}

	var pending, approved []models.Batch
	var orders []models.Order

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		pending, err = d.api.PendingBatches(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		approved, err = d.api.ApprovedBatches(gctx, d.distributor)
		return err
	})
	g.Go(func() error {
		var err error
		orders, err = d.api.OrdersByDistributor(gctx, d.distributor)
		return err
	})
	if err := g.Wait(); err != nil {
		return d.loadFailed(ctx, err)
	}

	d.commitSlot(ctx, l, slotBatches, func() {
		d.pending = pending
		d.approved = approved
	})
	d.commitSlot(ctx, l, slotOrders, func() { d.orders = orders })
	return nil
}

func (d *DistributorDashboard) loadBatches(ctx context.Context) error {
	gen, err := d.begin(slotBatches)
	if err != nil {
		return err
	}

	var pending, approved []models.Batch
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		pending, err = d.api.PendingBatches(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		approved, err = d.api.ApprovedBatches(gctx, d.distributor)
		return err
	})
	if err := g.Wait(); err != nil {
		return d.loadFailed(ctx, err)
	}

	d.commit(ctx, gen, func() {
		d.pending = pending
		d.approved = approved
	})
	return nil
}

func (d *DistributorDashboard) loadOrders(ctx context.Context) error {
	gen, err := d.begin(slotOrders)
	if err != nil {
		return err
	}
	orders, err := d.api.OrdersByDistributor(ctx, d.distributor)
	if err != nil {
		return d.loadFailed(ctx, err)
	}
	d.commit(ctx, gen, func() { d.orders = orders })
	return nil
}

func (d *DistributorDashboard) Pending() []models.Batch {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.pending)
}

func (d *DistributorDashboard) Approved() []models.Batch {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.approved)
}

func (d *DistributorDashboard) Orders() []models.Order {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.orders)
}

func closed(status string) bool {
	return status == models.OrderDelivered || status == models.OrderCancelled
}

// LiveOrders are orders neither delivered nor cancelled.
func (d *DistributorDashboard) LiveOrders() []models.Order {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var out []models.Order
	for _, o := range d.orders {
		if !closed(o.Status) {
			out = append(out, o)
		}
	}
	return out
}

func (d *DistributorDashboard) OrderHistory() []models.Order {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var out []models.Order
	for _, o := range d.orders {
		if closed(o.Status) {
			out = append(out, o)
		}
	}
	return out
}

// Profit sums the distributor's share over delivered orders.
func (d *DistributorDashboard) Profit() float64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var sum float64
	for _, o := range d.orders {
		if o.Status == models.OrderDelivered {
			sum += o.DistributorProfit.Float()
		}
	}
	return sum
}

func (d *DistributorDashboard) Approve(ctx context.Context, batchID string) error {
	err := d.write(ctx, "approve:"+batchID, func() error {
		_, err := d.api.ApproveBatch(ctx, batchID, d.distributor)
		return err
	})
	if err != nil {
		return err
	}
	return d.refresh(ctx, d.loadBatches)
}

func (d *DistributorDashboard) Reject(ctx context.Context, batchID, reason string) error {
	err := d.write(ctx, "reject:"+batchID, func() error {
		_, err := d.api.RejectBatch(ctx, batchID, d.distributor, reason)
		return err
	})
	if err != nil {
		return err
	}
	return d.refresh(ctx, d.loadBatches)
}

var orderFlow = []string{
	models.OrderPlaced, models.OrderConfirmed, models.OrderShipped, models.OrderInTransit, models.OrderDelivered,
}

// SetOrderStatus moves an order to status; CANCELLED goes through CancelOrder.
func (d *DistributorDashboard) SetOrderStatus(ctx context.Context, orderID models.ID, status string) error {
	status = strings.ToUpper(strings.TrimSpace(status))
	if !slices.Contains(orderFlow, status) {
		return fmt.Errorf("%w: unknown order status %q", common.ErrorValidation, status)
	}
	err := d.write(ctx, "order-status:"+orderID.String(), func() error {
		_, err := d.api.UpdateOrderStatus(ctx, orderID, status, d.distributor)
		return err
	})
	if err != nil {
		return err
	}
	return d.refresh(ctx, d.loadOrders)
}

func (d *DistributorDashboard) SetExpectedDelivery(ctx context.Context, orderID models.ID, when time.Time) error {
	if when.IsZero() {
		return fmt.Errorf("%w: expected delivery date is required", common.ErrorValidation)
	}
	err := d.write(ctx, "expected-delivery:"+orderID.String(), func() error {
		_, err := d.api.SetExpectedDelivery(ctx, orderID, d.distributor, when.Format("2006-01-02T15:04:05"))
		return err
	})
	if err != nil {
		return err
	}
	return d.refresh(ctx, d.loadOrders)
}

// CancelOrder requires a reason; an empty one aborts without a request.
func (d *DistributorDashboard) CancelOrder(ctx context.Context, orderID models.ID, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return fmt.Errorf("%w: a cancellation reason is required", common.ErrorValidation)
	}
	err := d.write(ctx, "cancel:"+orderID.String(), func() error {
		_, err := d.api.CancelOrder(ctx, orderID, d.distributor, reason)
		return err
	})
	if err != nil {
		return err
	}
	return d.refresh(ctx, d.loadOrders)
}
