package cli

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/farmchainx/internal/client/models"
	"github.com/dmitrijs2005/farmchainx/internal/client/views"
)

func (a *App) distributorView(ctx context.Context) (*views.DistributorDashboard, error) {
	v := views.NewDistributorDashboard(a.api, a.store.Current(), a.log)
	v.Mount()
	if err := v.Load(ctx); err != nil {
		v.Unmount()
		return nil, err
	}
	return v, nil
}

func (a *App) renderDistributor(v *views.DistributorDashboard) {
	a.section("Distributor dashboard")
	a.ok("Profit from delivered orders: %s", views.FormatPrice(v.Profit()))
	a.section("Pending batches")
	a.table(batchHeaders, batchRows(v.Pending()))
	a.section("Approved batches")
	a.table(batchHeaders, batchRows(v.Approved()))
	a.section("Live orders")
	a.table(orderHeaders, orderRows(v.LiveOrders()))
	a.section("Order history")
	a.table(orderHeaders, orderRows(v.OrderHistory()))
}

func (a *App) batches(ctx context.Context, _ []string) error {
	v, err := a.distributorView(ctx)
	if err != nil {
		return err
	}
	defer v.Unmount()
	a.section("Pending batches")
	a.table(batchHeaders, batchRows(v.Pending()))
	a.section("Approved batches")
	a.table(batchHeaders, batchRows(v.Approved()))
	return nil
}

func (a *App) approve(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("approve <batchId>")
	}
	v, err := a.distributorView(ctx)
	if err != nil {
		return err
	}
	defer v.Unmount()
	if err := v.Approve(ctx, args[0]); err != nil {
		return err
	}
	a.ok("Batch %s approved", args[0])
	return nil
}

func (a *App) reject(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return usageError("reject <batchId> <reason>")
	}
	v, err := a.distributorView(ctx)
	if err != nil {
		return err
	}
	defer v.Unmount()
	if err := v.Reject(ctx, args[0], strings.Join(args[1:], " ")); err != nil {
		return err
	}
	a.ok("Batch %s rejected", args[0])
	return nil
}

func (a *App) ship(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usageError("ship <orderId> <status>")
	}
	v, err := a.distributorView(ctx)
	if err != nil {
		return err
	}
	defer v.Unmount()
	if err := v.SetOrderStatus(ctx, models.ID(args[0]), args[1]); err != nil {
		return err
	}
	a.ok("Order %s is now %s", args[0], strings.ToUpper(args[1]))
	return nil
}

func (a *App) eta(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usageError("eta <orderId> <YYYY-MM-DD>")
	}
	when, err := time.ParseInLocation(time.DateOnly, args[1], time.Local)
	if err != nil {
		return usageError("eta <orderId> <YYYY-MM-DD>")
	}
	v, err := a.distributorView(ctx)
	if err != nil {
		return err
	}
	defer v.Unmount()
	if err := v.SetExpectedDelivery(ctx, models.ID(args[0]), when); err != nil {
		return err
	}
	a.ok("Order %s expected on %s", args[0], views.FormatDate(when))
	return nil
}

func (a *App) cancel(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return usageError("cancel <orderId> <reason>")
	}
	v, err := a.distributorView(ctx)
	if err != nil {
		return err
	}
	defer v.Unmount()
	if err := v.CancelOrder(ctx, models.ID(args[0]), strings.Join(args[1:], " ")); err != nil {
		return err
	}
	a.ok("Order %s cancelled", args[0])
	return nil
}
