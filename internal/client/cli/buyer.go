package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/farmchainx/internal/client/models"
	"github.com/dmitrijs2005/farmchainx/internal/client/views"
)

func (a *App) buyerView(ctx context.Context) (*views.BuyerDashboard, error) {
	v := views.NewBuyerDashboard(a.api, a.store.Current(), a.log)
	v.Mount()
	if err := v.Load(ctx); err != nil {
		v.Unmount()
		return nil, err
	}
	return v, nil
}

func (a *App) renderBuyer(v *views.BuyerDashboard, status string) {
	a.section("My orders")
	a.counts("Orders", v.CountByStatus())
	a.ok("Total spent: %s", views.FormatPrice(v.TotalSpent()))
	a.table(orderDetailHeaders, orderDetailRows(v.Filter(status)))
}

// orders shows the caller's orders: the consumer view for buyers and the
// distributor's live orders and history otherwise.
func (a *App) orders(ctx context.Context, args []string) error {
	if s := a.store.Current(); s != nil && s.Role == models.RoleDistributor {
		v, err := a.distributorView(ctx)
		if err != nil {
			return err
		}
		defer v.Unmount()
		a.section("Live orders")
		a.table(orderHeaders, orderRows(v.LiveOrders()))
		a.section("Order history")
		a.table(orderHeaders, orderRows(v.OrderHistory()))
		return nil
	}

	v, err := a.buyerView(ctx)
	if err != nil {
		return err
	}
	defer v.Unmount()
	status := views.StatusAll
	if len(args) > 0 {
		status = args[0]
	}
	a.renderBuyer(v, status)
	return nil
}

func (a *App) marketView(ctx context.Context) (*views.Marketplace, error) {
	v := views.NewMarketplace(a.api, a.store.Current(), a.log)
	v.Mount()
	if err := v.Load(ctx); err != nil {
		v.Unmount()
		return nil, err
	}
	return v, nil
}

func (a *App) market(ctx context.Context, args []string) error {
	v, err := a.marketView(ctx)
	if err != nil {
		return err
	}
	defer v.Unmount()

	listings := v.Search(strings.Join(args, " "))
	rows := make([][]string, 0, len(listings))
	for _, l := range listings {
		rows = append(rows, []string{
			l.ListingID.String(), l.CropName, l.CropType, l.Location,
			qty(l.Quantity), views.FormatPrice(l.Price.Float()), l.QualityGrade, l.BatchID,
		})
	}
	a.section("Marketplace")
	a.table([]string{"Listing", "Crop", "Type", "Location", "Qty", "Price/kg", "Grade", "Batch"}, rows)
	return nil
}

func (a *App) order(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usageError("order <listingId> <quantity>")
	}
	q, err := parseAmount(args[1], "quantity")
	if err != nil {
		return err
	}
	address, err := getSimpleText(a.reader, "Delivery address", a.out)
	if err != nil {
		return err
	}
	contact, err := getSimpleText(a.reader, "Contact number", a.out)
	if err != nil {
		return err
	}

	v, err := a.marketView(ctx)
	if err != nil {
		return err
	}
	defer v.Unmount()
	o, err := v.PlaceOrder(ctx, views.OrderInput{
		ListingID:       models.ID(args[0]),
		Quantity:        q,
		DeliveryAddress: address,
		ContactNumber:   contact,
	})
	if err != nil {
		return err
	}
	a.ok("Order %s placed: %s", o.OrderID, views.FormatPrice(o.TotalAmount.Float()))
	return nil
}
