package views

import (
	"context"
	"slices"
	"strings"

	"github.com/dmitrijs2005/farmchainx/internal/client/client"
	"github.com/dmitrijs2005/farmchainx/internal/client/models"
	"github.com/dmitrijs2005/farmchainx/internal/logging"
)

// StatusAll disables status filtering.
const StatusAll = "ALL"

// BuyerDashboard shows a buyer's order history.
type BuyerDashboard struct {
	view
	api   client.OrderAPI
	buyer models.ID

	orders []models.OrderDetails
}

func NewBuyerDashboard(api client.OrderAPI, user *models.Session, log logging.Logger) *BuyerDashboard {
	d := &BuyerDashboard{api: api}
	if user != nil {
		d.buyer = user.ID
	}
	d.init("buyer-dashboard", log)
	return d
}

func (d *BuyerDashboard) Load(ctx context.Context) error {
	gen, err := d.begin()
	if err != nil {
		return err
	}
	orders, err := d.api.OrdersByConsumer(ctx, d.buyer)
	if err != nil {
		return d.loadFailed(ctx, err)
	}
	d.commit(ctx, gen, func() { d.orders = orders })
	return nil
}

func (d *BuyerDashboard) Orders() []models.OrderDetails {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.orders)
}

// Filter returns orders with status, or all of them for StatusAll or "".
func (d *BuyerDashboard) Filter(status string) []models.OrderDetails {
	status = strings.ToUpper(strings.TrimSpace(status))
	d.mu.RLock()
	defer d.mu.RUnlock()
	var out []models.OrderDetails
	for _, o := range d.orders {
		if status == "" || status == StatusAll || o.Status == status {
			out = append(out, o)
		}
	}
	return out
}

// TotalSpent sums order totals, excluding cancelled orders.
func (d *BuyerDashboard) TotalSpent() float64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var sum float64
	for _, o := range d.orders {
		if o.Status != models.OrderCancelled {
			sum += o.TotalAmount.Float()
		}
	}
	return sum
}

func (d *BuyerDashboard) CountByStatus() map[string]int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := map[string]int{}
	for _, o := range d.orders {
		out[o.Status]++
	}
	return out
}
