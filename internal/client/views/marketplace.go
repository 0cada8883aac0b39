package views

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/farmchainx/internal/client/client"
	"github.com/dmitrijs2005/farmchainx/internal/client/models"
	"github.com/dmitrijs2005/farmchainx/internal/common"
	"github.com/dmitrijs2005/farmchainx/internal/logging"
)

type MarketplaceAPI interface {
	client.ListingAPI
	client.OrderAPI
}

// Marketplace lists active listings and places orders against them.
type Marketplace struct {
	view
	api   MarketplaceAPI
	buyer models.ID

	listings []models.Listing
}

func NewMarketplace(api MarketplaceAPI, user *models.Session, log logging.Logger) *Marketplace {
	m := &Marketplace{api: api}
	if user != nil {
		m.buyer = user.ID
	}
	m.init("marketplace", log)
	return m
}

func (m *Marketplace) Load(ctx context.Context) error {
	gen, err := m.begin()
	if err != nil {
		return err
	}
	listings, err := m.api.MarketplaceListings(ctx)
	if err != nil {
		return m.loadFailed(ctx, err)
	}
	m.commit(ctx, gen, func() { m.listings = listings })
	return nil
}

func (m *Marketplace) Listings() []models.Listing {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.listings)
}

// Search matches term against crop name, type and location, ignoring case.
func (m *Marketplace) Search(term string) []models.Listing {
	term = strings.ToLower(strings.TrimSpace(term))
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []models.Listing
	for _, l := range m.listings {
		if term == "" ||
			strings.Contains(strings.ToLower(l.CropName), term) ||
			strings.Contains(strings.ToLower(l.CropType), term) ||
			strings.Contains(strings.ToLower(l.Location), term) {
			out = append(out, l)
		}
	}
	return out
}

// OrderInput is what the buyer fills in to place an order.
type OrderInput struct {
	ListingID       models.ID
	Quantity        float64
	DeliveryAddress string
	ContactNumber   string
}

// PlaceOrder orders from a loaded listing and re-fetches the listings, whose
// remaining quantity the backend adjusts.
func (m *Marketplace) PlaceOrder(ctx context.Context, in OrderInput) (models.Order, error) {
	listing, ok := m.listing(in.ListingID)
	if !ok {
		return models.Order{}, fmt.Errorf("listing %s: %w", in.ListingID, common.ErrorNotFound)
	}
	switch {
	case in.Quantity <= 0:
		return models.Order{}, fmt.Errorf("%w: quantity must be positive", common.ErrorValidation)
	case in.Quantity > listing.Quantity.Float():
		return models.Order{}, fmt.Errorf("%w: only %g available", common.ErrorValidation, listing.Quantity.Float())
	case strings.TrimSpace(in.DeliveryAddress) == "":
		return models.Order{}, fmt.Errorf("%w: delivery address is required", common.ErrorValidation)
	case strings.TrimSpace(in.ContactNumber) == "":
		return models.Order{}, fmt.Errorf("%w: contact number is required", common.ErrorValidation)
	}

	req := models.PlaceOrderRequest{
		ListingID:       in.ListingID,
		ConsumerID:      m.buyer,
		Quantity:        in.Quantity,
		DeliveryAddress: strings.TrimSpace(in.DeliveryAddress),
		ContactNumber:   strings.TrimSpace(in.ContactNumber),
	}

	order, err := writeResult(ctx, &m.view, "order:"+in.ListingID.String(), func() (models.Order, error) {
		return m.api.PlaceOrder(ctx, req)
	})
	if err != nil {
		return models.Order{}, err
	}
	return order, m.refresh(ctx, m.Load)
}

func (m *Marketplace) listing(id models.ID) (models.Listing, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	i := slices.IndexFunc(m.listings, func(l models.Listing) bool { return l.ListingID == id })
	if i < 0 {
		return models.Listing{}, false
	}
	return m.listings[i], true
}
