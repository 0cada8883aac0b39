package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/farmchainx/internal/client/models"
)

// MarketplaceListings returns the active listings joined with their crops.
func (c *HTTPClient) MarketplaceListings(ctx context.Context) ([]models.Listing, error) {
	return list[models.Listing](ctx, c, "/listings/", nil)
}

func (c *HTTPClient) CreateListing(ctx context.Context, listing models.Listing) (models.Listing, error) {
	return call[models.Listing](ctx, c, http.MethodPost, "/listings/create", nil, listing)
}

func (c *HTTPClient) ApproveListing(ctx context.Context, listingID models.ID) (models.Listing, error) {
	return call[models.Listing](ctx, c, http.MethodPut, "/listings/approve/"+seg(listingID), nil, nil)
}
