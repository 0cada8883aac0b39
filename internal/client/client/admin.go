package client

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/farmchainx/internal/client/models"
)

func (c *HTTPClient) AdminStats(ctx context.Context) (models.AdminStats, error) {
	return getJSON[models.AdminStats](ctx, c, "/admin/stats", nil)
}

// AdminUsers lists accounts of one kind: UsersFarmers, UsersDistributors or
// UsersConsumers.
func (c *HTTPClient) AdminUsers(ctx context.Context, kind string) ([]models.UserSummary, error) {
	switch kind {
	case UsersFarmers, UsersDistributors, UsersConsumers:
	default:
		return nil, fmt.Errorf("unknown user kind %q", kind)
	}
	return list[models.UserSummary](ctx, c, "/admin/"+kind, nil)
}

func (c *HTTPClient) AdminCrops(ctx context.Context) ([]models.Crop, error) {
	return list[models.Crop](ctx, c, "/admin/crops", nil)
}
