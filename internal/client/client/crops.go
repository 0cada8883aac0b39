package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/farmchainx/internal/client/models"
)

func (c *HTTPClient) CropsByFarmer(ctx context.Context, farmerID models.ID) ([]models.Crop, error) {
	return list[models.Crop](ctx, c, "/crops/farmer/"+seg(farmerID), nil)
}

func (c *HTTPClient) CropsByBatch(ctx context.Context, batchID string) ([]models.Crop, error) {
	return list[models.Crop](ctx, c, "/crops/by-batch", url.Values{"batchId": {batchID}})
}

func (c *HTTPClient) AddCrop(ctx context.Context, crop models.Crop) (models.Crop, error) {
	return call[models.Crop](ctx, c, http.MethodPost, "/crops/add", nil, crop)
}

func (c *HTTPClient) UpdateCrop(ctx context.Context, id models.ID, crop models.Crop) (models.Crop, error) {
	return call[models.Crop](ctx, c, http.MethodPut, "/crops/update/"+seg(id), nil, crop)
}

func (c *HTTPClient) DeleteCrop(ctx context.Context, id models.ID) error {
	_, err := c.do(ctx, http.MethodDelete, "/crops/delete/"+seg(id), nil, nil)
	return err
}

func (c *HTTPClient) MarkHarvested(ctx context.Context, id models.ID, req models.HarvestRequest) (models.Crop, error) {
	return call[models.Crop](ctx, c, http.MethodPut, "/crops/harvest/"+seg(id), nil, req)
}
