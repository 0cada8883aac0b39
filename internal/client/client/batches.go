package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/farmchainx/internal/client/models"
)

func (c *HTTPClient) CreateBatch(ctx context.Context, batch models.Batch) (models.Batch, error) {
	return call[models.Batch](ctx, c, http.MethodPost, "/batches", nil, batch)
}

func (c *HTTPClient) GetBatch(ctx context.Context, batchID string) (models.Batch, error) {
	return getJSON[models.Batch](ctx, c, "/batches/"+seg(batchID), nil)
}

func (c *HTTPClient) BatchesByFarmer(ctx context.Context, farmerID models.ID) ([]models.Batch, error) {
	return list[models.Batch](ctx, c, "/batches/farmer/"+seg(farmerID), nil)
}

func (c *HTTPClient) PendingBatches(ctx context.Context) ([]models.Batch, error) {
	return list[models.Batch](ctx, c, "/batches/pending", nil)
}

func (c *HTTPClient) ApprovedBatches(ctx context.Context, distributorID models.ID) ([]models.Batch, error) {
	return list[models.Batch](ctx, c, "/batches/approved/"+seg(distributorID), nil)
}

func (c *HTTPClient) ApproveBatch(ctx context.Context, batchID string, distributorID models.ID) (models.Batch, error) {
	path := "/batches/distributor/approve/" + seg(batchID) + "/" + seg(distributorID)
	return call[models.Batch](ctx, c, http.MethodPut, path, nil, nil)
}

func (c *HTTPClient) RejectBatch(ctx context.Context, batchID string, distributorID models.ID, reason string) (models.Batch, error) {
	path := "/batches/distributor/reject/" + seg(batchID) + "/" + seg(distributorID)
	return call[models.Batch](ctx, c, http.MethodPut, path, nil, map[string]string{"reason": reason})
}

func (c *HTTPClient) UpdateBatchStatus(ctx context.Context, batchID, status string, userID models.ID) (models.Batch, error) {
	body := map[string]string{"status": status, "userId": userID.String()}
	return call[models.Batch](ctx, c, http.MethodPut, "/batches/"+seg(batchID)+"/status", nil, body)
}

func (c *HTTPClient) BatchTrace(ctx context.Context, batchID string) (models.BatchTrace, error) {
	tr, err := getJSON[models.BatchTrace](ctx, c, "/batches/"+seg(batchID)+"/trace", nil)
	if err != nil {
		return tr, err
	}
	if tr.Traces == nil {
		tr.Traces = []models.TraceEvent{}
	}
	return tr, nil
}
