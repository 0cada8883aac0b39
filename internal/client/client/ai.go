package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/farmchainx/internal/client/models"
)

// CropInfo asks the backend's crop assistant about cropName. A fallback
// answer (success false) is returned as is, not as an error.
func (c *HTTPClient) CropInfo(ctx context.Context, cropName string) (models.CropInfo, error) {
	body := map[string]string{"cropName": cropName}
	return call[models.CropInfo](ctx, c, http.MethodPost, "/ai/crop-info", nil, body)
}
