package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/farmchainx/internal/client/models"
)

// PlaceOrder sends the order as query parameters, which is what the
// backend's /orders/place binds.
func (c *HTTPClient) PlaceOrder(ctx context.Context, req models.PlaceOrderRequest) (models.Order, error) {
	q := url.Values{
		"listingId":       {req.ListingID.String()},
		"consumerId":      {req.ConsumerID.String()},
		"quantity":        {strconv.FormatFloat(req.Quantity, 'f', -1, 64)},
		"deliveryAddress": {req.DeliveryAddress},
		"contactNumber":   {req.ContactNumber},
	}
	return call[models.Order](ctx, c, http.MethodPost, "/orders/place", q, nil)
}

func (c *HTTPClient) UpdateOrderStatus(ctx context.Context, orderID models.ID, status string, distributorID models.ID) (models.Order, error) {
	q := url.Values{"status": {status}, "distributorId": {distributorID.String()}}
	return call[models.Order](ctx, c, http.MethodPut, "/orders/"+seg(orderID)+"/status", q, nil)
}

// SetExpectedDelivery takes when as the backend's local date-time text
// (2006-01-02T15:04:05).
func (c *HTTPClient) SetExpectedDelivery(ctx context.Context, orderID models.ID, distributorID models.ID, when string) (models.Order, error) {
	q := url.Values{"distributorId": {distributorID.String()}, "expectedDelivery": {when}}
	return call[models.Order](ctx, c, http.MethodPut, "/orders/"+seg(orderID)+"/expected-delivery", q, nil)
}

func (c *HTTPClient) CancelOrder(ctx context.Context, orderID models.ID, distributorID models.ID, reason string) (models.Order, error) {
	q := url.Values{"distributorId": {distributorID.String()}, "reason": {reason}}
	return call[models.Order](ctx, c, http.MethodPut, "/orders/"+seg(orderID)+"/cancel", q, nil)
}

func (c *HTTPClient) OrdersByConsumer(ctx context.Context, consumerID models.ID) ([]models.OrderDetails, error) {
	return list[models.OrderDetails](ctx, c, "/orders/consumer/"+seg(consumerID)+"/full", nil)
}

func (c *HTTPClient) OrdersByDistributor(ctx context.Context, distributorID models.ID) ([]models.Order, error) {
	return list[models.Order](ctx, c, "/orders/distributor/"+seg(distributorID), nil)
}
