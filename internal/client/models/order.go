package models

// Order statuses.
const (
	OrderPlaced    = "ORDER_PLACED"
	OrderConfirmed = "CONFIRMED"
	OrderShipped   = "SHIPPED"
	OrderInTransit = "IN_TRANSIT"
	OrderDelivered = "DELIVERED"
	OrderCancelled = "CANCELLED"
)

// PlaceOrderRequest carries the query parameters of POST /orders/place.
type PlaceOrderRequest struct {
	ListingID       ID
	ConsumerID      ID
	Quantity        float64
	DeliveryAddress string
	ContactNumber   string
}

type Order struct {
	OrderID           ID        `json:"orderId"`
	ListingID         ID        `json:"listingId,omitempty"`
	BatchID           string    `json:"batchId,omitempty"`
	ConsumerID        ID        `json:"consumerId,omitempty"`
	DistributorID     ID        `json:"distributorId,omitempty"`
	Quantity          Number    `json:"quantity"`
	PricePerKg        Number    `json:"pricePerKg"`
	TotalAmount       Number    `json:"totalAmount"`
	FarmerProfit      Number    `json:"farmerProfit,omitempty"`
	DistributorProfit Number    `json:"distributorProfit,omitempty"`
	ExpectedDelivery  Timestamp `json:"expectedDelivery"`
	Status            string    `json:"status"`
	DeliveryAddress   string    `json:"deliveryAddress,omitempty"`
	ContactNumber     string    `json:"contactNumber,omitempty"`
	CreatedAt         Timestamp `json:"createdAt"`
	UpdatedAt         Timestamp `json:"updatedAt"`
}

// OrderDetails is the joined order view returned by the "full" endpoints.
type OrderDetails struct {
	OrderID            ID        `json:"orderId"`
	OrderCode          string    `json:"orderCode,omitempty"`
	Quantity           Number    `json:"quantity"`
	PricePerKg         Number    `json:"pricePerKg"`
	TotalAmount        Number    `json:"totalAmount"`
	FarmerProfit       Number    `json:"farmerProfit,omitempty"`
	DistributorProfit  Number    `json:"distributorProfit,omitempty"`
	Status             string    `json:"status"`
	CancelReason       string    `json:"cancelReason,omitempty"`
	CreatedAt          Timestamp `json:"createdAt"`
	ExpectedDelivery   Timestamp `json:"expectedDelivery"`
	CropName           string    `json:"cropName,omitempty"`
	CropType           string    `json:"cropType,omitempty"`
	FarmerName         string    `json:"farmerName,omitempty"`
	FarmerContact      string    `json:"farmerContact,omitempty"`
	DistributorName    string    `json:"distributorName,omitempty"`
	DistributorContact string    `json:"distributorContact,omitempty"`
}
