package models

const (
	ListingActive  = "ACTIVE"
	ListingPending = "PENDING"
)

// Listing is a marketplace entry; the marketplace endpoint joins it with
// its crop, so crop fields are present on reads.
type Listing struct {
	ListingID    ID     `json:"listingId,omitempty"`
	CropID       ID     `json:"cropId,omitempty"`
	FarmerID     ID     `json:"farmerId,omitempty"`
	BatchID      string `json:"batchId,omitempty"`
	Status       string `json:"status,omitempty"`
	CropName     string `json:"cropName,omitempty"`
	CropType     string `json:"cropType,omitempty"`
	Location     string `json:"location,omitempty"`
	QualityGrade string `json:"qualityGrade,omitempty"`
	Price        Number `json:"price"`
	Quantity     Number `json:"quantity"`
	TraceURL     string `json:"traceUrl,omitempty"`
}
