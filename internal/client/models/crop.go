package models

// Crop statuses reported by the backend.
const (
	CropPlanted   = "PLANTED"
	CropHarvested = "HARVESTED"
)

type Crop struct {
	CropID       ID        `json:"cropId,omitempty"`
	FarmerID     ID        `json:"farmerId,omitempty"`
	CropName     string    `json:"cropName"`
	CropType     string    `json:"cropType,omitempty"`
	Price        Number    `json:"price"`
	Quantity     Number    `json:"quantity"`
	Description  string    `json:"description,omitempty"`
	Location     string    `json:"location,omitempty"`
	QualityGrade string    `json:"qualityGrade,omitempty"`
	Status       string    `json:"status,omitempty"`
	BatchID      string    `json:"batchId,omitempty"`
	QRCodeURL    string    `json:"qrCodeUrl,omitempty"`
	ActualYield  Number    `json:"actualYield,omitempty"`
	HarvestDate  Timestamp `json:"actualHarvestDate"`
	CreatedAt    Timestamp `json:"createdAt"`
}

// HarvestRequest is the body of PUT /crops/harvest/{id}.
type HarvestRequest struct {
	ActualYield float64 `json:"actualYield"`
	HarvestDate string  `json:"actualHarvestDate,omitempty"`
}
