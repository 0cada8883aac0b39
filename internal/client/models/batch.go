package models

// Batch statuses.
const (
	BatchPlanted    = "PLANTED"
	BatchHarvested  = "HARVESTED"
	BatchInProgress = "IN_PROGRESS"
	BatchApproved   = "APPROVED"
	BatchRejected   = "REJECTED"
)

type Batch struct {
	BatchID         string    `json:"batchId"`
	FarmerID        ID        `json:"farmerId,omitempty"`
	DistributorID   ID        `json:"distributorId,omitempty"`
	CropType        string    `json:"cropType,omitempty"`
	TotalQuantity   Number    `json:"totalQuantity,omitempty"`
	AvgQualityScore Number    `json:"avgQualityScore,omitempty"`
	HarvestDate     Timestamp `json:"harvestDate"`
	Status          string    `json:"status,omitempty"`
	RejectReason    string    `json:"rejectReason,omitempty"`
	QRCodeURL       string    `json:"qrCodeUrl,omitempty"`
	Location        string    `json:"location,omitempty"`
	CreatedAt       Timestamp `json:"createdAt"`
	UpdatedAt       Timestamp `json:"updatedAt"`
}

// TraceEvent is one step of a batch's custody history.
type TraceEvent struct {
	ID        ID        `json:"id,omitempty"`
	BatchID   string    `json:"batchId,omitempty"`
	Action    string    `json:"action,omitempty"`
	ActorID   ID        `json:"actorId,omitempty"`
	ActorRole string    `json:"actorRole,omitempty"`
	Details   string    `json:"details,omitempty"`
	Timestamp Timestamp `json:"timestamp"`
}

// BatchTrace is the GET /batches/{id}/trace response.
type BatchTrace struct {
	FarmerID      ID           `json:"farmerId,omitempty"`
	CropType      string       `json:"cropType,omitempty"`
	DistributorID ID           `json:"distributorId,omitempty"`
	Traces        []TraceEvent `json:"traces"`
}
