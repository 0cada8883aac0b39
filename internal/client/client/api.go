package client

import (
	"context"

	"github.com/dmitrijs2005/farmchainx/internal/client/models"
)

type AuthAPI interface {
	Register(ctx context.Context, form models.RegisterForm) (string, error)
	Login(ctx context.Context, email, password string) (LoginReply, error)
	AdminLogin(ctx context.Context, email, password string) (LoginReply, error)
	AdminRegister(ctx context.Context, form models.RegisterForm) (*models.Session, error)
	CheckEmail(ctx context.Context, email string) (bool, error)
}

type CropAPI interface {
	CropsByFarmer(ctx context.Context, farmerID models.ID) ([]models.Crop, error)
	CropsByBatch(ctx context.Context, batchID string) ([]models.Crop, error)
	AddCrop(ctx context.Context, crop models.Crop) (models.Crop, error)
	UpdateCrop(ctx context.Context, id models.ID, crop models.Crop) (models.Crop, error)
	DeleteCrop(ctx context.Context, id models.ID) error
	MarkHarvested(ctx context.Context, id models.ID, req models.HarvestRequest) (models.Crop, error)
}

type BatchAPI interface {
	CreateBatch(ctx context.Context, batch models.Batch) (models.Batch, error)
	GetBatch(ctx context.Context, batchID string) (models.Batch, error)
	BatchesByFarmer(ctx context.Context, farmerID models.ID) ([]models.Batch, error)
	PendingBatches(ctx context.Context) ([]models.Batch, error)
	ApprovedBatches(ctx context.Context, distributorID models.ID) ([]models.Batch, error)
	ApproveBatch(ctx context.Context, batchID string, distributorID models.ID) (models.Batch, error)
	RejectBatch(ctx context.Context, batchID string, distributorID models.ID, reason string) (models.Batch, error)
	UpdateBatchStatus(ctx context.Context, batchID, status string, userID models.ID) (models.Batch, error)
	BatchTrace(ctx context.Context, batchID string) (models.BatchTrace, error)
}

type ListingAPI interface {
	MarketplaceListings(ctx context.Context) ([]models.Listing, error)
	CreateListing(ctx context.Context, listing models.Listing) (models.Listing, error)
	ApproveListing(ctx context.Context, listingID models.ID) (models.Listing, error)
}

type OrderAPI interface {
	PlaceOrder(ctx context.Context, req models.PlaceOrderRequest) (models.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID models.ID, status string, distributorID models.ID) (models.Order, error)
	SetExpectedDelivery(ctx context.Context, orderID models.ID, distributorID models.ID, when string) (models.Order, error)
	CancelOrder(ctx context.Context, orderID models.ID, distributorID models.ID, reason string) (models.Order, error)
	OrdersByConsumer(ctx context.Context, consumerID models.ID) ([]models.OrderDetails, error)
	OrdersByDistributor(ctx context.Context, distributorID models.ID) ([]models.Order, error)
}

type SupportAPI interface {
	CreateTicket(ctx context.Context, ticket models.Ticket) (models.Ticket, error)
	UserTickets(ctx context.Context, userID models.ID) ([]models.Ticket, error)
	AllTickets(ctx context.Context) ([]models.Ticket, error)
	OpenTickets(ctx context.Context) ([]models.Ticket, error)
	GetTicket(ctx context.Context, id models.ID) (models.Ticket, error)
	UpdateTicketStatus(ctx context.Context, id models.ID, status string) (models.Ticket, error)
	AddTicketMessage(ctx context.Context, id models.ID, msg models.TicketMessage) (models.TicketMessage, error)
	TicketMessages(ctx context.Context, id models.ID) ([]models.TicketMessage, error)
	Notifications(ctx context.Context, userID models.ID, role models.Role) ([]models.Notification, error)
	MarkNotificationRead(ctx context.Context, id models.ID) error
	MarkAllNotificationsRead(ctx context.Context, userID models.ID, role models.Role) error
	SupportStats(ctx context.Context) (models.SupportStats, error)
}

// Admin user listings.
const (
	UsersFarmers      = "farmers"
	UsersDistributors = "distributors"
	UsersConsumers    = "consumers"
)

type AdminAPI interface {
	AdminStats(ctx context.Context) (models.AdminStats, error)
	AdminUsers(ctx context.Context, kind string) ([]models.UserSummary, error)
	AdminCrops(ctx context.Context) ([]models.Crop, error)
}

type AIAPI interface {
	CropInfo(ctx context.Context, cropName string) (models.CropInfo, error)
}

// API is the whole backend surface.
type API interface {
	AuthAPI
	CropAPI
	BatchAPI
	ListingAPI
	OrderAPI
	SupportAPI
	AdminAPI
	AIAPI
}
