package views

import (
	"context"
	"strings"
	"sync"

	"github.com/dmitrijs2005/farmchainx/internal/client/client"
	"github.com/dmitrijs2005/farmchainx/internal/client/models"
)

// fakeAPI implements client.API. Methods not overridden here panic through
// the nil embedded interface, which flags unexpected calls.
type fakeAPI struct {
	client.API

	mu    sync.Mutex
	calls map[string]int

	crops         []models.Crop
	batches       []models.Batch
	pending       []models.Batch
	approved      []models.Batch
	orders        []models.Order
	consumerOrder []models.OrderDetails
	listings      []models.Listing
	tickets       []models.Ticket
	messages      []models.TicketMessage
	notifications []models.Notification
	users         map[string][]models.UserSummary
	trace         models.BatchTrace
	cropInfo      map[string]models.CropInfo

	// gate, when set, is called at the start of every call.
	gate func(method string)
	err  error
}

func (f *fakeAPI) hit(method string) error {
	if f.gate != nil {
		f.gate(method)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[method]++
	return f.err
}

func (f *fakeAPI) count(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

func (f *fakeAPI) CropsByFarmer(ctx context.Context, id models.ID) ([]models.Crop, error) {
	if err := f.hit("CropsByFarmer"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Crop(nil), f.crops...), nil
}

func (f *fakeAPI) CropsByBatch(ctx context.Context, batchID string) ([]models.Crop, error) {
	if err := f.hit("CropsByBatch"); err != nil {
		return nil, err
	}
	var out []models.Crop
	for _, c := range f.crops {
		if c.BatchID == batchID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeAPI) AddCrop(ctx context.Context, c models.Crop) (models.Crop, error) {
	if err := f.hit("AddCrop"); err != nil {
		return models.Crop{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	c.CropID = models.ID("new")
	f.crops = append(f.crops, c)
	return c, nil
}

func (f *fakeAPI) DeleteCrop(ctx context.Context, id models.ID) error {
	return f.hit("DeleteCrop")
}

func (f *fakeAPI) MarkHarvested(ctx context.Context, id models.ID, req models.HarvestRequest) (models.Crop, error) {
	if err := f.hit("MarkHarvested"); err != nil {
		return models.Crop{}, err
	}
	return models.Crop{CropID: id, CropName: "harvested", Status: models.CropHarvested, ActualYield: models.Number(req.ActualYield)}, nil
}

func (f *fakeAPI) CreateBatch(ctx context.Context, b models.Batch) (models.Batch, error) {
	if err := f.hit("CreateBatch"); err != nil {
		return models.Batch{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.batches = append(f.batches, b)
	return b, nil
}

func (f *fakeAPI) BatchesByFarmer(ctx context.Context, id models.ID) ([]models.Batch, error) {
	if err := f.hit("BatchesByFarmer"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Batch(nil), f.batches...), nil
}

func (f *fakeAPI) UpdateBatchStatus(ctx context.Context, batchID, status string, userID models.ID) (models.Batch, error) {
	return models.Batch{BatchID: batchID, Status: status}, f.hit("UpdateBatchStatus")
}

func (f *fakeAPI) PendingBatches(ctx context.Context) ([]models.Batch, error) {
	if err := f.hit("PendingBatches"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Batch(nil), f.pending...), nil
}

func (f *fakeAPI) ApprovedBatches(ctx context.Context, id models.ID) ([]models.Batch, error) {
	if err := f.hit("ApprovedBatches"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Batch(nil), f.approved...), nil
}

func (f *fakeAPI) ApproveBatch(ctx context.Context, batchID string, id models.ID) (models.Batch, error) {
	if err := f.hit("ApproveBatch"); err != nil {
		return models.Batch{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, b := range f.pending {
		if b.BatchID == batchID {
			b.Status = models.BatchApproved
			f.approved = append(f.approved, b)
			f.pending = append(f.pending[:i], f.pending[i+1:]...)
			return b, nil
		}
	}
	return models.Batch{}, client.ErrNotFound
}

func (f *fakeAPI) RejectBatch(ctx context.Context, batchID string, id models.ID, reason string) (models.Batch, error) {
	return models.Batch{}, f.hit("RejectBatch")
}

func (f *fakeAPI) BatchTrace(ctx context.Context, batchID string) (models.BatchTrace, error) {
	return f.trace, f.hit("BatchTrace")
}

func (f *fakeAPI) MarketplaceListings(ctx context.Context) ([]models.Listing, error) {
	if err := f.hit("MarketplaceListings"); err != nil {
		return nil, err
	}
	return append([]models.Listing(nil), f.listings...), nil
}

func (f *fakeAPI) CreateListing(ctx context.Context, l models.Listing) (models.Listing, error) {
	l.ListingID = "L-new"
	return l, f.hit("CreateListing")
}

func (f *fakeAPI) PlaceOrder(ctx context.Context, req models.PlaceOrderRequest) (models.Order, error) {
	if err := f.hit("PlaceOrder"); err != nil {
		return models.Order{}, err
	}
	return models.Order{OrderID: "O-new", ListingID: req.ListingID, ConsumerID: req.ConsumerID, Status: models.OrderPlaced}, nil
}

func (f *fakeAPI) UpdateOrderStatus(ctx context.Context, id models.ID, status string, d models.ID) (models.Order, error) {
	return models.Order{}, f.hit("UpdateOrderStatus")
}

func (f *fakeAPI) SetExpectedDelivery(ctx context.Context, id models.ID, d models.ID, when string) (models.Order, error) {
	return models.Order{}, f.hit("SetExpectedDelivery")
}

func (f *fakeAPI) CancelOrder(ctx context.Context, id models.ID, d models.ID, reason string) (models.Order, error) {
	return models.Order{}, f.hit("CancelOrder")
}

func (f *fakeAPI) OrdersByConsumer(ctx context.Context, id models.ID) ([]models.OrderDetails, error) {
	return f.consumerOrder, f.hit("OrdersByConsumer")
}

func (f *fakeAPI) OrdersByDistributor(ctx context.Context, id models.ID) ([]models.Order, error) {
	if err := f.hit("OrdersByDistributor"); err != nil {
		return nil, err
	}
	return append([]models.Order(nil), f.orders...), nil
}

func (f *fakeAPI) CreateTicket(ctx context.Context, t models.Ticket) (models.Ticket, error) {
	if err := f.hit("CreateTicket"); err != nil {
		return models.Ticket{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	t.ID = "T-new"
	t.Status = models.TicketOpen
	f.tickets = append(f.tickets, t)
	return t, nil
}

func (f *fakeAPI) UserTickets(ctx context.Context, id models.ID) ([]models.Ticket, error) {
	if err := f.hit("UserTickets"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Ticket(nil), f.tickets...), nil
}

func (f *fakeAPI) AllTickets(ctx context.Context) ([]models.Ticket, error) {
	return f.UserTickets(ctx, "")
}

func (f *fakeAPI) UpdateTicketStatus(ctx context.Context, id models.ID, status string) (models.Ticket, error) {
	return models.Ticket{ID: id, Status: status}, f.hit("UpdateTicketStatus")
}

func (f *fakeAPI) AddTicketMessage(ctx context.Context, id models.ID, m models.TicketMessage) (models.TicketMessage, error) {
	if err := f.hit("AddTicketMessage"); err != nil {
		return models.TicketMessage{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, m)
	return m, nil
}

func (f *fakeAPI) TicketMessages(ctx context.Context, id models.ID) ([]models.TicketMessage, error) {
	if err := f.hit("TicketMessages"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.TicketMessage(nil), f.messages...), nil
}

func (f *fakeAPI) Notifications(ctx context.Context, id models.ID, role models.Role) ([]models.Notification, error) {
	return append([]models.Notification(nil), f.notifications...), f.hit("Notifications")
}

func (f *fakeAPI) MarkNotificationRead(ctx context.Context, id models.ID) error {
	return f.hit("MarkNotificationRead")
}

func (f *fakeAPI) MarkAllNotificationsRead(ctx context.Context, id models.ID, role models.Role) error {
	return f.hit("MarkAllNotificationsRead")
}

func (f *fakeAPI) SupportStats(ctx context.Context) (models.SupportStats, error) {
	return models.SupportStats{TotalTickets: len(f.tickets)}, f.hit("SupportStats")
}

func (f *fakeAPI) AdminStats(ctx context.Context) (models.AdminStats, error) {
	return models.AdminStats{Farmers: len(f.users[client.UsersFarmers])}, f.hit("AdminStats")
}

func (f *fakeAPI) AdminUsers(ctx context.Context, kind string) ([]models.UserSummary, error) {
	return f.users[kind], f.hit("AdminUsers")
}

func (f *fakeAPI) AdminCrops(ctx context.Context) ([]models.Crop, error) {
	return f.crops, f.hit("AdminCrops")
}

func (f *fakeAPI) CropInfo(ctx context.Context, name string) (models.CropInfo, error) {
	if err := f.hit("CropInfo"); err != nil {
		return models.CropInfo{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	key := strings.ToLower(name)
	info, ok := f.cropInfo[key]
	if !ok {
		return models.CropInfo{CropName: key, Success: false, Message: "Using fallback data.",
			Data: map[string]string{models.CropInfoType: "Information not available"}}, nil
	}
	info.CropName = key
	return info, nil
}
