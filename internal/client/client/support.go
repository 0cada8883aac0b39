package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/farmchainx/internal/client/models"
)

func (c *HTTPClient) CreateTicket(ctx context.Context, ticket models.Ticket) (models.Ticket, error) {
	return enveloped[models.Ticket](ctx, c, http.MethodPost, "/support/tickets", nil, ticket, "ticket")
}

func (c *HTTPClient) UserTickets(ctx context.Context, userID models.ID) ([]models.Ticket, error) {
	return envelopedList[models.Ticket](ctx, c, "/support/tickets/user/"+seg(userID), "tickets")
}

func (c *HTTPClient) AllTickets(ctx context.Context) ([]models.Ticket, error) {
	return envelopedList[models.Ticket](ctx, c, "/support/tickets/all", "tickets")
}

func (c *HTTPClient) OpenTickets(ctx context.Context) ([]models.Ticket, error) {
	return envelopedList[models.Ticket](ctx, c, "/support/tickets/open", "tickets")
}

func (c *HTTPClient) GetTicket(ctx context.Context, id models.ID) (models.Ticket, error) {
	return enveloped[models.Ticket](ctx, c, http.MethodGet, "/support/tickets/"+seg(id), nil, nil, "ticket")
}

func (c *HTTPClient) UpdateTicketStatus(ctx context.Context, id models.ID, status string) (models.Ticket, error) {
	body := map[string]string{"status": status}
	return enveloped[models.Ticket](ctx, c, http.MethodPut, "/support/tickets/"+seg(id)+"/status", nil, body, "ticket")
}

func (c *HTTPClient) AddTicketMessage(ctx context.Context, id models.ID, msg models.TicketMessage) (models.TicketMessage, error) {
	return enveloped[models.TicketMessage](ctx, c, http.MethodPost, "/support/tickets/"+seg(id)+"/messages", nil, msg, "message")
}

func (c *HTTPClient) TicketMessages(ctx context.Context, id models.ID) ([]models.TicketMessage, error) {
	return envelopedList[models.TicketMessage](ctx, c, "/support/tickets/"+seg(id)+"/messages", "messages")
}

func (c *HTTPClient) Notifications(ctx context.Context, userID models.ID, role models.Role) ([]models.Notification, error) {
	return envelopedList[models.Notification](ctx, c, "/support/notifications/"+seg(userID)+"/"+seg(role), "notifications")
}

func (c *HTTPClient) MarkNotificationRead(ctx context.Context, id models.ID) error {
	_, err := enveloped[struct{}](ctx, c, http.MethodPut, "/support/notifications/"+seg(id)+"/read", nil, nil, "notification")
	return err
}

func (c *HTTPClient) MarkAllNotificationsRead(ctx context.Context, userID models.ID, role models.Role) error {
	path := "/support/notifications/read-all/" + seg(userID) + "/" + seg(role)
	_, err := enveloped[struct{}](ctx, c, http.MethodPut, path, nil, nil, "notifications")
	return err
}

func (c *HTTPClient) SupportStats(ctx context.Context) (models.SupportStats, error) {
	return enveloped[models.SupportStats](ctx, c, http.MethodGet, "/support/stats", nil, nil, "stats")
}
