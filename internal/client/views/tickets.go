package views

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/farmchainx/internal/client/client"
	"github.com/dmitrijs2005/farmchainx/internal/client/models"
	"github.com/dmitrijs2005/farmchainx/internal/common"
	"github.com/dmitrijs2005/farmchainx/internal/logging"
)

// Tickets is the signed-in user's support desk.
type Tickets struct {
	view
	api  client.SupportAPI
	user models.Session

	tickets []models.Ticket
}

func NewTickets(api client.SupportAPI, user *models.Session, log logging.Logger) *Tickets {
	t := &Tickets{api: api}
	if user != nil {
		t.user = *user.Clone()
	}
	t.init("tickets", log)
	return t
}

func (t *Tickets) Load(ctx context.Context) error {
	gen, err := t.begin()
	if err != nil {
		return err
	}
	tickets, err := t.api.UserTickets(ctx, t.user.ID)
	if err != nil {
		return t.loadFailed(ctx, err)
	}
	t.commit(ctx, gen, func() { t.tickets = tickets })
	return nil
}

func (t *Tickets) Tickets() []models.Ticket {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.tickets)
}

// Filter matches term against subject, description and ticket code, and
// status exactly unless it is StatusAll or "".
func (t *Tickets) Filter(term, status string) []models.Ticket {
	term = strings.ToLower(strings.TrimSpace(term))
	status = strings.ToUpper(strings.TrimSpace(status))

	t.mu.RLock()
	defer t.mu.RUnlock()
	var out []models.Ticket
	for _, tk := range t.tickets {
		if status != "" && status != StatusAll && tk.Status != status {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(tk.Subject), term) &&
			!strings.Contains(strings.ToLower(tk.Description), term) &&
			!strings.Contains(strings.ToLower(tk.TicketID), term) {
			continue
		}
		out = append(out, tk)
	}
	return out
}

// TicketCounts summarises tickets the way the support page does: resolved
// includes closed.
type TicketCounts struct {
	Total, Open, InProgress, Resolved int
}

func countTickets(tickets []models.Ticket) TicketCounts {
	c := TicketCounts{Total: len(tickets)}
	for _, tk := range tickets {
		switch tk.Status {
		case models.TicketOpen:
			c.Open++
		case models.TicketInProgress:
			c.InProgress++
		case models.TicketResolved, models.TicketClosed:
			c.Resolved++
		}
	}
	return c
}

func (t *Tickets) Counts() TicketCounts {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return countTickets(t.tickets)
}

// NewTicket is the user-supplied part of a ticket.
type NewTicket struct {
	Subject     string
	Description string
	IssueType   string
	Priority    string
}

func (t *Tickets) Create(ctx context.Context, in NewTicket) (models.Ticket, error) {
	if strings.TrimSpace(in.Subject) == "" || strings.TrimSpace(in.Description) == "" {
		return models.Ticket{}, fmt.Errorf("%w: subject and description are required", common.ErrorValidation)
	}
	priority := strings.ToUpper(strings.TrimSpace(in.Priority))
	if priority == "" {
		priority = "MEDIUM"
	}
	ticket := models.Ticket{
		UserID:         t.user.ID,
		ReportedByRole: string(t.user.Role),
		Subject:        strings.TrimSpace(in.Subject),
		Description:    strings.TrimSpace(in.Description),
		IssueType:      in.IssueType,
		Priority:       priority,
	}

	created, err := writeResult(ctx, &t.view, "ticket:"+ticket.Subject, func() (models.Ticket, error) {
		return t.api.CreateTicket(ctx, ticket)
	})
	if err != nil {
		return models.Ticket{}, err
	}
	return created, t.refresh(ctx, t.Load)
}

// Messages fetches a ticket's conversation. It is not cached.
func (t *Tickets) Messages(ctx context.Context, ticketID models.ID) ([]models.TicketMessage, error) {
	msgs, err := t.api.TicketMessages(ctx, ticketID)
	if err != nil {
		return nil, t.loadFailed(ctx, err)
	}
	return msgs, nil
}

// Reply posts text to a ticket and returns the refreshed conversation.
func (t *Tickets) Reply(ctx context.Context, ticketID models.ID, text string) ([]models.TicketMessage, error) {
	return reply(ctx, &t.view, t.api, t.user, ticketID, text)
}

func reply(ctx context.Context, v *view, api client.SupportAPI, from models.Session, ticketID models.ID, text string) ([]models.TicketMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: message is empty", common.ErrorValidation)
	}
	msg := models.TicketMessage{SenderID: from.ID, SenderRole: string(from.Role), Message: text}

	err := v.write(ctx, "reply:"+ticketID.String()+":"+text, func() error {
		_, err := api.AddTicketMessage(ctx, ticketID, msg)
		return err
	})
	if err != nil {
		return nil, err
	}
	msgs, err := api.TicketMessages(ctx, ticketID)
	if err != nil {
		return nil, v.loadFailed(ctx, err)
	}
	return msgs, nil
}
