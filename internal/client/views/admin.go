package views

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/farmchainx/internal/client/client"
	"github.com/dmitrijs2005/farmchainx/internal/client/models"
	"github.com/dmitrijs2005/farmchainx/internal/common"
	"github.com/dmitrijs2005/farmchainx/internal/logging"
)

type AdminAPI interface {
	client.AdminAPI
	client.SupportAPI
}

// AdminPanel is the platform overview: user and crop registries, support
// statistics and the ticket queue.
type AdminPanel struct {
	view
	api   AdminAPI
	admin models.Session

	stats        models.AdminStats
	supportStats models.SupportStats
	farmers      []models.UserSummary
	distributors []models.UserSummary
	consumers    []models.UserSummary
	crops        []models.Crop
	tickets      []models.Ticket
}

func NewAdminPanel(api AdminAPI, user *models.Session, log logging.Logger) *AdminPanel {
	p := &AdminPanel{api: api}
	if user != nil {
		p.admin = *user.Clone()
	}
	p.init("admin-panel", log)
	return p
}

func (p *AdminPanel) Load(ctx context.Context) error {
	gen, err := p.begin()
	if err != nil {
		return err
	}

	var (
		stats        models.AdminStats
		supportStats models.SupportStats
		farmers      []models.UserSummary
		distributors []models.UserSummary
		consumers    []models.UserSummary
		crops        []models.Crop
		tickets      []models.Ticket
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { stats, err = p.api.AdminStats(gctx); return })
	g.Go(func() (err error) { supportStats, err = p.api.SupportStats(gctx); return })
	g.Go(func() (err error) { farmers, err = p.api.AdminUsers(gctx, client.UsersFarmers); return })
	g.Go(func() (err error) { distributors, err = p.api.AdminUsers(gctx, client.UsersDistributors); return })
	g.Go(func() (err error) { consumers, err = p.api.AdminUsers(gctx, client.UsersConsumers); return })
	g.Go(func() (err error) { crops, err = p.api.AdminCrops(gctx); return })
	g.Go(func() (err error) { tickets, err = p.api.AllTickets(gctx); return })
	if err := g.Wait(); err != nil {
		return p.loadFailed(ctx, err)
	}

	p.commit(ctx, gen, func() {
		p.stats = stats
		p.supportStats = supportStats
		p.farmers = farmers
		p.distributors = distributors
		p.consumers = consumers
		p.crops = crops
		p.tickets = tickets
	})
	return nil
}

func (p *AdminPanel) Stats() models.AdminStats {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.stats
}

func (p *AdminPanel) SupportStats() models.SupportStats {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.supportStats
}

// Users returns one registry: client.UsersFarmers, UsersDistributors or
// UsersConsumers.
func (p *AdminPanel) Users(kind string) []models.UserSummary {
	p.mu.RLock()
	defer p.mu.RUnlock()
	switch kind {
	case client.UsersFarmers:
		return slices.Clone(p.farmers)
	case client.UsersDistributors:
		return slices.Clone(p.distributors)
	case client.UsersConsumers:
		return slices.Clone(p.consumers)
	}
	return nil
}

func (p *AdminPanel) Crops() []models.Crop {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.crops)
}

func (p *AdminPanel) Tickets() []models.Ticket {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.tickets)
}

func (p *AdminPanel) TicketCounts() TicketCounts {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return countTickets(p.tickets)
}

var ticketStatuses = []string{models.TicketOpen, models.TicketInProgress, models.TicketResolved, models.TicketClosed}

// SetTicketStatus updates a ticket and patches its status locally.
func (p *AdminPanel) SetTicketStatus(ctx context.Context, id models.ID, status string) error {
	status = strings.ToUpper(strings.TrimSpace(status))
	if !slices.Contains(ticketStatuses, status) {
		return fmt.Errorf("%w: unknown ticket status %q", common.ErrorValidation, status)
	}
	err := p.write(ctx, "ticket-status:"+id.String(), func() error {
		_, err := p.api.UpdateTicketStatus(ctx, id, status)
		return err
	})
	if err != nil {
		return err
	}
	p.setStatus(id, status)
	return nil
}

func (p *AdminPanel) setStatus(id models.ID, status string) {
	p.patch(func() {
		for i := range p.tickets {
			if p.tickets[i].ID == id {
				p.tickets[i].Status = status
			}
		}
	})
}

// Reply answers a ticket as the admin. An OPEN ticket moves to IN_PROGRESS.
func (p *AdminPanel) Reply(ctx context.Context, id models.ID, text string) ([]models.TicketMessage, error) {
	msgs, err := reply(ctx, &p.view, p.api, p.admin, id, text)
	if err != nil {
		return nil, err
	}

	if p.ticketStatus(id) == models.TicketOpen {
		if err := p.SetTicketStatus(ctx, id, models.TicketInProgress); err != nil {
			return msgs, err
		}
	}
	return msgs, nil
}

func (p *AdminPanel) ticketStatus(id models.ID) string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, t := range p.tickets {
		if t.ID == id {
			return t.Status
		}
	}
	return ""
}
