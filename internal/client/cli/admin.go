package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/farmchainx/internal/client/client"
	"github.com/dmitrijs2005/farmchainx/internal/client/models"
	"github.com/dmitrijs2005/farmchainx/internal/client/views"
)

func (a *App) adminView(ctx context.Context) (*views.AdminPanel, error) {
	p := views.NewAdminPanel(a.api, a.store.Current(), a.log)
	p.Mount()
	if err := p.Load(ctx); err != nil {
		p.Unmount()
		return nil, err
	}
	return p, nil
}

var userKinds = map[string]string{
	"farmers":      client.UsersFarmers,
	"distributors": client.UsersDistributors,
	"consumers":    client.UsersConsumers,
}

func (a *App) admin(ctx context.Context, args []string) error {
	p, err := a.adminView(ctx)
	if err != nil {
		return err
	}
	defer p.Unmount()

	sub := ""
	if len(args) > 0 {
		sub = args[0]
	}
	switch sub {
	case "":
		s, ss := p.Stats(), p.SupportStats()
		a.section("Platform")
		fmt.Fprintf(a.out, "Farmers: %d  Distributors: %d  Consumers: %d  Crops: %d\n",
			s.Farmers, s.Distributors, s.Consumers, s.Crops)
		a.section("Support")
		fmt.Fprintf(a.out, "Tickets: %d total, %d open, %d in progress, %d resolved\n",
			ss.TotalTickets, ss.OpenTickets, ss.InProgressTickets, ss.ResolvedTickets)

	case "users":
		if len(args) != 2 {
			return usageError("admin users <farmers|distributors|consumers>")
		}
		kind, ok := userKinds[args[1]]
		if !ok {
			return usageError("admin users <farmers|distributors|consumers>")
		}
		rows := [][]string{}
		for _, u := range p.Users(kind) {
			rows = append(rows, []string{u.ID.String(), u.Name, u.Email, u.Phone, string(u.Role)})
		}
		a.table([]string{"ID", "Name", "Email", "Phone", "Role"}, rows)

	case "crops":
		a.table(cropHeaders, cropRows(p.Crops()))

	case "tickets":
		a.renderCounts(p.TicketCounts())
		a.table(ticketHeaders, ticketRows(p.Tickets()))

	case "status":
		if len(args) != 3 {
			return usageError("admin status <ticketId> <status>")
		}
		if err := p.SetTicketStatus(ctx, models.ID(args[1]), args[2]); err != nil {
			return err
		}
		a.ok("Ticket %s updated", args[1])

	default:
		return usageError("admin [users <kind>|crops|tickets|status <ticketId> <status>]")
	}
	return nil
}
