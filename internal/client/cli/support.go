package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/farmchainx/internal/client/models"
	"github.com/dmitrijs2005/farmchainx/internal/client/views"
)

func (a *App) ticketsView(ctx context.Context) (*views.Tickets, error) {
	v := views.NewTickets(a.api, a.store.Current(), a.log)
	v.Mount()
	if err := v.Load(ctx); err != nil {
		v.Unmount()
		return nil, err
	}
	return v, nil
}

func (a *App) renderCounts(c views.TicketCounts) {
	fmt.Fprintf(a.out, "Tickets: %d total, %d open, %d in progress, %d resolved\n",
		c.Total, c.Open, c.InProgress, c.Resolved)
}

func (a *App) tickets(ctx context.Context, args []string) error {
	v, err := a.ticketsView(ctx)
	if err != nil {
		return err
	}
	defer v.Unmount()
	a.section("Support tickets")
	a.renderCounts(v.Counts())
	a.table(ticketHeaders, ticketRows(v.Filter(strings.Join(args, " "), views.StatusAll)))
	return nil
}

// ticket opens a new ticket, or shows the conversation of an existing one.
func (a *App) ticket(ctx context.Context, args []string) error {
	v, err := a.ticketsView(ctx)
	if err != nil {
		return err
	}
	defer v.Unmount()

	if len(args) > 0 {
		msgs, err := v.Messages(ctx, models.ID(args[0]))
		if err != nil {
			return err
		}
		a.renderMessages(msgs)
		return nil
	}

	var in views.NewTicket
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Subject", &in.Subject},
		{"Describe the issue", &in.Description},
		{"Issue type (ORDER, PAYMENT, TECHNICAL, OTHER)", &in.IssueType},
		{"Priority (LOW, MEDIUM, HIGH)", &in.Priority},
	}
	for _, f := range fields {
		s, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		*f.dst = s
	}

	t, err := v.Create(ctx, in)
	if err != nil {
		return err
	}
	code := t.TicketID
	if code == "" {
		code = t.ID.String()
	}
	a.ok("Ticket %s opened", code)
	return nil
}

func (a *App) reply(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return usageError("reply <ticketId> <text>")
	}
	id, text := models.ID(args[0]), strings.Join(args[1:], " ")

	var msgs []models.TicketMessage
	if s := a.store.Current(); s != nil && s.Role == models.RoleAdmin {
		p, err := a.adminView(ctx)
		if err != nil {
			return err
		}
		defer p.Unmount()
		if msgs, err = p.Reply(ctx, id, text); err != nil {
			return err
		}
	} else {
		v, err := a.ticketsView(ctx)
		if err != nil {
			return err
		}
		defer v.Unmount()
		if msgs, err = v.Reply(ctx, id, text); err != nil {
			return err
		}
	}
	a.renderMessages(msgs)
	return nil
}

func (a *App) renderMessages(msgs []models.TicketMessage) {
	if len(msgs) == 0 {
		fmt.Fprintln(a.out, mutedStyle.Render("(no messages)"))
		return
	}
	for _, m := range msgs {
		fmt.Fprintf(a.out, "%s %s: %s\n",
			mutedStyle.Render(views.FormatDate(m.CreatedAt.Time)), m.SenderRole, m.Message)
	}
}

func (a *App) notifications(ctx context.Context, args []string) error {
	v := views.NewNotifications(a.api, a.store.Current(), a.log)
	v.Mount()
	defer v.Unmount()
	if err := v.Load(ctx); err != nil {
		return err
	}

	switch {
	case len(args) == 0:
	case args[0] == "all":
		if err := v.MarkAllRead(ctx); err != nil {
			return err
		}
	case args[0] == "read" && len(args) == 2:
		if err := v.MarkRead(ctx, models.ID(args[1])); err != nil {
			return err
		}
	default:
		return usageError("notifications [read <id>|all]")
	}

	a.section(fmt.Sprintf("Notifications (%d unread)", v.Unread()))
	rows := [][]string{}
	for _, n := range v.Items() {
		mark := ""
		if !n.Read {
			mark = "*"
		}
		rows = append(rows, []string{mark, n.ID.String(), n.Title, n.Message, views.FormatDate(n.CreatedAt.Time)})
	}
	a.table([]string{"", "ID", "Title", "Message", "Date"}, rows)
	return nil
}
