package views

import (
	"context"
	"slices"

	"github.com/dmitrijs2005/farmchainx/internal/client/client"
	"github.com/dmitrijs2005/farmchainx/internal/client/models"
	"github.com/dmitrijs2005/farmchainx/internal/logging"
)

type Notifications struct {
	view
	api  client.SupportAPI
	user models.ID
	role models.Role

	items []models.Notification
}

func NewNotifications(api client.SupportAPI, user *models.Session, log logging.Logger) *Notifications {
	n := &Notifications{api: api}
	if user != nil {
		n.user, n.role = user.ID, user.Role
	}
	n.init("notifications", log)
	return n
}

func (n *Notifications) Load(ctx context.Context) error {
	gen, err := n.begin()
	if err != nil {
		return err
	}
	items, err := n.api.Notifications(ctx, n.user, n.role)
	if err != nil {
		return n.loadFailed(ctx, err)
	}
	n.commit(ctx, gen, func() { n.items = items })
	return nil
}

func (n *Notifications) Items() []models.Notification {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return slices.Clone(n.items)
}

func (n *Notifications) Unread() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	count := 0
	for _, it := range n.items {
		if !it.Read {
			count++
		}
	}
	return count
}

// MarkRead flags one notification read and patches it locally.
func (n *Notifications) MarkRead(ctx context.Context, id models.ID) error {
	err := n.write(ctx, "read:"+id.String(), func() error {
		return n.api.MarkNotificationRead(ctx, id)
	})
	if err != nil {
		return err
	}
	n.patch(func() {
		for i := range n.items {
			if n.items[i].ID == id {
				n.items[i].Read = true
			}
		}
	})
	return nil
}

func (n *Notifications) MarkAllRead(ctx context.Context) error {
	err := n.write(ctx, "read-all", func() error {
		return n.api.MarkAllNotificationsRead(ctx, n.user, n.role)
	})
	if err != nil {
		return err
	}
	n.patch(func() {
		for i := range n.items {
			n.items[i].Read = true
		}
	})
	return nil
}
