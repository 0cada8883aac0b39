package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/farmchainx/internal/client/nav"
	"github.com/dmitrijs2005/farmchainx/internal/client/views"
	"github.com/dmitrijs2005/farmchainx/internal/common"
)

// dashboard renders the dashboard for the session's role, falling back to
// the last role persisted at login.
func (a *App) dashboard(ctx context.Context, _ []string) error {
	role := ""
	if s := a.store.Current(); s != nil {
		role = string(s.Role)
	}

	out := nav.Dispatch(role, a.store.LastRole())
	switch out.Dashboard {
	case nav.FarmerDashboard:
		v, err := a.farmerView(ctx)
		if err != nil {
			return err
		}
		defer v.Unmount()
		a.renderFarmer(v)

	case nav.DistributorDashboard:
		v, err := a.distributorView(ctx)
		if err != nil {
			return err
		}
		defer v.Unmount()
		a.renderDistributor(v)

	case nav.BuyerDashboard:
		v, err := a.buyerView(ctx)
		if err != nil {
			return err
		}
		defer v.Unmount()
		a.renderBuyer(v, views.StatusAll)

	default:
		return fmt.Errorf("%w: no dashboard for role %q, go to %s", common.ErrForbidden, role, out.Redirect)
	}
	return nil
}
