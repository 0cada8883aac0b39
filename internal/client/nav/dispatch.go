package nav

import (
	"github.com/dmitrijs2005/farmchainx/internal/client/models"
	"github.com/dmitrijs2005/farmchainx/internal/common"
)

type Dashboard int

const (
	NoDashboard Dashboard = iota
	FarmerDashboard
	DistributorDashboard
	BuyerDashboard
)

func (d Dashboard) String() string {
	switch d {
	case FarmerDashboard:
		return "farmer"
	case DistributorDashboard:
		return "distributor"
	case BuyerDashboard:
		return "buyer"
	}
	return "none"
}

// Outcome is either a dashboard to mount or a redirect target.
type Outcome struct {
	Dashboard Dashboard
	Redirect  string
}

// Dispatch picks the dashboard for sessionRole, falling back to
// lastKnownRole only when the session carries no role. Every other value,
// ADMIN included, redirects to the login page.
func Dispatch(sessionRole, lastKnownRole string) Outcome {
	role := sessionRole
	if role == "" {
		role = lastKnownRole
	}

	switch models.Role(role) {
	case models.RoleFarmer:
		return Outcome{Dashboard: FarmerDashboard}
	case models.RoleDistributor:
		return Outcome{Dashboard: DistributorDashboard}
	case models.RoleBuyer:
		return Outcome{Dashboard: BuyerDashboard}
	case models.RoleAdmin:
		return Outcome{Redirect: common.PathLogin}
	default:
		return Outcome{Redirect: common.PathLogin}
	}
}
