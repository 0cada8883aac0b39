package nav

import (
	"slices"

	"github.com/dmitrijs2005/farmchainx/internal/client/models"
	"github.com/dmitrijs2005/farmchainx/internal/client/session"
	"github.com/dmitrijs2005/farmchainx/internal/common"
)

// Route is a protected destination. An empty Roles list admits any signed-in
// user. LoginPath defaults to /login.
type Route struct {
	Name      string
	Roles     []models.Role
	LoginPath string
}

type DecisionKind int

const (
	// Loading means the session is not restored yet; show a placeholder.
	Loading DecisionKind = iota
	Render
	Redirect
)

func (k DecisionKind) String() string {
	switch k {
	case Loading:
		return "loading"
	case Render:
		return "render"
	case Redirect:
		return "redirect"
	}
	return "unknown"
}

type Decision struct {
	Kind   DecisionKind
	Target string // set for Redirect
}

// Decide gates route on state. It never redirects while state is loading.
func Decide(state session.State, route Route) Decision {
	if state.Loading {
		return Decision{Kind: Loading}
	}
	if state.Session == nil {
		target := route.LoginPath
		if target == "" {
			target = common.PathLogin
		}
		return Decision{Kind: Redirect, Target: target}
	}
	if len(route.Roles) > 0 && !slices.Contains(route.Roles, state.Session.Role) {
		return Decision{Kind: Redirect, Target: common.PathHome}
	}
	return Decision{Kind: Render}
}
