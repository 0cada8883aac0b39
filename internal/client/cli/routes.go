package cli

import (
	"github.com/dmitrijs2005/farmchainx/internal/client/models"
	"github.com/dmitrijs2005/farmchainx/internal/client/nav"
	"github.com/dmitrijs2005/farmchainx/internal/common"
)

var (
	routeSignedIn    = &nav.Route{Name: "account"}
	routeFarmer      = &nav.Route{Name: "farmer", Roles: []models.Role{models.RoleFarmer}}
	routeDistributor = &nav.Route{Name: "distributor", Roles: []models.Role{models.RoleDistributor}}
	routeBuyer       = &nav.Route{Name: "buyer", Roles: []models.Role{models.RoleBuyer}}
	routeOrders      = &nav.Route{Name: "orders", Roles: []models.Role{models.RoleDistributor, models.RoleBuyer}}
	routeSupport     = &nav.Route{Name: "support", Roles: []models.Role{models.RoleFarmer, models.RoleDistributor, models.RoleBuyer}}
	routeAdmin       = &nav.Route{Name: "admin", Roles: []models.Role{models.RoleAdmin}, LoginPath: common.PathAdminLogin}
)

func (a *App) commandTable() map[string]command {
	return map[string]command{
		"register":    {usage: "register", run: a.register},
		"login":       {usage: "login [email]", run: a.login},
		"admin-login": {usage: "admin-login [email]", run: a.adminLogin},
		"logout":      {usage: "logout", run: a.logout},
		"whoami":      {usage: "whoami", run: a.whoami},
		"trace":       {usage: "trace <batchId>", run: a.trace},
		"cropinfo":    {usage: "cropinfo [crop name]", run: a.cropInfo},

		"dashboard":     {usage: "dashboard", route: routeSignedIn, run: a.dashboard},
		"notifications": {usage: "notifications [read <id>|all]", route: routeSignedIn, run: a.notifications},

		"crops":    {usage: "crops", route: routeFarmer, run: a.crops},
		"addcrop":  {usage: "addcrop", route: routeFarmer, run: a.addCrop},
		"harvest":  {usage: "harvest <cropId> <yield>", route: routeFarmer, run: a.harvest},
		"delcrop":  {usage: "delcrop <cropId>", route: routeFarmer, run: a.deleteCrop},
		"newbatch": {usage: "newbatch <cropType> <quantity> [location]", route: routeFarmer, run: a.newBatch},
		"sell":     {usage: "sell <cropId> <price> <quantity>", route: routeFarmer, run: a.sell},

		"batches": {usage: "batches", route: routeDistributor, run: a.batches},
		"approve": {usage: "approve <batchId>", route: routeDistributor, run: a.approve},
		"reject":  {usage: "reject <batchId> <reason>", route: routeDistributor, run: a.reject},
		"ship":    {usage: "ship <orderId> <status>", route: routeDistributor, run: a.ship},
		"eta":     {usage: "eta <orderId> <YYYY-MM-DD>", route: routeDistributor, run: a.eta},
		"cancel":  {usage: "cancel <orderId> <reason>", route: routeDistributor, run: a.cancel},

		"orders": {usage: "orders [status]", route: routeOrders, run: a.orders},
		"market": {usage: "market [search]", route: routeBuyer, run: a.market},
		"order":  {usage: "order <listingId> <quantity>", route: routeBuyer, run: a.order},

		"tickets": {usage: "tickets [search]", route: routeSupport, run: a.tickets},
		"ticket":  {usage: "ticket [id]", route: routeSupport, run: a.ticket},
		"reply":   {usage: "reply <ticketId> <text>", route: routeSignedIn, run: a.reply},

		"admin": {usage: "admin [users <farmers|distributors|consumers>|crops|tickets|status <ticketId> <status>]", route: routeAdmin, run: a.admin},
	}
}
