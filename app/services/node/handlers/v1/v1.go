// Package v1 contains the full set of handler functions and routes
// supported by the v1 web api.
package v1

import (
	"net/http"

	"github.com/minichain/minichain/app/services/node/handlers/v1/public"
	"github.com/minichain/minichain/foundation/blockchain/state"
	"github.com/minichain/minichain/foundation/events"
	"github.com/minichain/minichain/foundation/web"
	"go.uber.org/zap"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Log   *zap.SugaredLogger
	State *state.State
	Evts  *events.Events
}

const version = "v1"

// PublicRoutes binds all the version 1 public routes.
func PublicRoutes(app *web.App, cfg Config) {
	pbl := public.Handlers{
		Log:   cfg.Log,
		State: cfg.State,
		Evts:  cfg.Evts,
	}

	app.Handle(http.MethodPost, version, "/tx/submit", pbl.SubmitTransaction)
	app.Handle(http.MethodPost, version, "/mine", pbl.Mine)
	app.Handle(http.MethodGet, version, "/blocks", pbl.Blocks)
	app.Handle(http.MethodGet, version, "/blocks/:number", pbl.BlockByNumber)
	app.Handle(http.MethodGet, version, "/mempool", pbl.Mempool)
	app.Handle(http.MethodGet, version, "/genesis", pbl.Genesis)
	app.Handle(http.MethodGet, version, "/settings", pbl.Settings)
	app.Handle(http.MethodPut, version, "/settings", pbl.UpdateSettings)
	app.Handle(http.MethodGet, version, "/chain/validate", pbl.Validate)
	app.Handle(http.MethodGet, version, "/events", pbl.Events)
}
