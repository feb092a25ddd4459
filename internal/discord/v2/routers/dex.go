package routers

import (
	"github.com/KirkDiggler/pokedex-bot-discord/internal/discord/v2/core"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/discord/v2/handlers"
)

// DexRouter wires the dex handler into a pipeline
type DexRouter struct {
	router  *core.Router
	handler *handlers.DexHandler
}

// NewDexRouter registers every verb and button of the dex domain. Router
// middleware is applied to each route, in the order given.
func NewDexRouter(pipeline *core.Pipeline, handler *handlers.DexHandler, middleware ...core.Middleware) (*DexRouter, error) {
	if err := handler.ValidateCoverage(); err != nil {
		return nil, err
	}

	router := core.NewRouter(core.DexDomain, pipeline)
	router.Use(middleware...)

	dr := &DexRouter{
		router:  router,
		handler: handler,
	}

	dr.registerRoutes()
	router.Register()

	return dr, nil
}

// registerRoutes sets up all dex routes
func (r *DexRouter) registerRoutes() {
	for verb, fn := range r.handler.CommandHandlers() {
		r.router.Command(verb, fn)
	}
	r.router.UnknownCommand(core.HandlerFunc(r.handler.HandleUnknownCommand))

	for action, fn := range r.handler.ButtonHandlers() {
		r.router.Button(action, fn)
	}
	r.router.UnknownButton(core.HandlerFunc(r.handler.HandleUnknownButton))
}
