package core

// Router maps verbs and button actions of one domain to handlers
type Router struct {
	// Domain name, e.g. "dex"
	domain string

	commands map[Verb]Handler
	buttons  map[ButtonAction]Handler

	// Called when nothing matches, may be nil
	unknownCommand Handler
	unknownButton  Handler

	// Middleware specific to this router
	middleware []Middleware

	// Parent pipeline to register with
	pipeline *Pipeline
}

// NewRouter creates a new domain router
func NewRouter(domain string, pipeline *Pipeline) *Router {
	return &Router{
		domain:     domain,
		commands:   make(map[Verb]Handler),
		buttons:    make(map[ButtonAction]Handler),
		middleware: make([]Middleware, 0),
		pipeline:   pipeline,
	}
}

// Domain returns the router's domain
func (r *Router) Domain() string {
	return r.domain
}

// Use adds middleware to this router. Only routes added afterwards are wrapped.
func (r *Router) Use(middleware ...Middleware) *Router {
	r.middleware = append(r.middleware, middleware...)
	return r
}

func (r *Router) wrap(handler Handler) Handler {
	wrapped := handler
	for i := len(r.middleware) - 1; i >= 0; i-- {
		wrapped = r.middleware[i](wrapped)
	}
	return wrapped
}

// Command registers a handler for a verb
func (r *Router) Command(verb Verb, handler Handler) *Router {
	r.commands[verb] = r.wrap(handler)
	return r
}

// CommandFunc registers a handler function for a verb
func (r *Router) CommandFunc(verb Verb, fn func(*EventContext) (*HandlerResult, error)) *Router {
	return r.Command(verb, HandlerFunc(fn))
}

// Button registers a handler for a button action
func (r *Router) Button(action ButtonAction, handler Handler) *Router {
	r.buttons[action] = r.wrap(handler)
	return r
}

// ButtonFunc registers a handler function for a button action
func (r *Router) ButtonFunc(action ButtonAction, fn func(*EventContext) (*HandlerResult, error)) *Router {
	return r.Button(action, HandlerFunc(fn))
}

// UnknownCommand sets the handler for commands with an unregistered verb
func (r *Router) UnknownCommand(handler Handler) *Router {
	r.unknownCommand = r.wrap(handler)
	return r
}

// UnknownButton sets the handler for buttons with an unregistered action
func (r *Router) UnknownButton(handler Handler) *Router {
	r.unknownButton = r.wrap(handler)
	return r
}

// Build creates a single handler from all registered routes
func (r *Router) Build() Handler {
	return &routerHandler{
		commands:       r.commands,
		buttons:        r.buttons,
		unknownCommand: r.unknownCommand,
		unknownButton:  r.unknownButton,
	}
}

// Register registers this router with the pipeline
func (r *Router) Register() {
	if r.pipeline != nil {
		r.pipeline.Register(r.Build())
	}
}

// routerHandler implements Handler for a router
type routerHandler struct {
	commands       map[Verb]Handler
	buttons        map[ButtonAction]Handler
	unknownCommand Handler
	unknownButton  Handler
}

// CanHandle checks if this router has a route or fallback for the event
func (h *routerHandler) CanHandle(ctx *EventContext) bool {
	return h.route(ctx) != nil
}

// Handle processes the event
func (h *routerHandler) Handle(ctx *EventContext) (*HandlerResult, error) {
	handler := h.route(ctx)
	if handler == nil {
		return nil, &HandlerError{UserMessage: "no route for " + ctx.Route(), Code: ErrorCodeNotFound}
	}
	return handler.Handle(ctx)
}

func (h *routerHandler) route(ctx *EventContext) Handler {
	switch ctx.Kind {
	case EventCommand:
		if ctx.Command == nil {
			return nil
		}
		if handler, ok := h.commands[ctx.Command.Verb]; ok {
			return handler
		}
		return h.unknownCommand
	case EventButton:
		if handler, ok := h.buttons[ctx.Action]; ok {
			return handler
		}
		return h.unknownButton
	}
	return nil
}
