package core

import (
	"errors"
	"fmt"
	"log"
	"sync"
)

// Pipeline manages handler registration and execution
type Pipeline struct {
	// Handlers registered in the pipeline
	handlers []Handler

	// Middleware to apply to all handlers
	middleware []Middleware

	// Error handler for uncaught errors
	errorHandler ErrorHandler

	// Builds the responder for an event, replaced in tests
	responderFactory func(*EventContext) (Responder, error)

	// Whether to stop on first handler that can handle
	stopOnFirst bool

	// Mutex for thread-safe handler registration
	mu sync.RWMutex
}

// Middleware is a function that wraps a handler
type Middleware func(Handler) Handler

// ErrorHandler handles errors that occur during pipeline execution
type ErrorHandler func(ctx *EventContext, err error) *HandlerResult

// NewPipeline creates a new handler pipeline
func NewPipeline() *Pipeline {
	return &Pipeline{
		handlers:         make([]Handler, 0),
		middleware:       make([]Middleware, 0),
		errorHandler:     defaultErrorHandler,
		responderFactory: NewResponder,
		stopOnFirst:      true,
	}
}

// Register adds handlers to the pipeline
func (p *Pipeline) Register(handlers ...Handler) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, h := range handlers {
		// Apply all middleware to the handler
		wrapped := h
		for i := len(p.middleware) - 1; i >= 0; i-- {
			wrapped = p.middleware[i](wrapped)
		}
		p.handlers = append(p.handlers, wrapped)
	}
}

// Use adds middleware to the pipeline. Only handlers registered afterwards are wrapped.
func (p *Pipeline) Use(middleware ...Middleware) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.middleware = append(p.middleware, middleware...)
}

// SetErrorHandler sets a custom error handler
func (p *Pipeline) SetErrorHandler(handler ErrorHandler) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.errorHandler = handler
}

// SetResponderFactory replaces how responders are built
func (p *Pipeline) SetResponderFactory(factory func(*EventContext) (Responder, error)) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.responderFactory = factory
}

// SetStopOnFirst configures whether to stop after the first handler that can handle
func (p *Pipeline) SetStopOnFirst(stop bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopOnFirst = stop
}

// Execute runs the pipeline for an event
func (p *Pipeline) Execute(ctx *EventContext) error {
	p.mu.RLock()
	handlers := make([]Handler, len(p.handlers))
	copy(handlers, p.handlers)
	stopOnFirst := p.stopOnFirst
	errorHandler := p.errorHandler
	factory := p.responderFactory
	p.mu.RUnlock()

	responder, err := factory(ctx)
	if err != nil {
		return err
	}

	for _, handler := range handlers {
		if !handler.CanHandle(ctx) {
			continue
		}

		result, err := handler.Handle(ctx)
		if err != nil {
			result = errorHandler(ctx, err)
		}

		if result != nil && result.Response != nil {
			if err := p.send(ctx, responder, result); err != nil {
				return err
			}
		}

		if stopOnFirst || (result != nil && result.StopPropagation) {
			break
		}
	}

	return nil
}

// send delivers the response and runs the result's OnSent hook
func (p *Pipeline) send(ctx *EventContext, responder Responder, result *HandlerResult) error {
	sent, err := responder.Respond(result.Response)
	if err != nil {
		return fmt.Errorf("failed to send response for %s: %w", ctx.Route(), err)
	}

	if result.OnSent != nil {
		if err := result.OnSent(ctx.Context, sent); err != nil {
			log.Printf("[Pipeline] after-send hook for %s failed: %v", ctx.Route(), err)
		}
	}

	return nil
}

// HandlerCount returns the number of registered handlers
func (p *Pipeline) HandlerCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return len(p.handlers)
}

// defaultErrorHandler is the default error handler
func defaultErrorHandler(ctx *EventContext, err error) *HandlerResult {
	log.Printf("[Pipeline] unhandled error in %s: %v", ctx.Route(), err)

	message := FallbackMessage(ctx.Kind)
	var handlerErr *HandlerError
	if errors.As(err, &handlerErr) && handlerErr.ShowToUser {
		message = handlerErr.UserMessage
	}

	return &HandlerResult{
		Response: &Response{
			Content:   message,
			Ephemeral: ctx.IsButton(),
		},
	}
}

// MiddlewareChain creates a single middleware from multiple middleware
func MiddlewareChain(middleware ...Middleware) Middleware {
	return func(next Handler) Handler {
		// Apply middleware in reverse order
		for i := len(middleware) - 1; i >= 0; i-- {
			next = middleware[i](next)
		}
		return next
	}
}
