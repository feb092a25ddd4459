package middleware

import (
	"log"
	"time"

	"github.com/KirkDiggler/pokedex-bot-discord/internal/discord/v2/core"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/uuid"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// LogConfig configures logging behavior
type LogConfig struct {
	// LogRequests logs incoming events
	LogRequests bool

	// LogDuration logs handler execution time
	LogDuration bool

	// LogErrors logs errors (if not using ErrorMiddleware)
	LogErrors bool

	// Logger allows custom logging implementation
	Logger Logger
}

// Logger is a custom logging interface
type Logger interface {
	LogRequest(ctx *core.EventContext)
	LogResponse(ctx *core.EventContext, result *core.HandlerResult, duration time.Duration)
	LogError(ctx *core.EventContext, err error)
}

// DefaultLogConfig returns sensible defaults
func DefaultLogConfig() *LogConfig {
	return &LogConfig{
		LogRequests: true,
		LogDuration: true,
		LogErrors:   true,
		Logger:      &defaultLogger{},
	}
}

// LoggingMiddleware logs the verb or button action of every event and how long it took
func LoggingMiddleware(config *LogConfig) core.Middleware {
	if config == nil {
		config = DefaultLogConfig()
	}

	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.EventContext) (*core.HandlerResult, error) {
			if config.LogRequests && config.Logger != nil {
				config.Logger.LogRequest(ctx)
			}

			start := time.Now()
			result, err := next.Handle(ctx)
			duration := time.Since(start)

			if err != nil && config.LogErrors && config.Logger != nil {
				config.Logger.LogError(ctx, err)
			}

			if config.LogDuration && config.Logger != nil {
				config.Logger.LogResponse(ctx, result, duration)
			}

			return result, err
		})
	}
}

// defaultLogger provides basic stdout logging
type defaultLogger struct{}

func (l *defaultLogger) LogRequest(ctx *core.EventContext) {
	log.Printf("[Discord] %s %s, User: %s, Guild: %s, Channel: %s",
		requestTag(ctx),
		ctx.Route(),
		ctx.UserID,
		ctx.GuildID,
		ctx.ChannelID,
	)
}

func (l *defaultLogger) LogResponse(ctx *core.EventContext, result *core.HandlerResult, duration time.Duration) {
	status := "success"
	switch {
	case result == nil || result.Response == nil:
		status = "no_response"
	case result.Context != nil && result.Context["error"] != nil:
		status = "error"
	case result.Response.Ephemeral:
		status = "ephemeral"
	}

	log.Printf("[Discord] %s %s completed in %v (%s)", requestTag(ctx), ctx.Route(), duration, status)
}

func (l *defaultLogger) LogError(ctx *core.EventContext, err error) {
	log.Printf("[Discord] %s error in %s: %v", requestTag(ctx), ctx.Route(), err)
}

func requestTag(ctx *core.EventContext) string {
	if id := RequestID(ctx); id != "" {
		return "[" + id + "]"
	}
	return "[-]"
}

// RequestIDMiddleware adds a unique request ID to the context
func RequestIDMiddleware(generator uuid.Generator) core.Middleware {
	if generator == nil {
		generator = uuid.NewShortGenerator(uuid.DefaultShortLength)
	}

	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.EventContext) (*core.HandlerResult, error) {
			ctx.WithValue(requestIDKey, generator.New())
			return next.Handle(ctx)
		})
	}
}

// RequestID returns the ID set by RequestIDMiddleware, empty when there is none
func RequestID(ctx *core.EventContext) string {
	if ctx == nil || ctx.Context == nil {
		return ""
	}
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}
