package middleware

import (
	"errors"
	"fmt"
	"log"
	"runtime/debug"

	"github.com/KirkDiggler/pokedex-bot-discord/internal/discord/v2/core"
	dexerr "github.com/KirkDiggler/pokedex-bot-discord/internal/errors"
)

// ErrorConfig configures error handling behavior
type ErrorConfig struct {
	// LogErrors controls whether errors are logged
	LogErrors bool

	// ErrorFormatter turns an error into the text shown to the user
	ErrorFormatter ErrorFormatter

	// ErrorLogger allows custom logging
	ErrorLogger ErrorLogger
}

// ErrorFormatter formats errors for user display
type ErrorFormatter func(ctx *core.EventContext, err error) string

// ErrorLogger logs errors
type ErrorLogger func(ctx *core.EventContext, err error)

// DefaultErrorConfig returns sensible defaults
func DefaultErrorConfig() *ErrorConfig {
	return &ErrorConfig{
		LogErrors:      true,
		ErrorFormatter: defaultErrorFormatter,
		ErrorLogger:    defaultErrorLogger,
	}
}

// ErrorMiddleware turns handler errors into replies so they never reach the gateway
func ErrorMiddleware(config *ErrorConfig) core.Middleware {
	if config == nil {
		config = DefaultErrorConfig()
	}
	if config.ErrorFormatter == nil {
		config.ErrorFormatter = defaultErrorFormatter
	}

	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.EventContext) (*core.HandlerResult, error) {
			result, err := next.Handle(ctx)
			if err == nil {
				return result, nil
			}

			if config.LogErrors && config.ErrorLogger != nil {
				config.ErrorLogger(ctx, err)
			}

			return &core.HandlerResult{
				Response: &core.Response{
					Content:   config.ErrorFormatter(ctx, err),
					Ephemeral: ctx.IsButton(),
				},
				Context: map[string]interface{}{
					"error": err,
				},
			}, nil
		})
	}
}

// RecoveryMiddleware recovers from panics
func RecoveryMiddleware() core.Middleware {
	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.EventContext) (result *core.HandlerResult, err error) {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("[Discord] panic recovered in %s: %v\n%s", ctx.Route(), r, debug.Stack())

					result = &core.HandlerResult{
						Response: &core.Response{
							Content:   core.FallbackMessage(ctx.Kind),
							Ephemeral: ctx.IsButton(),
						},
						Context: map[string]interface{}{
							"error": panicError(r),
						},
					}
					err = nil
				}
			}()

			return next.Handle(ctx)
		})
	}
}

func panicError(r interface{}) error {
	switch v := r.(type) {
	case error:
		return v
	case string:
		return errors.New(v)
	default:
		return fmt.Errorf("panic: %v", r)
	}
}

// defaultErrorFormatter shows handler messages and hides everything else
func defaultErrorFormatter(ctx *core.EventContext, err error) string {
	var handlerErr *core.HandlerError
	if errors.As(err, &handlerErr) && handlerErr.ShowToUser {
		return handlerErr.UserMessage
	}

	return core.FallbackMessage(ctx.Kind)
}

// defaultErrorLogger provides basic error logging
func defaultErrorLogger(ctx *core.EventContext, err error) {
	logCtx := map[string]interface{}{
		"route":      ctx.Route(),
		"user_id":    ctx.UserID,
		"guild_id":   ctx.GuildID,
		"channel_id": ctx.ChannelID,
		"code":       dexerr.RootCode(err),
	}
	if id := RequestID(ctx); id != "" {
		logCtx["request_id"] = id
	}
	for k, v := range dexerr.GetMeta(err) {
		logCtx[k] = v
	}

	log.Printf("[Discord] handler error: %v, context: %+v", err, logCtx)
}
