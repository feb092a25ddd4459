package internal

import dexerr "github.com/KirkDiggler/pokedex-bot-discord/internal/errors"

// NewMissingParamError reports a required constructor parameter that was not set
func NewMissingParamError(param string) error {
	return dexerr.InvalidArgumentf("missing parameter: %s", param).WithMeta("param", param)
}

// NewInvalidParamError reports a parameter that was set to something unusable
func NewInvalidParamError(msg string) error {
	return dexerr.InvalidArgumentf("invalid parameter: %s", msg)
}
