package internal_test

import (
	"testing"

	internal "github.com/KirkDiggler/pokedex-bot-discord/internal"
	dexerr "github.com/KirkDiggler/pokedex-bot-discord/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestNewMissingParamError(t *testing.T) {
	err := internal.NewMissingParamError("cfg.HttpClient")

	assert.True(t, dexerr.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "missing parameter: cfg.HttpClient")
	assert.Equal(t, "cfg.HttpClient", dexerr.GetMeta(err)["param"])
}

func TestNewInvalidParamError(t *testing.T) {
	err := internal.NewInvalidParamError("base url has no scheme")

	assert.True(t, dexerr.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "invalid parameter: base url has no scheme")
}
