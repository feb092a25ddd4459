package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	internal "github.com/KirkDiggler/pokedex-bot-discord/internal"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/entities"
	dexerr "github.com/KirkDiggler/pokedex-bot-discord/internal/errors"
)

// DefaultBaseURL is the public PokeAPI endpoint
const DefaultBaseURL = "https://pokeapi.co/api/v2"

// maxErrorBody bounds how much of an error response ends up in logs
const maxErrorBody = 512

type client struct {
	httpClient *http.Client
	baseURL    string
}

// Config holds configuration for the client
type Config struct {
	HttpClient *http.Client // Required, carries the request timeout
	BaseURL    string       // defaults to DefaultBaseURL
}

// New creates a PokeAPI client
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, internal.NewMissingParamError("cfg")
	}
	if cfg.HttpClient == nil {
		return nil, internal.NewMissingParamError("cfg.HttpClient")
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &client{
		httpClient: cfg.HttpClient,
		baseURL:    baseURL,
	}, nil
}

func (c *client) GetPokemon(ctx context.Context, nameOrID string) (*entities.Creature, error) {
	if nameOrID == "" {
		return nil, dexerr.InvalidArgument("pokemon name or id is required")
	}

	var resp apiPokemon
	if err := c.get(ctx, c.baseURL+"/pokemon/"+url.PathEscape(nameOrID), &resp); err != nil {
		return nil, dexerr.Wrapf(err, "pokemon %q", nameOrID)
	}

	return apiPokemonToCreature(&resp), nil
}

func (c *client) GetSpecies(ctx context.Context, speciesURL string) (*entities.Species, error) {
	if speciesURL == "" {
		return nil, dexerr.InvalidArgument("species url is required")
	}

	var resp apiSpecies
	if err := c.get(ctx, speciesURL, &resp); err != nil {
		return nil, dexerr.Wrap(err, "species")
	}

	return apiSpeciesToSpecies(&resp), nil
}

func (c *client) GetType(ctx context.Context, name string) (*entities.CategoryInfo, error) {
	if name == "" {
		return nil, dexerr.InvalidArgument("type name is required")
	}

	var resp apiType
	if err := c.get(ctx, c.baseURL+"/type/"+url.PathEscape(strings.ToLower(name)), &resp); err != nil {
		return nil, dexerr.Wrapf(err, "type %q", name)
	}

	return apiTypeToCategoryInfo(&resp), nil
}

// get performs a GET and decodes a JSON body into out
func (c *client) get(ctx context.Context, target string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return dexerr.WrapWithCode(err, dexerr.CodeUnavailable, "building request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[PokeAPI] GET %s failed: %v", target, err)
		return dexerr.WrapWithCode(err, dexerr.CodeUnavailable, "request failed")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		_, _ = io.Copy(io.Discard, resp.Body)
		return dexerr.NotFound("not found").WithMeta("url", target)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		log.Printf("[PokeAPI] GET %s returned %d: %s", target, resp.StatusCode, strings.TrimSpace(string(body)))
		return dexerr.Unavailablef("unexpected status %d", resp.StatusCode).
			WithMeta("url", target).
			WithMeta("status", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Printf("[PokeAPI] GET %s: malformed payload: %v", target, err)
		return dexerr.WrapWithCode(err, dexerr.CodeUnavailable, fmt.Sprintf("decoding %s", target))
	}

	return nil
}
