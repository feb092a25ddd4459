// Package names turns user supplied creature names into provider identifiers
package names

import (
	_ "embed"
	"sort"
	"strings"

	dexerr "github.com/KirkDiggler/pokedex-bot-discord/internal/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed aliases.yaml
var defaultAliases []byte

// Resolver canonicalizes names against an alias table. It is read only after
// construction and safe for concurrent use.
type Resolver struct {
	aliases map[string]string
}

type aliasFile struct {
	Aliases map[string]string `yaml:"aliases"`
}

// Load parses the embedded alias table
func Load() (*Resolver, error) {
	return Parse(defaultAliases)
}

// MustLoad is like Load but panics on error
func MustLoad() *Resolver {
	r, err := Load()
	if err != nil {
		panic(err)
	}
	return r
}

// Parse builds a resolver from YAML. Keys and targets must already be in
// normalized form and no target may be aliased to something else.
func Parse(data []byte) (*Resolver, error) {
	var file aliasFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, dexerr.Wrap(err, "parsing alias table")
	}
	return New(file.Aliases)
}

// New builds a resolver from an in-memory table
func New(aliases map[string]string) (*Resolver, error) {
	table := make(map[string]string, len(aliases))

	// sorted so the reported error is stable
	keys := make([]string, 0, len(aliases))
	for k := range aliases {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, alias := range keys {
		target := aliases[alias]
		if alias == "" || target == "" {
			return nil, dexerr.InvalidArgumentf("alias table: empty entry %q -> %q", alias, target)
		}
		if Normalize(alias) != alias {
			return nil, dexerr.InvalidArgumentf("alias table: key %q is not normalized", alias)
		}
		if Normalize(target) != target {
			return nil, dexerr.InvalidArgumentf("alias table: target %q is not normalized", target)
		}
		if next, chained := aliases[target]; chained && next != target {
			return nil, dexerr.InvalidArgumentf("alias table: %q -> %q -> %q is not idempotent", alias, target, next)
		}
		table[alias] = target
	}

	return &Resolver{aliases: table}, nil
}

// Normalize lowercases, trims and collapses internal whitespace runs to one hyphen
func Normalize(input string) string {
	return strings.Join(strings.Fields(strings.ToLower(input)), "-")
}

// Canonicalize normalizes the input and applies the alias table. Unknown names
// pass through unchanged. Canonicalize(Canonicalize(x)) == Canonicalize(x).
func (r *Resolver) Canonicalize(input string) string {
	key := Normalize(input)
	if target, ok := r.aliases[key]; ok {
		return target
	}
	return key
}

// Alias applies only the table lookup to an already normalized key
func (r *Resolver) Alias(key string) string {
	if target, ok := r.aliases[key]; ok {
		return target
	}
	return key
}

// Len returns the number of aliases
func (r *Resolver) Len() int {
	return len(r.aliases)
}

// Display renders a provider identifier for humans, e.g. "charizard-mega-x" -> "Charizard Mega X"
func Display(name string) string {
	// a Caser keeps state and is not safe to share between goroutines
	caser := cases.Title(language.English)
	return caser.String(strings.ReplaceAll(name, "-", " "))
}
