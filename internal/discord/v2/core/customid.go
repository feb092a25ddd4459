package core

import (
	"fmt"
	"strings"
)

const (
	// CustomIDSeparator is the character used to separate parts
	CustomIDSeparator = ":"

	// MaxCustomIDLength is Discord's limit for custom IDs
	MaxCustomIDLength = 100

	// DexDomain prefixes every button this bot renders
	DexDomain = "dex"
)

// CustomID represents a parsed custom ID with type-safe access
type CustomID struct {
	// Domain is the top-level category, e.g. "dex"
	Domain string

	// Action is the specific action, e.g. "stats"
	Action string

	// Args are additional arguments
	Args []string
}

// NewCustomID creates a new CustomID
func NewCustomID(domain, action string) *CustomID {
	return &CustomID{
		Domain: domain,
		Action: action,
	}
}

// WithArgs adds arguments
func (c *CustomID) WithArgs(args ...string) *CustomID {
	c.Args = append(c.Args, args...)
	return c
}

// Encode converts the CustomID to a string
func (c *CustomID) Encode() (string, error) {
	if c.Domain == "" || c.Action == "" {
		return "", fmt.Errorf("custom ID needs a domain and an action")
	}

	parts := append([]string{c.Domain, c.Action}, c.Args...)
	result := strings.Join(parts, CustomIDSeparator)

	if len(result) > MaxCustomIDLength {
		return "", fmt.Errorf("custom ID exceeds maximum length of %d characters", MaxCustomIDLength)
	}

	return result, nil
}

// MustEncode is like Encode but panics on error
func (c *CustomID) MustEncode() string {
	result, err := c.Encode()
	if err != nil {
		panic(err)
	}
	return result
}

// ParseCustomID parses a custom ID string
func ParseCustomID(customID string) (*CustomID, error) {
	if customID == "" {
		return nil, fmt.Errorf("empty custom ID")
	}

	parts := strings.Split(customID, CustomIDSeparator)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return nil, fmt.Errorf("invalid custom ID format: expected at least domain:action")
	}

	result := &CustomID{
		Domain: parts[0],
		Action: parts[1],
	}
	if len(parts) > 2 {
		result.Args = parts[2:]
	}

	return result, nil
}

// ButtonAction is the closed set of follow-up buttons under a creature card
type ButtonAction string

const (
	ButtonUnknown           ButtonAction = ""
	ButtonStats             ButtonAction = "stats"
	ButtonAbilities         ButtonAction = "abilities"
	ButtonCategoryBreakdown ButtonAction = "category-breakdown"
)

// ButtonActions lists the buttons in display order
var ButtonActions = []ButtonAction{ButtonStats, ButtonAbilities, ButtonCategoryBreakdown}

func (a ButtonAction) String() string {
	return string(a)
}

// CustomID returns the encoded id for the button, e.g. "dex:stats"
func (a ButtonAction) CustomID() string {
	return NewCustomID(DexDomain, string(a)).MustEncode()
}

// ParseButtonAction reads a dex button id, ButtonUnknown for anything else
func ParseButtonAction(customID string) ButtonAction {
	parsed, err := ParseCustomID(customID)
	if err != nil || parsed.Domain != DexDomain {
		return ButtonUnknown
	}

	action := ButtonAction(parsed.Action)
	switch action {
	case ButtonStats, ButtonAbilities, ButtonCategoryBreakdown:
		return action
	default:
		return ButtonUnknown
	}
}
