// Package uuid generates request IDs behind an interface tests can replace
package uuid

//go:generate mockgen -destination=mock/mock_generator.go -package=mockuuid . Generator

import (
	"strings"

	"github.com/google/uuid"
)

// DefaultShortLength keeps log tags readable while staying unique enough per process
const DefaultShortLength = 8

// Generator is an interface for generating UUIDs
type Generator interface {
	New() string
}

// GoogleUUIDGenerator implements the Generator interface using Google's UUID package
type GoogleUUIDGenerator struct{}

// New generates a new UUID string
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// ShortGenerator returns the first hex digits of a random UUID, for log tags
type ShortGenerator struct {
	length int
}

// NewShortGenerator creates a generator of IDs with length hex digits, capped at 32
func NewShortGenerator(length int) *ShortGenerator {
	if length <= 0 {
		length = DefaultShortLength
	}
	if length > 32 {
		length = 32
	}
	return &ShortGenerator{length: length}
}

// New generates a new short ID
func (g *ShortGenerator) New() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:g.length]
}
