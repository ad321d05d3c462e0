package utils

import "github.com/google/uuid"

// IDGenerator yields unique identifiers for runs and requests.
type IDGenerator interface {
	Generate() string
}

// UUIDGenerator produces time-ordered UUIDv7 strings, so run IDs sort by
// start time in logs.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// StaticID always generates the same identifier.
type StaticID string

func (s StaticID) Generate() string {
	return string(s)
}
