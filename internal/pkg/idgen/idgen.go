// Package idgen derives suggested template identifiers for generated content
package idgen

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mock/mock.go -package=idgenmock github.com/cardforge/forge-api/internal/pkg/idgen Generator

// FallbackSlug is used when a name normalizes to nothing.
const FallbackSlug = "gen"

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Generator derives a suggested template ID from a display name. The ID is
// an opaque correlation key for downstream asset and persistence
// collaborators; it is not checked against any catalog here.
type Generator interface {
	SuggestID(name string) string
}

// Slugify lower-cases a name, collapses every run of non-alphanumeric
// characters into a single underscore, and trims leading and trailing
// underscores. An empty result falls back to FallbackSlug.
func Slugify(name string) string {
	slug := nonAlphanumeric.ReplaceAllString(strings.ToLower(name), "_")
	slug = strings.Trim(slug, "_")
	if slug == "" {
		return FallbackSlug
	}
	return slug
}

// SlugGenerator derives IDs with the format: slug_randomhex. The suffix comes
// from crypto/rand because it doubles as the uniqueness guarantee across
// repeated calls with the same name.
type SlugGenerator struct {
	suffixBytes int
}

// NewSlug creates a slug generator with a 3-byte (6 hex character) suffix.
func NewSlug() *SlugGenerator {
	return &SlugGenerator{suffixBytes: 3}
}

// SuggestID derives a new suggested template ID from the name.
func (g *SlugGenerator) SuggestID(name string) string {
	buf := make([]byte, g.suffixBytes)
	_, err := rand.Read(buf)
	if err != nil {
		// crypto/rand.Read should never fail on a properly configured system
		// If it does, it indicates a catastrophic system failure
		panic(fmt.Sprintf("crypto/rand.Read failed: %v", err))
	}
	return fmt.Sprintf("%s_%s", Slugify(name), hex.EncodeToString(buf))
}

// UUIDGenerator derives IDs with a full UUID suffix for callers that want a
// stronger uniqueness guarantee than the short hex suffix.
type UUIDGenerator struct{}

// NewUUID creates a UUID-suffixed generator.
func NewUUID() *UUIDGenerator {
	return &UUIDGenerator{}
}

// SuggestID derives a new suggested template ID from the name.
func (g *UUIDGenerator) SuggestID(name string) string {
	return fmt.Sprintf("%s_%s", Slugify(name), uuid.New().String())
}

// SequentialGenerator derives deterministic IDs for testing.
type SequentialGenerator struct {
	counter uint64
}

// NewSequential creates a new sequential generator.
func NewSequential() *SequentialGenerator {
	return &SequentialGenerator{}
}

// SuggestID derives a deterministic ID with a counter suffix.
func (g *SequentialGenerator) SuggestID(name string) string {
	n := atomic.AddUint64(&g.counter, 1)
	return fmt.Sprintf("%s_%d", Slugify(name), n)
}
