package letters

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerforge/careerforge-backend/internal/cache"
	"github.com/careerforge/careerforge-backend/internal/dtos"
)

type fakeGenerator struct {
	calls int
	text  string
	err   error
}

func (g *fakeGenerator) Generate(_ context.Context, _, _ string) (string, error) {
	g.calls++
	if g.err != nil {
		return "", g.err
	}
	return g.text, nil
}

func (g *fakeGenerator) Provider() string { return "fake" }

// brokenStore fails every operation, standing in for an unavailable backend.
type brokenStore struct{}

func (brokenStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("store unavailable")
}

func (brokenStore) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("store unavailable")
}

func TestGenerateMissThenHit(t *testing.T) {
	gen := &fakeGenerator{text: sampleLetter(260)}
	svc := NewLetterService(cache.NewMemoryStore(), gen)
	ctx := context.Background()

	first, err := svc.Generate(ctx, baseRequest())
	require.NoError(t, err)
	assert.False(t, first.Cached)
	assert.Equal(t, "fake", first.Provider)
	assert.Equal(t, 1, gen.calls)

	// Identical request: served from cache, generator untouched.
	second, err := svc.Generate(ctx, baseRequest())
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Letter, second.Letter)
	assert.Equal(t, first.Provider, second.Provider)
	assert.Equal(t, 1, gen.calls, "cache hit must not invoke the generator")
}

func TestGenerateCacheEntryExpires(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := cache.NewMemoryStore().WithClock(func() time.Time { return now })
	gen := &fakeGenerator{text: sampleLetter(260)}
	svc := NewLetterService(store, gen)
	ctx := context.Background()

	_, err := svc.Generate(ctx, baseRequest())
	require.NoError(t, err)

	// 11 minutes later the 10-minute entry is stale: generation runs again.
	now = now.Add(11 * time.Minute)
	result, err := svc.Generate(ctx, baseRequest())
	require.NoError(t, err)
	assert.False(t, result.Cached)
	assert.Equal(t, 2, gen.calls)
}

func TestGenerateFailFastOnMissingFields(t *testing.T) {
	gen := &fakeGenerator{text: sampleLetter(260)}
	svc := NewLetterService(cache.NewMemoryStore(), gen)

	tests := []struct {
		name   string
		mutate func(r *dtos.CoverLetterRequest)
	}{
		{"missing profile", func(r *dtos.CoverLetterRequest) { r.DeveloperProfile = nil }},
		{"blank profile id", func(r *dtos.CoverLetterRequest) { r.DeveloperProfile.ID = "  " }},
		{"missing role", func(r *dtos.CoverLetterRequest) { r.RoleInfo = nil }},
		{"missing company", func(r *dtos.CoverLetterRequest) { r.CompanyInfo = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := baseRequest()
			tt.mutate(req)

			_, err := svc.Generate(context.Background(), req)
			var pErr *PipelineError
			require.ErrorAs(t, err, &pErr)
			assert.Equal(t, CodeValidationError, pErr.Code)
			assert.Equal(t, 0, gen.calls, "validation failures must not reach the generator")
		})
	}
}

func TestGenerateProviderFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("quota exceeded")}
	store := cache.NewMemoryStore()
	svc := NewLetterService(store, gen)

	_, err := svc.Generate(context.Background(), baseRequest())
	var pErr *PipelineError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, CodeGenerationError, pErr.Code)
	assert.Contains(t, pErr.Error(), "quota exceeded", "provider message must be preserved")
	assert.Equal(t, 0, store.Len(), "failed generations are never cached")
}

func TestGenerateInvalidOutputNotCached(t *testing.T) {
	gen := &fakeGenerator{text: sampleLetter(450)} // past the hard max
	store := cache.NewMemoryStore()
	svc := NewLetterService(store, gen)
	ctx := context.Background()

	_, err := svc.Generate(ctx, baseRequest())
	var pErr *PipelineError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, CodeLetterValidationError, pErr.Code)
	assert.Equal(t, 456, pErr.Meta["wordCount"])
	require.NotEmpty(t, pErr.Meta["errors"])
	assert.Equal(t, 0, store.Len(), "invalid output is never cached")

	// A later request on the same key pays for generation again.
	gen.text = sampleLetter(260)
	result, err := svc.Generate(ctx, baseRequest())
	require.NoError(t, err)
	assert.False(t, result.Cached)
	assert.Equal(t, 2, gen.calls)
}

func TestGenerateWarningsStillSucceedAndCache(t *testing.T) {
	// No greeting: advisory only, the letter is still served and cached.
	gen := &fakeGenerator{text: strings.TrimSpace(strings.Repeat("word ", 260)) + "\n\nSincerely,\nJane"}
	store := cache.NewMemoryStore()
	svc := NewLetterService(store, gen)
	ctx := context.Background()

	result, err := svc.Generate(ctx, baseRequest())
	require.NoError(t, err)
	assert.False(t, result.Cached)
	assert.Equal(t, 1, store.Len(), "valid output with warnings is cached")

	second, err := svc.Generate(ctx, baseRequest())
	require.NoError(t, err)
	assert.True(t, second.Cached)
}

func TestGenerateSurvivesBrokenCache(t *testing.T) {
	gen := &fakeGenerator{text: sampleLetter(260)}
	svc := NewLetterService(brokenStore{}, gen)

	// Read failure downgrades to a miss, write failure is swallowed.
	result, err := svc.Generate(context.Background(), baseRequest())
	require.NoError(t, err)
	assert.False(t, result.Cached)
	assert.Equal(t, result.Letter, gen.text)
}
