package letters

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/careerforge/careerforge-backend/internal/cache"
	"github.com/careerforge/careerforge-backend/internal/dtos"
)

// cacheTTL is how long a generated letter stays servable from cache. No
// sliding expiration: a hit does not extend the clock.
const cacheTTL = 10 * time.Minute

// cachedLetter is the JSON shape stored under a cache key, enough to replay
// the full success response on a hit.
type cachedLetter struct {
	Letter   string `json:"letter"`
	Provider string `json:"provider"`
}

// GenerationResult is the orchestrator's success value.
type GenerationResult struct {
	Letter   string
	Provider string
	Cached   bool
}

// LetterService sequences the pipeline: derive key, try cache, otherwise
// render prompt, generate, validate, cache, respond. Each invocation is
// stateless; the cache store is the only shared mutable state.
type LetterService struct {
	Cache     cache.Store
	Generator Generator
}

func NewLetterService(store cache.Store, generator Generator) *LetterService {
	return &LetterService{
		Cache:     store,
		Generator: generator,
	}
}

// Generate runs one request through the pipeline. Errors are always
// *PipelineError; the HTTP layer maps their codes to statuses.
//
// Two invariants worth calling out:
//   - a cache hit bypasses generation AND validation entirely;
//   - only validated output is ever written to the cache, so a letter that
//     failed the hard checks can never be served to a later request.
func (s *LetterService) Generate(ctx context.Context, req *dtos.CoverLetterRequest) (*GenerationResult, error) {
	if err := checkRequired(req); err != nil {
		return nil, err
	}

	key := DeriveKey(req)
	logPrefix := fmt.Sprintf("[letter %s]", key)

	// Cache lookup. A read failure is the same as a miss.
	if value, ok, err := s.Cache.Get(ctx, key); err != nil {
		log.Printf("%s ⚠️ cache read failed, treating as miss: %v", logPrefix, err)
	} else if ok {
		var cached cachedLetter
		if err := json.Unmarshal(value, &cached); err != nil {
			log.Printf("%s ⚠️ corrupt cache entry, treating as miss: %v", logPrefix, err)
		} else {
			log.Printf("%s ✅ cache hit", logPrefix)
			return &GenerationResult{Letter: cached.Letter, Provider: cached.Provider, Cached: true}, nil
		}
	}

	facts := DeriveFacts(req)
	rendered := SelectAndRender(req, facts)
	log.Printf("%s 📝 cache miss, rendering %s template", logPrefix, rendered.Kind)

	text, err := s.Generator.Generate(ctx, rendered.Prompt, RequestKind(req))
	if err != nil {
		log.Printf("%s ❌ generation failed: %v", logPrefix, err)
		if pErr, ok := err.(*PipelineError); ok {
			return nil, pErr
		}
		return nil, newGenerationError("generation failed", err)
	}

	result := Validate(text, RequestKind(req))
	if !result.IsValid {
		// Invalid output is never cached.
		log.Printf("%s ❌ output failed validation: %v", logPrefix, result.Errors)
		return nil, newLetterValidationError(result)
	}
	if len(result.Warnings) > 0 {
		log.Printf("%s ⚠️ output warnings: %v", logPrefix, result.Warnings)
	}

	provider := s.Generator.Provider()
	value, err := json.Marshal(cachedLetter{Letter: text, Provider: provider})
	if err == nil {
		err = s.Cache.Set(ctx, key, value, cacheTTL)
	}
	if err != nil {
		// Non-fatal: the letter is fine, only the next request pays again.
		log.Printf("%s ⚠️ cache write failed: %v", logPrefix, err)
	} else {
		log.Printf("%s ✅ generated %d words, cached for %s", logPrefix, result.WordCount, cacheTTL)
	}

	return &GenerationResult{Letter: text, Provider: provider, Cached: false}, nil
}

// checkRequired enforces the fail-fast invariant: requester profile, role and
// company must all be present before any cache or generation work happens.
// Gin's binding already rejects most of this; the service re-checks so it can
// be driven directly (tests, future queue consumers) without the HTTP layer.
func checkRequired(req *dtos.CoverLetterRequest) *PipelineError {
	switch {
	case req == nil:
		return newValidationError("request body is required")
	case req.DeveloperProfile == nil || strings.TrimSpace(req.DeveloperProfile.ID) == "":
		return newValidationError("developerProfile with id is required")
	case req.RoleInfo == nil || strings.TrimSpace(req.RoleInfo.Title) == "":
		return newValidationError("roleInfo with title is required")
	case req.CompanyInfo == nil || strings.TrimSpace(req.CompanyInfo.Name) == "":
		return newValidationError("companyInfo with name is required")
	}
	return nil
}
