package letters

import (
	"strconv"
	"strings"

	"github.com/careerforge/careerforge-backend/internal/dtos"
)

// keyNamespace prefixes every derived key so cache rows are recognizable when
// poking at the store by hand.
const keyNamespace = "cover-letter"

// noneSentinel stands in for the optional key fields when they are absent, so
// "no recipient" and recipient "none" land on the same key on purpose.
const noneSentinel = "none"

// Request kinds. These go into the cache key verbatim, so renaming them
// invalidates every live cache entry.
const (
	KindCoverLetter     = "coverLetter"
	KindOutreachMessage = "outreachMessage"
)

const defaultTone = "formal"

// DeriveKey maps a generation request to its cache key. It is deterministic
// over exactly these fields: requester id, role title, company name, request
// kind, tone, recipient, job source and the regeneration counter. Everything
// else (notably the full job description text) is deliberately ignored:
// near-identical requests should share one cache slot.
//
// The joined key is sanitized to [A-Za-z0-9:-]; every other rune becomes '_',
// which keeps the result safe as an opaque identifier in any backing store.
func DeriveKey(req *dtos.CoverLetterRequest) string {
	recipient := strings.TrimSpace(req.HiringManager)
	if recipient == "" {
		recipient = noneSentinel
	}
	source := noneSentinel
	if req.JobSourceInfo != nil && strings.TrimSpace(req.JobSourceInfo.Source) != "" {
		source = strings.TrimSpace(req.JobSourceInfo.Source)
	}

	parts := []string{
		keyNamespace,
		req.DeveloperProfile.ID,
		req.RoleInfo.Title,
		req.CompanyInfo.Name,
		RequestKind(req),
		Tone(req),
		recipient,
		source,
		strconv.Itoa(req.RegenerationCount),
	}
	return sanitizeKey(strings.Join(parts, ":"))
}

// RequestKind returns the request kind, defaulting to coverLetter.
func RequestKind(req *dtos.CoverLetterRequest) string {
	if req.RequestType == KindOutreachMessage {
		return KindOutreachMessage
	}
	return KindCoverLetter
}

// Tone returns the requested tone, defaulting to formal.
func Tone(req *dtos.CoverLetterRequest) string {
	tone := strings.TrimSpace(req.Tone)
	if tone == "" {
		return defaultTone
	}
	return tone
}

func sanitizeKey(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == ':', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
