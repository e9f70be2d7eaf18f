package letters

import (
	"sort"
	"strings"

	"github.com/careerforge/careerforge-backend/internal/dtos"
)

// DerivedFacts are the summary fields the structured-fallback template
// substitutes in place of raw CV text. All three lists are pure functions of
// the request: same input, same output, same order.
type DerivedFacts struct {
	Keywords           []string
	CoreSkills         []string
	AchievementBullets []string
}

const (
	maxKeywords     = 10
	maxCoreSkills   = 6
	maxAchievements = 5
)

// stopwords filtered out of role-keyword ranking. Lowercase.
var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "you": true,
	"our": true, "are": true, "will": true, "have": true, "that": true,
	"this": true, "from": true, "your": true, "who": true, "what": true,
	"work": true, "team": true, "role": true, "job": true, "years": true,
	"experience": true, "strong": true, "ability": true, "skills": true,
	"knowledge": true, "working": true, "well": true, "must": true,
	"plus": true, "etc": true, "per": true, "all": true, "can": true,
}

// DeriveFacts bundles the three helpers for one request.
func DeriveFacts(req *dtos.CoverLetterRequest) DerivedFacts {
	return DerivedFacts{
		Keywords:           RankRoleKeywords(req.RoleInfo),
		CoreSkills:         PickCoreSkills(req.DeveloperProfile, req.RoleInfo),
		AchievementBullets: SynthesizeAchievements(req.DeveloperProfile, req.Achievements),
	}
}

// RankRoleKeywords pulls the most frequent meaningful terms out of the role's
// title, requirements, skills and description. Explicit role skills are
// weighted so they rank ahead of incidental description words. Ties break
// alphabetically to keep the order stable.
func RankRoleKeywords(role *dtos.RoleInfo) []string {
	if role == nil {
		return nil
	}
	counts := make(map[string]int)

	bump := func(text string, weight int) {
		for _, tok := range tokenize(text) {
			counts[tok] += weight
		}
	}

	bump(role.Title, 3)
	for _, s := range role.Skills {
		bump(s, 3)
	}
	for _, r := range role.Requirements {
		bump(r, 2)
	}
	bump(role.Description, 1)

	keywords := make([]string, 0, len(counts))
	for k := range counts {
		keywords = append(keywords, k)
	}
	sort.Slice(keywords, func(i, j int) bool {
		if counts[keywords[i]] != counts[keywords[j]] {
			return counts[keywords[i]] > counts[keywords[j]]
		}
		return keywords[i] < keywords[j]
	})

	if len(keywords) > maxKeywords {
		keywords = keywords[:maxKeywords]
	}
	return keywords
}

// PickCoreSkills selects the profile skills worth leading with: the ones the
// role actually mentions. If nothing overlaps (or the role lists nothing), the
// leading profile skills are used as-is.
func PickCoreSkills(profile *dtos.DeveloperProfile, role *dtos.RoleInfo) []string {
	if profile == nil {
		return nil
	}

	var roleText strings.Builder
	if role != nil {
		roleText.WriteString(strings.ToLower(role.Title))
		roleText.WriteByte(' ')
		roleText.WriteString(strings.ToLower(strings.Join(role.Skills, " ")))
		roleText.WriteByte(' ')
		roleText.WriteString(strings.ToLower(strings.Join(role.Requirements, " ")))
		roleText.WriteByte(' ')
		roleText.WriteString(strings.ToLower(role.Description))
	}
	haystack := roleText.String()

	var matched, rest []string
	for _, skill := range profile.Skills {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			continue
		}
		if strings.Contains(haystack, strings.ToLower(skill)) {
			matched = append(matched, skill)
		} else {
			rest = append(rest, skill)
		}
	}

	picked := append(matched, rest...)
	if len(picked) > maxCoreSkills {
		picked = picked[:maxCoreSkills]
	}
	return picked
}

// SynthesizeAchievements merges request-level and profile achievements into a
// deduplicated bullet list, request ones first since the user picked them for
// this application.
func SynthesizeAchievements(profile *dtos.DeveloperProfile, extra []string) []string {
	seen := make(map[string]bool)
	var bullets []string

	add := func(items []string) {
		for _, item := range items {
			item = strings.TrimSpace(item)
			if item == "" {
				continue
			}
			lower := strings.ToLower(item)
			if seen[lower] {
				continue
			}
			seen[lower] = true
			bullets = append(bullets, item)
		}
	}

	add(extra)
	if profile != nil {
		add(profile.Achievements)
	}

	if len(bullets) > maxAchievements {
		bullets = bullets[:maxAchievements]
	}
	return bullets
}

// tokenize lowercases and splits on non-alphanumerics, dropping stopwords and
// tokens shorter than 3 runes. Tokens with digits (e.g. "k8s", "es6") survive.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9') && r != '+' && r != '#'
	})
	var tokens []string
	for _, f := range fields {
		if len(f) < 3 || stopwords[f] {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}
