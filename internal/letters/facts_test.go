package letters

import (
	"reflect"
	"testing"

	"github.com/careerforge/careerforge-backend/internal/dtos"
)

func TestRankRoleKeywords(t *testing.T) {
	role := &dtos.RoleInfo{
		Title:        "Backend Engineer",
		Skills:       []string{"PostgreSQL", "Kubernetes"},
		Requirements: []string{"PostgreSQL tuning", "distributed systems"},
		Description:  "We run distributed systems on Kubernetes. The team owns backend services.",
	}

	first := RankRoleKeywords(role)
	second := RankRoleKeywords(role)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("keyword ranking must be deterministic")
	}

	// postgresql: 3 (skill) + 2 (requirement) = 5, the top term.
	if len(first) == 0 || first[0] != "postgresql" {
		t.Errorf("expected postgresql ranked first, got %v", first)
	}

	for _, kw := range first {
		if stopwords[kw] {
			t.Errorf("stopword %q leaked into keywords", kw)
		}
	}
}

func TestRankRoleKeywordsNilRole(t *testing.T) {
	if got := RankRoleKeywords(nil); got != nil {
		t.Errorf("expected nil for nil role, got %v", got)
	}
}

func TestPickCoreSkills(t *testing.T) {
	profile := &dtos.DeveloperProfile{
		Skills: []string{"Go", "Rust", "PostgreSQL", "Terraform"},
	}
	role := &dtos.RoleInfo{
		Title:        "Backend Engineer",
		Requirements: []string{"PostgreSQL experience", "Go services"},
	}

	got := PickCoreSkills(profile, role)
	if len(got) == 0 {
		t.Fatal("expected some core skills")
	}
	// Skills the role mentions come first.
	if got[0] != "Go" || got[1] != "PostgreSQL" {
		t.Errorf("expected role-matched skills first, got %v", got)
	}
	// Unmatched profile skills still trail as filler.
	if got[len(got)-1] != "Terraform" {
		t.Errorf("expected unmatched skills to trail, got %v", got)
	}
}

func TestPickCoreSkillsCap(t *testing.T) {
	profile := &dtos.DeveloperProfile{
		Skills: []string{"a1", "b2", "c3", "d4", "e5", "f6", "g7", "h8"},
	}
	if got := PickCoreSkills(profile, nil); len(got) != maxCoreSkills {
		t.Errorf("expected cap at %d skills, got %d", maxCoreSkills, len(got))
	}
}

func TestSynthesizeAchievements(t *testing.T) {
	profile := &dtos.DeveloperProfile{
		Achievements: []string{"Cut p99 latency by 40%", "  ", "Led a team of 5"},
	}
	extra := []string{"Shipped the billing rewrite", "cut P99 latency by 40%"}

	got := SynthesizeAchievements(profile, extra)
	want := []string{
		"Shipped the billing rewrite",
		"cut P99 latency by 40%", // request-level copy wins the dedupe
		"Led a team of 5",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
