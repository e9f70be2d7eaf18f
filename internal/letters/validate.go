package letters

import (
	"fmt"
	"strings"
)

// WordWindow is the per-kind length configuration. TargetMin/TargetMax is the
// window the prompt asks for; HardMax is the enforcement bound past which the
// output is rejected outright. Generation routinely overshoots the target a
// little, so the hard bound sits well above it.
type WordWindow struct {
	TargetMin int
	TargetMax int
	HardMax   int
}

var wordLimits = map[string]WordWindow{
	KindCoverLetter:     {TargetMin: 250, TargetMax: 300, HardMax: 400},
	KindOutreachMessage: {TargetMin: 150, TargetMax: 180, HardMax: 250},
}

// ValidationResult is what Validate reports about one generated text.
// Errors are hard violations (the letter is unusable), Warnings are advisory.
type ValidationResult struct {
	IsValid        bool     `json:"isValid"`
	Errors         []string `json:"errors"`
	Warnings       []string `json:"warnings"`
	WordCount      int      `json:"wordCount"`
	ParagraphCount int      `json:"paragraphCount"`
	SentenceCount  int      `json:"sentenceCount"`
}

var greetingPrefixes = []string{"dear ", "hello ", "hi ", "hey "}

var closingMarkers = []string{
	"sincerely", "best regards", "kind regards", "warm regards", "regards",
	"best,", "thank you", "thanks", "yours",
}

// Validate checks generated text against the structural and length rules for
// its request kind. Only the word-count ceiling is a hard error: the prompt
// instructs the model on greeting, sign-off and formatting, but we cannot
// enforce those upstream, so violations come back as warnings.
func Validate(text, requestKind string) ValidationResult {
	window, ok := wordLimits[requestKind]
	if !ok {
		window = wordLimits[KindCoverLetter]
	}

	result := ValidationResult{
		WordCount:      len(strings.Fields(text)),
		ParagraphCount: countParagraphs(text),
		SentenceCount:  countSentences(text),
	}

	if result.WordCount > window.HardMax {
		result.Errors = append(result.Errors,
			fmt.Sprintf("word count %d exceeds maximum %d for %s", result.WordCount, window.HardMax, requestKind))
	}

	if !hasGreeting(text) {
		result.Warnings = append(result.Warnings, "no recognizable greeting line")
	}
	if !hasClosing(text) {
		result.Warnings = append(result.Warnings, "no closing or sign-off found")
	}
	if markdown := markdownArtifacts(text); len(markdown) > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("markdown formatting detected (%s)", strings.Join(markdown, ", ")))
	}

	result.IsValid = len(result.Errors) == 0
	return result
}

func hasGreeting(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		for _, prefix := range greetingPrefixes {
			if strings.HasPrefix(lower, prefix) {
				return true
			}
		}
		// Only the first non-empty line counts as a greeting candidate.
		return false
	}
	return false
}

func hasClosing(text string) bool {
	lines := nonEmptyLines(text)
	// Look at the tail of the letter; a sign-off buried mid-text doesn't count.
	start := len(lines) - 3
	if start < 0 {
		start = 0
	}
	for _, line := range lines[start:] {
		lower := strings.ToLower(line)
		for _, marker := range closingMarkers {
			if strings.Contains(lower, marker) {
				return true
			}
		}
	}
	return false
}

// markdownArtifacts reports which forbidden formatting showed up anyway.
func markdownArtifacts(text string) []string {
	var found []string
	if strings.Contains(text, "**") {
		found = append(found, "bold markers")
	}
	if strings.Contains(text, "•") {
		found = append(found, "bullet characters")
	}
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "* ") || strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "# ") {
			found = append(found, "list/heading markers")
			break
		}
	}
	return found
}

func countParagraphs(text string) int {
	count := 0
	for _, block := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(block) != "" {
			count++
		}
	}
	return count
}

func countSentences(text string) int {
	count := 0
	for _, r := range text {
		if r == '.' || r == '!' || r == '?' {
			count++
		}
	}
	return count
}

func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
