package letters

import (
	"fmt"
	"strings"

	"github.com/careerforge/careerforge-backend/internal/dtos"
)

// TemplateKind names which prompt variant a request rendered with.
type TemplateKind string

const (
	// TemplateRichSource substitutes the requester's raw CV text directly.
	TemplateRichSource TemplateKind = "rich-source"
	// TemplateStructuredFallback substitutes derived summary fields instead,
	// used when no free-text CV content is available.
	TemplateStructuredFallback TemplateKind = "structured-fallback"
)

// RenderedPrompt carries the fully substituted prompt plus the raw template
// text ({placeholder} form). The raw text only feeds debug tooling, but both
// come out of one render pass so they cannot drift apart.
type RenderedPrompt struct {
	Prompt   string
	Template string
	Kind     TemplateKind
}

// descriptor-driven rendering: a section is either a literal line (always
// emitted) or an optional field. An optional field whose value is blank after
// trimming is omitted entirely from the rendered prompt, label included. No
// "Field:" stubs, no "undefined" artifacts.
type promptSection struct {
	literal     string
	placeholder string
	format      string
	value       string
}

func literal(text string) promptSection {
	return promptSection{literal: text}
}

func field(placeholder, format, value string) promptSection {
	return promptSection{placeholder: placeholder, format: format, value: value}
}

// maxDescriptionChars caps the job-description text substituted into the
// prompt, mirroring the truncation applied to raw HTML elsewhere in the stack.
const maxDescriptionChars = 4000

// SelectAndRender picks the template variant for the request and renders it.
// Variant selection is a single rule: non-blank free-text CV content means
// rich-source, anything else means structured-fallback.
func SelectAndRender(req *dtos.CoverLetterRequest, facts DerivedFacts) RenderedPrompt {
	kind := TemplateStructuredFallback
	if strings.TrimSpace(req.DeveloperProfile.MVPContent) != "" {
		kind = TemplateRichSource
	}

	sections := buildSections(req, facts, kind)

	var prompt, raw strings.Builder
	for _, s := range sections {
		if s.literal != "" {
			prompt.WriteString(s.literal)
			prompt.WriteByte('\n')
			raw.WriteString(s.literal)
			raw.WriteByte('\n')
			continue
		}
		raw.WriteString(fmt.Sprintf(s.format, "{"+s.placeholder+"}"))
		raw.WriteByte('\n')
		if strings.TrimSpace(s.value) == "" {
			continue
		}
		prompt.WriteString(fmt.Sprintf(s.format, s.value))
		prompt.WriteByte('\n')
	}

	return RenderedPrompt{
		Prompt:   prompt.String(),
		Template: raw.String(),
		Kind:     kind,
	}
}

func buildSections(req *dtos.CoverLetterRequest, facts DerivedFacts, kind TemplateKind) []promptSection {
	profile := req.DeveloperProfile
	role := req.RoleInfo
	company := req.CompanyInfo

	requestKind := RequestKind(req)
	artifactName := "cover letter"
	if requestKind == KindOutreachMessage {
		artifactName = "short outreach message"
	}

	recipient := strings.TrimSpace(req.HiringManager)
	if recipient == "" {
		recipient = "Hiring Team"
	}

	window := wordLimits[requestKind]

	description := role.Description
	if len(description) > maxDescriptionChars {
		description = description[:maxDescriptionChars]
	}

	sections := []promptSection{
		literal(fmt.Sprintf("You are an expert career writer. Write a %s for the candidate below, applying to the role described.", artifactName)),
		literal(""),
		literal("### CANDIDATE"),
		field("candidate_name", "Name: %s", profile.Name),
		field("candidate_contact", "Contact: %s", profile.Contact),
	}

	if kind == TemplateRichSource {
		sections = append(sections,
			field("candidate_cv", "CANDIDATE BACKGROUND (raw CV content):\n%s", strings.TrimSpace(profile.MVPContent)),
		)
	} else {
		sections = append(sections,
			field("core_skills", "Core skills: %s", strings.Join(facts.CoreSkills, ", ")),
			field("role_keywords", "Role keywords to weave in naturally: %s", strings.Join(facts.Keywords, ", ")),
			field("achievements", "Key achievements to draw from:\n%s", strings.Join(facts.AchievementBullets, "\n")),
		)
	}

	sections = append(sections,
		literal(""),
		literal("### COMPANY CONTEXT"),
		field("company_name", "Company: %s", company.Name),
		field("company_industry", "Industry: %s", company.Industry),
		field("company_size", "Company size: %s", company.Size),
		field("company_culture", "Culture notes: %s", company.Culture),
		literal(""),
		literal("### ROLE"),
		field("role_title", "Title: %s", role.Title),
		field("role_requirements", "Requirements: %s", strings.Join(role.Requirements, "; ")),
		field("role_skills", "Desired skills: %s", strings.Join(role.Skills, ", ")),
		field("role_salary", "Compensation: %s", role.SalaryRange),
		field("role_arrangement", "Work arrangement: %s", role.WorkArrangement),
		field("role_description", "Full description:\n%s", strings.TrimSpace(description)),
		literal(""),
		literal("### TASK"),
		field("tone", "Write in a %s tone.", Tone(req)),
		field("job_source", "The candidate found this role via %s.", jobSource(req)),
		literal(fmt.Sprintf("Aim for %d-%d words.", window.TargetMin, window.TargetMax)),
		literal(fmt.Sprintf(`Open with the exact greeting line: Dear %s,`, recipient)),
		literal(""),
		literal("### OUTPUT RULES (non-negotiable)"),
		literal("- Plain paragraphs only. No markdown, no asterisks, no bullet points, no headings."),
		literal("- Write in the first person, as the candidate."),
		literal("- End with a short sign-off (e.g. Sincerely) followed by the candidate's name."),
		literal("- Do not invent employers, dates or credentials that are not in the input."),
	)

	return sections
}

func jobSource(req *dtos.CoverLetterRequest) string {
	if req.JobSourceInfo == nil {
		return ""
	}
	return strings.TrimSpace(req.JobSourceInfo.Source)
}
