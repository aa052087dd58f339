package screening

import (
	"fmt"
	"strings"

	dbmodels "ats-backend/models/db"
)

const screeningInstruction = `You are a technical recruiter screening a candidate against a job requirement.
Answer with a single JSON object and nothing else, in this format:
{"score": <number 0-100>, "rationale": ["..."], "red_flags": ["..."], "recommend": "SHORTLISTED|REJECTED|NEEDS_INTERVIEW"}`

func buildScreeningText(candidate dbmodels.Candidate, requirement dbmodels.Requirement) string {
	sb := strings.Builder{}
	sb.WriteString("Requirement:\n")
	writeLine(&sb, "Title", requirement.Title)
	writeLine(&sb, "Location", requirement.Location)
	writeLine(&sb, "Skills", requirement.SkillsRequired)
	if requirement.ExperienceRequired > 0 {
		writeLine(&sb, "Experience (years)", fmt.Sprintf("%g", requirement.ExperienceRequired))
	}
	writeLine(&sb, "CTC", requirement.CtcRange)
	writeLine(&sb, "Description", requirement.Description)

	sb.WriteString("\nCandidate:\n")
	writeLine(&sb, "Name", candidate.Name)
	writeLine(&sb, "Skills", candidate.Skills)
	writeLine(&sb, "Experience", candidate.Experience)
	writeLine(&sb, "Education", candidate.Education)
	writeLine(&sb, "Current CTC", candidate.Ctc)
	writeLine(&sb, "Expected CTC", candidate.Ectc)
	return sb.String()
}

func writeLine(sb *strings.Builder, name, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	sb.WriteString(name)
	sb.WriteString(": ")
	sb.WriteString(value)
	sb.WriteString("\n")
}
