package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"ats-backend/lib/ai/llm"
	"ats-backend/lib/candidate"
	"ats-backend/lib/client"
	"ats-backend/lib/reports"
	"ats-backend/lib/requirement"
	"ats-backend/lib/users"
	initchecker "ats-backend/lib/utils/init-checker"
	aiapimodels "ats-backend/models/api/ai"
	authapimodels "ats-backend/models/api/auth"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const llmTimeout = 60 * time.Second

const systemInstruction = "You are an ATS assistant. Answer ONLY from the CONTEXT provided. " +
	"The ATS data includes candidates, requirements, requirement allocations, clients and users. " +
	"If the context contains self_profile, self_assignments, self_candidates or self_org_stats, use them to answer " +
	"questions about the logged-in user directly (for example \"what are my assignments?\"). " +
	"Role rules: admins and delivery managers can access everything including candidates and allocations; " +
	"recruiters only see requirements allocated to them; clients only see their own requirements. " +
	"Never invent data. If a record or access is missing, say so directly and offer available related information."

const jobDescriptionInstruction = "You are a recruiter writing job descriptions for an IT staffing company. " +
	"Write a clear description with sections: Overview, Responsibilities, Required Skills, Nice to Have. " +
	"Use plain text without markdown tables."

type Provider interface {
	Chat(ctx context.Context, user authapimodels.UserInfo, request aiapimodels.ChatRequest) (resp aiapimodels.ChatResponse, err error)
	GenerateJobDescription(ctx context.Context, request aiapimodels.JobDescriptionRequest) (resp aiapimodels.JobDescriptionResponse, err error)
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit(
		"llm", llm.Instance,
		"requirement", requirement.Instance,
		"client", client.Instance,
		"candidate", candidate.Instance,
		"users", users.Instance,
		"reports", reports.Instance,
	)
	Instance = NewInstance(Sources{
		Requirement: requirement.Instance,
		Client:      client.Instance,
		Candidate:   candidate.Instance,
		Users:       users.Instance,
		Reports:     reports.Instance,
	}, llm.Instance)
}

// Sources are the data providers the chat context is loaded from.
type Sources struct {
	Requirement requirement.Provider
	Client      client.Provider
	Candidate   candidate.Provider
	Users       users.Provider
	Reports     reports.Provider
}

func NewInstance(sources Sources, model llm.Provider) Provider {
	return impl{
		sources: sources,
		model:   model,
	}
}

type impl struct {
	sources Sources
	model   llm.Provider
}

func (i impl) Chat(ctx context.Context, user authapimodels.UserInfo, request aiapimodels.ChatRequest) (resp aiapimodels.ChatResponse, err error) {
	if err = request.Validate(); err != nil {
		return resp, err
	}
	message := strings.TrimSpace(request.Message)
	resp.Intent = detectIntent(message)
	logger := log.
		WithField("user_id", user.ID).
		WithField("role", user.Role).
		WithField("intent", resp.Intent)

	chatCtx, err := i.buildContext(ctx, user, resp.Intent, message)
	if err != nil {
		logger.WithError(err).Error("chat context not loaded")
		resp.Answer = fmt.Sprintf("AI processing failed: %s", err.Error())
		resp.Context = chatCtx.data
		return resp, nil
	}
	resp.Context = chatCtx.data

	text, err := promptText(chatCtx.data, message)
	if err != nil {
		return resp, errors.Wrap(err, "unable to encode chat context")
	}
	modelCtx, cancel := context.WithTimeout(ctx, llmTimeout)
	defer cancel()
	answer, err := i.model.Generate(modelCtx, systemInstruction, text)
	if err != nil {
		logger.WithError(err).Warn("chat model call failed")
		resp.Answer = fmt.Sprintf("AI processing failed: %s", err.Error())
		return resp, nil
	}
	resp.Answer = strings.TrimSpace(extractAnswer(answer))
	return resp, nil
}

func (i impl) GenerateJobDescription(ctx context.Context, request aiapimodels.JobDescriptionRequest) (resp aiapimodels.JobDescriptionResponse, err error) {
	if err = request.Validate(); err != nil {
		return resp, err
	}
	var sb strings.Builder
	writeLine(&sb, "Title", request.Title)
	writeLine(&sb, "Skills", request.Skills)
	writeLine(&sb, "Experience", request.Experience)
	writeLine(&sb, "Location", request.Location)
	writeLine(&sb, "Notes", request.Text)

	modelCtx, cancel := context.WithTimeout(ctx, llmTimeout)
	defer cancel()
	description, err := i.model.Generate(modelCtx, jobDescriptionInstruction,
		fmt.Sprintf("Generate a job description for a requirement with these inputs:\n%s", sb.String()))
	if err != nil {
		log.
			WithField("title", request.Title).
			WithError(err).
			Error("job description generation failed")
		return resp, errors.Wrap(err, "unable to generate job description")
	}
	resp.Description = strings.TrimSpace(extractAnswer(description))
	return resp, nil
}

func promptText(data map[string]interface{}, message string) (string, error) {
	body, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("CONTEXT:\n%s\n\nQUESTION:\n%s", body, message), nil
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

func extractAnswer(response string) string {
	responseSlice := strings.Split(response, "</think>")
	if len(responseSlice) == 1 {
		return response
	}
	return responseSlice[1]
}
