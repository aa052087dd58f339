package chat

import (
	"context"
	"strings"
	"sync"

	apperrors "ats-backend/lib/utils/app-errors"
	authapimodels "ats-backend/models/api/auth"
	candidateapimodels "ats-backend/models/api/candidate"
	clientapimodels "ats-backend/models/api/client"
	requirementapimodels "ats-backend/models/api/requirement"
	usersapimodels "ats-backend/models/api/users"

	"golang.org/x/sync/errgroup"
)

type chatContext struct {
	mu   sync.Mutex
	data map[string]interface{}
}

func (c *chatContext) set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
}

func (c *chatContext) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.data[key]
	return ok
}

func (i impl) buildContext(ctx context.Context, user authapimodels.UserInfo, intent, message string) (*chatContext, error) {
	chatCtx := &chatContext{
		data: map[string]interface{}{
			"user": map[string]interface{}{
				"id":        user.ID,
				"role":      user.Role,
				"client_id": user.ClientID,
			},
			"query": message,
		},
	}
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		return i.loadSelf(chatCtx, user)
	})
	g.Go(func() error {
		switch intent {
		case IntentRequirement:
			return i.loadRequirement(chatCtx, user, message)
		case IntentClient:
			return i.loadClient(chatCtx, user, message)
		case IntentAllocations:
			return i.loadAllocations(chatCtx, user)
		case IntentCandidates:
			return i.loadCandidates(chatCtx, user, message)
		case IntentUsers:
			return i.loadUsers(chatCtx, user)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return chatCtx, err
	}
	if intent == IntentGeneral && user.SeesAllData() {
		if err := i.loadEverything(ctx, chatCtx, user); err != nil {
			return chatCtx, err
		}
	}
	return chatCtx, nil
}

func (i impl) loadSelf(chatCtx *chatContext, user authapimodels.UserInfo) error {
	if user.ID == "" {
		return nil
	}
	details, err := i.sources.Users.Details(user.ID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil
		}
		return err
	}
	chatCtx.set("self_profile", details.User)
	chatCtx.set("self_assignments", details.Assignments)
	chatCtx.set("self_candidates", details.Candidates)
	if user.SeesAllData() {
		stats, err := i.sources.Reports.DashboardStats()
		if err != nil {
			return err
		}
		chatCtx.set("self_org_stats", stats)
	}
	return nil
}

func (i impl) loadRequirement(chatCtx *chatContext, user authapimodels.UserInfo, message string) error {
	visible, err := i.sources.Requirement.List(user, requirementapimodels.RequirementFilter{})
	if err != nil {
		return err
	}
	for _, id := range extractIDs(message) {
		for _, item := range visible {
			if item.ID != id {
				continue
			}
			chatCtx.set("requirement", item)
			allocations, err := i.sources.Requirement.AllocationList(id)
			if err != nil {
				return err
			}
			chatCtx.set("allocations", allocations)
			return nil
		}
	}
	chatCtx.set("requirement", nil)
	chatCtx.set("requirements", visible)
	return nil
}

func (i impl) loadClient(chatCtx *chatContext, user authapimodels.UserInfo, message string) error {
	clients, err := i.sources.Client.List(user)
	if err != nil {
		return err
	}
	if found := matchClient(clients, wordAfter(message, "client")); found != nil {
		chatCtx.set("client", found)
		requirements, err := i.sources.Requirement.List(user, requirementapimodels.RequirementFilter{ClientID: found.ID})
		if err != nil {
			return err
		}
		chatCtx.set("requirements", requirements)
		return nil
	}
	chatCtx.set("client", nil)
	chatCtx.set("clients", clients)
	return nil
}

func matchClient(clients []clientapimodels.ClientView, ref string) *clientapimodels.ClientView {
	ref = strings.ToLower(strings.TrimSpace(ref))
	if ref == "" {
		return nil
	}
	for idx := range clients {
		if clients[idx].ID == ref || strings.Contains(strings.ToLower(clients[idx].Name), ref) {
			return &clients[idx]
		}
	}
	return nil
}

func (i impl) loadAllocations(chatCtx *chatContext, user authapimodels.UserInfo) error {
	switch {
	case user.Role.CanTakeAllocation():
		assigned, err := i.sources.Requirement.RecruiterRequirements(user.ID)
		if err != nil {
			return err
		}
		chatCtx.set("requirements", assigned)
	case user.SeesAllData():
		allocations, err := i.sources.Requirement.AllAllocations()
		if err != nil {
			return err
		}
		chatCtx.set("allocations", allocations)
	default:
		chatCtx.set("requirements", []requirementapimodels.RequirementView{})
	}
	return nil
}

func (i impl) loadCandidates(chatCtx *chatContext, user authapimodels.UserInfo, message string) error {
	if !user.SeesAllData() {
		chatCtx.set("candidates", []candidateapimodels.CandidateView{})
		return nil
	}
	candidates, _, err := i.sources.Candidate.List(user, candidateapimodels.CandidateFilter{})
	if err != nil {
		return err
	}
	chatCtx.set("candidates", candidates)
	for _, word := range searchWords(message) {
		for _, item := range candidates {
			if strings.Contains(strings.ToLower(item.Name), word) || strings.EqualFold(item.Email, word) {
				chatCtx.set("candidate", item)
				return nil
			}
		}
	}
	return nil
}

func (i impl) loadUsers(chatCtx *chatContext, user authapimodels.UserInfo) error {
	if user.SeesAllData() {
		list, err := i.sources.Users.List()
		if err != nil {
			return err
		}
		chatCtx.set("users", list)
		return nil
	}
	recruiters, err := i.sources.Users.Recruiters()
	if err != nil {
		return err
	}
	visible, err := i.sources.Requirement.List(user, requirementapimodels.RequirementFilter{})
	if err != nil {
		return err
	}
	allowed := map[string]struct{}{user.ID: {}}
	for _, item := range visible {
		allocations, err := i.sources.Requirement.AllocationList(item.ID)
		if err != nil {
			return err
		}
		for _, allocation := range allocations {
			allowed[allocation.RecruiterID] = struct{}{}
		}
	}
	result := []usersapimodels.RecruiterView{}
	for _, recruiter := range recruiters {
		if _, ok := allowed[recruiter.ID]; ok {
			result = append(result, recruiter)
		}
	}
	chatCtx.set("recruiters", result)
	return nil
}

func (i impl) loadEverything(ctx context.Context, chatCtx *chatContext, user authapimodels.UserInfo) error {
	loaders := map[string]func() (interface{}, error){
		"clients": func() (interface{}, error) {
			return i.sources.Client.List(user)
		},
		"users": func() (interface{}, error) {
			return i.sources.Users.List()
		},
		"requirements": func() (interface{}, error) {
			return i.sources.Requirement.List(user, requirementapimodels.RequirementFilter{})
		},
		"candidates": func() (interface{}, error) {
			list, _, err := i.sources.Candidate.List(user, candidateapimodels.CandidateFilter{})
			return list, err
		},
		"allocations": func() (interface{}, error) {
			return i.sources.Requirement.AllAllocations()
		},
	}
	g, _ := errgroup.WithContext(ctx)
	for key, load := range loaders {
		if chatCtx.has(key) {
			continue
		}
		g.Go(func() error {
			value, err := load()
			if err != nil {
				return err
			}
			chatCtx.set(key, value)
			return nil
		})
	}
	return g.Wait()
}
