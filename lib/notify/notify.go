package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"ats-backend/config"
	connectionhub "ats-backend/lib/ws/hub/connection-hub"
	wsmodels "ats-backend/models/ws"

	log "github.com/sirupsen/logrus"
)

const (
	EventRequirementCreated  = "new_requirement_created"
	EventRequirementAssigned = "requirement_assigned"
	EventScreeningCompleted  = "screening_completed"
	EventInterviewScheduled  = "interview_scheduled"
	EventRecruiterDecision   = "recruiter_decision"
	EventCandidateAssigned   = "candidate_assigned"
	EventStageStatusUpdated  = "stage_status_updated"
)

// Provider is a fire-and-forget event sink. Notify never blocks on delivery
// and never reports delivery errors to the caller.
type Provider interface {
	Notify(event string, payload interface{})
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(
		config.Conf.Notify.WebhookURL,
		time.Duration(config.Conf.Notify.TimeoutSec)*time.Second,
		connectionhub.Instance,
	)
}

func NewInstance(webhookURL string, timeout time.Duration, hub connectionhub.Provider) Provider {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &impl{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: timeout},
		timeout:    timeout,
		hub:        hub,
	}
}

type impl struct {
	webhookURL string
	client     *http.Client
	timeout    time.Duration
	hub        connectionhub.Provider
}

type event struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

func (i impl) Notify(name string, payload interface{}) {
	if i.hub != nil {
		i.hub.Broadcast(wsmodels.ServerMessage{
			Time:    time.Now().Format(time.RFC3339),
			Code:    name,
			Msg:     name,
			Payload: payload,
		})
	}
	if i.webhookURL == "" {
		return
	}
	body, err := json.Marshal(event{Event: name, Payload: payload})
	if err != nil {
		log.WithError(err).WithField("event", name).Warn("notification payload encode failed")
		return
	}
	go i.post(name, body)
}

func (i impl) post(name string, body []byte) {
	logger := log.WithField("event", name)
	ctx, cancel := context.WithTimeout(context.Background(), i.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, i.webhookURL, bytes.NewReader(body))
	if err != nil {
		logger.WithError(err).Warn("notification request build failed")
		return
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := i.client.Do(req)
	if err != nil {
		logger.WithError(err).Warn("notification delivery failed")
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusMultipleChoices {
		logger.WithField("status_code", resp.StatusCode).Warn("notification rejected by webhook")
		return
	}
	logger.Debug("notification delivered")
}

// Recorder collects events in memory.
type Recorder struct {
	Events []RecordedEvent
}

type RecordedEvent struct {
	Event   string
	Payload interface{}
}

func (r *Recorder) Notify(event string, payload interface{}) {
	r.Events = append(r.Events, RecordedEvent{Event: event, Payload: payload})
}

func (r *Recorder) Names() []string {
	result := make([]string, 0, len(r.Events))
	for _, e := range r.Events {
		result = append(result, e.Event)
	}
	return result
}
