package apiv1

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"ats-backend/lib/notify"
	"ats-backend/lib/pipeline"
	testdb "ats-backend/lib/utils/test-db"
	"ats-backend/models"
	apimodels "ats-backend/models/api"
	dbmodels "ats-backend/models/db"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func getInstance(t *testing.T) (*fiber.App, *gorm.DB) {
	conn := testdb.New(t)
	pipeline.Instance = pipeline.NewInstance(conn, &notify.Recorder{})
	app := fiber.New()
	InitPipelineApiRouters(app)
	return app, conn
}

func post(t *testing.T, app *fiber.App, path, body string) (int, apimodels.Response) {
	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.Nil(t, err)
	defer resp.Body.Close()
	var result apimodels.Response
	require.Nil(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp.StatusCode, result
}

func TestRecruiterDecision(t *testing.T) {
	t.Run("move next without next stage", func(t *testing.T) {
		app, conn := getInstance(t)
		code, resp := post(t, app, "/recruiter-decision", `{"candidate_id":"c1","requirement_id":"r1","decision":"move_next"}`)
		require.Equal(t, fiber.StatusBadRequest, code)
		require.Equal(t, "fail", resp.Status)
		require.Contains(t, resp.Message, "next_stage")
		var count int64
		require.Nil(t, conn.Model(&dbmodels.CandidateProgress{}).Count(&count).Error)
		require.EqualValues(t, 0, count)
	})
	t.Run("unknown decision", func(t *testing.T) {
		app, _ := getInstance(t)
		code, _ := post(t, app, "/recruiter-decision", `{"candidate_id":"c1","requirement_id":"r1","decision":"PROMOTE"}`)
		require.Equal(t, fiber.StatusBadRequest, code)
	})
	t.Run("unknown requirement", func(t *testing.T) {
		app, _ := getInstance(t)
		code, resp := post(t, app, "/recruiter-decision", `{"candidate_id":"c1","requirement_id":"missing","decision":"HOLD"}`)
		require.Equal(t, fiber.StatusNotFound, code)
		require.Equal(t, "fail", resp.Status)
	})
	t.Run("hold", func(t *testing.T) {
		app, conn := getInstance(t)
		client := dbmodels.Client{Name: "Acme", Status: models.ClientStatusActive}
		require.Nil(t, conn.Create(&client).Error)
		requirement := dbmodels.Requirement{ClientID: client.ID, Title: "QA Lead", Location: "Pune", NoOfRounds: 1, Status: models.RequirementStatusOpen}
		require.Nil(t, conn.Create(&requirement).Error)
		candidate := dbmodels.Candidate{Name: "Asha", Email: "asha@example.com"}
		require.Nil(t, conn.Create(&candidate).Error)

		code, resp := post(t, app, "/recruiter-decision", `{"candidate_id":"`+candidate.ID+`","requirement_ref":"qa lead","decision":"HOLD"}`)
		require.Equal(t, fiber.StatusOK, code)
		require.Equal(t, "success", resp.Status)
		data, ok := resp.Data.(map[string]interface{})
		require.True(t, ok)
		require.Equal(t, "updated", data["status"])
		require.Equal(t, string(models.DecisionHold), data["decision"])
	})
}

func TestStageStatus(t *testing.T) {
	app, _ := getInstance(t)
	code, resp := post(t, app, "/stage-status", `{"candidate_id":"c1","requirement_id":"r1","stage_id":"s1","status":"DONE"}`)
	require.Equal(t, fiber.StatusBadRequest, code)
	require.Contains(t, resp.Message, "invalid status")

	code, _ = post(t, app, "/stage-status", `{"candidate_id":"c1","requirement_id":"r1","stage_id":"s1","status":"completed"}`)
	require.Equal(t, fiber.StatusNotFound, code)
}
