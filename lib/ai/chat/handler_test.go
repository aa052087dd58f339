package chat

import (
	"context"
	"testing"

	"ats-backend/lib/ai/llm"
	"ats-backend/lib/candidate"
	"ats-backend/lib/client"
	xlsexport "ats-backend/lib/export/xls"
	filestorage "ats-backend/lib/file-storage"
	"ats-backend/lib/notify"
	"ats-backend/lib/pipeline"
	"ats-backend/lib/reports"
	"ats-backend/lib/requirement"
	"ats-backend/lib/smtp"
	"ats-backend/lib/users"
	apperrors "ats-backend/lib/utils/app-errors"
	testdb "ats-backend/lib/utils/test-db"
	"ats-backend/models"
	aiapimodels "ats-backend/models/api/ai"
	authapimodels "ats-backend/models/api/auth"
	requirementapimodels "ats-backend/models/api/requirement"
	usersapimodels "ats-backend/models/api/users"
	dbmodels "ats-backend/models/db"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	model     *llm.Static
	provider  Provider
	admin     authapimodels.UserInfo
	recruiter authapimodels.UserInfo
	client    authapimodels.UserInfo
	reqID     string
}

func getInstance(t *testing.T) fixture {
	conn := testdb.New(t)
	requirementProvider := requirement.NewInstance(conn, &notify.Recorder{}, &smtp.Recorder{})
	sources := Sources{
		Requirement: requirementProvider,
		Client:      client.NewInstance(conn),
		Candidate:   candidate.NewInstance(conn, &filestorage.Memory{}),
		Users:       users.NewInstance(conn, requirementProvider),
		Reports:     reports.NewInstance(conn, pipeline.NewInstance(conn, &notify.Recorder{}), xlsexport.Instance),
	}
	f := fixture{model: &llm.Static{Answer: "<think>checking</think>There are 2 requirements."}}
	f.provider = NewInstance(sources, f.model)

	acme := dbmodels.Client{Name: "Acme", Status: models.ClientStatusActive}
	require.Nil(t, conn.Create(&acme).Error)
	globex := dbmodels.Client{Name: "Globex", Status: models.ClientStatusActive}
	require.Nil(t, conn.Create(&globex).Error)

	adminID, err := sources.Users.Create(usersapimodels.UserData{Name: "Admin", Email: "admin@example.com", Role: models.UserRoleAdmin})
	require.Nil(t, err)
	recruiterID, err := sources.Users.Create(usersapimodels.UserData{Name: "Meera", Email: "meera@example.com", Role: models.UserRoleRecruiter})
	require.Nil(t, err)
	f.admin = authapimodels.UserInfo{ID: adminID, Role: models.UserRoleAdmin}
	f.recruiter = authapimodels.UserInfo{ID: recruiterID, Role: models.UserRoleRecruiter}
	f.client = authapimodels.UserInfo{ID: "client-user", Role: models.UserRoleClient, ClientID: globex.ID}

	f.reqID, err = requirementProvider.Create(f.admin, requirementapimodels.RequirementData{ClientID: acme.ID, Title: "Go Developer", Location: "Pune"})
	require.Nil(t, err)
	_, err = requirementProvider.Create(f.admin, requirementapimodels.RequirementData{ClientID: globex.ID, Title: "QA Engineer", Location: "Delhi"})
	require.Nil(t, err)
	_, err = requirementProvider.Allocate(f.reqID, requirementapimodels.AllocationCreate{RecruiterID: recruiterID, AssignedBy: adminID})
	require.Nil(t, err)
	require.Nil(t, conn.Create(&dbmodels.Candidate{Name: "Asha Rao", Email: "asha@example.com"}).Error)
	return f
}

func TestDetectIntent(t *testing.T) {
	cases := map[string]string{
		"Show my requirements please":      IntentAllocations,
		"what is assigned to me?":          IntentAllocations,
		"List open requirements":           IntentRequirement,
		"Details of client Acme":           IntentClient,
		"How many candidates do we have?":  IntentCandidates,
		"Who are the recruiters":           IntentUsers,
		"What is my phone number?":         IntentGeneral,
		"status of req-12 for this client": IntentRequirement,
	}
	for message, intent := range cases {
		t.Run(message, func(t *testing.T) {
			require.Equal(t, intent, detectIntent(message))
		})
	}
}

func TestChat(t *testing.T) {
	ctx := context.Background()
	t.Run("admin general question loads everything", func(t *testing.T) {
		f := getInstance(t)
		resp, err := f.provider.Chat(ctx, f.admin, aiapimodels.ChatRequest{Message: "Give me an overview"})
		require.Nil(t, err)
		require.Equal(t, IntentGeneral, resp.Intent)
		require.Equal(t, "There are 2 requirements.", resp.Answer)
		for _, key := range []string{"clients", "users", "requirements", "candidates", "allocations", "self_profile", "self_org_stats"} {
			require.Contains(t, resp.Context, key)
		}
		require.Len(t, f.model.Texts, 1)
		require.Contains(t, f.model.Texts[0], "QUESTION:\nGive me an overview")
	})
	t.Run("recruiter sees allocated requirements only", func(t *testing.T) {
		f := getInstance(t)
		resp, err := f.provider.Chat(ctx, f.recruiter, aiapimodels.ChatRequest{Message: "list requirements"})
		require.Nil(t, err)
		list := resp.Context["requirements"].([]requirementapimodels.RequirementView)
		require.Len(t, list, 1)
		require.Equal(t, "Go Developer", list[0].Title)
		require.NotContains(t, resp.Context, "candidates")
	})
	t.Run("requirement by id", func(t *testing.T) {
		f := getInstance(t)
		resp, err := f.provider.Chat(ctx, f.admin, aiapimodels.ChatRequest{Message: "who works on requirement " + f.reqID + "?"})
		require.Nil(t, err)
		require.Equal(t, f.reqID, resp.Context["requirement"].(requirementapimodels.RequirementView).ID)
		require.Len(t, resp.Context["allocations"], 1)
	})
	t.Run("client sees own requirements", func(t *testing.T) {
		f := getInstance(t)
		resp, err := f.provider.Chat(ctx, f.client, aiapimodels.ChatRequest{Message: "show requirements"})
		require.Nil(t, err)
		list := resp.Context["requirements"].([]requirementapimodels.RequirementView)
		require.Len(t, list, 1)
		require.Equal(t, "QA Engineer", list[0].Title)
	})
	t.Run("candidates hidden from recruiters", func(t *testing.T) {
		f := getInstance(t)
		resp, err := f.provider.Chat(ctx, f.recruiter, aiapimodels.ChatRequest{Message: "find candidate asha"})
		require.Nil(t, err)
		require.Len(t, resp.Context["candidates"], 0)

		resp, err = f.provider.Chat(ctx, f.admin, aiapimodels.ChatRequest{Message: "find candidate asha"})
		require.Nil(t, err)
		require.Len(t, resp.Context["candidates"], 1)
		require.Contains(t, resp.Context, "candidate")
	})
	t.Run("client by name", func(t *testing.T) {
		f := getInstance(t)
		resp, err := f.provider.Chat(ctx, f.admin, aiapimodels.ChatRequest{Message: "tell me about client acme"})
		require.Nil(t, err)
		require.NotNil(t, resp.Context["client"])
		require.Len(t, resp.Context["requirements"], 1)
	})
	t.Run("model failure still answers", func(t *testing.T) {
		f := getInstance(t)
		f.model.Err = errors.New("quota exceeded")
		resp, err := f.provider.Chat(ctx, f.admin, aiapimodels.ChatRequest{Message: "overview"})
		require.Nil(t, err)
		require.Equal(t, "AI processing failed: quota exceeded", resp.Answer)
	})
	t.Run("empty message", func(t *testing.T) {
		f := getInstance(t)
		_, err := f.provider.Chat(ctx, f.admin, aiapimodels.ChatRequest{Message: "  "})
		require.True(t, apperrors.IsValidation(err))
	})
}

func TestGenerateJobDescription(t *testing.T) {
	f := getInstance(t)
	f.model.Answer = "Overview: build services"
	resp, err := f.provider.GenerateJobDescription(context.Background(), aiapimodels.JobDescriptionRequest{Title: "Go Developer", Skills: "Go, SQL"})
	require.Nil(t, err)
	require.Equal(t, "Overview: build services", resp.Description)
	require.Contains(t, f.model.Texts[0], "Skills: Go, SQL")

	_, err = f.provider.GenerateJobDescription(context.Background(), aiapimodels.JobDescriptionRequest{})
	require.True(t, apperrors.IsValidation(err))
}
