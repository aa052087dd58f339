package rbac

import (
	"testing"

	"ats-backend/models"

	"github.com/stretchr/testify/require"
)

func TestRbac(t *testing.T) {
	t.Run(`pattern match`, func(t *testing.T) {
		path, method, err := parseSwaggerPattern("/api/v1/candidate-progress/{candidate_id}/{req_ref} [get]")
		require.Nil(t, err)
		require.Equal(t, GET, method)
		r1 := route{segments: splitPath(path)}
		require.True(t, r1.match(splitPath("/api/v1/candidate-progress/123-321/REQ-7")))
		require.False(t, r1.match(splitPath("/api/v1/candidate-progress/123-321")))
		require.False(t, r1.match(splitPath("/api/v1/candidate-progress/123-321/REQ-7/extra")))

		path, method, err = parseSwaggerPattern("  /api/v1/users/{id}/status [put] ")
		require.Nil(t, err)
		require.Equal(t, PUT, method)
		r2 := route{segments: splitPath(path)}
		require.True(t, r2.match(splitPath("/api/v1/users/qwe-ewr123-wr-12/status/")))
		require.False(t, r2.match(splitPath("/api/v1/users/status")))

		r3 := route{segments: splitPath("/api/v1/reports/*")}
		require.True(t, r3.match(splitPath("/api/v1/reports/requirement/1/export")))

		_, _, err = parseSwaggerPattern("/api/v1/users")
		require.NotNil(t, err)
	})
	t.Run(`literal path wins`, func(t *testing.T) {
		table := newRouteTable()
		table.add("/api/v1/requirements/{id}", AllowFunc())
		table.add("/api/v1/requirements/recent", AllowByRoleFunc(nil))
		check, found := table.find("/api/v1/requirements/recent")
		require.True(t, found)
		require.False(t, check("u1", models.UserRoleAdmin, ""))
		check, found = table.find("/api/v1/requirements/req-1")
		require.True(t, found)
		require.True(t, check("u1", models.UserRoleAdmin, ""))
	})
	t.Run(`rules`, func(t *testing.T) {
		NewHandler()
		handler, found := Instance.GetRuleFunc("POST", "/api/v1/users/")
		require.True(t, found)
		require.True(t, handler("u1", models.UserRoleAdmin, "/api/v1/users"))
		require.False(t, handler("u1", models.UserRoleDeliveryManager, "/api/v1/users"))

		handler, found = Instance.GetRuleFunc("post", "/api/v1/recruiter-decision")
		require.True(t, found)
		require.True(t, handler("u1", models.UserRoleRecruiter, ""))
		require.False(t, handler("u1", models.UserRoleClient, ""))

		handler, found = Instance.GetRuleFunc("GET", "/api/v1/ws")
		require.True(t, found)
		require.True(t, handler("u1", models.UserRoleRecruiter, ""))
		require.False(t, handler("u1", models.UserRoleClient, ""))
		require.False(t, handler("u1", models.UserRoleCandidate, ""))

		_, found = Instance.GetRuleFunc("GET", "/api/v1/unknown")
		require.False(t, found)
	})
	t.Run(`self access`, func(t *testing.T) {
		NewHandler()
		handler, found := Instance.GetRuleFunc("GET", "/api/v1/recruiters/rec-1/requirements")
		require.True(t, found)
		require.True(t, handler("rec-1", models.UserRoleRecruiter, "/api/v1/recruiters/rec-1/requirements"))
		require.False(t, handler("rec-2", models.UserRoleRecruiter, "/api/v1/recruiters/rec-1/requirements"))
		require.True(t, handler("tl-1", models.UserRoleTeamLead, "/api/v1/recruiters/rec-1/requirements"))
	})
	t.Run(`permissions`, func(t *testing.T) {
		NewHandler()
		permissions := Instance.GetPermissions(models.UserRoleClient)
		require.Contains(t, permissions[models.RequirementsModule], models.ViewPermission)
		require.NotContains(t, permissions, models.CandidatesModule)

		permissions[models.RequirementsModule] = nil
		require.NotEmpty(t, Instance.GetPermissions(models.UserRoleClient)[models.RequirementsModule])
	})
}
