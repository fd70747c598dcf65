package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/careerforge/jobboard/internal/domain/errs"
	"github.com/careerforge/jobboard/internal/domain/models"
	"github.com/careerforge/jobboard/internal/domain/policy"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setIdentity(identity policy.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(identityKey, identity)
	}
}

func TestRequireRoles_AllowsListedRole(t *testing.T) {

	engine := gin.New()
	engine.GET("/only-recruiters",
		setIdentity(policy.Identity{UserID: 1, Role: models.RoleRecruiter}),
		RequireRoles(models.RoleRecruiter, models.RoleAdmin),
		func(c *gin.Context) { c.Status(http.StatusOK) })

	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/only-recruiters", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestRequireRoles_RejectsOtherRole(t *testing.T) {

	engine := gin.New()
	engine.GET("/only-admins",
		setIdentity(policy.Identity{UserID: 1, Role: models.RoleJobseeker}),
		RequireRoles(models.RoleAdmin),
		func(c *gin.Context) { c.Status(http.StatusOK) })

	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/only-admins", nil))

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "not allowed")
}

func TestParseIDParam_RejectsNonNumeric(t *testing.T) {

	engine := gin.New()
	engine.GET("/things/:id", func(c *gin.Context) {
		if _, ok := parseIDParam(c, "id"); !ok {
			return
		}
		c.Status(http.StatusOK)
	})

	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/things/abc", nil))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestRespondError_StatusMapping(t *testing.T) {

	cases := []struct {
		name            string
		err             error
		forbiddenStatus int
		want            int
		wantMessage     string
	}{
		{"not found", errs.NotFoundf("job not found"), http.StatusForbidden,
			http.StatusNotFound, "job not found"},
		{"conflict", errs.Conflictf("you have already applied for this job"), http.StatusForbidden,
			http.StatusBadRequest, "you have already applied for this job"},
		{"invalid input", errs.InvalidInputf("title is required"), http.StatusForbidden,
			http.StatusBadRequest, "title is required"},
		{"unauthenticated", errs.Unauthenticatedf("invalid email or password"), http.StatusForbidden,
			http.StatusUnauthorized, "invalid email or password"},
		{"forbidden on job routes", errs.Forbiddenf("not the owner"), http.StatusForbidden,
			http.StatusForbidden, "not the owner"},
		{"forbidden on application routes", errs.Forbiddenf("not the owner"), http.StatusUnauthorized,
			http.StatusUnauthorized, "not the owner"},
		{"untyped error stays opaque", assert.AnError, http.StatusForbidden,
			http.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {

			engine := gin.New()
			engine.GET("/fail", func(c *gin.Context) {
				respondError(c, tc.err, tc.forbiddenStatus)
			})

			recorder := httptest.NewRecorder()
			engine.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/fail", nil))

			assert.Equal(t, tc.want, recorder.Code)
			assert.Contains(t, recorder.Body.String(), tc.wantMessage)
		})
	}
}
