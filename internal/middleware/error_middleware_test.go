package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/edustack/coachhub/internal/pkg/apperrors"
)

func respondWith(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	HandleAPIError(c, err)
	return w
}

func TestHandleAPIErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, "AUTH_001"},
		{"not owned", apperrors.ErrCoachingNotOwned, http.StatusForbidden, "AUTH_006"},
		{"coaching not found", apperrors.ErrCoachingNotFound, http.StatusNotFound, "RES_001"},
		{"slug conflict", apperrors.ErrSlugAlreadyExists, http.StatusConflict, "RES_002"},
		{"open request conflict", apperrors.ErrRequestAlreadyOpen, http.StatusConflict, "RES_002"},
		{"bad request", apperrors.NewBadRequestError("nope"), http.StatusBadRequest, "VAL_001"},
		{"external service", apperrors.ErrExternalService, http.StatusBadGateway, "SRV_002"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "SRV_001"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := respondWith(tc.err)
			assert.Equal(t, tc.status, w.Code)
			assert.Contains(t, w.Body.String(), tc.code)
		})
	}
}

func TestHandleAPIErrorMalformedRecordIsServerSide(t *testing.T) {
	err := apperrors.NewMalformedRecordError("coaching record 7: batches_timings has 2 entries, batches_names has 3")
	w := respondWith(err)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "RES_003")
	// column details stay in the logs, not the response
	assert.NotContains(t, w.Body.String(), "batches_timings")
}
