package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"renti/internal/common"
	"renti/internal/jobs/background"
	"renti/internal/models"
	"renti/internal/repositories"
)

type MockUSSDService struct {
	mock.Mock
}

func (m *MockUSSDService) Handle(ctx context.Context, req *models.USSDRequest) string {
	args := m.Called(ctx, req)
	return args.String(0)
}

type MockJobRunner struct {
	mock.Mock
}

func (m *MockJobRunner) GetJobStatus() []background.JobStatus {
	args := m.Called()
	return args.Get(0).([]background.JobStatus)
}

func (m *MockJobRunner) RunNow(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"field error", common.NewFieldError("rent", "must be positive"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"wrapped field error", fmt.Errorf("create: %w", common.NewFieldError("name", "is required")), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"not found", fmt.Errorf("tenant 9: %w", repositories.ErrNotFound), http.StatusNotFound, "NOT_FOUND"},
		{"anything else", errors.New("boom"), http.StatusInternalServerError, "SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			require.NoError(t, respondError(c, tt.err, "Tenant"))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantCode)
		})
	}
}

func TestParseID(t *testing.T) {
	e := echo.New()
	for _, raw := range []string{"0", "-3", "abc", ""} {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		c.SetParamNames("id")
		c.SetParamValues(raw)

		_, err := parseID(c, "id")
		_, isField := common.AsFieldError(err)
		assert.True(t, isField, "input %q", raw)
	}

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("42")
	id, err := parseID(c, "id")
	require.NoError(t, err)
	assert.Equal(t, 42, id)
}

func TestUSSDCallback_DebugKeepsBody(t *testing.T) {
	service := new(MockUSSDService)
	service.On("Handle", mock.Anything, &models.USSDRequest{
		SessionID:   "ATUid_9",
		PhoneNumber: "+254712345678",
		Text:        "2*1",
	}).Return("END Maintenance request for Plumbing submitted successfully.")

	h := NewUSSDHandlers(service, true)
	form := url.Values{"sessionId": {"ATUid_9"}, "phoneNumber": {"+254712345678"}, "text": {"2*1"}}
	req := httptest.NewRequest(http.MethodPost, "/ussd", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Callback(echo.New().NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "END Maintenance request for Plumbing submitted successfully.", rec.Body.String())
	service.AssertExpectations(t)
}

func TestUSSDCallback_RejectsOtherMethods(t *testing.T) {
	service := new(MockUSSDService)
	h := NewUSSDHandlers(service, false)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Callback(echo.New().NewContext(httptest.NewRequest(http.MethodPut, "/ussd", nil), rec)))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	service.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestRunJob(t *testing.T) {
	runner := new(MockJobRunner)
	runner.On("RunNow", "greeting-refresh").Return(nil)
	runner.On("RunNow", "backup").Return(fmt.Errorf("job %q: %w", "backup", background.ErrUnknownJob))

	h := &SystemHandlers{scheduler: runner}
	e := echo.New()

	for name, want := range map[string]int{"greeting-refresh": http.StatusAccepted, "backup": http.StatusNotFound} {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)
		c.SetParamNames("name")
		c.SetParamValues(name)

		require.NoError(t, h.RunJob(c))
		assert.Equal(t, want, rec.Code, name)
	}
	runner.AssertExpectations(t)
}
