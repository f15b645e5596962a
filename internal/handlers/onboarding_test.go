package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hirecharm/onboarding-backend/internal/logger"
	"github.com/hirecharm/onboarding-backend/internal/services"
	"github.com/hirecharm/onboarding-backend/internal/types"
)

var errStorage = errors.New("pq: connection refused")

type stubOnboardingService struct {
	submitID  uuid.UUID
	submitErr error
	detail    *types.SubmissionDetail
	getErr    error

	lastRequest *types.SubmissionRequest
}

func (s *stubOnboardingService) Submit(ctx context.Context, req *types.SubmissionRequest) (uuid.UUID, error) {
	s.lastRequest = req
	if s.submitErr != nil {
		return uuid.Nil, s.submitErr
	}
	return s.submitID, nil
}

func (s *stubOnboardingService) GetSubmission(ctx context.Context, submissionID uuid.UUID) (*types.SubmissionDetail, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.detail, nil
}

func newTestRouter(t *testing.T, svc services.OnboardingService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}

	handler := NewOnboardingHandler(log, svc)
	router := gin.New()
	router.GET("/health", HealthCheck)
	router.POST("/onboarding/submit", handler.Submit)
	router.GET("/onboarding/:submission_id", handler.GetByID)
	return router
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(t, &stubOnboardingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body["status"] != "healthy" {
		t.Fatalf("expected healthy, got %q", body["status"])
	}
	if body["timestamp"] == "" {
		t.Fatalf("expected timestamp")
	}
}

func TestSubmit_Success(t *testing.T) {
	id := uuid.New()
	stub := &stubOnboardingService{submitID: id}
	router := newTestRouter(t, stub)

	payload := `{"company_name": "Acme", "segments": [{"segment_name": "SMB", "revenue_percentage": 40}], "personas": [{"job_title": "CTO"}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/onboarding/submit", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp types.SubmissionResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success=true")
	}
	if resp.SubmissionID == nil || *resp.SubmissionID != id.String() {
		t.Fatalf("expected submission_id %s, got %v", id, resp.SubmissionID)
	}
	if stub.lastRequest == nil || stub.lastRequest.CompanyName == nil || *stub.lastRequest.CompanyName != "Acme" {
		t.Fatalf("request not forwarded to service: %+v", stub.lastRequest)
	}
}

func TestSubmit_MissingClientIdentity(t *testing.T) {
	stub := &stubOnboardingService{submitErr: services.ErrMissingClientIdentity}
	router := newTestRouter(t, stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/onboarding/submit", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var resp types.SubmissionResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if resp.Success || resp.SubmissionID != nil {
		t.Fatalf("expected failed response without id, got %+v", resp)
	}
	if resp.Message == nil || *resp.Message != services.ErrMissingClientIdentity.Error() {
		t.Fatalf("unexpected message: %v", resp.Message)
	}
}

func TestSubmit_StorageErrorIs500(t *testing.T) {
	stub := &stubOnboardingService{submitErr: errStorage}
	router := newTestRouter(t, stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/onboarding/submit", strings.NewReader(`{"company_name":"Acme"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var resp types.SubmissionResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	// The response carries the raw underlying error text.
	if resp.Message == nil || *resp.Message != errStorage.Error() {
		t.Fatalf("unexpected message: %v", resp.Message)
	}
}

func TestSubmit_MalformedJSON(t *testing.T) {
	router := newTestRouter(t, &stubOnboardingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/onboarding/submit", strings.NewReader(`{"company_name":`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	stub := &stubOnboardingService{getErr: services.ErrSubmissionNotFound}
	router := newTestRouter(t, stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/onboarding/"+uuid.NewString(), nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestGetByID_NonUUIDIsNotFound(t *testing.T) {
	router := newTestRouter(t, &stubOnboardingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/onboarding/not-a-uuid", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestGetByID_Success(t *testing.T) {
	submissionID := uuid.New()
	name := "Acme"
	stub := &stubOnboardingService{
		detail: &types.SubmissionDetail{
			OnboardingSubmission: types.OnboardingSubmission{
				ID:          submissionID,
				CompanyName: &name,
			},
			Segments: []*types.ClientSegment{{SegmentOrder: 0, SegmentName: "SMB"}},
			Personas: []*types.ClientPersona{{PersonaOrder: 0, JobTitle: "CTO"}},
		},
	}
	router := newTestRouter(t, stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/onboarding/"+submissionID.String(), nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body["company_name"] != "Acme" {
		t.Fatalf("expected merged parent fields, got %v", body["company_name"])
	}
	segments, ok := body["segments"].([]any)
	if !ok || len(segments) != 1 {
		t.Fatalf("expected 1 segment, got %v", body["segments"])
	}
	personas, ok := body["personas"].([]any)
	if !ok || len(personas) != 1 {
		t.Fatalf("expected 1 persona, got %v", body["personas"])
	}
}
