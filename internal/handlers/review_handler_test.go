package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Dinesh9529/ResumeGuru/internal/models"
	"github.com/Dinesh9529/ResumeGuru/internal/services"
)

type stubReviewService struct {
	review   string
	err      error
	calls    int
	lastUser string
}

func (s *stubReviewService) Review(_ context.Context, _ string, user string) (string, error) {
	s.calls++
	s.lastUser = user
	return s.review, s.err
}

func newReviewApp(svc services.ReviewService) *fiber.App {
	app := fiber.New()
	h := NewReviewHandler(svc, services.NewPDFParserService(), 5*1024*1024, zap.NewNop().Sugar())

	app.Get("/api/health", h.HandleHealth)
	app.Post("/api/review", h.HandleReview)
	app.Post("/api/review/upload", h.HandleReviewUpload)

	return app
}

func postReview(t *testing.T, app *fiber.App, payload models.ReviewRequest) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/review", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestHandleReview_RejectsShortResume(t *testing.T) {
	svc := &stubReviewService{review: "unused"}
	app := newReviewApp(svc)

	resp := postReview(t, app, models.ReviewRequest{Resume: strings.Repeat("x", 40)})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, false, body["ok"])
	assert.NotEmpty(t, body["error"])
	assert.Zero(t, svc.calls, "LLM must not be called for rejected input")
}

func TestHandleReview_FallbackOnUpstreamFailure(t *testing.T) {
	svc := &stubReviewService{err: errors.New("upstream exploded")}
	app := newReviewApp(svc)

	resume := "Senior backend engineer with experience building Go services at scale."
	resp := postReview(t, app, models.ReviewRequest{Resume: resume})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, services.FallbackReview, body["aiReview"])
	assert.EqualValues(t, services.CalculateATSScore(resume, ""), body["atsScore"])
	assert.Equal(t, 1, svc.calls)
}

func TestHandleReview_Success(t *testing.T) {
	svc := &stubReviewService{review: "**Summary**\nSolid resume with clear impact statements."}
	app := newReviewApp(svc)

	resume := "Experienced engineer who developed and launched several production systems."
	jd := "We need a Go developer with cloud experience."
	resp := postReview(t, app, models.ReviewRequest{Resume: resume, JobDescription: jd})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, svc.review, body["aiReview"])
	assert.EqualValues(t, services.CalculateATSScore(resume, jd), body["atsScore"])
	assert.Contains(t, svc.lastUser, jd, "job description must reach the prompt")
}

func TestHandleReview_InvalidBody(t *testing.T) {
	app := newReviewApp(&stubReviewService{})

	req := httptest.NewRequest(http.MethodPost, "/api/review", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleReviewUpload_MissingFile(t *testing.T) {
	app := newReviewApp(&stubReviewService{})

	req := httptest.NewRequest(http.MethodPost, "/api/review/upload", nil)
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, false, body["ok"])
}

func TestHandleHealth(t *testing.T) {
	app := newReviewApp(&stubReviewService{})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, true, body["ok"])
	assert.NotEmpty(t, body["message"])
}
