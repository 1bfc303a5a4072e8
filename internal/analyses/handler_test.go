package analyses

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewHandler(NewService(NewMemoryRepo(), nil))
	handler.RegisterRoutes(router.Group("/api/v1"))
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateAnalysisEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(t, router, "/api/v1/analyses", gin.H{"text": sampleResume})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		ID      string          `json:"id"`
		Summary analysisSummary `json:"summary"`
		Report  json.RawMessage `json:"report"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID == "" {
		t.Fatal("expected analysis id in response")
	}
	if resp.Summary.Grade == "" {
		t.Fatal("expected grade in summary")
	}
	if len(resp.Report) == 0 {
		t.Fatal("expected report payload")
	}

	// The stored analysis is retrievable.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/analyses/"+resp.ID, nil)
	getRec := httptest.NewRecorder()
	router.ServeHTTP(getRec, req)
	if getRec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", getRec.Code)
	}

	quickReq := httptest.NewRequest(http.MethodGet, "/api/v1/analyses/"+resp.ID+"/quick", nil)
	quickRec := httptest.NewRecorder()
	router.ServeHTTP(quickRec, quickReq)
	if quickRec.Code != http.StatusOK {
		t.Fatalf("expected 200 for quick view, got %d", quickRec.Code)
	}
	var quick QuickReport
	if err := json.Unmarshal(quickRec.Body.Bytes(), &quick); err != nil {
		t.Fatalf("decode quick view: %v", err)
	}
	if quick.Grade == "" {
		t.Fatal("expected grade in quick view")
	}
}

func TestCreateAnalysisValidation(t *testing.T) {
	router := newTestRouter(t)

	if rec := postJSON(t, router, "/api/v1/analyses", gin.H{}); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing input, got %d", rec.Code)
	}
	if rec := postJSON(t, router, "/api/v1/analyses", gin.H{"text": "x", "documentId": "y"}); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for conflicting input, got %d", rec.Code)
	}
}

func TestGetAnalysisNotFound(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analyses/missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCompareEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(t, router, "/api/v1/analyses/compare", gin.H{
		"text":           sampleResume,
		"jobDescription": "Required python and must have sql. Senior role.",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var cmp Comparison
	if err := json.Unmarshal(rec.Body.Bytes(), &cmp); err != nil {
		t.Fatalf("decode comparison: %v", err)
	}
	if cmp.CareerLevelMatch == "" {
		t.Fatal("expected career level verdict")
	}

	if rec := postJSON(t, router, "/api/v1/analyses/compare", gin.H{"text": sampleResume}); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing job description, got %d", rec.Code)
	}
}
