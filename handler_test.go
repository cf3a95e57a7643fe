package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// setupRecommendationTest creates a Gin engine with the API routes mounted.
// No external state — the pipeline is pure.
func setupRecommendationTest() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := &Handler{}
	h.registerRoutes(router)
	return router
}

// doRecommendationRequest sends a POST to the recommendation endpoint with
// the given body.
func doRecommendationRequest(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/api/recommendation", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRecommendation_Success(t *testing.T) {
	router := setupRecommendationTest()

	w := doRecommendationRequest(router,
		`{"gender":"M","age":25,"height_cm":180,"weight_kg":80,"activity_level":2,"goal":2}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp recommendationResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Intake == nil || *resp.Intake != 2482 {
		t.Errorf("expected intake 2482, got %v", resp.Intake)
	}
	if resp.Caution {
		t.Error("expected caution false")
	}
	if !strings.Contains(resp.Message, "2482") {
		t.Errorf("message should contain the intake: %q", resp.Message)
	}
}

func TestRecommendation_LowercaseGender(t *testing.T) {
	router := setupRecommendationTest()

	w := doRecommendationRequest(router,
		`{"gender":"f","age":40,"height_cm":168,"weight_kg":62,"activity_level":3,"goal":2}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRecommendation_Caution(t *testing.T) {
	router := setupRecommendationTest()

	// Female 30/160/50, level 1, lose: pipeline yields 927, below the 1200
	// minimum — the body must not carry an intake field at all.
	w := doRecommendationRequest(router,
		`{"gender":"F","age":30,"height_cm":160,"weight_kg":50,"activity_level":1,"goal":1}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp recommendationResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if !resp.Caution {
		t.Error("expected caution true")
	}
	if resp.Intake != nil {
		t.Errorf("expected intake omitted on the caution branch, got %d", *resp.Intake)
	}
	if strings.Contains(w.Body.String(), "927") {
		t.Errorf("computed intake leaked into the response: %s", w.Body.String())
	}
}

func TestRecommendation_ValidationErrors(t *testing.T) {
	router := setupRecommendationTest()

	cases := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{
			"bad gender",
			`{"gender":"X","age":25,"height_cm":180,"weight_kg":80,"activity_level":2,"goal":2}`,
			"gender must be M or F",
		},
		{
			"underage",
			`{"gender":"M","age":10,"height_cm":180,"weight_kg":80,"activity_level":2,"goal":2}`,
			"age must be at least 14",
		},
		{
			"zero height",
			`{"gender":"M","age":25,"height_cm":0,"weight_kg":80,"activity_level":2,"goal":2}`,
			"height_cm must be positive",
		},
		{
			"negative weight",
			`{"gender":"M","age":25,"height_cm":180,"weight_kg":-1,"activity_level":2,"goal":2}`,
			"weight_kg must be positive",
		},
		{
			"activity level out of range",
			`{"gender":"M","age":25,"height_cm":180,"weight_kg":80,"activity_level":5,"goal":2}`,
			"activity_level must be between 1 and 4",
		},
		{
			"goal out of range",
			`{"gender":"M","age":25,"height_cm":180,"weight_kg":80,"activity_level":2,"goal":0}`,
			"goal must be 1 (lose), 2 (maintain) or 3 (gain)",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRecommendationRequest(router, tc.body)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}

			var resp map[string]string
			json.Unmarshal(w.Body.Bytes(), &resp)
			if resp["error"] != tc.wantMsg {
				t.Errorf("expected error %q, got %q", tc.wantMsg, resp["error"])
			}
		})
	}
}

func TestRecommendation_MalformedJSON(t *testing.T) {
	router := setupRecommendationTest()

	w := doRecommendationRequest(router, `{"gender":`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRecommendation_RequestIDHeader(t *testing.T) {
	router := setupRecommendationTest()

	w := doRecommendationRequest(router,
		`{"gender":"M","age":25,"height_cm":180,"weight_kg":80,"activity_level":2,"goal":2}`)

	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected a non-empty X-Request-ID header")
	}
}
