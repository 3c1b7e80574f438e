package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"
	"time"

	"career-compass/internal/app"
	"career-compass/internal/config"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type authData struct {
	User struct {
		ID uuid.UUID `json:"id"`
	} `json:"user"`
	AccessToken string `json:"access_token"`
}

type recommendationItem struct {
	CareerID     uuid.UUID       `json:"career_id"`
	CareerTitle  string          `json:"career_title"`
	Industry     string          `json:"industry"`
	MatchScore   float64         `json:"match_score"`
	Reasoning    string          `json:"reasoning"`
	LearningPath json.RawMessage `json:"learning_path"`
}

type insightsData struct {
	TopSkills []struct {
		Name string `json:"skill_name"`
	} `json:"top_skills"`
	RecentRecommendations []struct {
		CareerTitle string `json:"career_title"`
	} `json:"recent_recommendations"`
}

func TestIntegration_Register_Recommend_Insights(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	c := newTestContainer(t)
	defer func() { _ = c.Close() }()

	if err := c.Migrate(ctx); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	if err := c.Seed(ctx); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}
	if _, err := c.Usecases.MarketTrend.RefreshMarketTrends(ctx); err != nil {
		t.Fatalf("refresh trends: %v", err)
	}

	fapp := app.New(c).Fiber

	email := "it-" + uuid.NewString()[:8] + "@example.com"
	var auth authData
	call(t, fapp, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
		"name":             "Integration User",
		"email":            email,
		"password":         "integration-pass",
		"education_level":  "Bachelor",
		"current_field":    "Analytics",
		"years_experience": 3,
	}, http.StatusCreated, &auth)
	defer func() {
		if _, err := c.DB.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, auth.User.ID); err != nil {
			t.Logf("cleanup user: %v", err)
		}
	}()

	call(t, fapp, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
		"email":    email,
		"password": "integration-pass",
	}, http.StatusOK, &auth)
	if auth.AccessToken == "" {
		t.Fatalf("login: empty access_token")
	}
	tok := auth.AccessToken

	for _, s := range []map[string]any{
		{"skill_name": "Python", "proficiency_level": 4},
		{"skill_name": "SQL", "proficiency_level": 3},
		{"skill_name": "Tableau", "proficiency_level": 2},
	} {
		call(t, fapp, http.MethodPost, "/api/v1/me/skills", tok, s, http.StatusCreated, nil)
	}

	call(t, fapp, http.MethodPost, "/api/v1/me/assessments", tok, map[string]any{
		"interests":         []string{"data", "analysis"},
		"work_style":        map[string]string{"environment": "remote"},
		"career_goals":      "Grow into analytics leadership",
		"risk_tolerance":    3,
		"work_life_balance": 4,
		"salary_importance": 3,
	}, http.StatusCreated, nil)

	var first, second []recommendationItem
	call(t, fapp, http.MethodPost, "/api/v1/me/recommendations", tok, nil, http.StatusOK, &first)
	call(t, fapp, http.MethodPost, "/api/v1/me/recommendations", tok, nil, http.StatusOK, &second)
	if len(second) == 0 || len(second) > 10 {
		t.Fatalf("recommendations: expected 1..10 items, got %d", len(second))
	}
	assertSortedByScoreDesc(t, second)

	var stored []recommendationItem
	call(t, fapp, http.MethodGet, "/api/v1/me/recommendations", tok, nil, http.StatusOK, &stored)
	if len(stored) != len(second) {
		t.Fatalf("stored recommendations: expected %d after regenerating twice, got %d", len(second), len(stored))
	}
	assertNoDuplicateCareers(t, stored)

	var ins insightsData
	call(t, fapp, http.MethodGet, "/api/v1/me/insights", tok, nil, http.StatusOK, &ins)
	if len(ins.TopSkills) != 3 {
		t.Fatalf("insights: expected 3 top skills, got %d", len(ins.TopSkills))
	}
	if len(ins.RecentRecommendations) == 0 || ins.RecentRecommendations[0].CareerTitle == "" {
		t.Fatalf("insights: expected recent recommendations")
	}

	var industry map[string]any
	call(t, fapp, http.MethodGet, "/api/v1/industries/"+url.PathEscape(second[0].Industry)+"/insights", "", nil, http.StatusOK, &industry)
	if industry["career_count"].(float64) < 1 {
		t.Fatalf("industry insights: expected at least one career, got %v", industry["career_count"])
	}
	top, _ := industry["top_careers"].([]any)
	if len(top) == 0 || len(top) > 5 {
		t.Fatalf("industry insights: expected 1-5 top careers, got %v", industry["top_careers"])
	}

	call(t, fapp, http.MethodGet, "/api/v1/industries/no-such-industry/insights", "", nil, http.StatusNotFound, nil)
}

func newTestContainer(t *testing.T) *app.Container {
	t.Helper()

	host := stringsOrDefault(os.Getenv("CAREER_TEST_DB_HOST"), os.Getenv("DB_HOST"))
	port := stringsOrDefault(os.Getenv("CAREER_TEST_DB_PORT"), os.Getenv("DB_PORT"))
	name := stringsOrDefault(os.Getenv("CAREER_TEST_DB_NAME"), os.Getenv("DB_NAME"))
	user := stringsOrDefault(os.Getenv("CAREER_TEST_DB_USER"), os.Getenv("DB_USER"))
	pass := stringsOrDefault(os.Getenv("CAREER_TEST_DB_PASSWORD"), os.Getenv("DB_PASSWORD"))
	ssl := stringsOrDefault(os.Getenv("CAREER_TEST_DB_SSL_MODE"), os.Getenv("DB_SSL_MODE"))

	if host == "" || port == "" || name == "" || user == "" {
		t.Skip("missing test DB env vars: set CAREER_TEST_DB_HOST/PORT/NAME/USER/PASSWORD (or DB_HOST/DB_PORT/DB_NAME/DB_USER/DB_PASSWORD)")
	}

	cfg := config.Config{
		App: config.AppConfig{AppName: "career-compass-test", Environment: "test", HTTPPort: "0"},
		Database: config.DatabaseConfig{
			DBHost:     host,
			DBPort:     port,
			DBName:     name,
			DBUser:     user,
			DBPassword: pass,
			DBSSLMode:  stringsOrDefault(ssl, "disable"),
		},
		Redis: config.RedisConfig{
			Host: stringsOrDefault(os.Getenv("CAREER_TEST_REDIS_HOST"), "localhost"),
			Port: stringsOrDefault(os.Getenv("CAREER_TEST_REDIS_PORT"), "6379"),
		},
		JWT: config.JWTConfig{
			AccessSecret:     "test-access-secret",
			RefreshSecret:    "test-refresh-secret",
			AccessExpiresIn:  5 * time.Minute,
			RefreshExpiresIn: time.Hour,
		},
		Engine: config.EngineConfig{ConfidenceThreshold: 0.6, ResumeMaxBytes: 5 << 20},
	}

	c, err := app.NewContainer(cfg)
	if err != nil {
		t.Fatalf("init container: %v", err)
	}
	return c
}

func call(t *testing.T, app *fiber.App, method, path, token string, body any, wantStatus int, out any) {
	t.Helper()

	var rdr *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("%s %s: marshal: %v", method, path, err)
		}
		rdr = bytes.NewReader(b)
	} else {
		rdr = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, rdr)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, fiber.TestConfig{Timeout: 30 * time.Second})
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var sr semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		t.Fatalf("%s %s: decode: %v", method, path, err)
	}
	if resp.StatusCode != wantStatus {
		t.Fatalf("%s %s: expected status %d, got %d (%s)", method, path, wantStatus, resp.StatusCode, sr.Message)
	}
	if out == nil {
		return
	}
	if err := json.Unmarshal(sr.Data, out); err != nil {
		t.Fatalf("%s %s: unmarshal data: %v", method, path, err)
	}
}

func assertSortedByScoreDesc(t *testing.T, items []recommendationItem) {
	t.Helper()
	for i := 1; i < len(items); i++ {
		if items[i].MatchScore > items[i-1].MatchScore {
			t.Fatalf("recommendations not sorted at %d: %.3f > %.3f", i, items[i].MatchScore, items[i-1].MatchScore)
		}
	}
}

func assertNoDuplicateCareers(t *testing.T, items []recommendationItem) {
	t.Helper()
	seen := map[uuid.UUID]struct{}{}
	for _, it := range items {
		if _, ok := seen[it.CareerID]; ok {
			t.Fatalf("duplicate career_id in recommendations: %s", it.CareerID)
		}
		seen[it.CareerID] = struct{}{}
	}
}

func stringsOrDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
