package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/domain/career"
	"career-compass/internal/domain/learning"
	"career-compass/internal/domain/recommendation"
	"career-compass/internal/domain/skill"
	"career-compass/internal/domain/user"
	"career-compass/internal/pkg/jwt"
	"career-compass/internal/pkg/validate"
	"career-compass/internal/usecase"
	ucauth "career-compass/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUserID = uuid.MustParse("6f1c2a9e-2c4b-4d0e-9a55-0f8a3b7d1e01")

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// newTestApp mounts register behind the error middleware. When authed is set
// the caller is treated as testUserID.
func newTestApp(authed bool, register func(r fiber.Router)) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(log.New(io.Discard, "", 0)).Middleware())
	if authed {
		app.Use(func(c fiber.Ctx) error {
			c.Locals(middleware.CtxUserIDKey, testUserID)
			return c.Next()
		})
	}
	register(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, envelope) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return do(t, app, req)
}

func do(t *testing.T, app *fiber.App, req *http.Request) (int, envelope) {
	t.Helper()

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

type fakeUserSkillUC struct {
	added []usecase.AddUserSkillInput
	err   error
}

func (f *fakeUserSkillUC) ListUserSkills(context.Context, uuid.UUID) ([]skill.UserSkill, error) {
	return nil, f.err
}

func (f *fakeUserSkillUC) AddUserSkill(_ context.Context, userID uuid.UUID, in usecase.AddUserSkillInput) (skill.UserSkill, error) {
	if f.err != nil {
		return skill.UserSkill{}, f.err
	}
	f.added = append(f.added, in)
	return skill.UserSkill{ID: uuid.New(), UserID: userID, SkillName: in.Name, ProficiencyLevel: in.ProficiencyLevel, Source: skill.SourceManual}, nil
}

func (f *fakeUserSkillUC) SuggestSkills(context.Context, uuid.UUID, int) ([]skill.Suggestion, error) {
	return nil, f.err
}

func TestUserSkillHandler_Add(t *testing.T) {
	uc := &fakeUserSkillUC{}
	app := newTestApp(true, NewUserSkillHandler(uc).RegisterRoutes)

	status, env := doJSON(t, app, http.MethodPost, "/me/skills", map[string]any{"skill_name": "Go", "proficiency_level": 4})
	require.Equal(t, http.StatusCreated, status)
	require.Len(t, uc.added, 1)
	assert.Equal(t, "Go", uc.added[0].Name)

	var got map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "Manual", got["source"])
	assert.EqualValues(t, 4, got["proficiency_level"])
}

func TestUserSkillHandler_AddRejectsOutOfRangeLevel(t *testing.T) {
	uc := &fakeUserSkillUC{}
	app := newTestApp(true, NewUserSkillHandler(uc).RegisterRoutes)

	status, env := doJSON(t, app, http.MethodPost, "/me/skills", map[string]any{"skill_name": "Go", "proficiency_level": 7})
	require.Equal(t, http.StatusBadRequest, status)
	assert.Empty(t, uc.added)

	var fields []map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &fields))
	require.Len(t, fields, 1)
	assert.Equal(t, "proficiency_level", fields[0]["field"])
	assert.Equal(t, "max", fields[0]["rule"])
}

func TestUserSkillHandler_RequiresUser(t *testing.T) {
	app := newTestApp(false, NewUserSkillHandler(&fakeUserSkillUC{}).RegisterRoutes)

	status, _ := doJSON(t, app, http.MethodGet, "/me/skills", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestUserSkillHandler_SuggestionsLimit(t *testing.T) {
	app := newTestApp(true, NewUserSkillHandler(&fakeUserSkillUC{}).RegisterRoutes)

	status, _ := doJSON(t, app, http.MethodGet, "/me/skills/suggestions?limit=abc", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, env := doJSON(t, app, http.MethodGet, "/me/skills/suggestions?limit=3", nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(env.Data))
}

type fakeRecommendationUC struct {
	generateErr error
	enhanced    []recommendation.Enhanced
	steps       []learning.Step
	pathErr     error
}

func (f *fakeRecommendationUC) PredictCareerMatches(context.Context, uuid.UUID) ([]recommendation.Match, error) {
	out := make([]recommendation.Match, 0, len(f.enhanced))
	for _, e := range f.enhanced {
		out = append(out, e.Match)
	}
	return out, nil
}

func (f *fakeRecommendationUC) GenerateLearningPath(context.Context, uuid.UUID, uuid.UUID) ([]learning.Step, error) {
	return f.steps, f.pathErr
}

func (f *fakeRecommendationUC) GenerateRecommendations(context.Context, uuid.UUID) ([]recommendation.Enhanced, error) {
	if f.generateErr != nil {
		return nil, f.generateErr
	}
	return f.enhanced, nil
}

func (f *fakeRecommendationUC) ListRecommendations(context.Context, uuid.UUID) ([]recommendation.Recommendation, error) {
	return nil, nil
}

type fakeCareerUC struct {
	careers map[uuid.UUID]career.Career
	scores  map[uuid.UUID]float64
}

func (f *fakeCareerUC) GetCareer(_ context.Context, id uuid.UUID) (career.Career, error) {
	c, ok := f.careers[id]
	if !ok {
		return career.Career{}, usecase.ErrCareerNotFound
	}
	return c, nil
}

func (f *fakeCareerUC) CompareCareers(_ context.Context, _ uuid.UUID, ids []uuid.UUID) ([]usecase.CareerComparison, error) {
	out := make([]usecase.CareerComparison, 0, len(ids))
	for _, id := range ids {
		c, ok := f.careers[id]
		if !ok {
			return nil, usecase.ErrCareerNotFound
		}
		cmp := usecase.CareerComparison{Career: c}
		if s, ok := f.scores[id]; ok {
			cmp.MatchScore = &s
		}
		out = append(out, cmp)
	}
	return out, nil
}

func TestRecommendationHandler_Generate(t *testing.T) {
	careerID := uuid.New()
	uc := &fakeRecommendationUC{enhanced: []recommendation.Enhanced{{
		Match: recommendation.Match{
			CareerTitle: "Data Analyst",
			SalaryRange: "$60,000 - $90,000",
		},
		Reasoning: "Strong skill alignment with career requirements",
	}}}
	uc.enhanced[0].CareerID = careerID
	uc.enhanced[0].MatchScore = 0.812
	uc.enhanced[0].SkillScore = 0.75

	app := newTestApp(true, NewRecommendationHandler(uc, &fakeCareerUC{}).RegisterRoutes)
	status, env := doJSON(t, app, http.MethodPost, "/me/recommendations", nil)
	require.Equal(t, http.StatusOK, status)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.Len(t, got, 1)
	assert.Equal(t, careerID.String(), got[0]["career_id"])
	assert.Equal(t, 0.812, got[0]["match_score"])
	assert.Equal(t, []any{}, got[0]["skill_gaps"])
	assert.Equal(t, []any{}, got[0]["learning_path"])
	assert.Equal(t, 0.75, got[0]["breakdown"].(map[string]any)["skill_match"])
}

func TestRecommendationHandler_GenerateInProgress(t *testing.T) {
	uc := &fakeRecommendationUC{generateErr: usecase.ErrRegenerationInProgress}
	app := newTestApp(true, NewRecommendationHandler(uc, &fakeCareerUC{}).RegisterRoutes)

	status, _ := doJSON(t, app, http.MethodPost, "/me/recommendations", nil)
	assert.Equal(t, http.StatusConflict, status)
}

func TestRecommendationHandler_LearningPath(t *testing.T) {
	uc := &fakeRecommendationUC{pathErr: usecase.ErrCareerNotFound}
	app := newTestApp(true, NewRecommendationHandler(uc, &fakeCareerUC{}).RegisterRoutes)

	status, _ := doJSON(t, app, http.MethodGet, "/me/careers/not-a-uuid/learning-path", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = doJSON(t, app, http.MethodGet, "/me/careers/"+uuid.NewString()+"/learning-path", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestRecommendationHandler_Compare(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	careers := &fakeCareerUC{
		careers: map[uuid.UUID]career.Career{
			a: {ID: a, Title: "Data Analyst", SalaryMin: 60000, SalaryMax: 90000},
			b: {ID: b, Title: "Web Developer", SalaryMin: 55000, SalaryMax: 95000},
		},
		scores: map[uuid.UUID]float64{a: 0.81},
	}
	app := newTestApp(true, NewRecommendationHandler(&fakeRecommendationUC{}, careers).RegisterRoutes)

	status, _ := doJSON(t, app, http.MethodGet, "/me/careers/compare?ids="+a.String(), nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, env := doJSON(t, app, http.MethodGet, "/me/careers/compare?ids="+a.String()+","+b.String(), nil)
	require.Equal(t, http.StatusOK, status)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.Len(t, got, 2)
	assert.Equal(t, 0.81, got[0]["match_score"])
	assert.Nil(t, got[1]["match_score"])
	assert.Equal(t, "$55,000 - $95,000", got[1]["salary_range"])
}

func TestCareerHandler_NotFound(t *testing.T) {
	app := newTestApp(false, NewCareerHandler(&fakeCareerUC{}).RegisterRoutes)

	status, env := doJSON(t, app, http.MethodGet, "/careers/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Career not found", env.Message)
}

type fakeResumeUC struct {
	err      error
	filename string
	size     int
}

func (f *fakeResumeUC) UploadResume(_ context.Context, _ uuid.UUID, filename string, data []byte) (usecase.ResumeUpload, error) {
	f.filename = filename
	f.size = len(data)
	if f.err != nil {
		return usecase.ResumeUpload{}, f.err
	}
	return usecase.ResumeUpload{Completeness: 30}, nil
}

func multipartRequest(t *testing.T, field, filename string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/me/resume", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestResumeHandler_Upload(t *testing.T) {
	uc := &fakeResumeUC{}
	app := newTestApp(true, NewResumeHandler(uc, 1024).RegisterRoutes)

	status, env := do(t, app, multipartRequest(t, "resume", "cv.txt", []byte("jane@example.com")))
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "cv.txt", uc.filename)
	assert.Equal(t, 16, uc.size)

	var got map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.EqualValues(t, 30, got["completeness_score"])
}

func TestResumeHandler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		field  string
		body   []byte
		err    error
		status int
	}{
		{name: "missing field", field: "file", body: []byte("x"), status: http.StatusBadRequest},
		{name: "too large", field: "resume", body: bytes.Repeat([]byte("a"), 2048), status: http.StatusRequestEntityTooLarge},
		{name: "unsupported", field: "resume", body: []byte("x"), err: usecase.ErrUnsupportedResume, status: http.StatusUnsupportedMediaType},
		{name: "empty", field: "resume", body: []byte("x"), err: usecase.ErrEmptyResume, status: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(true, NewResumeHandler(&fakeResumeUC{err: tt.err}, 1024).RegisterRoutes)
			status, _ := do(t, app, multipartRequest(t, tt.field, "cv.txt", tt.body))
			assert.Equal(t, tt.status, status)
		})
	}
}

type fakeSkillUC struct {
	lastThreshold float64
}

func (f *fakeSkillUC) ExtractSkills(_ context.Context, in usecase.ExtractSkillsInput) (usecase.SkillExtraction, error) {
	f.lastThreshold = in.Threshold
	return usecase.SkillExtraction{
		Skills:     skill.Extraction{{Name: "Python", Category: "programming", Confidence: 0.95}},
		Categories: map[string][]string{"programming": {"Python"}},
	}, nil
}

func (f *fakeSkillUC) MarketData(context.Context, []string) (map[string]skill.MarketData, error) {
	return map[string]skill.MarketData{}, nil
}

func (f *fakeSkillUC) Autocomplete(context.Context, string) ([]skill.Skill, error) {
	return []skill.Skill{{ID: uuid.New(), Name: "Python"}}, nil
}

func TestSkillHandler_Extract(t *testing.T) {
	uc := &fakeSkillUC{}
	app := newTestApp(false, NewSkillHandler(uc).RegisterRoutes)

	status, env := doJSON(t, app, http.MethodPost, "/skills/extract", map[string]any{"text": "Expert Python developer", "threshold": 0.5})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 0.5, uc.lastThreshold)

	var got map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, map[string]any{"Python": 0.95}, got["skills"])

	status, _ = doJSON(t, app, http.MethodPost, "/skills/extract", map[string]any{"text": "x", "threshold": 1.5})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = doJSON(t, app, http.MethodPost, "/skills/market-data", map[string]any{"skills": []string{}})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestAuthMiddleware_AcceptsAccessTokenOnly(t *testing.T) {
	svc := jwt.NewHMACService("access-secret", "refresh-secret", time.Minute, time.Hour)
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(log.New(io.Discard, "", 0)).Middleware())
	app.Use(middleware.NewAuthMiddleware(svc).Middleware())
	app.Get("/me/ping", func(c fiber.Ctx) error {
		id, err := currentUserID(c)
		if err != nil {
			return err
		}
		return c.JSON(envelope{Status: 200, Message: id.String()})
	})

	access, err := svc.GenerateAccessToken(testUserID, "ana@example.com")
	require.NoError(t, err)
	refresh, err := svc.GenerateRefreshToken(testUserID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me/ping", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	status, env := do(t, app, req)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, testUserID.String(), env.Message)

	req = httptest.NewRequest(http.MethodGet, "/me/ping", nil)
	req.Header.Set("Authorization", "Bearer "+refresh)
	status, _ = do(t, app, req)
	assert.Equal(t, http.StatusUnauthorized, status)

	req = httptest.NewRequest(http.MethodGet, "/me/ping?access_token="+access, nil)
	status, _ = do(t, app, req)
	assert.Equal(t, http.StatusUnauthorized, status)
}

type fakeInsightUC struct {
	industry usecase.IndustryInsights
	asked    string
	err      error
}

func (f *fakeInsightUC) GetPersonalizedInsights(context.Context, uuid.UUID) (recommendation.Insights, error) {
	return recommendation.Insights{}, f.err
}

func (f *fakeInsightUC) GetIndustryInsights(_ context.Context, industry string) (usecase.IndustryInsights, error) {
	f.asked = industry
	if f.err != nil {
		return usecase.IndustryInsights{}, f.err
	}
	return f.industry, nil
}

func TestInsightHandler_IndustryTopCareers(t *testing.T) {
	mlID := uuid.New()
	uc := &fakeInsightUC{industry: usecase.IndustryInsights{
		Industry:    "Technology",
		CareerCount: 6,
		TopCareers: []career.IndustryCareer{
			{ID: mlID, Title: "Machine Learning Engineer", DemandScore: 0.9, RecommendationCount: 2},
		},
	}}
	app := newTestApp(false, NewInsightHandler(uc).RegisterRoutes)

	status, env := doJSON(t, app, http.MethodGet, "/industries/Technology/insights", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Technology", uc.asked)

	var got struct {
		CareerCount int `json:"career_count"`
		TopCareers  []struct {
			ID                  uuid.UUID `json:"id"`
			Title               string    `json:"career_title"`
			DemandScore         float64   `json:"demand_score"`
			RecommendationCount int       `json:"recommendation_count"`
		} `json:"top_careers"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, 6, got.CareerCount)
	require.Len(t, got.TopCareers, 1)
	assert.Equal(t, mlID, got.TopCareers[0].ID)
	assert.Equal(t, "Machine Learning Engineer", got.TopCareers[0].Title)
	assert.Equal(t, 2, got.TopCareers[0].RecommendationCount)
}

func TestInsightHandler_IndustryTopCareersNeverNull(t *testing.T) {
	uc := &fakeInsightUC{industry: usecase.IndustryInsights{Industry: "Design", CareerCount: 1}}
	app := newTestApp(false, NewInsightHandler(uc).RegisterRoutes)

	status, env := doJSON(t, app, http.MethodGet, "/industries/Design/insights", nil)
	require.Equal(t, http.StatusOK, status)

	var got map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, []any{}, got["top_careers"])
}

type fakeAuthUC struct {
	registered []ucauth.RegisterInput
}

func (f *fakeAuthUC) Register(_ context.Context, in ucauth.RegisterInput) (user.User, string, string, error) {
	f.registered = append(f.registered, in)
	return user.User{ID: uuid.New(), Name: in.Name, Email: in.Email, EducationLevel: in.EducationLevel}, "access", "refresh", nil
}

func (f *fakeAuthUC) Login(context.Context, ucauth.LoginInput) (user.User, string, string, error) {
	return user.User{}, "", "", nil
}

func (f *fakeAuthUC) Refresh(context.Context, string) (string, string, error) {
	return "", "", nil
}

func TestAuthHandler_RegisterEducationLevel(t *testing.T) {
	cases := []struct {
		level  string
		status int
	}{
		{"", http.StatusCreated},
		{"Bachelor", http.StatusCreated},
		{"High School", http.StatusCreated},
		{"PhD", http.StatusCreated},
		{"Bachelor's", http.StatusBadRequest},
		{"bachelor", http.StatusBadRequest},
		{"Doctorate", http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.level, func(t *testing.T) {
			uc := &fakeAuthUC{}
			app := newTestApp(false, NewAuthHandler(uc).RegisterRoutes)

			status, env := doJSON(t, app, http.MethodPost, "/register", map[string]any{
				"name":            "Jane Doe",
				"email":           "jane@example.com",
				"password":        "s3cret-pass",
				"education_level": tc.level,
			})
			require.Equal(t, tc.status, status)
			if tc.status != http.StatusBadRequest {
				require.Len(t, uc.registered, 1)
				assert.Equal(t, tc.level, uc.registered[0].EducationLevel)
				return
			}
			assert.Empty(t, uc.registered)
			var fields []validate.FieldError
			require.NoError(t, json.Unmarshal(env.Data, &fields))
			require.Len(t, fields, 1)
			assert.Equal(t, "education_level", fields[0].Field)
			assert.Equal(t, "oneof", fields[0].Rule)
		})
	}
}

func TestUpdateProfileRequest_EducationLevel(t *testing.T) {
	level := func(s string) *string { return &s }

	assert.Empty(t, validate.Struct(updateProfileRequest{}))
	assert.Empty(t, validate.Struct(updateProfileRequest{EducationLevel: level("Master")}))
	assert.Empty(t, validate.Struct(updateProfileRequest{EducationLevel: level("")}))

	errs := validate.Struct(updateProfileRequest{EducationLevel: level("Masters")})
	require.Len(t, errs, 1)
	assert.Equal(t, "education_level", errs[0].Field)
	assert.Equal(t, "oneof", errs[0].Rule)
}
