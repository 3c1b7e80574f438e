package usecase

import (
	"context"
	"sync"
	"testing"

	"career-compass/internal/domain/career"
	"career-compass/internal/domain/recommendation"
	"career-compass/internal/domain/user"
	"career-compass/internal/infrastructure/cache"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestGetPersonalizedInsights_BuildsAndCaches(t *testing.T) {
	id := uuid.New()
	trends := &fakeTrends{
		top: []recommendation.TopSkill{
			{Name: "Python", Proficiency: 5, Category: "Programming", TrendScore: floatPtr(0.8)},
			{Name: "SQL", Proficiency: 3, Category: "Database"},
		},
		trending: []recommendation.TrendingSkill{
			{Name: "Machine Learning", TrendScore: 0.9, DemandLevel: "High", SalaryTrend: 0.2},
		},
	}
	recs := newFakeRecs()
	recs.recent = []recommendation.Recent{{MatchScore: 0.85, CareerTitle: "Data Scientist", Industry: "Technology"}}
	c := newFakeCache()
	uc := NewInsightUsecase(newFakeUsers(user.User{ID: id}), trends, recs, &fakeCareers{}, c, discardLogger())

	out, err := uc.GetPersonalizedInsights(context.Background(), id)
	require.NoError(t, err)
	assert.Len(t, out.TopSkills, 2)
	assert.Equal(t, []string{
		"Consider learning these trending skills: Machine Learning",
		"Leverage your expertise in Python for senior roles",
	}, out.Advice.SkillDevelopment)
	assert.Equal(t, []string{"You're well-suited for Data Scientist - consider applying!"}, out.Advice.CareerMoves)
	assert.Equal(t, []string{"Your skills in Python are highly valued in the current market"}, out.Advice.MarketAlignment)
	assert.Contains(t, c.data, cache.InsightsKey(id))

	again, err := uc.GetPersonalizedInsights(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 1, trends.calls)
	assert.Equal(t, out.Advice, again.Advice)
}

func TestGetPersonalizedInsights_EmptyProfile(t *testing.T) {
	id := uuid.New()
	uc := NewInsightUsecase(newFakeUsers(user.User{ID: id}), &fakeTrends{}, newFakeRecs(), &fakeCareers{}, nil, discardLogger())

	out, err := uc.GetPersonalizedInsights(context.Background(), id)
	require.NoError(t, err)
	assert.NotNil(t, out.TopSkills)
	assert.NotNil(t, out.TrendingSkills)
	assert.NotNil(t, out.RecentRecommendations)
	assert.Empty(t, out.Advice.CareerMoves)
}

func TestGetPersonalizedInsights_UserNotFound(t *testing.T) {
	uc := NewInsightUsecase(newFakeUsers(), &fakeTrends{}, newFakeRecs(), &fakeCareers{}, newFakeCache(), discardLogger())

	_, err := uc.GetPersonalizedInsights(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetIndustryInsights(t *testing.T) {
	mlID, dsID, devopsID := uuid.New(), uuid.New(), uuid.New()
	careers := &fakeCareers{stats: map[string]career.IndustryStats{
		"technology": {
			Industry:             "Technology",
			CareerCount:          3,
			AverageSalary:        101666.6666,
			AverageGrowthRate:    0.123456,
			TotalRecommendations: 7,
			TopCareers: []career.IndustryCareer{
				{ID: mlID, Title: "Machine Learning Engineer", DemandScore: 0.9, RecommendationCount: 4},
				{ID: dsID, Title: "Data Scientist", DemandScore: 0.9, RecommendationCount: 3},
				{ID: devopsID, Title: "DevOps Engineer", DemandScore: 0.85, RecommendationCount: 0},
			},
		},
	}}
	c := newFakeCache()
	uc := NewInsightUsecase(newFakeUsers(), &fakeTrends{}, newFakeRecs(), careers, c, discardLogger())

	out, err := uc.GetIndustryInsights(context.Background(), "  Technology ")
	require.NoError(t, err)
	assert.Equal(t, IndustryInsights{
		Industry:             "Technology",
		CareerCount:          3,
		AverageSalary:        101666.67,
		AverageGrowthRate:    0.1235,
		TotalRecommendations: 7,
		TopCareers: []career.IndustryCareer{
			{ID: mlID, Title: "Machine Learning Engineer", DemandScore: 0.9, RecommendationCount: 4},
			{ID: dsID, Title: "Data Scientist", DemandScore: 0.9, RecommendationCount: 3},
			{ID: devopsID, Title: "DevOps Engineer", DemandScore: 0.85, RecommendationCount: 0},
		},
	}, out)
	assert.Contains(t, c.data, cache.IndustryKey("technology"))

	again, err := uc.GetIndustryInsights(context.Background(), "technology")
	require.NoError(t, err)
	assert.Equal(t, 1, careers.calls)
	require.Len(t, again.TopCareers, 3)
	assert.Equal(t, "Machine Learning Engineer", again.TopCareers[0].Title)
	assert.Equal(t, 4, again.TopCareers[0].RecommendationCount)
}

func TestGetIndustryInsights_Errors(t *testing.T) {
	uc := NewInsightUsecase(newFakeUsers(), &fakeTrends{}, newFakeRecs(), &fakeCareers{}, newFakeCache(), discardLogger())

	_, err := uc.GetIndustryInsights(context.Background(), "Underwater Basket Weaving")
	assert.ErrorIs(t, err, ErrIndustryNotFound)

	_, err = uc.GetIndustryInsights(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrInvalidInput)

	failing := NewInsightUsecase(newFakeUsers(), &fakeTrends{}, newFakeRecs(), &fakeCareers{err: errStore}, nil, discardLogger())
	_, err = failing.GetIndustryInsights(context.Background(), "Technology")
	assert.ErrorIs(t, err, ErrInternal)
}

func TestGetIndustryInsights_Concurrent(t *testing.T) {
	careers := &fakeCareers{stats: map[string]career.IndustryStats{
		"finance": {Industry: "Finance", CareerCount: 1},
	}}
	uc := NewInsightUsecase(newFakeUsers(), &fakeTrends{}, newFakeRecs(), careers, newFakeCache(), discardLogger())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := uc.GetIndustryInsights(context.Background(), "Finance")
			assert.NoError(t, err)
			assert.Equal(t, "Finance", out.Industry)
		}()
	}
	wg.Wait()
	assert.LessOrEqual(t, careers.calls, 8)
	assert.GreaterOrEqual(t, careers.calls, 1)
}
