package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"strings"
	"sync"
	"time"

	"career-compass/internal/domain/assessment"
	"career-compass/internal/domain/career"
	"career-compass/internal/domain/recommendation"
	"career-compass/internal/domain/skill"
	"career-compass/internal/domain/trend"
	"career-compass/internal/domain/user"
	"career-compass/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

var errStore = errors.New("store unavailable")

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

type fakeUsers struct {
	mu    sync.Mutex
	users map[uuid.UUID]user.User
	err   error
}

func newFakeUsers(us ...user.User) *fakeUsers {
	f := &fakeUsers{users: map[uuid.UUID]user.User{}}
	for _, u := range us {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUsers) CreateUser(_ context.Context, u user.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.users[u.ID] = u
	return nil
}

func (f *fakeUsers) GetUserByID(_ context.Context, id uuid.UUID) (user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return user.User{}, f.err
	}
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) GetUserByEmail(_ context.Context, email string) (user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (f *fakeUsers) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.GetUserByEmail(ctx, email)
	return err == nil, nil
}

func (f *fakeUsers) UpdateProfile(_ context.Context, u user.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[u.ID]; !ok {
		return user.ErrNotFound
	}
	f.users[u.ID] = u
	return nil
}

type fakeSkills struct {
	mu     sync.Mutex
	byName map[string]skill.Skill
	err    error
}

func newFakeSkills(names ...string) *fakeSkills {
	f := &fakeSkills{byName: map[string]skill.Skill{}}
	for _, n := range names {
		f.byName[strings.ToLower(n)] = skill.Skill{ID: uuid.New(), Name: n, Category: "Programming", ImportanceScore: 0.5}
	}
	return f
}

func (f *fakeSkills) GetAllSkills(context.Context) ([]skill.Skill, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make([]skill.Skill, 0, len(f.byName))
	for _, s := range f.byName {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSkills) FindByName(_ context.Context, name string) (skill.Skill, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return skill.Skill{}, repository.ErrSkillNotFound
	}
	return s, nil
}

func (f *fakeSkills) Ensure(_ context.Context, s skill.Skill) (skill.Skill, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return skill.Skill{}, f.err
	}
	key := strings.ToLower(strings.TrimSpace(s.Name))
	if existing, ok := f.byName[key]; ok {
		return existing, nil
	}
	s.ID = uuid.New()
	f.byName[key] = s
	return s, nil
}

func (f *fakeSkills) Autocomplete(_ context.Context, q string, limit int) ([]skill.Skill, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]skill.Skill, 0)
	for k, s := range f.byName {
		if strings.Contains(k, strings.ToLower(q)) && len(out) < limit {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeUserSkills struct {
	mu     sync.Mutex
	skills *fakeSkills
	rows   map[uuid.UUID][]skill.UserSkill
	known  map[uuid.UUID]bool
	err    error
}

func newFakeUserSkills(skills *fakeSkills) *fakeUserSkills {
	return &fakeUserSkills{skills: skills, rows: map[uuid.UUID][]skill.UserSkill{}}
}

func (f *fakeUserSkills) add(userID uuid.UUID, name string, level int) {
	f.rows[userID] = append(f.rows[userID], skill.UserSkill{
		ID: uuid.New(), UserID: userID, SkillID: uuid.New(), SkillName: name, ProficiencyLevel: level, Source: skill.SourceManual,
	})
}

func (f *fakeUserSkills) FindByUserID(_ context.Context, userID uuid.UUID) ([]skill.UserSkill, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return append([]skill.UserSkill{}, f.rows[userID]...), nil
}

func (f *fakeUserSkills) Upsert(_ context.Context, us skill.UserSkill) (skill.UserSkill, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return skill.UserSkill{}, f.err
	}
	if f.known != nil && !f.known[us.UserID] {
		return skill.UserSkill{}, &pgconn.PgError{Code: "23503"}
	}

	name := ""
	f.skills.mu.Lock()
	for _, s := range f.skills.byName {
		if s.ID == us.SkillID {
			name = s.Name
		}
	}
	f.skills.mu.Unlock()

	us.SkillName = name
	us.ProficiencyLevel = skill.ClampProficiency(us.ProficiencyLevel)
	rows := f.rows[us.UserID]
	for i, r := range rows {
		if r.SkillID == us.SkillID {
			us.ID = r.ID
			rows[i] = us
			return us, nil
		}
	}
	us.ID = uuid.New()
	f.rows[us.UserID] = append(rows, us)
	return us, nil
}

type fakeAssessments struct {
	mu     sync.Mutex
	latest map[uuid.UUID]assessment.Assessment
	err    error
}

func newFakeAssessments() *fakeAssessments {
	return &fakeAssessments{latest: map[uuid.UUID]assessment.Assessment{}}
}

func (f *fakeAssessments) Create(_ context.Context, a assessment.Assessment) (assessment.Assessment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return assessment.Assessment{}, f.err
	}
	a.CreatedAt = time.Now()
	f.latest[a.UserID] = a
	return a, nil
}

func (f *fakeAssessments) LatestByUser(_ context.Context, userID uuid.UUID) (assessment.Assessment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return assessment.Assessment{}, f.err
	}
	a, ok := f.latest[userID]
	if !ok {
		return assessment.Assessment{}, repository.ErrAssessmentNotFound
	}
	return a, nil
}

type fakeCareers struct {
	careers []career.Career
	stats   map[string]career.IndustryStats
	calls   int
	mu      sync.Mutex
	err     error
}

func (f *fakeCareers) ListActiveWithSkills(context.Context) ([]career.Career, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]career.Career, 0, len(f.careers))
	for _, c := range f.careers {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCareers) GetByIDWithSkills(ctx context.Context, id uuid.UUID) (career.Career, error) {
	out, err := f.ListByIDs(ctx, []uuid.UUID{id})
	if err != nil {
		return career.Career{}, err
	}
	if len(out) == 0 {
		return career.Career{}, repository.ErrCareerNotFound
	}
	return out[0], nil
}

func (f *fakeCareers) ListByIDs(_ context.Context, ids []uuid.UUID) ([]career.Career, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]career.Career, 0)
	for _, id := range ids {
		for _, c := range f.careers {
			if c.ID == id {
				out = append(out, c)
			}
		}
	}
	return out, nil
}

func (f *fakeCareers) IndustryStats(_ context.Context, industry string) (career.IndustryStats, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.err != nil {
		return career.IndustryStats{}, f.err
	}
	s, ok := f.stats[strings.ToLower(industry)]
	if !ok {
		return career.IndustryStats{}, repository.ErrIndustryNotFound
	}
	return s, nil
}

type fakeRecs struct {
	mu      sync.Mutex
	byUser  map[uuid.UUID][]recommendation.Recommendation
	recent  []recommendation.Recent
	scores  map[uuid.UUID]float64
	err     error
	replace int

	onReplace func(userID uuid.UUID)
}

func newFakeRecs() *fakeRecs {
	return &fakeRecs{byUser: map[uuid.UUID][]recommendation.Recommendation{}}
}

func (f *fakeRecs) ReplaceForUser(_ context.Context, userID uuid.UUID, recs []recommendation.Recommendation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.replace++
	f.byUser[userID] = append([]recommendation.Recommendation{}, recs...)
	if f.onReplace != nil {
		f.onReplace(userID)
	}
	return nil
}

func (f *fakeRecs) ListByUser(_ context.Context, userID uuid.UUID) ([]recommendation.Recommendation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recommendation.Recommendation{}, f.byUser[userID]...), nil
}

func (f *fakeRecs) ListRecent(context.Context, uuid.UUID, int) ([]recommendation.Recent, error) {
	return f.recent, f.err
}

func (f *fakeRecs) LatestScores(_ context.Context, _ uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]float64, error) {
	out := map[uuid.UUID]float64{}
	for _, id := range ids {
		if s, ok := f.scores[id]; ok {
			out[id] = s
		}
	}
	return out, f.err
}

type fakeTrends struct {
	top      []recommendation.TopSkill
	trending []recommendation.TrendingSkill
	upserted []trend.MarketTrend
	err      error
	calls    int
}

func (f *fakeTrends) UpsertAll(_ context.Context, rows []trend.MarketTrend) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.upserted = rows
	return len(rows), nil
}

func (f *fakeTrends) TopUserSkills(context.Context, uuid.UUID, int) ([]recommendation.TopSkill, error) {
	f.calls++
	return f.top, f.err
}

func (f *fakeTrends) TrendingUnowned(context.Context, uuid.UUID, int) ([]recommendation.TrendingSkill, error) {
	return f.trending, f.err
}

// fakeCache stores JSON in memory; unavailable makes every call fail the way
// a cache without a backend does.
type fakeCache struct {
	mu          sync.Mutex
	data        map[string][]byte
	unavailable bool
	deleted     []string
	patterns    []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}}
}

func (c *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = b
	return nil
}

func (c *fakeCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deleted = append(c.deleted, key)
	delete(c.data, key)
	return nil
}

func (c *fakeCache) DeleteByPattern(_ context.Context, pattern string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.patterns = append(c.patterns, pattern)
	return nil
}

func (c *fakeCache) SetIfNotExists(_ context.Context, key, value string, _ time.Duration) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.unavailable {
		return false, errors.New("redis unavailable")
	}
	if _, ok := c.data[key]; ok {
		return false, nil
	}
	c.data[key] = []byte(value)
	return true, nil
}

func (c *fakeCache) DeleteIfEquals(_ context.Context, key, value string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.unavailable {
		return false, errors.New("redis unavailable")
	}
	if b, ok := c.data[key]; !ok || string(b) != value {
		return false, nil
	}
	c.deleted = append(c.deleted, key)
	delete(c.data, key)
	return true, nil
}

type notification struct {
	userID    uuid.UUID
	count     int
	topCareer string
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []notification
}

func (n *fakeNotifier) RecommendationsUpdated(userID uuid.UUID, count int, topCareer string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, notification{userID: userID, count: count, topCareer: topCareer})
}
