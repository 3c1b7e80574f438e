package seeder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalog_Consistent(t *testing.T) {
	skills := map[string]struct{}{}
	for _, s := range catalogSkills {
		key := strings.ToLower(s.Name)
		_, dup := skills[key]
		assert.False(t, dup, s.Name)
		skills[key] = struct{}{}
	}
	assert.Len(t, skills, 20)

	careers := map[string]struct{}{}
	for _, c := range catalogCareers {
		careers[c.Title] = struct{}{}
		assert.LessOrEqual(t, c.SalaryMin, c.SalaryMax, c.Title)
		assert.GreaterOrEqual(t, c.Demand, 0.0, c.Title)
		assert.LessOrEqual(t, c.Demand, 1.0, c.Title)
	}
	assert.Len(t, careers, 10)

	for _, r := range catalogRequirements {
		assert.Contains(t, careers, r.Career)
		assert.Contains(t, skills, strings.ToLower(r.Skill))
		assert.True(t, r.Importance >= 1 && r.Importance <= 5)
		assert.True(t, r.Proficiency >= 1 && r.Proficiency <= 5)
	}
}

func TestDefaults_Order(t *testing.T) {
	names := make([]string, 0)
	for _, s := range Defaults() {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{"skills", "careers", "career_skills"}, names)
}
