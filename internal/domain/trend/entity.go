package trend

import (
	"time"

	"github.com/google/uuid"
)

// TrendingThreshold is the score above which a skill counts as trending.
const TrendingThreshold = 0.7

type MarketTrend struct {
	SkillID     uuid.UUID
	SkillName   string
	TrendScore  float64
	DemandLevel string
	SalaryTrend float64
	UpdatedAt   time.Time
}

func (t MarketTrend) IsTrending() bool {
	return t.TrendScore > TrendingThreshold
}
