package domain

import "time"

type IndustryStat struct {
	Industry    string    `json:"industry"`
	Careers     int       `json:"careers"`
	LastUpdated time.Time `json:"last_updated"`
}

// SystemStatus is the operator view of the catalog and its backing stores.
type SystemStatus struct {
	TotalCareers         int            `json:"total_careers"`
	ActiveCareers        int            `json:"active_careers"`
	TotalSkills          int            `json:"total_skills"`
	RecommendationsToday int            `json:"recommendations_today"`
	Industries           []IndustryStat `json:"industries"`
	DatabaseHealthy      bool           `json:"database_healthy"`
	RedisHealthy         bool           `json:"redis_healthy"`
	ServerTime           time.Time      `json:"server_time"`
}
