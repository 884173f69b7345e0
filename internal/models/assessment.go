package models

// RiskStatus is the classifier's category for a player's recent window.
type RiskStatus string

const (
	RiskStatusOptimal  RiskStatus = "optimal"
	RiskStatusModerate RiskStatus = "moderate_risk"
	RiskStatusHigh     RiskStatus = "high_risk"
	RiskStatusUnknown  RiskStatus = "unknown"
)

// Assessment is the classifier output for one player: status, a tiered
// recommendation set and the statistics that produced them.
type Assessment struct {
	Player           string      `json:"player_name"`
	Status           RiskStatus  `json:"status"`
	Title            string      `json:"title"`
	Recommendations  []string    `json:"recommendations"`
	ConsistencyLabel string      `json:"consistency_label"`
	Stats            WindowStats `json:"stats"`
}

// WorkloadAdvice pairs a workload progression with its guidance.
type WorkloadAdvice struct {
	Progression     WorkloadProgression `json:"progression"`
	Title           string              `json:"title"`
	Recommendations []string            `json:"recommendations"`
}
