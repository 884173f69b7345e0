package assessment

import (
	"github.com/vtiwari/recovery-insights/internal/models"
)

// Sub-predicates choosing which variant of a status's recommendation
// set applies. Deterministic given the statistics; no randomness.
const (
	acuteFatigueMargin     = 0.4
	highVariabilityCutoff  = 0.3
	decliningTrendCutoff   = -0.1
	moderVariabilityCutoff = 0.2
	improvingTrendCutoff   = 0.1
	strongRecoveryCutoff   = 0.3
)

var highRiskAcute = []string{
	"Immediate 48-hour recovery protocol (passive recovery)",
	"Reduce training load by 50-60%, focus on technique over intensity",
	"Implement contrast therapy (3:1 cold:hot) and compression therapy",
	"Schedule assessment with medical staff to rule out underlying issues",
	"Emphasize sleep hygiene: 9+ hours with pre-sleep routine",
	"Increase protein intake to 1.8-2.0g/kg body weight to support recovery",
}

var highRiskVariable = []string{
	"Implement 36-hour modified recovery protocol",
	"Reduce intensity by 40%, emphasize steady-state over interval work",
	"Focus on sleep consistency (regular sleep/wake times)",
	"Implement daily recovery monitoring with morning readiness assessment",
	"Schedule physiotherapy for targeted recovery techniques",
	"Adjust nutrition timing: increase pre/post session carbohydrate window",
}

var highRiskCumulative = []string{
	"Implement full recovery protocol for 48-72 hours",
	"Reduce training volume by 40-50%, remove high-intensity components",
	"Prioritize sleep quality enhancement and aim for 8-9 hours",
	"Schedule manual therapy session with physiotherapy team",
	"Consider lower-body unloading techniques (pool-based recovery)",
	"Implement detailed recovery diary with 3x daily monitoring",
}

var moderateDeclining = []string{
	"Reduce training volume by 20-30% for next 2-3 sessions",
	"Implement recovery-focused day between high-intensity sessions",
	"Increase emphasis on tissue preparation (targeted mobility work)",
	"Adjust carbohydrate intake timing around training sessions",
	"Focus on quality sleep (8+ hours) with 30-min pre-sleep routine",
	"Monitor morning HRV and subjective readiness scores",
}

var moderateVariable = []string{
	"Modify training intensity by 15-25% based on daily readiness",
	"Implement structured recovery protocols between sessions",
	"Focus on nutrition consistency and hydration timing",
	"Incorporate targeted mobility work for primary muscle groups",
	"Establish consistent sleep/wake cycle with 7.5-8.5 hours of sleep",
	"Monitor subjective wellness scores daily (fatigue, soreness, mood)",
}

var moderateGeneral = []string{
	"Reduce training intensity by 20-25% for next 2 sessions",
	"Increase recovery time between high-intensity exposures",
	"Emphasize nutrition timing and 30-30-30 macronutrient distribution",
	"Prioritize sleep quality improvements and consistent timing",
	"Implement specific mobility protocols pre/post training",
	"Monitor symptoms closely during next training block",
}

var optimalImproving = []string{
	"Maintain current training load with option to progress 5-10%",
	"Continue proactive recovery protocols between sessions",
	"Focus on nutrition quality and timing for performance",
	"Maintain consistent sleep hygiene practices",
	"Consider additional technical development during good recovery periods",
	"Document effective recovery strategies in player profile",
}

var optimalStrong = []string{
	"Opportunity to introduce progressive overload (10-15%)",
	"Maintain recovery protocols with focus on proactive strategies",
	"Consider introducing new training stimuli during this window",
	"Optimize nutrition for performance and adaptation",
	"Maintain sleep quality while potentially increasing training volume",
	"Document key performance indicators during optimal recovery phases",
}

var optimalGeneral = []string{
	"Maintain current training progression with daily monitoring",
	"Continue consistent recovery routines between sessions",
	"Focus on nutrition quality and fueling for performance",
	"Maintain sleep consistency and quality (7-9 hours)",
	"Regular monitoring of recovery metrics with weekly review",
	"Prepare for potential increase in training load if recovery sustains",
}

var unknownGeneral = []string{
	"Continue collecting daily recovery data",
	"Establish baseline recovery patterns before load decisions",
	"Use RPE and training load metrics to supplement recovery data",
}

// Recommendations returns the title and recommendation set for a
// status, with the variant chosen by the window's characteristics.
func Recommendations(status models.RiskStatus, stats models.WindowStats, threshold float64) (string, []string) {
	switch status {
	case models.RiskStatusHigh:
		title := "High Risk: Recovery Intervention Needed"
		switch {
		case stats.Min < threshold-acuteFatigueMargin:
			return title, highRiskAcute
		case stats.Variability > highVariabilityCutoff:
			return title, highRiskVariable
		}
		return title, highRiskCumulative
	case models.RiskStatusModerate:
		title := "Moderate Risk: Modified Training Recommended"
		switch {
		case stats.TrendDelta < decliningTrendCutoff:
			return title, moderateDeclining
		case stats.Variability > moderVariabilityCutoff:
			return title, moderateVariable
		}
		return title, moderateGeneral
	case models.RiskStatusOptimal:
		title := "Optimal: Continue Current Program"
		switch {
		case stats.TrendDelta > improvingTrendCutoff:
			return title, optimalImproving
		case stats.RecentAvg > strongRecoveryCutoff:
			return title, optimalStrong
		}
		return title, optimalGeneral
	}
	return "Insufficient Data", unknownGeneral
}

var workloadSpike = []string{
	"Reduce training load by 15-20% for next 3-5 days",
	"Implement acute recovery protocol to manage spike",
	"Increase recovery monitoring frequency to twice daily",
	"Gradually return to normal loading with max 5-10% increases",
	"Review training design to avoid future load spikes",
}

var workloadDetraining = []string{
	"Progressively increase load by 5-10% per session",
	"Focus on maintaining neuromuscular readiness with activation work",
	"Implement progressive loading strategy over next 7-10 days",
	"Monitor tissue resilience during load increase phase",
	"Emphasize quality movement patterns during rebuilding phase",
}

var workloadBalanced = []string{
	"Maintain current loading strategy with consistent progression",
	"Continue with planned periodization model",
	"Monitor for early signs of fatigue accumulation",
	"Focus on optimizing recovery between training stimuli",
}

var workloadInsufficient = []string{
	"Continue collecting daily recovery data",
	"Use RPE and training load metrics to supplement recovery data",
	"Focus on establishing baseline recovery patterns",
}

// AdviseWorkload attaches guidance to a workload progression result.
func AdviseWorkload(progression models.WorkloadProgression) models.WorkloadAdvice {
	advice := models.WorkloadAdvice{Progression: progression}
	switch progression.Status {
	case models.WorkloadHighSpike:
		advice.Title = "High Acute:Chronic Workload Ratio"
		advice.Recommendations = workloadSpike
	case models.WorkloadDetrainingRisk:
		advice.Title = "Low Acute:Chronic Workload Ratio"
		advice.Recommendations = workloadDetraining
	case models.WorkloadOptimal:
		advice.Title = "Balanced Workload Progression"
		advice.Recommendations = workloadBalanced
	default:
		advice.Title = "Insufficient Data for Workload Analysis"
		advice.Recommendations = workloadInsufficient
	}
	return advice
}

// Consistency label bands over the window's standard deviation.
const (
	veryConsistentBand = 0.15
	consistentBand     = 0.25
	variableBand       = 0.35
)

// ConsistencyLabel names how stable the window's scores were.
func ConsistencyLabel(stats models.WindowStats) string {
	if stats.Days < 2 {
		return "Insufficient Data"
	}
	switch {
	case stats.Variability < veryConsistentBand:
		return "Very Consistent"
	case stats.Variability < consistentBand:
		return "Consistent"
	case stats.Variability < variableBand:
		return "Variable"
	}
	return "Highly Variable"
}
