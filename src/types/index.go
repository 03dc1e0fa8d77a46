package types

// StressTrend summarizes the intraday stress curve for one calendar date.
type StressTrend struct {
	Average  string `json:"average"`
	PeakHour int    `json:"peak_hour"`
	LowHour  int    `json:"low_hour"`
	Trend    string `json:"trend"`
}

// EnvironmentalFactors carries the per-day weighting of the top stress features.
type EnvironmentalFactors struct {
	DominantStressor  string `json:"dominant_stressor"`
	AirQualityImpact  string `json:"air_quality_impact"`
	SleepFactorWeight string `json:"sleep_factor_weight"`
}

type Alert struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// DailyInsight is the record keyed by Date (YYYY-MM-DD). StoredAt is set
// only when the record has been written to the table; Note is set only on
// generated-but-not-persisted responses.
type DailyInsight struct {
	Date                 string               `json:"date"`
	DailyStressTrend     StressTrend          `json:"daily_stress_trend"`
	EnvironmentalFactors EnvironmentalFactors `json:"environmental_factors"`
	Recommendations      []string             `json:"recommendations"`
	Alerts               []Alert              `json:"alerts"`
	StoredAt             string               `json:"stored_at,omitempty"`
	Note                 string               `json:"note,omitempty"`
}
