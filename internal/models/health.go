// ABOUTME: HealthRecord model and BMI derivation.
// ABOUTME: Carries both BMI formulas; see DESIGN.md for why two exist.
package models

import "math"

// DefaultHeightInches is the fixed height used for BMI. The schema has no
// per-record height; 5'5" is baked in.
const DefaultHeightInches = 65.0

// HealthRecord is a vitals entry: blood pressure, heart rate, weight, BMI.
// All measurements are optional.
type HealthRecord struct {
	ID        int64    `json:"id"`
	Date      string   `json:"date"`
	Time      *string  `json:"time"`
	Systolic  *int     `json:"systolic"`
	Diastolic *int     `json:"diastolic"`
	BPM       *int     `json:"bpm"`
	Weight    *float64 `json:"weight"`
	BMI       *float64 `json:"bmi"`
}

// NewHealthRecord creates a record for the given date.
func NewHealthRecord(date string) *HealthRecord {
	return &HealthRecord{Date: date}
}

// WithWeight sets the weight and derives BMI with the imperial shortcut.
func (r *HealthRecord) WithWeight(weightLbs float64) *HealthRecord {
	bmi := BMIImperial(weightLbs)
	r.Weight = &weightLbs
	r.BMI = &bmi
	return r
}

// BMIImperial computes BMI as round(weight * 703 / 65², 1). This is the
// formula the health record paths use.
func BMIImperial(weightLbs float64) float64 {
	return round1(weightLbs * 703 / (DefaultHeightInches * DefaultHeightInches))
}

// BMIMetric computes BMI by converting to kg and meters. Numerically
// near-equivalent to BMIImperial but not bit-identical; kept as the
// general-purpose calculator for callers that supply a height.
func BMIMetric(weightLbs, heightInches float64) float64 {
	weightKg := weightLbs * 0.453592
	heightM := heightInches * 0.0254
	return round1(weightKg / (heightM * heightM))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// HealthSeries holds the date-ordered dashboard columns. Slices are
// index-aligned; missing measurements stay nil.
type HealthSeries struct {
	Dates     []string   `json:"dates"`
	Systolic  []*int     `json:"systolic"`
	Diastolic []*int     `json:"diastolic"`
	BPM       []*int     `json:"bpm"`
	Weight    []*float64 `json:"weight"`
	BMI       []*float64 `json:"bmi"`
}
