package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// RiskAssessment – immutable value object
// ---------------------------------------------------------------------------

// RiskAssessment is the qualitative tier that accompanies a numeric risk
// score.
type RiskAssessment struct {
	value string
}

const (
	riskAssessmentBajo    = "Bajo"
	riskAssessmentMedio   = "Medio"
	riskAssessmentAlto    = "Alto"
	riskAssessmentMuyAlto = "Muy Alto"
	riskAssessmentError   = "Error"
)

var (
	RiskAssessmentBajo    = RiskAssessment{value: riskAssessmentBajo}
	RiskAssessmentMedio   = RiskAssessment{value: riskAssessmentMedio}
	RiskAssessmentAlto    = RiskAssessment{value: riskAssessmentAlto}
	RiskAssessmentMuyAlto = RiskAssessment{value: riskAssessmentMuyAlto}
	RiskAssessmentError   = RiskAssessment{value: riskAssessmentError}
)

var validRiskAssessments = map[string]RiskAssessment{
	riskAssessmentBajo:    RiskAssessmentBajo,
	riskAssessmentMedio:   RiskAssessmentMedio,
	riskAssessmentAlto:    RiskAssessmentAlto,
	riskAssessmentMuyAlto: RiskAssessmentMuyAlto,
	riskAssessmentError:   RiskAssessmentError,
}

// NewRiskAssessment creates a RiskAssessment from a raw string.
func NewRiskAssessment(s string) (RiskAssessment, error) {
	v, ok := validRiskAssessments[s]
	if !ok {
		return RiskAssessment{}, fmt.Errorf("invalid risk assessment: %q", s)
	}
	return v, nil
}

// String returns the string representation of the assessment.
func (a RiskAssessment) String() string { return a.value }

// IsZero returns true if the assessment has not been initialised.
func (a RiskAssessment) IsZero() bool { return a.value == "" }

// Equal returns true when both assessments carry the same value.
func (a RiskAssessment) Equal(other RiskAssessment) bool { return a.value == other.value }
