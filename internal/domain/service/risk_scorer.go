package service

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/agarciagaray/mi-riesgo/internal/domain/model"
	"github.com/agarciagaray/mi-riesgo/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// RiskScorer – deterministic rule-based credit scoring
// ---------------------------------------------------------------------------

// Score bounds and rule constants. The tree favours reproducibility over
// statistical realism: the same report always yields the same score.
const (
	scoreFloor   = 300
	scoreCeiling = 850

	scoreFlagged     = 320
	scoreLegal       = 380
	scoreActiveMora  = 520
	scoreExcellent   = 780
	scoreGood        = 720
	scoreIrregular   = 580
	excellentRatio   = 0.95
	goodRatio        = 0.85
	highUtilization  = 0.8
	lowUtilization   = 0.3
	utilizationPenal = 50
	utilizationBonus = 30
)

// highRiskFlags is the reserved flag set that short-circuits scoring.
var highRiskFlags = []string{"Fraude", "Robo de identidad", "Castigado"}

// RiskScorer computes a bounded, explainable risk score from a credit
// report. It is the local deterministic fallback behind the optional remote
// scoring collaborator.
type RiskScorer struct{}

// NewRiskScorer returns a new scorer instance.
func NewRiskScorer() *RiskScorer {
	return &RiskScorer{}
}

// Score walks the decision tree over the report. First match wins; the
// utilization adjustment applies to every branch except the reserved-flag
// one, and the final score is clamped to [300, 850].
func (s *RiskScorer) Score(report model.CreditReport) model.RiskScore {
	if flagged, detected := s.detectHighRiskFlags(report.Client); flagged {
		return model.RiskScore{
			Score:      scoreFlagged,
			Assessment: valueobject.RiskAssessmentMuyAlto,
			Reasoning:  "Cliente con banderas de alto riesgo detectadas: " + strings.Join(detected, ", ") + ".",
		}
	}

	score, assessment, reasoning := s.baseScore(report.Loans)
	score, reasoning = s.adjustForUtilization(score, reasoning, report.DebtSummary)

	if score < scoreFloor {
		score = scoreFloor
	}
	if score > scoreCeiling {
		score = scoreCeiling
	}

	return model.RiskScore{Score: score, Assessment: assessment, Reasoning: reasoning}
}

// detectHighRiskFlags intersects the client's flags with the reserved set.
func (s *RiskScorer) detectHighRiskFlags(client model.Client) (bool, []string) {
	var detected []string
	for _, flag := range highRiskFlags {
		if client.HasFlag(flag) {
			detected = append(detected, flag)
		}
	}
	return len(detected) > 0, detected
}

// baseScore evaluates the loan-status and payment-history branches.
func (s *RiskScorer) baseScore(loans []model.Loan) (int, valueobject.RiskAssessment, string) {
	hasLegal := false
	hasMora := false
	for _, loan := range loans {
		if loan.Status().Equal(valueobject.CreditStatusCastigado) ||
			loan.Status().Equal(valueobject.CreditStatusEnJuridica) {
			hasLegal = true
		}
		if loan.Status().Equal(valueobject.CreditStatusEnMora) {
			hasMora = true
		}
	}

	switch {
	case hasLegal:
		return scoreLegal, valueobject.RiskAssessmentMuyAlto, "Créditos en estado castigado o jurídico."
	case hasMora:
		return scoreActiveMora, valueobject.RiskAssessmentAlto, "Presenta mora activa en sus créditos."
	}

	totalPayments := 0
	paidPayments := 0
	for _, loan := range loans {
		totalPayments += len(loan.Payments())
		paidPayments += loan.PaidCount()
	}

	ratio := 0.0
	if totalPayments > 0 {
		ratio = float64(paidPayments) / float64(totalPayments)
	}

	switch {
	case ratio >= excellentRatio:
		return scoreExcellent, valueobject.RiskAssessmentBajo, "Excelente historial de pagos puntuales."
	case ratio >= goodRatio:
		return scoreGood, valueobject.RiskAssessmentMedio, "Buen historial con algunos atrasos menores."
	default:
		return scoreIrregular, valueobject.RiskAssessmentAlto, "Historial irregular de pagos."
	}
}

// adjustForUtilization nudges the base score by the ratio of outstanding
// balance to originally contracted debt. A zero denominator reads as zero
// utilization.
func (s *RiskScorer) adjustForUtilization(score int, reasoning string, summary model.DebtSummary) (int, string) {
	utilization := 0.0
	if summary.TotalOriginalAmount.GreaterThan(decimal.Zero) {
		utilization = summary.TotalCurrentBalance.Div(summary.TotalOriginalAmount).InexactFloat64()
	}

	switch {
	case utilization > highUtilization:
		return score - utilizationPenal, reasoning + " Alto nivel de endeudamiento."
	case utilization < lowUtilization:
		return score + utilizationBonus, reasoning + " Bajo nivel de endeudamiento."
	default:
		return score, reasoning
	}
}
