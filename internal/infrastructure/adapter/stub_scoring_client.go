package adapter

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/agarciagaray/mi-riesgo/internal/domain/model"
	"github.com/agarciagaray/mi-riesgo/internal/domain/valueobject"
)

// StubScoringClient is a development/test adapter that returns a
// deterministic score derived from the national identifier. It implements
// port.ScoringClient and allows repeatable scenarios without the real
// scoring service.
type StubScoringClient struct{}

// NewStubScoringClient creates a new stub adapter.
func NewStubScoringClient() *StubScoringClient {
	return &StubScoringClient{}
}

// ScoreReport returns a score in [300, 850] based on a hash of the national
// identifier.
func (c *StubScoringClient) ScoreReport(_ context.Context, report model.CreditReport) (model.RiskScore, error) {
	identifier := report.Client.NationalIdentifier()
	if identifier == "" {
		return model.RiskScore{}, fmt.Errorf("national identifier is required")
	}

	h := sha256.Sum256([]byte(identifier))
	num := binary.BigEndian.Uint32(h[:4])
	score := 300 + int(num%551) // range [300, 850]

	assessment := valueobject.RiskAssessmentBajo
	switch {
	case score < 500:
		assessment = valueobject.RiskAssessmentMuyAlto
	case score < 620:
		assessment = valueobject.RiskAssessmentAlto
	case score < 720:
		assessment = valueobject.RiskAssessmentMedio
	}

	return model.RiskScore{
		Score:      score,
		Assessment: assessment,
		Reasoning:  "Puntaje simulado para ambiente de desarrollo.",
	}, nil
}
