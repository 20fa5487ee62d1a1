package domain

type Outcome string

const (
	OutcomeParetoImprovement Outcome = "pareto_improvement"
	OutcomeWeakImprovement   Outcome = "weak_improvement"
	OutcomeHarmful           Outcome = "harmful"
	OutcomeNoChange          Outcome = "no_change"
	OutcomeLoss              Outcome = "loss"
)

// ClassifyOutcome grades an executed trade from the utilities before and after.
// OutcomeLoss covers every case where nobody gains and someone is worse off.
func ClassifyOutcome(beforeA, beforeB, afterA, afterB int) Outcome {
	gainedA, gainedB := afterA > beforeA, afterB > beforeB
	lostA, lostB := afterA < beforeA, afterB < beforeB

	switch {
	case gainedA && gainedB:
		return OutcomeParetoImprovement
	case gainedA || gainedB:
		if lostA || lostB {
			return OutcomeHarmful
		}
		return OutcomeWeakImprovement
	case afterA == beforeA && afterB == beforeB:
		return OutcomeNoChange
	default:
		return OutcomeLoss
	}
}

func (o Outcome) IsParetoImprovement() bool {
	return o == OutcomeParetoImprovement || o == OutcomeWeakImprovement
}
