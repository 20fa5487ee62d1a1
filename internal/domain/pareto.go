package domain

// SearchWindow caps how many units of each good either side may give in a
// candidate trade. Improvements that need a bigger single step are not found.
const SearchWindow = 3

const (
	ExplanationImprovable = "This allocation is not Pareto efficient. A beneficial trade is possible!"
	ExplanationEfficient  = "This allocation is Pareto efficient. No trade can make both students better off."
)

type ParetoStatus struct {
	IsEfficient    bool
	CanImprove     bool
	SuggestedTrade *Trade
	Explanation    string
	UtilityA       int
	UtilityB       int
	// Gain is the summed utility gain of the suggested trade.
	Gain int
}

// CheckParetoStatus searches every barter within SearchWindow for a Pareto
// improvement. Candidates are visited A-pizza, A-soda, B-pizza, B-soda in
// ascending order and the first one with the largest summed gain wins.
func CheckParetoStatus(a, b Student) ParetoStatus {
	utilityA := Utility(a)
	utilityB := Utility(b)

	var best *Barter
	maxGain := 0

	for aPizza := 0; aPizza <= min(a.Holdings.Pizza, SearchWindow); aPizza++ {
		for aSoda := 0; aSoda <= min(a.Holdings.Soda, SearchWindow); aSoda++ {
			for bPizza := 0; bPizza <= min(b.Holdings.Pizza, SearchWindow); bPizza++ {
				for bSoda := 0; bSoda <= min(b.Holdings.Soda, SearchWindow); bSoda++ {
					candidate := Barter{
						A: Holdings{Pizza: aPizza, Soda: aSoda},
						B: Holdings{Pizza: bPizza, Soda: bSoda},
					}
					if candidate.IsEmpty() {
						continue
					}

					newA := a.WithHoldings(a.Holdings.Sub(candidate.A).Add(candidate.B))
					newB := b.WithHoldings(b.Holdings.Sub(candidate.B).Add(candidate.A))
					newUtilityA := Utility(newA)
					newUtilityB := Utility(newB)

					if !IsParetoImprovement(utilityA, utilityB, newUtilityA, newUtilityB) {
						continue
					}

					gain := (newUtilityA - utilityA) + (newUtilityB - utilityB)
					if gain > maxGain {
						maxGain = gain
						best = &candidate
					}
				}
			}
		}
	}

	if best != nil {
		suggested := best.Net()
		return ParetoStatus{
			IsEfficient:    false,
			CanImprove:     true,
			SuggestedTrade: &suggested,
			Explanation:    ExplanationImprovable,
			UtilityA:       utilityA,
			UtilityB:       utilityB,
			Gain:           maxGain,
		}
	}

	return ParetoStatus{
		IsEfficient: true,
		CanImprove:  false,
		Explanation: ExplanationEfficient,
		UtilityA:    utilityA,
		UtilityB:    utilityB,
	}
}

// IsParetoImprovement reports whether nobody loses and somebody gains.
func IsParetoImprovement(beforeA, beforeB, afterA, afterB int) bool {
	return afterA >= beforeA && afterB >= beforeB && (afterA > beforeA || afterB > beforeB)
}
