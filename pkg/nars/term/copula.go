package term

// Copula identifies the statement relation between subject and predicate.
type Copula int

const (
	CopNone Copula = iota
	CopInheritance
	CopSimilarity
	CopInstance
	CopProperty
	CopInstanceProperty
	CopImplication
	CopEquivalence
	CopPredictiveImplication    // =/>
	CopConcurrentImplication    // =|>
	CopRetrospectiveImplication // =\>
	CopPredictiveEquivalence    // </>
	CopConcurrentEquivalence    // <|>
)

var copulaSymbols = map[Copula]string{
	CopInheritance:              "-->",
	CopSimilarity:               "<->",
	CopInstance:                 "{--",
	CopProperty:                 "--]",
	CopInstanceProperty:         "{-]",
	CopImplication:              "==>",
	CopEquivalence:              "<=>",
	CopPredictiveImplication:    "=/>",
	CopConcurrentImplication:    "=|>",
	CopRetrospectiveImplication: "=\\>",
	CopPredictiveEquivalence:    "</>",
	CopConcurrentEquivalence:    "<|>",
}

var symbolsToCopula = func() map[string]Copula {
	m := make(map[string]Copula, len(copulaSymbols))
	for c, s := range copulaSymbols {
		m[s] = c
	}
	return m
}()

// CopulaFromSymbol looks up a Copula by its surface symbol.
func CopulaFromSymbol(sym string) (Copula, bool) {
	c, ok := symbolsToCopula[sym]
	return c, ok
}

func (c Copula) String() string { return copulaSymbols[c] }

// HigherOrder reports whether the copula belongs to the temporal/implication/
// equivalence family (spec.md §3): statements between statements, as opposed
// to inheritance/similarity between terms.
func (c Copula) HigherOrder() bool {
	switch c {
	case CopImplication, CopEquivalence,
		CopPredictiveImplication, CopConcurrentImplication, CopRetrospectiveImplication,
		CopPredictiveEquivalence, CopConcurrentEquivalence:
		return true
	default:
		return false
	}
}

// FirstOrder is the complement of HigherOrder: inheritance/similarity family.
func (c Copula) FirstOrder() bool {
	return !c.HigherOrder()
}

// Temporal reports whether the copula carries an implicit time offset
// between subject and predicate occurrence times (spec.md §4.5).
func (c Copula) Temporal() bool {
	switch c {
	case CopPredictiveImplication, CopRetrospectiveImplication, CopPredictiveEquivalence:
		return true
	default:
		return false
	}
}
