package reconcile

import "github.com/robby/glassign/internal/domain"

// Decision is the outcome of confirming one matched pair.
type Decision int

const (
	// DecisionYes applies the reassignment for this pair.
	DecisionYes Decision = iota
	// DecisionNo skips this pair and moves on.
	DecisionNo
	// DecisionAll applies this pair and every remaining pair without
	// further prompting.
	DecisionAll
	// DecisionQuit aborts the remaining loop. Pairs already reassigned
	// stay reassigned.
	DecisionQuit
)

// Confirmer decides whether a matched pair should be reassigned.
// Implementations may prompt interactively or answer unconditionally.
type Confirmer interface {
	Confirm(pair domain.MatchedPair) (Decision, error)
}

// AutoConfirmer answers yes to every pair. Used for the --yes flag.
type AutoConfirmer struct{}

// Confirm always returns DecisionYes.
func (AutoConfirmer) Confirm(domain.MatchedPair) (Decision, error) {
	return DecisionYes, nil
}
