package valuation

import (
	"fmt"

	"github.com/lifewbs/lifewbs/internal/model"
)

// Fixed policy parameters. These are the whole business model: change them
// and a life is worth something else.
const (
	InitialCapital   int64 = 10_000_000_000 // valuation at age 0
	DepreciationRate int64 = 120_000_000    // opportunity cost per year lived
	GoodwillRate     int64 = 360_000_000    // credit per past challenge

	PLStatusQuo int64 = -10_000_000
	PLChallenge int64 = 0
	PLBigWin    int64 = 50_000_000
)

// InputError reports a valuation input outside its domain.
type InputError struct {
	Field string
	Value int
}

func (e InputError) Error() string {
	return fmt.Sprintf("invalid input: %s must be >= 0, got %d", e.Field, e.Value)
}

// ActionError reports an action outside the three-variant set.
type ActionError struct {
	Action model.Action
}

func (e ActionError) Error() string {
	return fmt.Sprintf("invalid action %q", string(e.Action))
}

// Breakdown is the itemized initial valuation.
type Breakdown struct {
	TimeCost     int64
	Goodwill     int64
	InitialAsset int64
}

// Valuate computes the itemized opening valuation from age and the count of
// past challenges. The result may be negative and is never floored: a life
// can start out already bankrupt.
func Valuate(age, pastChallenges int) (Breakdown, error) {
	if age < 0 {
		return Breakdown{}, InputError{Field: "age", Value: age}
	}
	if pastChallenges < 0 {
		return Breakdown{}, InputError{Field: "past_challenge_count", Value: pastChallenges}
	}
	b := Breakdown{
		TimeCost: int64(age) * DepreciationRate,
		Goodwill: int64(pastChallenges) * GoodwillRate,
	}
	b.InitialAsset = InitialCapital - b.TimeCost + b.Goodwill
	return b, nil
}

// InitialAsset computes the opening valuation without the itemization.
func InitialAsset(age, pastChallenges int) (int64, error) {
	b, err := Valuate(age, pastChallenges)
	if err != nil {
		return 0, err
	}
	return b.InitialAsset, nil
}

// MonthlyDelta returns the policy-fixed PL impact of a month-end action.
func MonthlyDelta(a model.Action) (int64, error) {
	switch a {
	case model.ActionStatusQuo:
		return PLStatusQuo, nil
	case model.ActionChallenge:
		return PLChallenge, nil
	case model.ActionBigWin:
		return PLBigWin, nil
	}
	return 0, ActionError{Action: a}
}
