package problem

// curve defines how the operand bound for a game type grows with the
// running score: bound = min(cap, floor + score/divisor).
type curve struct {
	floor   int
	divisor int
	cap     int
}

// Multiplication grows slower and division allows a slightly higher cap;
// products blow up faster than sums, quotients stay small by construction.
var curves = map[GameType]curve{
	GameAddition:       {floor: 2, divisor: 3, cap: 10},
	GameSubtraction:    {floor: 2, divisor: 3, cap: 10},
	GameMultiplication: {floor: 2, divisor: 4, cap: 10},
	GameDivision:       {floor: 2, divisor: 4, cap: 12},
	GameMixed:          {floor: 2, divisor: 3, cap: 10},
}

// BoundFor maps the cumulative in-session score to the operand bound used
// by the generator. Monotonically non-decreasing in score, never below 1
// and never above the game type's cap.
func BoundFor(gt GameType, score int) int {
	c, ok := curves[gt]
	if !ok {
		c = curves[GameMixed]
	}
	if score < 0 {
		score = 0
	}
	bound := c.floor + score/c.divisor
	if bound > c.cap {
		bound = c.cap
	}
	if bound < 1 {
		bound = 1
	}
	return bound
}

// Label buckets a bound into a difficulty name by thirds of the cap.
func Label(gt GameType, bound int) string {
	c, ok := curves[gt]
	if !ok {
		c = curves[GameMixed]
	}
	switch {
	case bound*3 <= c.cap:
		return "easy"
	case bound*3 <= c.cap*2:
		return "medium"
	default:
		return "hard"
	}
}
