package problem

import (
	"math/rand/v2"
	"time"
)

// Generator produces arithmetic problems from a uniform random source.
// Results are random but every generated problem satisfies the operator's
// invariants: subtraction never goes negative and division is always exact.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator seeded from the current time.
func NewGenerator() *Generator {
	seed := uint64(time.Now().UnixNano())
	return NewGeneratorWithSeed(seed)
}

// NewGeneratorWithSeed creates a deterministic Generator for tests.
func NewGeneratorWithSeed(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Generate produces a problem for the game type at the given operand bound.
// Mixed picks one of the four operators uniformly per call. Bounds below 1
// are clamped to 1.
func (g *Generator) Generate(gt GameType, bound int) Problem {
	if bound < 1 {
		bound = 1
	}
	return g.generate(g.operatorFor(gt), bound)
}

func (g *Generator) operatorFor(gt GameType) Operator {
	switch gt {
	case GameAddition:
		return OpAdd
	case GameSubtraction:
		return OpSubtract
	case GameMultiplication:
		return OpMultiply
	case GameDivision:
		return OpDivide
	}
	ops := [4]Operator{OpAdd, OpSubtract, OpMultiply, OpDivide}
	return ops[g.rng.IntN(len(ops))]
}

func (g *Generator) generate(op Operator, bound int) Problem {
	switch op {
	case OpAdd:
		a := g.rng.IntN(10 * bound)
		b := g.rng.IntN(5 * bound)
		return Problem{OperandA: a, OperandB: b, Op: OpAdd, Answer: a + b}

	case OpSubtract:
		// OperandA starts at 5 so OperandB always has room; the result
		// can never be negative.
		a := 5 + g.rng.IntN(10*bound)
		b := g.rng.IntN(a)
		return Problem{OperandA: a, OperandB: b, Op: OpSubtract, Answer: a - b}

	case OpMultiply:
		a := 1 + g.rng.IntN(bound)
		b := 1 + g.rng.IntN(bound)
		return Problem{OperandA: a, OperandB: b, Op: OpMultiply, Answer: a * b}

	case OpDivide:
		// Divisor and quotient are chosen first and multiplied, so the
		// division is exact by construction rather than by filtering.
		d := 1 + g.rng.IntN(bound)
		q := 1 + g.rng.IntN(bound)
		return Problem{OperandA: d * q, OperandB: d, Op: OpDivide, Answer: q}
	}

	// Unknown operator: fall back to addition rather than panic.
	a := g.rng.IntN(10 * bound)
	b := g.rng.IntN(5 * bound)
	return Problem{OperandA: a, OperandB: b, Op: OpAdd, Answer: a + b}
}
