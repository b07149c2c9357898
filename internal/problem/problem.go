package problem

import "fmt"

// Operator identifies one of the four arithmetic operations.
type Operator string

const (
	OpAdd      Operator = "add"
	OpSubtract Operator = "subtract"
	OpMultiply Operator = "multiply"
	OpDivide   Operator = "divide"
)

// Symbol returns the display glyph for the operator.
func (o Operator) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "−"
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	}
	return "?"
}

// GameType selects which operators a session draws from. Every game type
// maps to a single operator except Mixed, which picks one per question.
type GameType string

const (
	GameAddition       GameType = "addition"
	GameSubtraction    GameType = "subtraction"
	GameMultiplication GameType = "multiplication"
	GameDivision       GameType = "division"
	GameMixed          GameType = "mixed"
)

// GameTypes lists all playable game types in menu order.
func GameTypes() []GameType {
	return []GameType{GameAddition, GameSubtraction, GameMultiplication, GameDivision, GameMixed}
}

// DisplayName returns the human-readable name of the game type.
func (g GameType) DisplayName() string {
	switch g {
	case GameAddition:
		return "Addition"
	case GameSubtraction:
		return "Subtraction"
	case GameMultiplication:
		return "Multiplication"
	case GameDivision:
		return "Division"
	case GameMixed:
		return "Mixed"
	}
	return string(g)
}

// Valid reports whether g is a known game type.
func (g GameType) Valid() bool {
	switch g {
	case GameAddition, GameSubtraction, GameMultiplication, GameDivision, GameMixed:
		return true
	}
	return false
}

// Problem is a single arithmetic question. Immutable once generated;
// a fresh one is produced per question and discarded on submission.
type Problem struct {
	OperandA int
	OperandB int
	Op       Operator
	Answer   int
}

// Prompt renders the question text shown to the player.
func (p Problem) Prompt() string {
	return fmt.Sprintf("%d %s %d = ?", p.OperandA, p.Op.Symbol(), p.OperandB)
}
