package vyper

import "github.com/go-mutagen/mutagen/internal/mutator"

// Factory is the Language-V mutator.Factory: the sole construction point
// for Vyper mutators, per spec §4.3 "Mutator factory". Language-V has no
// operators beyond the generic set.
type Factory struct{}

// New builds a fresh Mutator for k, or (nil, false) if k has no Vyper
// implementation.
func (Factory) New(k mutator.Kind) (mutator.Mutator, bool) {
	switch k {
	case mutator.ArithmeticBinaryOp:
		return binaryOp{kind: k, symbols: []string{"+", "-", "*", "/", "%", "**"}}, true
	case mutator.LogicalBinaryOp:
		return binaryOp{kind: k, symbols: []string{"and", "or"}}, true
	case mutator.BitwiseBinaryOp:
		return rotateOp{symbols: []string{"&", "|", "^"}}, true
	case mutator.BitshiftBinaryOp:
		return bitshiftSwap{}, true
	case mutator.ComparisonBinaryOp:
		return binaryOp{kind: k, symbols: []string{"==", "!=", "<", ">", "<=", ">="}}, true
	case mutator.Assignment:
		return assignment{}, true
	case mutator.DeleteStatement:
		return deleteStatement{}, true
	case mutator.FunctionCall:
		return functionCall{}, true
	case mutator.IfStatement:
		return ifStatement{}, true
	case mutator.Integer:
		return integer{}, true
	case mutator.FunctionSwapArguments:
		return functionSwapArguments{}, true
	case mutator.SwapOperatorArguments:
		return swapOperatorArguments{}, true
	case mutator.LinesSwap:
		return linesSwap{}, true
	case mutator.UnaryOp:
		return unaryOp{}, true
	default:
		return nil, false
	}
}
