package observable

import "fmt"

// Operation classifies a membership change.
type Operation int

const (
	OperationAdd Operation = iota
	OperationRemove
	// OperationEmpty fires after a removal leaves the set without elements.
	OperationEmpty
	// OperationFull fires after an insertion brings a bounded set to capacity.
	OperationFull

	operationCount
)

// Operations returns every operation kind, in declaration order.
func Operations() []Operation {
	return []Operation{OperationAdd, OperationRemove, OperationEmpty, OperationFull}
}

func (op Operation) valid() bool {
	return op >= 0 && op < operationCount
}

func (op Operation) String() string {
	switch op {
	case OperationAdd:
		return "add"
	case OperationRemove:
		return "remove"
	case OperationEmpty:
		return "empty"
	case OperationFull:
		return "full"
	default:
		return fmt.Sprintf("Operation(%d)", int(op))
	}
}
