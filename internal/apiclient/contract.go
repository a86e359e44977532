package apiclient

import (
	"fmt"
	"strings"
)

// Contract defines how a [*Client] reports failures.
type Contract int

const (
	// ContractError reports failures through the error return value.
	ContractError = Contract(iota)

	// ContractResult reports failures inside the returned [*Result].
	ContractResult
)

// String implements fmt.Stringer.
func (c Contract) String() string {
	switch c {
	case ContractError:
		return "error"
	case ContractResult:
		return "result"
	default:
		return fmt.Sprintf("Contract(%d)", int(c))
	}
}

// ParseContract parses the output of [Contract.String]. The empty
// string maps to [ContractError].
func ParseContract(value string) (Contract, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "error":
		return ContractError, nil
	case "result":
		return ContractResult, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidContract, value)
	}
}
