package schema

import (
	"fmt"
	"strings"
)

// StructuralError reports a batch-level violation of the input contract:
// no canonical column could be resolved, an out-of-range year, or a negative
// quantity/revenue after coercion. It aborts the batch rather than skipping
// rows, because it signals a structural problem upstream.
type StructuralError struct {
	// Subject names the offending column or field set.
	Subject string
	// Values holds the offending values, when applicable.
	Values []string
}

// Error implements the error interface.
func (e *StructuralError) Error() string {
	if len(e.Values) == 0 {
		return fmt.Sprintf("structural error in %s", e.Subject)
	}
	return fmt.Sprintf("structural error in %s: offending values [%s]", e.Subject, strings.Join(e.Values, ", "))
}
