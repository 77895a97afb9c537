package typed_flags

import (
	"fmt"
	"strings"

	"github.com/jessevdk/go-flags"
)

// completeEnum returns the values starting with match.
func completeEnum[T ~string](values []T, match string) (completions []flags.Completion) {
	for _, v := range values {
		val := string(v)
		if match == "" || strings.HasPrefix(val, strings.ToLower(match)) {
			completions = append(completions, flags.Completion{Item: val})
		}
	}
	return
}

// unmarshalEnum stores value in dst if it is one of values.
func unmarshalEnum[T ~string](dst *T, values []T, name, value string) error {
	for _, v := range values {
		if string(v) == value {
			*dst = v
			return nil
		}
	}
	return fmt.Errorf("invalid %s: %s (valid: %v)", name, value, values)
}
