package completion

import (
	"fmt"
	"io"
	"path"
)

// GenerateBash writes a bash completion script for the executable name.
// Completion itself is answered by go-flags when GO_FLAGS_COMPLETION is set,
// see https://pkg.go.dev/github.com/jessevdk/go-flags
func GenerateBash(w io.Writer, name string) error {
	name = path.Base(name)
	_, err := fmt.Fprintf(w, `
_completion_%[1]s() {
    # All arguments except the first one
    args=("${COMP_WORDS[@]:1:$COMP_CWORD}")

    # Only split on newlines
    local IFS=$'\n'

    COMPREPLY=($(GO_FLAGS_COMPLETION=1 ${COMP_WORDS[0]} "${args[@]}"))
    return 0
}

complete -F _completion_%[1]s %[2]s
`, functionName(name), name)
	return err
}

// functionName makes name usable as part of a shell function name.
func functionName(name string) string {
	out := []byte(name)
	for i, c := range out {
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_') {
			out[i] = '_'
		}
	}
	return string(out)
}
