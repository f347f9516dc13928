package execext

import (
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// Build renders a command line the way a shell would need it typed. It
// is only used for display, never to run anything.
func Build(cmd string, args ...string) (string, error) {
	parts := make([]string, 0, len(args)+1)
	for _, arg := range append([]string{cmd}, args...) {
		quoted, err := syntax.Quote(arg, syntax.LangBash)
		if err != nil {
			return "", err
		}
		parts = append(parts, quoted)
	}
	return strings.Join(parts, " "), nil
}
