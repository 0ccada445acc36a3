package ruleexec

import (
	"strings"

	"github.com/jgrey4296/elgo/internal/ir"
)

// Interpolate substitutes every `{name}` occurrence in template with slice's bound value for
// name, leaving unknown names untouched (spec §4.5 step 7).
func Interpolate(template string, slice ir.BindingSlice) string {
	var b strings.Builder
	i := 0
	for i < len(template) {
		open := strings.IndexByte(template[i:], '{')
		if open == -1 {
			b.WriteString(template[i:])
			break
		}
		open += i
		b.WriteString(template[i:open])
		close := strings.IndexByte(template[open:], '}')
		if close == -1 {
			b.WriteString(template[open:])
			break
		}
		close += open
		name := template[open+1 : close]
		if entry, ok := slice[name]; ok {
			b.WriteString(entry.Value.String())
		} else {
			b.WriteString(template[open : close+1])
		}
		i = close + 1
	}
	return b.String()
}
