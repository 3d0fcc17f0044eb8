package cmdmap

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/dedent"
)

// WriteDoc prints documentation text with common indentation and
// surrounding blank lines removed. Hosts use it to show their own help on
// Halt in the same shape the mapper does.
func WriteDoc(w io.Writer, doc string) {
	text := strings.Trim(dedent.String(doc), "\n")
	if strings.TrimSpace(text) == "" {
		return
	}
	_, _ = fmt.Fprintln(w, text)
}

// writeUsage prints the usage string as given, newline terminated.
func writeUsage(w io.Writer, usage string) {
	if strings.HasSuffix(usage, "\n") {
		_, _ = io.WriteString(w, usage)
		return
	}
	_, _ = fmt.Fprintln(w, usage)
}
