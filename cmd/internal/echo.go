package internal

import (
	"fmt"
	"io"
	"strings"
)

// Echo will emit the given message to w without any logging formatting, terminated by a newline.
func Echo(w io.Writer, msg string, args ...any) {
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	_, _ = fmt.Fprintf(w, msg, args...)
}
