/* ==================================================================================== *\
   logging.go

   Upstream keeps one true global: its logger (main.go's log.SetFlags(0)
   at the top of main). Here it is an explicit dependency instead of a
   bare package-level `log` call: every component that wants to log takes
   a *log.Logger (SurveillanceController.SetLogger) and stays silent when
   none is set, so the core stays a library first. defaultLogger maps a
   nil logger to log.Default() for a caller that wants that fallback.
\* ==================================================================================== */
package surveillance

import (
	"io"
	"log"
)

// NewLogger builds a logger with no date/time prefix, just the message
// (main.go calls log.SetFlags(0) for the same reason — experiment output
// is piped and timestamped by the harness).
func NewLogger(w io.Writer, prefix string) *log.Logger {
	return log.New(w, prefix, 0)
}

func defaultLogger(l *log.Logger) *log.Logger {
	if l == nil {
		return log.Default()
	}
	return l
}
