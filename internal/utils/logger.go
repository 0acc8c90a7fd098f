package utils

import (
	"log"
	"strings"
)

// LogEvent writes one line tagged with the emitting module and action.
// Messages stay short; document contents and tokens are never logged.
func LogEvent(requestID, module, action, message string) {
	rid := strings.TrimSpace(requestID)
	if rid == "" {
		rid = "-"
	}
	log.Printf("[%s] action=%s request_id=%s msg=%s", strings.ToUpper(module), action, rid, message)
}
