package booking

import (
	"fmt"
	"strconv"
	"strings"
)

// NormalizeTime converts a raw 24-hour "HH:MM" picker value into the
// 12-hour display form stored on the appointment ("14:00" -> "2:00 PM",
// "00:30" -> "12:30 AM"). Input that does not parse as an hour passes
// through unchanged; a malformed time must never fail a submission.
func NormalizeTime(raw string) string {
	parts := strings.SplitN(raw, ":", 2)
	if len(parts) != 2 {
		return raw
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return raw
	}
	ampm := "AM"
	if h >= 12 {
		ampm = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%s %s", h12, parts[1], ampm)
}
