package sbw

import (
	"fmt"
	"time"
)

// The v4 encoding stores issue dates as whole calendar months elapsed since
// April 1941.
var issueEpoch = time.Date(1941, time.April, 1, 0, 0, 0, 0, time.UTC)

// formatIssueMonths renders an epoch-relative month count as zero-padded
// MM/YYYY. The epoch day is the 1st, so AddDate performs pure calendar
// month arithmetic with no day-of-month normalization.
func formatIssueMonths(months int) string {
	d := issueEpoch.AddDate(0, months, 0)
	return fmt.Sprintf("%02d/%04d", int(d.Month()), d.Year())
}
