package report

import "strings"

// MaskPhone hides the middle digits of a phone number, keeping the
// first four and last two characters visible.
func MaskPhone(phone string) string {
	if len(phone) <= 6 {
		return strings.Repeat("*", len(phone))
	}
	return phone[:4] + strings.Repeat("*", len(phone)-6) + phone[len(phone)-2:]
}
