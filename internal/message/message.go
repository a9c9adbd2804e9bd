// Package message composes customer notification texts and WhatsApp deep
// links. It only builds strings; delivery happens outside and nothing here
// depends on it succeeding.
package message

import (
	"fmt"
	"net/url"
	"strings"

	"teknikservis/backend/internal/domain"
)

// StatusText is the Turkish notification for a ticket's current status. The
// ready text includes the outstanding balance.
func StatusText(r domain.RepairRecord) string {
	name := r.Customer.FullName
	switch r.Status {
	case domain.RepairStatusDiagnosing:
		return fmt.Sprintf("Sayın %s, %s numaralı cihazınız incelenmektedir.", name, r.TicketNo)
	case domain.RepairStatusWaitingParts:
		return fmt.Sprintf("Sayın %s, %s numaralı cihazınız için parça beklenmektedir.", name, r.TicketNo)
	case domain.RepairStatusRepairing:
		return fmt.Sprintf("Sayın %s, %s numaralı cihazınızın tamiri devam etmektedir.", name, r.TicketNo)
	case domain.RepairStatusReady:
		return fmt.Sprintf("Sayın %s, %s numaralı cihazınızın tamiri tamamlanmıştır. Mesai saatlerimiz içinde teslim alabilirsiniz. bakiye: %g TL", name, r.TicketNo, r.FinalCost)
	case domain.RepairStatusDelivered:
		return fmt.Sprintf("Sayın %s, %s numaralı cihazınız teslim edilmiştir. İyi günlerde kullanın!", name, r.TicketNo)
	case domain.RepairStatusCancelled:
		return fmt.Sprintf("Sayın %s, %s numaralı cihazınızla ilgili tamir işlemi iptal edilmiştir.", name, r.TicketNo)
	default:
		return fmt.Sprintf("Sayın %s, %s numaralı cihazınız teslim alınmıştır. Sizi bilgilendireceğiz.", name, r.TicketNo)
	}
}

// WhatsAppLink builds a wa.me deep link. The phone is reduced to digits and
// prefixed with the Turkish country code when missing.
func WhatsAppLink(phone string, text string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
	if !strings.HasPrefix(digits, "90") {
		digits = "90" + digits
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", digits, url.QueryEscape(text))
}
