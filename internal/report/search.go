package report

import (
	"fmt"
	"strings"

	"teknikservis/backend/internal/domain"
)

const (
	SearchTypeRepair     = "repair"
	SearchTypeStock      = "stock"
	SearchTypeCustomer   = "customer"
	SearchTypeCompany    = "company"
	SearchTypeSecondHand = "second-hand"
	SearchTypeQuote      = "quote"
)

type SearchResult struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

const searchLimit = 20

// Search runs a case-insensitive substring match across repairs, stock,
// customers (deduplicated by phone), companies, second-hand devices and
// quotes, in that order, capped at 20 results. Queries shorter than two
// characters return nothing.
func Search(st domain.AppState, query string) []SearchResult {
	if len(query) < 2 {
		return nil
	}
	q := strings.ToLower(query)
	var out []SearchResult

	for _, r := range st.Repairs {
		if containsFold(r.TicketNo, q) || containsFold(r.Customer.FullName, q) ||
			strings.Contains(r.Customer.Phone, query) || containsFold(r.Device.Brand, q) ||
			containsFold(r.Device.Model, q) || containsFold(r.IssueDescription, q) {
			out = append(out, SearchResult{
				Type:     SearchTypeRepair,
				Title:    fmt.Sprintf("%s — %s", r.TicketNo, r.Customer.FullName),
				Subtitle: fmt.Sprintf("%s %s • %s", r.Device.Brand, r.Device.Model, r.Status),
			})
		}
	}

	for _, item := range st.StockItems {
		matched := containsFold(item.Name, q) ||
			(item.Barcode != "" && strings.Contains(item.Barcode, query))
		if !matched {
			for _, m := range item.CompatibleModels {
				if containsFold(m, q) {
					matched = true
					break
				}
			}
		}
		if matched {
			out = append(out, SearchResult{
				Type:     SearchTypeStock,
				Title:    item.Name,
				Subtitle: fmt.Sprintf("Stok: %d • %.2f TL", item.Quantity, item.SellPrice),
			})
		}
	}

	seenPhones := map[string]bool{}
	for _, r := range st.Repairs {
		if seenPhones[r.Customer.Phone] {
			continue
		}
		if containsFold(r.Customer.FullName, q) || strings.Contains(r.Customer.Phone, query) {
			seenPhones[r.Customer.Phone] = true
			out = append(out, SearchResult{
				Type:     SearchTypeCustomer,
				Title:    r.Customer.FullName,
				Subtitle: r.Customer.Phone,
			})
		}
	}

	for _, c := range st.Companies {
		if containsFold(c.Name, q) || containsFold(c.ContactPerson, q) {
			out = append(out, SearchResult{
				Type:     SearchTypeCompany,
				Title:    c.Name,
				Subtitle: c.ContactPerson,
			})
		}
	}

	for _, d := range st.SecondHandDevices {
		if containsFold(d.Brand, q) || containsFold(d.Model, q) {
			price := d.SellPrice
			if price == 0 {
				price = d.BuyPrice
			}
			out = append(out, SearchResult{
				Type:     SearchTypeSecondHand,
				Title:    fmt.Sprintf("%s %s", d.Brand, d.Model),
				Subtitle: fmt.Sprintf("%s • %.2f TL", d.Condition, price),
			})
		}
	}

	for _, quote := range st.Quotes {
		if containsFold(quote.CustomerName, q) {
			out = append(out, SearchResult{
				Type:     SearchTypeQuote,
				Title:    fmt.Sprintf("Teklif — %s", quote.CustomerName),
				Subtitle: fmt.Sprintf("%.2f TL • %s", quote.Total, quote.Status),
			})
		}
	}

	if len(out) > searchLimit {
		out = out[:searchLimit]
	}
	return out
}

// containsFold matches q (already lowercased) as a substring of s ignoring
// case.
func containsFold(s string, q string) bool {
	return strings.Contains(strings.ToLower(s), q)
}
