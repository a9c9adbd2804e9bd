package service

import (
	"context"
	"fmt"

	"teknikservis/backend/internal/domain"
	"teknikservis/backend/internal/xid"
)

type SupplierUpdate struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	Email *string `json:"email"`
	Notes *string `json:"notes"`
}

func (s *Service) AddSupplier(ctx context.Context, sup domain.Supplier) domain.Supplier {
	if sup.ID == "" {
		sup.ID = xid.New("sup")
	}
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		st.Suppliers = prepend(st.Suppliers, sup)
		return st
	})
	return sup
}

func (s *Service) UpdateSupplier(ctx context.Context, id string, upd SupplierUpdate) (domain.Supplier, bool) {
	var out domain.Supplier
	var found bool
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		list := make([]domain.Supplier, len(st.Suppliers))
		for i, sup := range st.Suppliers {
			if sup.ID == id {
				if upd.Name != nil {
					sup.Name = *upd.Name
				}
				if upd.Phone != nil {
					sup.Phone = *upd.Phone
				}
				if upd.Email != nil {
					sup.Email = *upd.Email
				}
				if upd.Notes != nil {
					sup.Notes = *upd.Notes
				}
				out, found = sup, true
			}
			list[i] = sup
		}
		st.Suppliers = list
		return st
	})
	return out, found
}

func (s *Service) DeleteSupplier(ctx context.Context, id string) bool {
	var found bool
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		for _, sup := range st.Suppliers {
			if sup.ID == id {
				st.DeletedItems = appendCopy(st.DeletedItems, s.envelope(sup, domain.DeletedTypeSupplier, sup.Name))
				st.Suppliers = without(st.Suppliers, func(x domain.Supplier) bool { return x.ID == id })
				found = true
				break
			}
		}
		return st
	})
	return found
}

type CompanyUpdate struct {
	Name          *string `json:"name"`
	TaxID         *string `json:"taxId"`
	Address       *string `json:"address"`
	ContactPerson *string `json:"contactPerson"`
	ContactPhone  *string `json:"contactPhone"`
	Notes         *string `json:"notes"`
}

func (s *Service) AddCompany(ctx context.Context, c domain.Company) domain.Company {
	if c.ID == "" {
		c.ID = xid.New("cmp")
	}
	if c.CreatedAt == "" {
		c.CreatedAt = s.nowISO()
	}
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		st.Companies = prepend(st.Companies, c)
		return st
	})
	return c
}

func (s *Service) UpdateCompany(ctx context.Context, id string, upd CompanyUpdate) (domain.Company, bool) {
	var out domain.Company
	var found bool
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		list := make([]domain.Company, len(st.Companies))
		for i, c := range st.Companies {
			if c.ID == id {
				if upd.Name != nil {
					c.Name = *upd.Name
				}
				if upd.TaxID != nil {
					c.TaxID = *upd.TaxID
				}
				if upd.Address != nil {
					c.Address = *upd.Address
				}
				if upd.ContactPerson != nil {
					c.ContactPerson = *upd.ContactPerson
				}
				if upd.ContactPhone != nil {
					c.ContactPhone = *upd.ContactPhone
				}
				if upd.Notes != nil {
					c.Notes = *upd.Notes
				}
				out, found = c, true
			}
			list[i] = c
		}
		st.Companies = list
		return st
	})
	return out, found
}

func (s *Service) DeleteCompany(ctx context.Context, id string) bool {
	var found bool
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		for _, c := range st.Companies {
			if c.ID == id {
				st.DeletedItems = appendCopy(st.DeletedItems, s.envelope(c, domain.DeletedTypeCompany, c.Name))
				st.Companies = without(st.Companies, func(x domain.Company) bool { return x.ID == id })
				found = true
				break
			}
		}
		return st
	})
	return found
}

type RMAUpdate struct {
	PartName *string `json:"partName"`
	Quantity *int    `json:"quantity"`
	Reason   *string `json:"reason"`
	Status   *string `json:"status"`
	Notes    *string `json:"notes"`
}

func (s *Service) AddRMA(ctx context.Context, r domain.RMARecord) domain.RMARecord {
	if r.ID == "" {
		r.ID = xid.New("rma")
	}
	if r.CreatedAt == "" {
		r.CreatedAt = s.nowISO()
	}
	if r.Status == "" {
		r.Status = domain.RMAStatusPending
	}
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		st.RMARecords = prepend(st.RMARecords, r)
		return st
	})
	return r
}

func (s *Service) UpdateRMA(ctx context.Context, id string, upd RMAUpdate) (domain.RMARecord, bool) {
	var out domain.RMARecord
	var found bool
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		list := make([]domain.RMARecord, len(st.RMARecords))
		for i, r := range st.RMARecords {
			if r.ID == id {
				if upd.PartName != nil {
					r.PartName = *upd.PartName
				}
				if upd.Quantity != nil {
					r.Quantity = *upd.Quantity
				}
				if upd.Reason != nil {
					r.Reason = *upd.Reason
				}
				if upd.Status != nil {
					r.Status = *upd.Status
				}
				if upd.Notes != nil {
					r.Notes = *upd.Notes
				}
				out, found = r, true
			}
			list[i] = r
		}
		st.RMARecords = list
		return st
	})
	return out, found
}

// DeleteRMA is a hard delete, RMA records have no recycle path.
func (s *Service) DeleteRMA(ctx context.Context, id string) bool {
	var found bool
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		before := len(st.RMARecords)
		st.RMARecords = without(st.RMARecords, func(x domain.RMARecord) bool { return x.ID == id })
		found = len(st.RMARecords) != before
		return st
	})
	return found
}

type QuoteUpdate struct {
	CompanyID    *string             `json:"companyId"`
	CustomerName *string             `json:"customerName"`
	Items        *[]domain.QuoteItem `json:"items"`
	ValidUntil   *string             `json:"validUntil"`
	Status       *string             `json:"status"`
}

// AddQuote recomputes the total from the line items so it always equals the
// sum of the line extensions.
func (s *Service) AddQuote(ctx context.Context, q domain.Quote) domain.Quote {
	if q.ID == "" {
		q.ID = xid.New("qte")
	}
	if q.CreatedAt == "" {
		q.CreatedAt = s.nowISO()
	}
	if q.Status == "" {
		q.Status = domain.QuoteStatusDraft
	}
	if q.Items == nil {
		q.Items = []domain.QuoteItem{}
	}
	q.Total = quoteTotal(q.Items)
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		st.Quotes = prepend(st.Quotes, q)
		return st
	})
	return q
}

func (s *Service) UpdateQuote(ctx context.Context, id string, upd QuoteUpdate) (domain.Quote, bool) {
	var out domain.Quote
	var found bool
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		list := make([]domain.Quote, len(st.Quotes))
		for i, q := range st.Quotes {
			if q.ID == id {
				if upd.CompanyID != nil {
					q.CompanyID = *upd.CompanyID
				}
				if upd.CustomerName != nil {
					q.CustomerName = *upd.CustomerName
				}
				if upd.Items != nil {
					q.Items = *upd.Items
					q.Total = quoteTotal(q.Items)
				}
				if upd.ValidUntil != nil {
					q.ValidUntil = *upd.ValidUntil
				}
				if upd.Status != nil {
					q.Status = *upd.Status
				}
				out, found = q, true
			}
			list[i] = q
		}
		st.Quotes = list
		return st
	})
	return out, found
}

func (s *Service) DeleteQuote(ctx context.Context, id string) bool {
	var found bool
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		for _, q := range st.Quotes {
			if q.ID == id {
				st.DeletedItems = appendCopy(st.DeletedItems, s.envelope(q, domain.DeletedTypeQuote,
					fmt.Sprintf("Teklif - %s", q.CustomerName)))
				st.Quotes = without(st.Quotes, func(x domain.Quote) bool { return x.ID == id })
				found = true
				break
			}
		}
		return st
	})
	return found
}

func quoteTotal(items []domain.QuoteItem) float64 {
	var total float64
	for _, it := range items {
		total += it.UnitPrice * float64(it.Quantity)
	}
	return total
}
