package service

import (
	"context"
	"fmt"

	"teknikservis/backend/internal/domain"
	"teknikservis/backend/internal/xid"
)

// RepairUpdate is a partial repair edit. Nil fields pass through unchanged.
type RepairUpdate struct {
	Customer         *domain.Customer         `json:"customer"`
	Device           *domain.Device           `json:"device"`
	IssueDescription *string                  `json:"issueDescription"`
	Status           *domain.RepairStatus     `json:"status"`
	AssignedTo       *string                  `json:"assignedTo"`
	TechnicianNotes  *string                  `json:"technicianNotes"`
	DiagnosticMarks  *[]domain.DiagnosticMark `json:"diagnosticMarks"`
	Photos           *[]domain.RepairPhoto    `json:"photos"`
	UsedParts        *[]domain.UsedPart       `json:"usedParts"`
	EstimatedCost    *float64                 `json:"estimatedCost"`
	FinalCost        *float64                 `json:"finalCost"`
	WarrantyDays     *int                     `json:"warrantyDays"`
	SignatureDataURL *string                  `json:"signatureDataUrl"`
	LoanerDeviceID   *string                  `json:"loanerDeviceId"`
	CompanyID        *string                  `json:"companyId"`
	PaymentStatus    *string                  `json:"paymentStatus"`
	PaymentMethod    *string                  `json:"paymentMethod"`
}

// AddRepair registers a new ticket at the head of the repair list. Missing
// id, ticket number and timestamps are filled in.
func (s *Service) AddRepair(ctx context.Context, r domain.RepairRecord) domain.RepairRecord {
	if r.ID == "" {
		r.ID = xid.New("rep")
	}
	if r.TicketNo == "" {
		r.TicketNo = xid.NewTicketNo(s.now())
	}
	if r.Status == "" {
		r.Status = domain.RepairStatusPending
	}
	if r.CreatedAt == "" {
		r.CreatedAt = s.nowISO()
	}
	if r.UpdatedAt == "" {
		r.UpdatedAt = r.CreatedAt
	}
	if r.DiagnosticMarks == nil {
		r.DiagnosticMarks = []domain.DiagnosticMark{}
	}
	if r.Photos == nil {
		r.Photos = []domain.RepairPhoto{}
	}
	if r.UsedParts == nil {
		r.UsedParts = []domain.UsedPart{}
	}
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		st.Repairs = prepend(st.Repairs, r)
		return st
	})
	return r
}

// UpdateRepair merges the partial edit into the matching ticket and always
// stamps UpdatedAt. When the edit moves the ticket to delivered and paid,
// postIncome opts the payment into the cash ledger; the income is skipped
// when the ticket was already paid.
func (s *Service) UpdateRepair(ctx context.Context, id string, upd RepairUpdate, postIncome bool) (domain.RepairRecord, bool) {
	var out domain.RepairRecord
	var found bool
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		list := make([]domain.RepairRecord, len(st.Repairs))
		var wasPaid bool
		for i, r := range st.Repairs {
			if r.ID == id {
				wasPaid = r.PaymentStatus == domain.PaymentStatusPaid
				r = mergeRepair(r, upd)
				r.UpdatedAt = s.nowISO()
				out, found = r, true
			}
			list[i] = r
		}
		st.Repairs = list

		if found && postIncome && !wasPaid &&
			out.Status == domain.RepairStatusDelivered &&
			out.PaymentStatus == domain.PaymentStatusPaid {
			amount := out.FinalCost
			if amount == 0 {
				amount = out.EstimatedCost
			}
			if amount > 0 {
				st.Incomes = prepend(st.Incomes, domain.Income{
					ID:          xid.New("inc"),
					Category:    domain.IncomeCategoryService,
					Amount:      amount,
					Description: fmt.Sprintf("Tamir Ödemesi: %s - %s %s (%s)", out.TicketNo, out.Device.Brand, out.Device.Model, out.Customer.FullName),
					Date:        s.today(),
				})
			}
		}
		return st
	})
	return out, found
}

// RecordUsedParts appends part lines to the ticket and deducts each
// referenced stock item, never below zero. Parts referencing unknown stock
// items are still recorded on the ticket.
func (s *Service) RecordUsedParts(ctx context.Context, repairID string, parts []domain.UsedPart) (domain.RepairRecord, bool) {
	var out domain.RepairRecord
	var found bool
	if len(parts) == 0 {
		return out, false
	}
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		repairs := make([]domain.RepairRecord, len(st.Repairs))
		for i, r := range st.Repairs {
			if r.ID == repairID {
				merged := make([]domain.UsedPart, 0, len(r.UsedParts)+len(parts))
				merged = append(merged, r.UsedParts...)
				merged = append(merged, parts...)
				r.UsedParts = merged
				r.UpdatedAt = s.nowISO()
				out, found = r, true
			}
			repairs[i] = r
		}
		if !found {
			return st
		}
		st.Repairs = repairs

		items := make([]domain.StockItem, len(st.StockItems))
		copy(items, st.StockItems)
		for _, p := range parts {
			for i, item := range items {
				if item.ID == p.StockItemID {
					q := item.Quantity - p.Quantity
					if q < 0 {
						q = 0
					}
					items[i].Quantity = q
				}
			}
		}
		st.StockItems = items
		return st
	})
	return out, found
}

// DeleteRepair moves the ticket into the recycle bin.
func (s *Service) DeleteRepair(ctx context.Context, id string) bool {
	var found bool
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		for _, r := range st.Repairs {
			if r.ID == id {
				st.DeletedItems = appendCopy(st.DeletedItems, s.envelope(r, domain.DeletedTypeRepair,
					fmt.Sprintf("%s - %s", r.TicketNo, r.Customer.FullName)))
				st.Repairs = without(st.Repairs, func(x domain.RepairRecord) bool { return x.ID == id })
				found = true
				break
			}
		}
		return st
	})
	return found
}

// SetBlacklist rewrites the embedded customer snapshot on every ticket
// sharing the phone number. Customers are a projection over repairs, so the
// flag lives on each ticket rather than in a customer table.
func (s *Service) SetBlacklist(ctx context.Context, phone string, blacklisted bool, reason string) int {
	if !blacklisted {
		reason = ""
	}
	var touched int
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		list := make([]domain.RepairRecord, len(st.Repairs))
		for i, r := range st.Repairs {
			if r.Customer.Phone == phone {
				r.Customer.IsBlacklisted = blacklisted
				r.Customer.BlacklistReason = reason
				touched++
			}
			list[i] = r
		}
		st.Repairs = list
		return st
	})
	return touched
}

func mergeRepair(r domain.RepairRecord, upd RepairUpdate) domain.RepairRecord {
	if upd.Customer != nil {
		r.Customer = *upd.Customer
	}
	if upd.Device != nil {
		r.Device = *upd.Device
	}
	if upd.IssueDescription != nil {
		r.IssueDescription = *upd.IssueDescription
	}
	if upd.Status != nil {
		r.Status = *upd.Status
	}
	if upd.AssignedTo != nil {
		r.AssignedTo = *upd.AssignedTo
	}
	if upd.TechnicianNotes != nil {
		r.TechnicianNotes = *upd.TechnicianNotes
	}
	if upd.DiagnosticMarks != nil {
		r.DiagnosticMarks = *upd.DiagnosticMarks
	}
	if upd.Photos != nil {
		r.Photos = *upd.Photos
	}
	if upd.UsedParts != nil {
		r.UsedParts = *upd.UsedParts
	}
	if upd.EstimatedCost != nil {
		r.EstimatedCost = *upd.EstimatedCost
	}
	if upd.FinalCost != nil {
		r.FinalCost = *upd.FinalCost
	}
	if upd.WarrantyDays != nil {
		r.WarrantyDays = *upd.WarrantyDays
	}
	if upd.SignatureDataURL != nil {
		r.SignatureDataURL = *upd.SignatureDataURL
	}
	if upd.LoanerDeviceID != nil {
		r.LoanerDeviceID = *upd.LoanerDeviceID
	}
	if upd.CompanyID != nil {
		r.CompanyID = *upd.CompanyID
	}
	if upd.PaymentStatus != nil {
		r.PaymentStatus = *upd.PaymentStatus
	}
	if upd.PaymentMethod != nil {
		r.PaymentMethod = *upd.PaymentMethod
	}
	return r
}
