package service

import (
	"context"
	"fmt"

	"teknikservis/backend/internal/domain"
	"teknikservis/backend/internal/xid"
)

type WishlistUpdate struct {
	CustomerName  *string `json:"customerName"`
	CustomerPhone *string `json:"customerPhone"`
	ProductName   *string `json:"productName"`
	Status        *string `json:"status"`
	Notes         *string `json:"notes"`
}

func (s *Service) AddWishlistItem(ctx context.Context, w domain.WishlistItem) domain.WishlistItem {
	if w.ID == "" {
		w.ID = xid.New("wsh")
	}
	if w.CreatedAt == "" {
		w.CreatedAt = s.nowISO()
	}
	if w.Status == "" {
		w.Status = domain.WishlistStatusPending
	}
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		st.Wishlist = prepend(st.Wishlist, w)
		return st
	})
	return w
}

func (s *Service) UpdateWishlistItem(ctx context.Context, id string, upd WishlistUpdate) (domain.WishlistItem, bool) {
	var out domain.WishlistItem
	var found bool
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		list := make([]domain.WishlistItem, len(st.Wishlist))
		for i, w := range st.Wishlist {
			if w.ID == id {
				if upd.CustomerName != nil {
					w.CustomerName = *upd.CustomerName
				}
				if upd.CustomerPhone != nil {
					w.CustomerPhone = *upd.CustomerPhone
				}
				if upd.ProductName != nil {
					w.ProductName = *upd.ProductName
				}
				if upd.Status != nil {
					w.Status = *upd.Status
				}
				if upd.Notes != nil {
					w.Notes = *upd.Notes
				}
				out, found = w, true
			}
			list[i] = w
		}
		st.Wishlist = list
		return st
	})
	return out, found
}

func (s *Service) DeleteWishlistItem(ctx context.Context, id string) bool {
	var found bool
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		before := len(st.Wishlist)
		st.Wishlist = without(st.Wishlist, func(x domain.WishlistItem) bool { return x.ID == id })
		found = len(st.Wishlist) != before
		return st
	})
	return found
}

type SecondHandUpdate struct {
	Brand     *string  `json:"brand"`
	Model     *string  `json:"model"`
	IMEI      *string  `json:"imei"`
	Condition *string  `json:"condition"`
	BuyPrice  *float64 `json:"buyPrice"`
	SellPrice *float64 `json:"sellPrice"`
	Status    *string  `json:"status"`
	SoldTo    *string  `json:"soldTo"`
	SoldDate  *string  `json:"soldDate"`
	Notes     *string  `json:"notes"`
}

func (s *Service) AddSecondHand(ctx context.Context, d domain.SecondHandDevice) domain.SecondHandDevice {
	if d.ID == "" {
		d.ID = xid.New("shd")
	}
	if d.CreatedAt == "" {
		d.CreatedAt = s.nowISO()
	}
	if d.Status == "" {
		d.Status = domain.SecondHandStatusInStock
	}
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		st.SecondHandDevices = prepend(st.SecondHandDevices, d)
		return st
	})
	return d
}

func (s *Service) UpdateSecondHand(ctx context.Context, id string, upd SecondHandUpdate) (domain.SecondHandDevice, bool) {
	var out domain.SecondHandDevice
	var found bool
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		list := make([]domain.SecondHandDevice, len(st.SecondHandDevices))
		for i, d := range st.SecondHandDevices {
			if d.ID == id {
				if upd.Brand != nil {
					d.Brand = *upd.Brand
				}
				if upd.Model != nil {
					d.Model = *upd.Model
				}
				if upd.IMEI != nil {
					d.IMEI = *upd.IMEI
				}
				if upd.Condition != nil {
					d.Condition = *upd.Condition
				}
				if upd.BuyPrice != nil {
					d.BuyPrice = *upd.BuyPrice
				}
				if upd.SellPrice != nil {
					d.SellPrice = *upd.SellPrice
				}
				if upd.Status != nil {
					d.Status = *upd.Status
				}
				if upd.SoldTo != nil {
					d.SoldTo = *upd.SoldTo
				}
				if upd.SoldDate != nil {
					d.SoldDate = *upd.SoldDate
				}
				if upd.Notes != nil {
					d.Notes = *upd.Notes
				}
				out, found = d, true
			}
			list[i] = d
		}
		st.SecondHandDevices = list
		return st
	})
	return out, found
}

func (s *Service) DeleteSecondHand(ctx context.Context, id string) bool {
	var found bool
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		for _, d := range st.SecondHandDevices {
			if d.ID == id {
				st.DeletedItems = appendCopy(st.DeletedItems, s.envelope(d, domain.DeletedTypeSecondHand,
					fmt.Sprintf("%s %s", d.Brand, d.Model)))
				st.SecondHandDevices = without(st.SecondHandDevices, func(x domain.SecondHandDevice) bool { return x.ID == id })
				found = true
				break
			}
		}
		return st
	})
	return found
}

type LoanerUpdate struct {
	Brand               *string `json:"brand"`
	Model               *string `json:"model"`
	IMEI                *string `json:"imei"`
	Status              *string `json:"status"`
	CurrentCustomerID   *string `json:"currentCustomerId"`
	CurrentCustomerName *string `json:"currentCustomerName"`
	DueDate             *string `json:"dueDate"`
	Notes               *string `json:"notes"`
}

func (s *Service) AddLoanerDevice(ctx context.Context, l domain.LoanerDevice) domain.LoanerDevice {
	if l.ID == "" {
		l.ID = xid.New("lnr")
	}
	if l.Status == "" {
		l.Status = domain.LoanerStatusAvailable
	}
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		st.LoanerDevices = prepend(st.LoanerDevices, l)
		return st
	})
	return l
}

func (s *Service) UpdateLoanerDevice(ctx context.Context, id string, upd LoanerUpdate) (domain.LoanerDevice, bool) {
	var out domain.LoanerDevice
	var found bool
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		list := make([]domain.LoanerDevice, len(st.LoanerDevices))
		for i, l := range st.LoanerDevices {
			if l.ID == id {
				if upd.Brand != nil {
					l.Brand = *upd.Brand
				}
				if upd.Model != nil {
					l.Model = *upd.Model
				}
				if upd.IMEI != nil {
					l.IMEI = *upd.IMEI
				}
				if upd.Status != nil {
					l.Status = *upd.Status
				}
				if upd.CurrentCustomerID != nil {
					l.CurrentCustomerID = *upd.CurrentCustomerID
				}
				if upd.CurrentCustomerName != nil {
					l.CurrentCustomerName = *upd.CurrentCustomerName
				}
				if upd.DueDate != nil {
					l.DueDate = *upd.DueDate
				}
				if upd.Notes != nil {
					l.Notes = *upd.Notes
				}
				out, found = l, true
			}
			list[i] = l
		}
		st.LoanerDevices = list
		return st
	})
	return out, found
}

// DeleteLoanerDevice is a hard delete; restore still understands the loaner
// envelope type for payloads imported from older backups.
func (s *Service) DeleteLoanerDevice(ctx context.Context, id string) bool {
	var found bool
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		before := len(st.LoanerDevices)
		st.LoanerDevices = without(st.LoanerDevices, func(x domain.LoanerDevice) bool { return x.ID == id })
		found = len(st.LoanerDevices) != before
		return st
	})
	return found
}

type AppointmentUpdate struct {
	CustomerName     *string `json:"customerName"`
	CustomerPhone    *string `json:"customerPhone"`
	Date             *string `json:"date"`
	TimeSlot         *string `json:"timeSlot"`
	DeviceModel      *string `json:"deviceModel"`
	IssueDescription *string `json:"issueDescription"`
	Status           *string `json:"status"`
	Notes            *string `json:"notes"`
}

func (s *Service) AddAppointment(ctx context.Context, a domain.Appointment) domain.Appointment {
	if a.ID == "" {
		a.ID = xid.New("apt")
	}
	if a.Status == "" {
		a.Status = domain.AppointmentStatusScheduled
	}
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		st.Appointments = prepend(st.Appointments, a)
		return st
	})
	return a
}

func (s *Service) UpdateAppointment(ctx context.Context, id string, upd AppointmentUpdate) (domain.Appointment, bool) {
	var out domain.Appointment
	var found bool
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		list := make([]domain.Appointment, len(st.Appointments))
		for i, a := range st.Appointments {
			if a.ID == id {
				if upd.CustomerName != nil {
					a.CustomerName = *upd.CustomerName
				}
				if upd.CustomerPhone != nil {
					a.CustomerPhone = *upd.CustomerPhone
				}
				if upd.Date != nil {
					a.Date = *upd.Date
				}
				if upd.TimeSlot != nil {
					a.TimeSlot = *upd.TimeSlot
				}
				if upd.DeviceModel != nil {
					a.DeviceModel = *upd.DeviceModel
				}
				if upd.IssueDescription != nil {
					a.IssueDescription = *upd.IssueDescription
				}
				if upd.Status != nil {
					a.Status = *upd.Status
				}
				if upd.Notes != nil {
					a.Notes = *upd.Notes
				}
				out, found = a, true
			}
			list[i] = a
		}
		st.Appointments = list
		return st
	})
	return out, found
}

func (s *Service) DeleteAppointment(ctx context.Context, id string) bool {
	var found bool
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		before := len(st.Appointments)
		st.Appointments = without(st.Appointments, func(x domain.Appointment) bool { return x.ID == id })
		found = len(st.Appointments) != before
		return st
	})
	return found
}

type StickyNoteUpdate struct {
	Text        *string `json:"text"`
	Color       *string `json:"color"`
	IsCompleted *bool   `json:"isCompleted"`
}

func (s *Service) AddStickyNote(ctx context.Context, n domain.StickyNote) domain.StickyNote {
	if n.ID == "" {
		n.ID = xid.New("nte")
	}
	if n.CreatedAt == "" {
		n.CreatedAt = s.nowISO()
	}
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		st.StickyNotes = prepend(st.StickyNotes, n)
		return st
	})
	return n
}

func (s *Service) UpdateStickyNote(ctx context.Context, id string, upd StickyNoteUpdate) (domain.StickyNote, bool) {
	var out domain.StickyNote
	var found bool
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		list := make([]domain.StickyNote, len(st.StickyNotes))
		for i, n := range st.StickyNotes {
			if n.ID == id {
				if upd.Text != nil {
					n.Text = *upd.Text
				}
				if upd.Color != nil {
					n.Color = *upd.Color
				}
				if upd.IsCompleted != nil {
					n.IsCompleted = *upd.IsCompleted
				}
				out, found = n, true
			}
			list[i] = n
		}
		st.StickyNotes = list
		return st
	})
	return out, found
}

func (s *Service) DeleteStickyNote(ctx context.Context, id string) bool {
	var found bool
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		before := len(st.StickyNotes)
		st.StickyNotes = without(st.StickyNotes, func(x domain.StickyNote) bool { return x.ID == id })
		found = len(st.StickyNotes) != before
		return st
	})
	return found
}

type QuickMessageUpdate struct {
	Label *string `json:"label"`
	Text  *string `json:"text"`
	Icon  *string `json:"icon"`
}

func (s *Service) UpdateQuickMessage(ctx context.Context, id string, upd QuickMessageUpdate) (domain.QuickMessage, bool) {
	var out domain.QuickMessage
	var found bool
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		list := make([]domain.QuickMessage, len(st.QuickMessages))
		for i, m := range st.QuickMessages {
			if m.ID == id {
				if upd.Label != nil {
					m.Label = *upd.Label
				}
				if upd.Text != nil {
					m.Text = *upd.Text
				}
				if upd.Icon != nil {
					m.Icon = *upd.Icon
				}
				out, found = m, true
			}
			list[i] = m
		}
		st.QuickMessages = list
		return st
	})
	return out, found
}
