package service

import (
	"context"
	"encoding/json"

	"teknikservis/backend/internal/domain"
	"teknikservis/backend/internal/xid"
)

// envelope wraps a record for the recycle bin. The envelope gets its own id
// so repeated delete/restore cycles of the same record never collide.
func (s *Service) envelope(original any, typ string, description string) domain.DeletedItem {
	return domain.DeletedItem{
		ID:           xid.New("del"),
		OriginalData: original,
		Type:         typ,
		DeletedAt:    s.nowISO(),
		Description:  description,
	}
}

// RestoreItem re-inserts a recycled record at the head of its original
// collection and drops the envelope. The envelope's type tag selects the
// collection; an unknown tag only drops the envelope.
func (s *Service) RestoreItem(ctx context.Context, deletedItemID string) bool {
	var found bool
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		var item domain.DeletedItem
		for _, d := range st.DeletedItems {
			if d.ID == deletedItemID {
				item, found = d, true
				break
			}
		}
		if !found {
			return st
		}
		st.DeletedItems = without(st.DeletedItems, func(d domain.DeletedItem) bool { return d.ID == deletedItemID })

		switch item.Type {
		case domain.DeletedTypeRepair:
			if r, ok := reviveAs[domain.RepairRecord](item.OriginalData); ok {
				st.Repairs = prepend(st.Repairs, r)
			}
		case domain.DeletedTypeStock:
			if v, ok := reviveAs[domain.StockItem](item.OriginalData); ok {
				st.StockItems = prepend(st.StockItems, v)
			}
		case domain.DeletedTypeExpense:
			if v, ok := reviveAs[domain.Expense](item.OriginalData); ok {
				st.Expenses = prepend(st.Expenses, v)
			}
		case domain.DeletedTypeQuote:
			if v, ok := reviveAs[domain.Quote](item.OriginalData); ok {
				st.Quotes = prepend(st.Quotes, v)
			}
		case domain.DeletedTypeSupplier:
			if v, ok := reviveAs[domain.Supplier](item.OriginalData); ok {
				st.Suppliers = prepend(st.Suppliers, v)
			}
		case domain.DeletedTypeCompany:
			if v, ok := reviveAs[domain.Company](item.OriginalData); ok {
				st.Companies = prepend(st.Companies, v)
			}
		case domain.DeletedTypeSecondHand:
			if v, ok := reviveAs[domain.SecondHandDevice](item.OriginalData); ok {
				st.SecondHandDevices = prepend(st.SecondHandDevices, v)
			}
		case domain.DeletedTypeLoaner:
			if v, ok := reviveAs[domain.LoanerDevice](item.OriginalData); ok {
				st.LoanerDevices = prepend(st.LoanerDevices, v)
			}
		}
		return st
	})
	return found
}

// PermanentDelete discards a recycle-bin envelope for good.
func (s *Service) PermanentDelete(ctx context.Context, deletedItemID string) bool {
	var found bool
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		before := len(st.DeletedItems)
		st.DeletedItems = without(st.DeletedItems, func(d domain.DeletedItem) bool { return d.ID == deletedItemID })
		found = len(st.DeletedItems) != before
		return st
	})
	return found
}

// reviveAs converts a recycled payload back into its concrete type. In a
// live session OriginalData still holds the typed struct; after a round trip
// through the persister it comes back as a generic JSON map, so conversion
// goes through JSON either way to keep the restored value identical.
func reviveAs[T any](data any) (T, bool) {
	var out T
	if v, ok := data.(T); ok {
		return v, true
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return out, false
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, false
	}
	return out, true
}
