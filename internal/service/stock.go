package service

import (
	"context"

	"teknikservis/backend/internal/domain"
	"teknikservis/backend/internal/xid"
)

type StockUpdate struct {
	Name             *string               `json:"name"`
	Category         *domain.StockCategory `json:"category"`
	Brand            *string               `json:"brand"`
	CompatibleModels *[]string             `json:"compatibleModels"`
	Quantity         *int                  `json:"quantity"`
	CriticalLevel    *int                  `json:"criticalLevel"`
	BuyPrice         *float64              `json:"buyPrice"`
	BuyCurrency      *string               `json:"buyCurrency"`
	SellPrice        *float64              `json:"sellPrice"`
	SupplierID       *string               `json:"supplierId"`
	Barcode          *string               `json:"barcode"`
}

func (s *Service) AddStockItem(ctx context.Context, item domain.StockItem) domain.StockItem {
	if item.ID == "" {
		item.ID = xid.New("stk")
	}
	if item.CreatedAt == "" {
		item.CreatedAt = s.nowISO()
	}
	if item.BuyCurrency == "" {
		item.BuyCurrency = domain.CurrencyTRY
	}
	if item.CompatibleModels == nil {
		item.CompatibleModels = []string{}
	}
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		st.StockItems = prepend(st.StockItems, item)
		return st
	})
	return item
}

func (s *Service) UpdateStockItem(ctx context.Context, id string, upd StockUpdate) (domain.StockItem, bool) {
	var out domain.StockItem
	var found bool
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		list := make([]domain.StockItem, len(st.StockItems))
		for i, item := range st.StockItems {
			if item.ID == id {
				if upd.Name != nil {
					item.Name = *upd.Name
				}
				if upd.Category != nil {
					item.Category = *upd.Category
				}
				if upd.Brand != nil {
					item.Brand = *upd.Brand
				}
				if upd.CompatibleModels != nil {
					item.CompatibleModels = *upd.CompatibleModels
				}
				if upd.Quantity != nil {
					item.Quantity = *upd.Quantity
				}
				if upd.CriticalLevel != nil {
					item.CriticalLevel = *upd.CriticalLevel
				}
				if upd.BuyPrice != nil {
					item.BuyPrice = *upd.BuyPrice
				}
				if upd.BuyCurrency != nil {
					item.BuyCurrency = *upd.BuyCurrency
				}
				if upd.SellPrice != nil {
					item.SellPrice = *upd.SellPrice
				}
				if upd.SupplierID != nil {
					item.SupplierID = *upd.SupplierID
				}
				if upd.Barcode != nil {
					item.Barcode = *upd.Barcode
				}
				out, found = item, true
			}
			list[i] = item
		}
		st.StockItems = list
		return st
	})
	return out, found
}

// AdjustStockQuantity applies a manual +/- adjustment, never below zero.
func (s *Service) AdjustStockQuantity(ctx context.Context, id string, delta int) (domain.StockItem, bool) {
	var out domain.StockItem
	var found bool
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		list := make([]domain.StockItem, len(st.StockItems))
		for i, item := range st.StockItems {
			if item.ID == id {
				q := item.Quantity + delta
				if q < 0 {
					q = 0
				}
				item.Quantity = q
				out, found = item, true
			}
			list[i] = item
		}
		st.StockItems = list
		return st
	})
	return out, found
}

func (s *Service) DeleteStockItem(ctx context.Context, id string) bool {
	var found bool
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		for _, item := range st.StockItems {
			if item.ID == id {
				st.DeletedItems = appendCopy(st.DeletedItems, s.envelope(item, domain.DeletedTypeStock, item.Name))
				st.StockItems = without(st.StockItems, func(x domain.StockItem) bool { return x.ID == id })
				found = true
				break
			}
		}
		return st
	})
	return found
}
