package service

import (
	"context"
	"fmt"
	"time"

	"teknikservis/backend/internal/domain"
	"teknikservis/backend/internal/xid"
)

type ProductUpdate struct {
	Name     *string  `json:"name"`
	Category *string  `json:"category"`
	Price    *float64 `json:"price"`
	Stock    *int     `json:"stock"`
}

// AddProduct appends at the tail; the shop catalog keeps entry order,
// unlike the history-like collections.
func (s *Service) AddProduct(ctx context.Context, p domain.Product) domain.Product {
	if p.ID == "" {
		p.ID = xid.New("prd")
	}
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		st.Products = appendCopy(st.Products, p)
		return st
	})
	return p
}

func (s *Service) UpdateProduct(ctx context.Context, id string, upd ProductUpdate) (domain.Product, bool) {
	var out domain.Product
	var found bool
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		list := make([]domain.Product, len(st.Products))
		for i, p := range st.Products {
			if p.ID == id {
				if upd.Name != nil {
					p.Name = *upd.Name
				}
				if upd.Category != nil {
					p.Category = *upd.Category
				}
				if upd.Price != nil {
					p.Price = *upd.Price
				}
				if upd.Stock != nil {
					p.Stock = *upd.Stock
				}
				out, found = p, true
			}
			list[i] = p
		}
		st.Products = list
		return st
	})
	return out, found
}

func (s *Service) DeleteProduct(ctx context.Context, id string) bool {
	var found bool
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		before := len(st.Products)
		st.Products = without(st.Products, func(x domain.Product) bool { return x.ID == id })
		found = len(st.Products) != before
		return st
	})
	return found
}

// AddSale records a point-of-sale transaction: matched product stock is
// decremented (not clamped at zero, overselling goes negative like the
// counter stock it mirrors), the sale is prepended and a synthesized income
// row lands at the tail of incomes.
func (s *Service) AddSale(ctx context.Context, sale domain.Sale) domain.Sale {
	if sale.ID == "" {
		sale.ID = xid.New("sal")
	}
	if sale.Date == "" {
		sale.Date = s.nowISO()
	}
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		products := make([]domain.Product, len(st.Products))
		copy(products, st.Products)
		for _, item := range sale.Items {
			for i, p := range products {
				if p.ID == item.ProductID {
					products[i].Stock = p.Stock - item.Quantity
				}
			}
		}
		st.Products = products
		st.Sales = prepend(st.Sales, sale)
		st.Incomes = appendCopy(st.Incomes, domain.Income{
			ID:          xid.New("inc"),
			Category:    domain.IncomeCategorySales,
			Amount:      sale.Total,
			Description: fmt.Sprintf("Mağaza Satışı - %s", saleClock(sale.Date)),
			Date:        sale.Date,
		})
		return st
	})
	return sale
}

func saleClock(date string) string {
	t, err := time.Parse(time.RFC3339, date)
	if err != nil {
		return date
	}
	return t.Format("15:04:05")
}
