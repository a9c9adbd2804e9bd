package service

import (
	"context"
	"fmt"

	"teknikservis/backend/internal/domain"
	"teknikservis/backend/internal/xid"
)

func (s *Service) AddExpense(ctx context.Context, e domain.Expense) domain.Expense {
	if e.ID == "" {
		e.ID = xid.New("exp")
	}
	if e.Date == "" {
		e.Date = s.today()
	}
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		st.Expenses = prepend(st.Expenses, e)
		return st
	})
	return e
}

func (s *Service) DeleteExpense(ctx context.Context, id string) bool {
	var found bool
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		for _, e := range st.Expenses {
			if e.ID == id {
				st.DeletedItems = appendCopy(st.DeletedItems, s.envelope(e, domain.DeletedTypeExpense, e.Description))
				st.Expenses = without(st.Expenses, func(x domain.Expense) bool { return x.ID == id })
				found = true
				break
			}
		}
		return st
	})
	return found
}

func (s *Service) AddIncome(ctx context.Context, in domain.Income) domain.Income {
	if in.ID == "" {
		in.ID = xid.New("inc")
	}
	if in.Date == "" {
		in.Date = s.today()
	}
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		st.Incomes = prepend(st.Incomes, in)
		return st
	})
	return in
}

// DeleteIncome is a hard delete, incomes have no recycle path.
func (s *Service) DeleteIncome(ctx context.Context, id string) bool {
	var found bool
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		before := len(st.Incomes)
		st.Incomes = without(st.Incomes, func(x domain.Income) bool { return x.ID == id })
		found = len(st.Incomes) != before
		return st
	})
	return found
}

// AddTransaction posts a ledger line against a supplier or company. With
// postToLedger set, a supplier payment also books an Expense and a company
// payment (collection) also books an Income; the caller decides, the side
// effect is never forced.
func (s *Service) AddTransaction(ctx context.Context, tx domain.AccountTransaction, postToLedger bool) domain.AccountTransaction {
	if tx.ID == "" {
		tx.ID = xid.New("trx")
	}
	if tx.Date == "" {
		tx.Date = s.today()
	}
	if tx.CreatedAt == "" {
		tx.CreatedAt = s.nowISO()
	}
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		st.AccountTransactions = prepend(st.AccountTransactions, tx)

		if postToLedger && tx.Type == domain.TransactionTypePayment {
			switch tx.EntityType {
			case domain.EntityTypeSupplier:
				name := tx.EntityID
				for _, sup := range st.Suppliers {
					if sup.ID == tx.EntityID {
						name = sup.Name
						break
					}
				}
				st.Expenses = prepend(st.Expenses, domain.Expense{
					ID:          xid.New("exp"),
					Category:    "supplies",
					Amount:      tx.Amount,
					Description: fmt.Sprintf("Tedarikçi Ödemesi: %s - %s", name, tx.Description),
					Date:        tx.Date,
				})
			case domain.EntityTypeCompany:
				name := tx.EntityID
				for _, c := range st.Companies {
					if c.ID == tx.EntityID {
						name = c.Name
						break
					}
				}
				st.Incomes = prepend(st.Incomes, domain.Income{
					ID:          xid.New("inc"),
					Category:    domain.IncomeCategoryCollection,
					Amount:      tx.Amount,
					Description: fmt.Sprintf("Tahsilat: %s - %s", name, tx.Description),
					Date:        tx.Date,
				})
			}
		}
		return st
	})
	return tx
}

func (s *Service) DeleteTransaction(ctx context.Context, id string) bool {
	var found bool
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		before := len(st.AccountTransactions)
		st.AccountTransactions = without(st.AccountTransactions, func(x domain.AccountTransaction) bool { return x.ID == id })
		found = len(st.AccountTransactions) != before
		return st
	})
	return found
}

// UpdateExchangeRate replaces the manual TRY rate for one currency and
// stamps LastUpdated.
func (s *Service) UpdateExchangeRate(ctx context.Context, currency string, rate float64, bank string, source string) (domain.ExchangeRate, bool) {
	var out domain.ExchangeRate
	var found bool
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		list := make([]domain.ExchangeRate, len(st.ExchangeRates))
		for i, r := range st.ExchangeRates {
			if r.Currency == currency {
				r.Rate = rate
				r.Bank = bank
				r.Source = source
				r.LastUpdated = s.nowISO()
				out, found = r, true
			}
			list[i] = r
		}
		st.ExchangeRates = list
		return st
	})
	return out, found
}
