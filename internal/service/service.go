package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"teknikservis/backend/internal/domain"
	"teknikservis/backend/internal/state"
	"teknikservis/backend/internal/xid"
)

// ErrInvalidInput marks rejected payloads, for callers mapping errors to
// HTTP status codes.
var ErrInvalidInput = errors.New("invalid input")

type actorContextKey struct{}

func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorContextKey{}, actor)
}

func ActorFromContext(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorContextKey{}).(domain.Actor)
	return actor, ok
}

// Service is the mutation catalog over the shared application state. Every
// mutation builds a fresh state value and hands it to the store; collections
// are never modified in place. Mutations by id are total: a missing id
// leaves the state unchanged and reports found=false, nothing errors.
type Service struct {
	st  *state.Store
	log *zap.Logger
	now func() time.Time
}

func New(st *state.Store, log *zap.Logger) *Service {
	return &Service{st: st, log: log, now: time.Now}
}

// State returns the current snapshot. Callers must not modify the slices.
func (s *Service) State() domain.AppState {
	return s.st.Snapshot()
}

func (s *Service) nowISO() string {
	return s.now().UTC().Format(time.RFC3339)
}

// today is the date part of the current ISO timestamp, the 10-character
// prefix daily aggregates match on.
func (s *Service) today() string {
	return s.now().UTC().Format("2006-01-02")
}

// Login scans staff for an active member with the given PIN and marks the
// session. An inactive member's PIN never matches.
func (s *Service) Login(ctx context.Context, pin string) (domain.StaffMember, bool) {
	var user domain.StaffMember
	var found bool
	for _, m := range s.st.Snapshot().Staff {
		if m.PIN == pin && m.IsActive {
			user, found = m, true
			break
		}
	}
	if !found {
		return domain.StaffMember{}, false
	}
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		st.CurrentUserID = user.ID
		return st
	})
	return user, true
}

func (s *Service) Logout(ctx context.Context) {
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		st.CurrentUserID = ""
		return st
	})
}

func (s *Service) TogglePrivacy(ctx context.Context) bool {
	var mode bool
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		st.PrivacyMode = !st.PrivacyMode
		mode = st.PrivacyMode
		return st
	})
	return mode
}

func (s *Service) AddStaff(ctx context.Context, m domain.StaffMember) domain.StaffMember {
	if m.ID == "" {
		m.ID = xid.New("stf")
	}
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		st.Staff = prepend(st.Staff, m)
		return st
	})
	return m
}

func (s *Service) UpdateStaff(ctx context.Context, id string, upd StaffUpdate) (domain.StaffMember, bool) {
	var out domain.StaffMember
	var found bool
	s.st.Update(ctx, func(st domain.AppState) domain.AppState {
		list := make([]domain.StaffMember, len(st.Staff))
		for i, m := range st.Staff {
			if m.ID == id {
				if upd.Name != nil {
					m.Name = *upd.Name
				}
				if upd.Role != nil {
					m.Role = *upd.Role
				}
				if upd.PIN != nil {
					m.PIN = *upd.PIN
				}
				if upd.IsActive != nil {
					m.IsActive = *upd.IsActive
				}
				out, found = m, true
			}
			list[i] = m
		}
		st.Staff = list
		return st
	})
	return out, found
}

type StaffUpdate struct {
	Name     *string `json:"name"`
	Role     *string `json:"role"`
	PIN      *string `json:"pin"`
	IsActive *bool   `json:"isActive"`
}
