package services

import (
	"context"

	"github.com/AbdelliBrahim0/DashboardAdmin/model"
	"github.com/AbdelliBrahim0/DashboardAdmin/store"
)

const DefaultRecentUsers = 5

type UserService struct {
	*Collection
}

func NewUserService(st store.Store) *UserService {
	c := NewCollection(st, "User", model.UsersPath)
	c.Validate = validateUser
	return &UserService{Collection: c}
}

var userRules = recordRules(model.User{})

func validateUser(rec store.Record) []string {
	return typeErrors(rec, userRules)
}

// Recent returns the n newest users by createdAt, newest first. Each entry
// carries display defaults that the stored fields override.
func (s *UserService) Recent(ctx context.Context, n int) ([]store.Record, error) {
	if n <= 0 {
		n = DefaultRecentUsers
	}
	entries, err := s.store.Latest(ctx, s.Path, model.FieldCreatedAt, n)
	if err != nil {
		return nil, storeErr("recent users", err)
	}

	now := s.now().UnixMilli()
	out := make([]store.Record, 0, len(entries))
	for _, e := range entries {
		var u model.User
		if err := e.Data.Decode(&u); err != nil {
			u = model.User{
				Username:  stringField(e.Data, model.UserUsername),
				FirstName: stringField(e.Data, model.UserFirstName),
			}
		}
		name := u.DisplayName()
		if name == "" {
			name = "N/A"
		}

		rec := store.Record{
			model.FieldID:        e.ID,
			model.UserEmail:      "N/A",
			"name":               name,
			model.FieldCreatedAt: now,
		}.Merge(e.Data)
		rec[model.FieldID] = e.ID
		out = append(out, rec)
	}
	return out, nil
}
