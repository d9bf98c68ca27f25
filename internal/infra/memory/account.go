package memory

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/garage-manager/internal/domain/account"
	"github.com/BruksfildServices01/garage-manager/internal/httperr"
	"github.com/BruksfildServices01/garage-manager/internal/models"
)

func (s *Store) CreateGarageWithAdmin(ctx context.Context, garage *models.Garage, admin *models.User) error {
	defer s.lock(ctx)()

	if s.emailTaken(admin.Email) {
		return httperr.ErrConflict("duplicate_identity")
	}

	now := s.now()
	if garage.ID == "" {
		garage.ID = uuid.NewString()
	}
	garage.CreatedAt, garage.UpdatedAt = now, now
	s.st.garages[garage.ID] = *garage

	admin.GarageID = &garage.ID
	s.insertUser(admin)
	return nil
}

func (s *Store) GetGarage(ctx context.Context, id string) (*models.Garage, error) {
	defer s.lock(ctx)()

	g, ok := s.st.garages[id]
	if !ok {
		return nil, httperr.ErrNotFound("garage_not_found")
	}
	return &g, nil
}

func (s *Store) UpdateGarage(ctx context.Context, garage *models.Garage) error {
	defer s.lock(ctx)()

	current, ok := s.st.garages[garage.ID]
	if !ok {
		return httperr.ErrNotFound("garage_not_found")
	}

	current.Name = garage.Name
	current.OwnerName = garage.OwnerName
	current.Phone = garage.Phone
	current.Email = garage.Email
	current.Logo = garage.Logo
	current.UpdatedAt = s.now()
	s.st.garages[garage.ID] = current

	*garage = current
	return nil
}

func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	defer s.lock(ctx)()

	if s.emailTaken(user.Email) {
		return httperr.ErrConflict("duplicate_identity")
	}
	s.insertUser(user)
	return nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	defer s.lock(ctx)()

	for _, u := range s.st.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, httperr.ErrNotFound("unknown_identity")
}

func (s *Store) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	defer s.lock(ctx)()

	u, ok := s.st.users[id]
	if !ok {
		return nil, httperr.ErrNotFound("unknown_identity")
	}
	return &u, nil
}

func (s *Store) emailTaken(email string) bool {
	for _, u := range s.st.users {
		if strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}

func (s *Store) insertUser(u *models.User) {
	now := s.now()
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.CreatedAt, u.UpdatedAt = now, now
	s.st.users[u.ID] = *u
}

var _ account.Repository = (*Store)(nil)
