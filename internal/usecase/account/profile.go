package account

import (
	"context"

	domain "github.com/BruksfildServices01/garage-manager/internal/domain/account"
	"github.com/BruksfildServices01/garage-manager/internal/dto"
)

type GetProfile struct {
	repo domain.Repository
}

func NewGetProfile(repo domain.Repository) *GetProfile {
	return &GetProfile{repo: repo}
}

func (uc *GetProfile) Execute(ctx context.Context, id domain.Identity) (*dto.Profile, error) {
	user, err := uc.repo.GetUserByID(ctx, id.UserID)
	if err != nil {
		return nil, err
	}

	garage, err := garageOf(ctx, uc.repo, user)
	if err != nil {
		return nil, err
	}

	return &dto.Profile{User: user, Garage: garage}, nil
}
