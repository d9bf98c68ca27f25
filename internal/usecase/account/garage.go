package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/garage-manager/internal/audit"
	domain "github.com/BruksfildServices01/garage-manager/internal/domain/account"
	"github.com/BruksfildServices01/garage-manager/internal/httperr"
	"github.com/BruksfildServices01/garage-manager/internal/imaging"
	"github.com/BruksfildServices01/garage-manager/internal/infra/objectstore"
	"github.com/BruksfildServices01/garage-manager/internal/models"
)

// ======================================================
// GET
// ======================================================

type GetGarage struct {
	repo domain.Repository
}

func NewGetGarage(repo domain.Repository) *GetGarage {
	return &GetGarage{repo: repo}
}

func (uc *GetGarage) Execute(ctx context.Context, id domain.Identity, garageID string) (*models.Garage, error) {
	if err := domain.AuthorizeGarageAccess(id, garageID); err != nil {
		return nil, err
	}
	return uc.repo.GetGarage(ctx, garageID)
}

// ======================================================
// UPDATE PROFILE
// ======================================================

type GaragePatch struct {
	Name      *string
	OwnerName *string
	Phone     *string
	Email     *string
}

type UpdateGarage struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateGarage(repo domain.Repository, audit *audit.Dispatcher) *UpdateGarage {
	return &UpdateGarage{repo: repo, audit: audit}
}

// Execute applies a partial profile edit. Only the garage's own admin
// may edit it.
func (uc *UpdateGarage) Execute(
	ctx context.Context,
	id domain.Identity,
	garageID string,
	patch GaragePatch,
) (*models.Garage, error) {

	if err := authorizeGarageAdmin(id, garageID); err != nil {
		return nil, err
	}

	g, err := uc.repo.GetGarage(ctx, garageID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		g.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.OwnerName != nil {
		g.OwnerName = strings.TrimSpace(*patch.OwnerName)
	}
	if patch.Phone != nil {
		g.Phone = strings.TrimSpace(*patch.Phone)
	}
	if patch.Email != nil {
		g.Email = NormalizeEmail(*patch.Email)
	}
	if g.Name == "" || g.OwnerName == "" || g.Email == "" {
		return nil, httperr.ErrBusiness("invalid_garage_profile")
	}

	if err := uc.repo.UpdateGarage(ctx, g); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		GarageID: garageID,
		UserID:   &id.UserID,
		Action:   "garage_updated",
		Entity:   "garage",
		EntityID: &g.ID,
	})

	return g, nil
}

// ======================================================
// LOGO
// ======================================================

type UploadLogo struct {
	repo     domain.Repository
	uploader objectstore.Uploader
	audit    *audit.Dispatcher
}

func NewUploadLogo(
	repo domain.Repository,
	uploader objectstore.Uploader,
	audit *audit.Dispatcher,
) *UploadLogo {
	return &UploadLogo{repo: repo, uploader: uploader, audit: audit}
}

// Execute converts the image to WebP, stores it and points the garage
// logo at the new object.
func (uc *UploadLogo) Execute(
	ctx context.Context,
	id domain.Identity,
	garageID string,
	image []byte,
) (*models.Garage, error) {

	if err := authorizeGarageAdmin(id, garageID); err != nil {
		return nil, err
	}

	g, err := uc.repo.GetGarage(ctx, garageID)
	if err != nil {
		return nil, err
	}

	webp, err := imaging.ToWebP(image, imaging.LogoMaxSide)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("garages/%s/logo-%s.webp", garageID, uuid.NewString())
	url, err := uc.uploader.Put(ctx, key, webp, "image/webp")
	if err != nil {
		return nil, err
	}

	g.Logo = &url
	if err := uc.repo.UpdateGarage(ctx, g); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		GarageID: garageID,
		UserID:   &id.UserID,
		Action:   "garage_logo_uploaded",
		Entity:   "garage",
		EntityID: &g.ID,
		Metadata: map[string]any{"logo": url},
	})

	return g, nil
}

func authorizeGarageAdmin(id domain.Identity, garageID string) error {
	if err := domain.AuthorizeGarageAccess(id, garageID); err != nil {
		return err
	}
	return domain.AuthorizeRole(id, models.RoleGarageAdmin)
}
