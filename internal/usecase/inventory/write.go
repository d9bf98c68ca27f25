package inventory

import (
	"context"

	"github.com/BruksfildServices01/garage-manager/internal/audit"
	"github.com/BruksfildServices01/garage-manager/internal/domain/account"
	domain "github.com/BruksfildServices01/garage-manager/internal/domain/inventory"
	"github.com/BruksfildServices01/garage-manager/internal/models"
)

// ======================================================
// CREATE
// ======================================================

type CreatePart struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreatePart(repo domain.Repository, audit *audit.Dispatcher) *CreatePart {
	return &CreatePart{repo: repo, audit: audit}
}

func (uc *CreatePart) Execute(
	ctx context.Context,
	id account.Identity,
	garageID string,
	fields domain.Patch,
) (*models.SparePart, error) {

	if err := account.AuthorizeAdmin(id); err != nil {
		return nil, err
	}

	part, err := domain.NewPart(garageID, fields)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.CreatePart(ctx, part); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		GarageID: garageID,
		UserID:   &id.UserID,
		Action:   "spare_part_created",
		Entity:   "spare_part",
		EntityID: &part.ID,
		Metadata: map[string]any{"name": part.Name, "quantity": part.Quantity},
	})

	return part, nil
}

// ======================================================
// UPDATE
// ======================================================

type UpdatePart struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdatePart(repo domain.Repository, audit *audit.Dispatcher) *UpdatePart {
	return &UpdatePart{repo: repo, audit: audit}
}

func (uc *UpdatePart) Execute(
	ctx context.Context,
	id account.Identity,
	garageID, partID string,
	patch domain.Patch,
) (*models.SparePart, error) {

	if err := account.AuthorizeAdmin(id); err != nil {
		return nil, err
	}

	part, err := uc.repo.GetPart(ctx, garageID, partID)
	if err != nil {
		return nil, err
	}

	if err := patch.Apply(part); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdatePart(ctx, part); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		GarageID: garageID,
		UserID:   &id.UserID,
		Action:   "spare_part_updated",
		Entity:   "spare_part",
		EntityID: &part.ID,
	})

	return part, nil
}

// ======================================================
// DELETE
// ======================================================

type DeletePart struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeletePart(repo domain.Repository, audit *audit.Dispatcher) *DeletePart {
	return &DeletePart{repo: repo, audit: audit}
}

// Execute succeeds when the part does not exist.
func (uc *DeletePart) Execute(ctx context.Context, id account.Identity, garageID, partID string) error {
	if err := account.AuthorizeAdmin(id); err != nil {
		return err
	}

	if err := uc.repo.DeletePart(ctx, garageID, partID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		GarageID: garageID,
		UserID:   &id.UserID,
		Action:   "spare_part_deleted",
		Entity:   "spare_part",
		EntityID: &partID,
	})
	return nil
}
