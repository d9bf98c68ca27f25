package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/garage-manager/internal/domain/inventory"
	"github.com/BruksfildServices01/garage-manager/internal/httperr"
	"github.com/BruksfildServices01/garage-manager/internal/models"
)

func (s *Store) ListParts(ctx context.Context, garageID string) ([]models.SparePart, error) {
	defer s.lock(ctx)()

	parts := s.partsWhere(func(p models.SparePart) bool { return p.GarageID == garageID })
	sort.SliceStable(parts, func(i, j int) bool { return parts[i].Name < parts[j].Name })
	return parts, nil
}

func (s *Store) ListLowStockParts(ctx context.Context, garageID string) ([]models.SparePart, error) {
	defer s.lock(ctx)()

	parts := s.partsWhere(func(p models.SparePart) bool {
		return p.GarageID == garageID && p.LowStock()
	})
	sort.SliceStable(parts, func(i, j int) bool {
		if parts[i].Quantity != parts[j].Quantity {
			return parts[i].Quantity < parts[j].Quantity
		}
		return parts[i].Name < parts[j].Name
	})
	return parts, nil
}

func (s *Store) GetPart(ctx context.Context, garageID, id string) (*models.SparePart, error) {
	defer s.lock(ctx)()

	p, ok := s.st.parts[id]
	if !ok || p.GarageID != garageID {
		return nil, httperr.ErrNotFound("spare_part_not_found")
	}
	return &p, nil
}

func (s *Store) GetPartByBarcode(ctx context.Context, garageID, barcode string) (*models.SparePart, error) {
	defer s.lock(ctx)()

	for _, p := range s.st.parts {
		if p.GarageID == garageID && p.Barcode != nil && *p.Barcode == barcode {
			return &p, nil
		}
	}
	return nil, httperr.ErrNotFound("spare_part_not_found")
}

func (s *Store) CreatePart(ctx context.Context, part *models.SparePart) error {
	defer s.lock(ctx)()

	if s.barcodeTaken(*part) {
		return httperr.ErrConflict("duplicate_barcode")
	}

	now := s.now()
	if part.ID == "" {
		part.ID = uuid.NewString()
	}
	part.CreatedAt, part.UpdatedAt = now, now
	s.st.parts[part.ID] = *part
	return nil
}

func (s *Store) UpdatePart(ctx context.Context, part *models.SparePart) error {
	defer s.lock(ctx)()

	current, ok := s.st.parts[part.ID]
	if !ok || current.GarageID != part.GarageID {
		return httperr.ErrNotFound("spare_part_not_found")
	}
	if s.barcodeTaken(*part) {
		return httperr.ErrConflict("duplicate_barcode")
	}

	part.CreatedAt = current.CreatedAt
	part.UpdatedAt = s.now()
	s.st.parts[part.ID] = *part
	return nil
}

func (s *Store) AdjustPartQuantity(ctx context.Context, garageID, id string, delta int) (*models.SparePart, error) {
	defer s.lock(ctx)()

	p, ok := s.st.parts[id]
	if !ok || p.GarageID != garageID {
		return nil, httperr.ErrNotFound("spare_part_not_found")
	}

	p.Quantity += delta
	p.UpdatedAt = s.now()
	s.st.parts[id] = p
	return &p, nil
}

func (s *Store) DeletePart(ctx context.Context, garageID, id string) error {
	defer s.lock(ctx)()

	if p, ok := s.st.parts[id]; ok && p.GarageID == garageID {
		delete(s.st.parts, id)
	}
	return nil
}

func (s *Store) partsWhere(keep func(models.SparePart) bool) []models.SparePart {
	out := []models.SparePart{}
	for _, p := range s.st.parts {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func (s *Store) barcodeTaken(part models.SparePart) bool {
	if part.Barcode == nil {
		return false
	}
	for _, p := range s.st.parts {
		if p.ID != part.ID && p.GarageID == part.GarageID &&
			p.Barcode != nil && *p.Barcode == *part.Barcode {
			return true
		}
	}
	return false
}

var _ inventory.Repository = (*Store)(nil)
