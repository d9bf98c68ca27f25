package customer

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/garage-manager/internal/domain/customer"
	"github.com/BruksfildServices01/garage-manager/internal/models"
	"github.com/BruksfildServices01/garage-manager/internal/validation"
)

// ======================================================
// FIND OR CREATE
// ======================================================

type FindOrCreateInput struct {
	GarageID   string `validate:"required"`
	Name       string `validate:"required"`
	Phone      string `validate:"required"`
	BikeNumber string `validate:"required"`
}

type FindOrCreate struct {
	repo domain.Repository
}

func NewFindOrCreate(repo domain.Repository) *FindOrCreate {
	return &FindOrCreate{repo: repo}
}

// Execute returns the existing customer for (phone, bike number) or
// creates one. An existing customer keeps its stored name.
func (uc *FindOrCreate) Execute(ctx context.Context, in FindOrCreateInput) (*models.Customer, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = domain.NormalizePhone(in.Phone)
	in.BikeNumber = domain.NormalizeBikeNumber(in.BikeNumber)

	if err := validation.ValidateStruct(in); err != nil {
		return nil, err
	}

	return uc.repo.FindOrCreateCustomer(ctx, &models.Customer{
		GarageID:   in.GarageID,
		Name:       in.Name,
		Phone:      in.Phone,
		BikeNumber: in.BikeNumber,
	})
}

// ======================================================
// READS
// ======================================================

type ListCustomers struct {
	repo domain.Repository
}

func NewListCustomers(repo domain.Repository) *ListCustomers {
	return &ListCustomers{repo: repo}
}

func (uc *ListCustomers) Execute(ctx context.Context, garageID, query string) ([]models.Customer, error) {
	return uc.repo.ListCustomers(ctx, garageID, query)
}

type GetCustomer struct {
	repo domain.Repository
}

func NewGetCustomer(repo domain.Repository) *GetCustomer {
	return &GetCustomer{repo: repo}
}

func (uc *GetCustomer) Execute(ctx context.Context, garageID, id string) (*models.Customer, error) {
	return uc.repo.GetCustomer(ctx, garageID, id)
}

// ListInvoices returns a customer's invoices, newest first.
type ListInvoices struct {
	repo domain.Repository
}

func NewListInvoices(repo domain.Repository) *ListInvoices {
	return &ListInvoices{repo: repo}
}

func (uc *ListInvoices) Execute(ctx context.Context, garageID, customerID string) ([]models.Invoice, error) {
	if _, err := uc.repo.GetCustomer(ctx, garageID, customerID); err != nil {
		return nil, err
	}
	return uc.repo.ListCustomerInvoices(ctx, garageID, customerID)
}
