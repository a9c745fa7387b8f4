package services

import (
	"context"
	"errors"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/app/repositories"
	"github.com/shashiranjanraj/vastra/pkg/apperr"
	"github.com/shashiranjanraj/vastra/pkg/auth"
)

// AddressInput is the create-address request.
type AddressInput struct {
	Name         string `json:"name"`
	AddressLine1 string `json:"address_line_1"`
	AddressLine2 string `json:"address_line_2"`
	City         string `json:"city"`
	Pincode      string `json:"pincode"`
	State        string `json:"state"`
	Country      string `json:"country"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phone_number"`
}

// AddressService manages the caller's address book.
type AddressService struct {
	addresses repositories.AddressRepository
}

func NewAddressService(addresses repositories.AddressRepository) *AddressService {
	return &AddressService{addresses: addresses}
}

// Create stores a new address owned by the caller.
func (s *AddressService) Create(ctx context.Context, in AddressInput) (*models.Address, error) {
	identity, err := auth.RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	if in.Name == "" || in.AddressLine1 == "" || in.City == "" || in.Pincode == "" {
		return nil, apperr.InvalidArgument("name, address_line_1, city and pincode are required")
	}

	address := &models.Address{
		UserID:       identity.ID,
		Name:         in.Name,
		AddressLine1: in.AddressLine1,
		AddressLine2: in.AddressLine2,
		City:         in.City,
		Pincode:      in.Pincode,
		State:        in.State,
		Country:      in.Country,
		Email:        in.Email,
		PhoneNumber:  in.PhoneNumber,
	}
	if err := s.addresses.Insert(ctx, address); err != nil {
		return nil, apperr.Storage("address insert", err)
	}
	return address, nil
}

// List returns all of the caller's addresses.
func (s *AddressService) List(ctx context.Context) ([]models.Address, error) {
	identity, err := auth.RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	addresses, err := s.addresses.ListByUser(ctx, identity.ID)
	if err != nil {
		return nil, apperr.Storage("address list", err)
	}
	return addresses, nil
}

// Delete removes one of the caller's addresses. Deleting an address that
// does not exist (or belongs to someone else) is NotFound.
func (s *AddressService) Delete(ctx context.Context, addressID string) error {
	identity, err := auth.RequireIdentity(ctx)
	if err != nil {
		return err
	}

	id, err := parseObjectID(addressID, "address id")
	if err != nil {
		return err
	}

	existing, err := s.addresses.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return err
		}
		return apperr.Storage("address lookup", err)
	}
	if existing.UserID != identity.ID {
		return apperr.NotFound("address", addressID)
	}

	if err := s.addresses.Delete(ctx, identity.ID, id); err != nil {
		return apperr.Storage("address delete", err)
	}
	return nil
}
