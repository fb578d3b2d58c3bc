package service

import (
	"context"

	"github.com/google/uuid"

	"svokit/internal/email"
	"svokit/internal/httpapi"
	"svokit/internal/pagination"
	"svokit/internal/repo"
	"svokit/internal/validate"
)

type ContactRepo interface {
	Create(ctx context.Context, c repo.Contact) (repo.Contact, error)
	GetByEmail(ctx context.Context, addr email.Address) (repo.Contact, error)
	List(ctx context.Context, limit int, cursor *pagination.Cursor) ([]repo.Contact, *pagination.Cursor, error)
	Delete(ctx context.Context, addr email.Address) error
}

type ContactService struct {
	repo   ContactRepo
	region string
	newID  func() string
}

// NewContactService reads phone numbers without a country code in region.
func NewContactService(r ContactRepo, region string, newID func() string) *ContactService {
	if newID == nil {
		newID = uuid.NewString
	}
	if region == "" {
		region = validate.DefaultRegion
	}
	return &ContactService{repo: r, region: region, newID: newID}
}

func (s *ContactService) RegisterContact(ctx context.Context, name, rawEmail, rawPhone string) (httpapi.Contact, error) {
	name, err := validate.NormalizeName(name)
	if err != nil {
		return httpapi.Contact{}, err
	}

	addr, err := validate.NormalizeEmail(rawEmail)
	if err != nil {
		return httpapi.Contact{}, err
	}

	phone, err := validate.NormalizePhone(rawPhone, s.region)
	if err != nil {
		return httpapi.Contact{}, err
	}

	c, err := s.repo.Create(ctx, repo.Contact{
		ID:    s.newID(),
		Name:  name,
		Email: addr,
		Phone: phone,
	})
	if err != nil {
		return httpapi.Contact{}, err
	}
	return toContact(c), nil
}

func (s *ContactService) GetContact(ctx context.Context, rawEmail string) (httpapi.Contact, error) {
	addr, err := validate.NormalizeEmail(rawEmail)
	if err != nil {
		return httpapi.Contact{}, err
	}

	c, err := s.repo.GetByEmail(ctx, addr)
	if err != nil {
		return httpapi.Contact{}, err
	}
	return toContact(c), nil
}

func (s *ContactService) RemoveContact(ctx context.Context, rawEmail string) error {
	addr, err := validate.NormalizeEmail(rawEmail)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, addr)
}

func (s *ContactService) ListContacts(ctx context.Context, limit int, cursor *pagination.Cursor) (httpapi.ListContactsResult, error) {
	items, next, err := s.repo.List(ctx, limit, cursor)
	if err != nil {
		return httpapi.ListContactsResult{}, err
	}

	out := make([]httpapi.Contact, 0, len(items))
	for _, c := range items {
		out = append(out, toContact(c))
	}

	var nextEnc string
	if next != nil {
		nextEnc = pagination.Encode(*next)
	}

	return httpapi.ListContactsResult{Items: out, NextCursor: nextEnc}, nil
}

func toContact(c repo.Contact) httpapi.Contact {
	return httpapi.Contact{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
	}
}
