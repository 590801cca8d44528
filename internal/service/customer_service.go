package service

import (
	"context"
	"errors"

	"go-retail-erp/internal/model"
	"go-retail-erp/internal/repository"
	"go-retail-erp/internal/ws"
	"go-retail-erp/pkg/kvstore"
	"go-retail-erp/pkg/validator"
)

type CustomerService interface {
	GetAllCustomers(ctx context.Context) ([]model.Customer, error)
	GetCustomerByID(ctx context.Context, id string) (*model.Customer, error)
	CreateCustomer(ctx context.Context, req *CustomerRequest) (*model.Customer, error)
	UpdateCustomer(ctx context.Context, id string, req *CustomerRequest) (*model.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
}

// CustomerRequest: email is not checked for uniqueness.
type CustomerRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address"`
}

type customerService struct {
	store     kvstore.Store
	customers repository.CustomerRepository
	events    Broadcaster
}

func NewCustomerService(store kvstore.Store, customers repository.CustomerRepository, events Broadcaster) CustomerService {
	return &customerService{
		store:     store,
		customers: customers,
		events:    orNoop(events),
	}
}

func (s *customerService) GetAllCustomers(ctx context.Context) ([]model.Customer, error) {
	return s.customers.FindAll(ctx)
}

func (s *customerService) GetCustomerByID(ctx context.Context, id string) (*model.Customer, error) {
	customer, err := s.customers.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCustomerNotFound
	}
	return customer, err
}

func (s *customerService) CreateCustomer(ctx context.Context, req *CustomerRequest) (*model.Customer, error) {
	if err := validator.FirstError(req); err != nil {
		return nil, err
	}

	customer := model.Customer{
		ID:      model.NewID(),
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	}
	err := s.store.Update(ctx, func(b kvstore.Bucket) error {
		repo := s.customers.WithTx(b)
		customers, err := repo.FindAll(ctx)
		if err != nil {
			return err
		}
		return repo.SaveAll(ctx, append(customers, customer))
	})
	if err != nil {
		return nil, err
	}

	s.publish("customer_created", customer)
	return &customer, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, id string, req *CustomerRequest) (*model.Customer, error) {
	if err := validator.FirstError(req); err != nil {
		return nil, err
	}

	updated := model.Customer{
		ID:      id,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	}
	err := s.store.Update(ctx, func(b kvstore.Bucket) error {
		repo := s.customers.WithTx(b)
		customers, err := repo.FindAll(ctx)
		if err != nil {
			return err
		}
		for i := range customers {
			if customers[i].ID == id {
				customers[i] = updated
				return repo.SaveAll(ctx, customers)
			}
		}
		return ErrCustomerNotFound
	})
	if err != nil {
		return nil, err
	}

	s.publish("customer_updated", updated)
	return &updated, nil
}

// DeleteCustomer does not touch sales that reference the customer.
func (s *customerService) DeleteCustomer(ctx context.Context, id string) error {
	err := s.store.Update(ctx, func(b kvstore.Bucket) error {
		repo := s.customers.WithTx(b)
		customers, err := repo.FindAll(ctx)
		if err != nil {
			return err
		}
		kept := customers[:0]
		for _, c := range customers {
			if c.ID != id {
				kept = append(kept, c)
			}
		}
		if len(kept) == len(customers) {
			return ErrCustomerNotFound
		}
		return repo.SaveAll(ctx, kept)
	})
	if err != nil {
		return err
	}

	s.events.Publish(map[string]interface{}{
		"type":        ws.EventCustomerUpdate,
		"action":      "customer_deleted",
		"customer_id": id,
	})
	return nil
}

func (s *customerService) publish(action string, c model.Customer) {
	s.events.Publish(map[string]interface{}{
		"type":     ws.EventCustomerUpdate,
		"action":   action,
		"customer": c,
	})
}
