package repositories

import (
	"context"
	"fmt"

	"renti/internal/models"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	GetByID(ctx context.Context, id int) (*models.Payment, error)
	Mutate(ctx context.Context, id int, fn func(*models.Payment)) (*models.Payment, error)
	List(ctx context.Context) ([]*models.Payment, error)
	Load(seed []models.Payment)
	Revision() uint64
}

type paymentRepo struct {
	payments *collection[models.Payment]
}

func NewPaymentRepository(seed []models.Payment) PaymentRepository {
	r := &paymentRepo{
		payments: newCollection(
			func(p *models.Payment) int { return p.ID },
			func(p *models.Payment, id int) { p.ID = id },
		),
	}
	r.payments.load(seed)
	return r
}

func (r *paymentRepo) Create(ctx context.Context, payment *models.Payment) error {
	r.payments.insert(payment)
	return nil
}

func (r *paymentRepo) GetByID(ctx context.Context, id int) (*models.Payment, error) {
	payment, ok := r.payments.get(id)
	if !ok {
		return nil, fmt.Errorf("payment %d: %w", id, ErrNotFound)
	}
	return payment, nil
}

func (r *paymentRepo) Mutate(ctx context.Context, id int, fn func(*models.Payment)) (*models.Payment, error) {
	payment, ok := r.payments.mutate(id, fn)
	if !ok {
		return nil, fmt.Errorf("payment %d: %w", id, ErrNotFound)
	}
	return payment, nil
}

func (r *paymentRepo) List(ctx context.Context) ([]*models.Payment, error) {
	return r.payments.list(), nil
}

func (r *paymentRepo) Load(seed []models.Payment) {
	r.payments.load(seed)
}

func (r *paymentRepo) Revision() uint64 {
	return r.payments.rev()
}
