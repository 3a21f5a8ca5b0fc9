package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ozstore/storefront-api/internal/api/metrics"
	"github.com/ozstore/storefront-api/internal/core/domain"
	"github.com/ozstore/storefront-api/internal/core/ports"
)

// OrderService drives the order lifecycle: create (unpaid) → paid. It is the
// sole writer of orders; durability and concurrent-write ordering belong to
// the document store.
type OrderService struct {
	repo   ports.OrderRepository
	logger zerolog.Logger
}

func NewOrderService(repo ports.OrderRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, logger: logger}
}

// Create builds an order from the submitted cart and inserts it as a single
// document. The owning user reference and the denormalized display name come
// from the verified identity, never from the payload.
func (s *OrderService) Create(ctx context.Context, ident domain.Identity, in ports.CreateOrderInput) (string, error) {
	if len(in.Items) == 0 {
		return "", domain.ErrEmptyOrder
	}

	order := &domain.Order{
		UserID:        ident.ID,
		UserName:      ident.Name,
		OrderItems:    make([]domain.OrderItem, 0, len(in.Items)),
		ItemsPrice:    in.ItemsPrice,
		ShippingPrice: in.ShippingPrice,
		TaxPrice:      in.TaxPrice,
		TotalPrice:    in.TotalPrice,
		ShippingAddress: domain.ShippingAddress{
			FullName:   in.ShippingAddress.FullName,
			Address:    in.ShippingAddress.Address,
			City:       in.ShippingAddress.City,
			PostalCode: in.ShippingAddress.PostalCode,
			Country:    in.ShippingAddress.Country,
		},
		PaymentMethod: in.PaymentMethod,
		CreatedAt:     time.Now().UTC(),
	}
	for _, item := range in.Items {
		order.OrderItems = append(order.OrderItems, domain.OrderItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Image:    item.Image,
			Price:    item.Price,
		})
	}

	if !order.TotalsConsistent() {
		return "", domain.ErrInvalidTotal
	}

	id, err := s.repo.Create(ctx, order)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", ident.ID).Msg("failed to create order")
		return "", err
	}

	metrics.OrdersCreatedTotal.WithLabelValues(in.PaymentMethod).Inc()
	s.logger.Info().Str("order_id", id).Str("user_id", ident.ID).Msg("order created")
	return id, nil
}

// Get returns the order with the given id. Only the owner and administrators
// may see it.
func (s *OrderService) Get(ctx context.Context, ident domain.Identity, id string) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.OwnedBy(ident) {
		return nil, domain.ErrForbidden
	}
	return order, nil
}

// History returns all orders owned by the requester. The filter is always the
// verified identity's id; a client-supplied user id is never consulted.
func (s *OrderService) History(ctx context.Context, ident domain.Identity) ([]*domain.Order, error) {
	return s.repo.FindByUser(ctx, ident.ID)
}

// ListAll returns every order. Admin dashboards only; the router gates it.
func (s *OrderService) ListAll(ctx context.Context) ([]*domain.Order, error) {
	return s.repo.FindAll(ctx)
}

// MarkPaid transitions an order to paid with the provider's confirmation.
// Replaying the same confirmation is a harmless no-op; a confirmation whose
// transaction id differs from a stored one is rejected so a retry can never
// clobber an existing payment record.
func (s *OrderService) MarkPaid(ctx context.Context, ident domain.Identity, id string, conf ports.PaymentConfirmation) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.OwnedBy(ident) {
		return nil, domain.ErrForbidden
	}

	if order.IsPaid {
		if order.PaymentResult.TransactionID == conf.TransactionID {
			s.logger.Debug().Str("order_id", id).Str("transaction_id", conf.TransactionID).Msg("mark paid replayed")
			return order, nil
		}
		return nil, domain.ErrPaymentConflict
	}

	result := domain.PaymentResult{
		TransactionID: conf.TransactionID,
		Status:        conf.Status,
		Email:         conf.Email,
	}
	paidAt := time.Now().UTC()

	matched, err := s.repo.SetPaid(ctx, id, result, paidAt)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id).Msg("failed to mark order paid")
		return nil, err
	}
	if !matched {
		// Lost a race with another confirmation between the read and the
		// patch. The conditional patch matches same-transaction documents, so
		// a miss here means a different transaction id got there first.
		current, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if current.IsPaid && current.PaymentResult.TransactionID == conf.TransactionID {
			return current, nil
		}
		return nil, domain.ErrPaymentConflict
	}

	order.IsPaid = true
	order.PaidAt = &paidAt
	order.PaymentResult = result

	metrics.OrdersPaidTotal.Inc()
	s.logger.Info().Str("order_id", id).Str("transaction_id", conf.TransactionID).Msg("order paid")
	return order, nil
}
