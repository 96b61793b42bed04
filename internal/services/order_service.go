package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"furnshop/internal/domain"
	rabbit "furnshop/internal/infra/rabbitmq"
	"furnshop/internal/repository"

	"github.com/go-redis/redis/v8"
)

// CreateOrderItem is one checkout line as submitted by the client: a
// snapshot of the product plus the requested quantity.
type CreateOrderItem struct {
	ProductID uint64
	Name      string
	Price     float64
	Image     string
	Quantity  int64
}

type CreateOrderInput struct {
	Items                []CreateOrderItem
	ShippingAddress      string
	PaymentMethod        string
	PaymentScreenshotURL string

	// Price totals are echoed as submitted; the server does not recompute
	// them from the line items.
	ItemsPrice    float64
	TaxPrice      float64
	ShippingPrice float64
	TotalPrice    float64
}

type OrderService struct {
	repo        repository.OrderRepository
	publisher   rabbit.PublisherInterface
	redisClient *redis.Client
}

func NewOrderService(r repository.OrderRepository, pub rabbit.PublisherInterface) *OrderService {
	return &OrderService{
		repo:      r,
		publisher: pub,
	}
}

func (s *OrderService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

// Create validates the checkout request and persists the order, its item
// snapshots and all stock decrements as one transaction. An order
// referencing a missing product or requesting more than the available stock
// is rejected as a whole.
func (s *OrderService) Create(ctx context.Context, userID uint64, in CreateOrderInput) (*domain.Order, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	items := make([]domain.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("%w: product %d", domain.ErrInvalidQuantity, it.ProductID)
		}
		items = append(items, domain.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			ImageURL:  it.Image,
			Quantity:  it.Quantity,
		})
	}

	order := &domain.Order{
		UserID:               &userID,
		ShippingAddress:      in.ShippingAddress,
		PaymentMethod:        in.PaymentMethod,
		PaymentScreenshotURL: in.PaymentScreenshotURL,
		ItemsPrice:           in.ItemsPrice,
		TaxPrice:             in.TaxPrice,
		ShippingPrice:        in.ShippingPrice,
		TotalPrice:           in.TotalPrice,
		Status:               domain.StatusPending,
		CreatedAt:            time.Now(),
		Items:                items,
	}

	if err := s.repo.Create(order); err != nil {
		return nil, err
	}

	s.invalidateProductCache(ctx, order.Items)
	go s.publishOrderEvent(context.Background(), "order.created", order)

	return order, nil
}

// Get returns one order. Only the owner or staff may read it.
func (s *OrderService) Get(id uint64, caller *domain.User) (*domain.Order, error) {
	o, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrOrderNotFound
	}
	if !caller.Role.Staff() && (o.UserID == nil || *o.UserID != caller.ID) {
		return nil, domain.ErrForbidden
	}
	return o, nil
}

func (s *OrderService) ListMine(userID uint64) ([]domain.Order, error) {
	return s.repo.FindByUser(userID)
}

func (s *OrderService) ListAll() ([]domain.Order, error) {
	return s.repo.FindAll()
}

// Approve transitions Pending -> Approved. Approving an already approved
// order is a no-op success.
func (s *OrderService) Approve(ctx context.Context, id uint64) (*domain.Order, error) {
	o, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrOrderNotFound
	}
	if o.Status == domain.StatusApproved {
		return o, nil
	}

	if err := s.repo.SetStatus(id, domain.StatusApproved); err != nil {
		return nil, err
	}
	o.Status = domain.StatusApproved

	go s.publishOrderEvent(context.Background(), "order.approved", o)
	return o, nil
}

// MarkPaid records the manual payment confirmation with a server-assigned
// timestamp. Re-triggering refreshes the timestamp.
func (s *OrderService) MarkPaid(ctx context.Context, id uint64) (*domain.Order, error) {
	o, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrOrderNotFound
	}

	now := time.Now()
	if err := s.repo.SetPaid(id, now); err != nil {
		return nil, err
	}
	o.IsPaid = true
	o.PaidAt = &now

	go s.publishOrderEvent(context.Background(), "order.paid", o)
	return o, nil
}

func (s *OrderService) MarkDelivered(ctx context.Context, id uint64) (*domain.Order, error) {
	o, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrOrderNotFound
	}

	now := time.Now()
	if err := s.repo.SetDelivered(id, now); err != nil {
		return nil, err
	}
	o.IsDelivered = true
	o.DeliveredAt = &now

	go s.publishOrderEvent(context.Background(), "order.delivered", o)
	return o, nil
}

// Delete removes the order and its items. Stock is not restored.
func (s *OrderService) Delete(id uint64) error {
	o, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if o == nil {
		return domain.ErrOrderNotFound
	}
	return s.repo.Delete(id)
}

func (s *OrderService) invalidateProductCache(ctx context.Context, items []domain.OrderItem) {
	if s.redisClient == nil {
		return
	}
	keys := make([]string, 0, len(items))
	for _, it := range items {
		keys = append(keys, fmt.Sprintf("product:%d", it.ProductID))
	}
	if err := s.redisClient.Del(ctx, keys...).Err(); err != nil {
		log.Printf("failed to invalidate product cache: %v", err)
	}
}

func (s *OrderService) publishOrderEvent(ctx context.Context, event string, order *domain.Order) {
	if s.publisher == nil {
		return
	}
	evt := map[string]any{
		"orderId":    order.ID,
		"userId":     order.UserID,
		"totalPrice": order.TotalPrice,
		"status":     order.Status,
		"isPaid":     order.IsPaid,
		"createdAt":  order.CreatedAt,
	}
	if err := s.publisher.Publish(ctx, event, evt); err != nil {
		log.Printf("failed to publish %s event: %v", event, err)
	}
}
