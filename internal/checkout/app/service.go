package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dwikikusuma/shopcart/internal/checkout/domain"
	user "github.com/dwikikusuma/shopcart/internal/user/domain"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var (
	ErrNilUser       = errors.New("user is nil")
	ErrDuplicateUser = errors.New("user listed more than once")
)

type Service struct {
	log *slog.Logger
	now func() time.Time

	maxConcurrent int
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(log *slog.Logger, maxConcurrent int, opts ...Option) *Service {
	if log == nil {
		log = slog.Default()
	}
	if maxConcurrent <= 0 {
		maxConcurrent = 10
	}

	s := &Service{
		log:           log,
		now:           time.Now,
		maxConcurrent: maxConcurrent,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Checkout closes out the user's active cart and returns a receipt for it.
// Nothing is changed when ctx is already done.
func (s *Service) Checkout(ctx context.Context, u *user.User) (domain.Receipt, error) {
	if u == nil {
		return domain.Receipt{}, ErrNilUser
	}
	if err := ctx.Err(); err != nil {
		return domain.Receipt{}, fmt.Errorf("checkout user %s: %w", u.ID, err)
	}

	items := u.Cart().View()
	total := u.Checkout()

	receipt := domain.Receipt{
		ID:           uuid.NewString(),
		UserID:       u.ID,
		UserName:     u.Name,
		Items:        items,
		Total:        total,
		CheckedOutAt: s.now().UTC(),
	}

	s.log.InfoContext(ctx, "checkout completed",
		slog.String("user_id", receipt.UserID),
		slog.String("receipt_id", receipt.ID),
		slog.Int("items", len(receipt.Items)),
		slog.Float64("total", receipt.Total),
	)

	return receipt, nil
}

// CheckoutAll checks out every user concurrently. Each user must appear once
// since a user's cart is not safe to share between goroutines. Receipts are
// returned in the order of users.
//
// On error the returned slice is still non-nil: entries with a non-empty ID
// belong to users that were checked out before the failure, and their carts
// have already been replaced. Entries left at the zero value were not touched.
func (s *Service) CheckoutAll(ctx context.Context, users []*user.User) ([]domain.Receipt, error) {
	seen := make(map[*user.User]struct{}, len(users))
	for i, u := range users {
		if u == nil {
			return nil, fmt.Errorf("user %d: %w", i, ErrNilUser)
		}
		if _, ok := seen[u]; ok {
			return nil, fmt.Errorf("user %s: %w", u.ID, ErrDuplicateUser)
		}
		seen[u] = struct{}{}
	}

	receipts := make([]domain.Receipt, len(users))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for idx := range users {
		g.Go(func() error {
			receipt, err := s.Checkout(ctx, users[idx])
			if err != nil {
				return err
			}
			receipts[idx] = receipt
			return nil
		})
	}

	err := g.Wait()
	return receipts, err
}
