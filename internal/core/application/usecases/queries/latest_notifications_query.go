package queries

import (
	"context"
	"errors"

	"ordering/internal/core/application/readmodel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

const (
	DefaultNotificationLimit = 50
	MaxNotificationLimit     = 500
)

var ErrLatestNotificationsQueryIsNotConstructed = errors.New(
	"LatestNotificationsQuery must be created via NewLatestNotificationsQuery constructor",
)

// LatestNotificationsQuery returns the newest captured notifications.
type LatestNotificationsQuery struct {
	limit int
	guard guard.ConstructorGuard
}

// NewLatestNotificationsQuery uses DefaultNotificationLimit when limit is 0.
func NewLatestNotificationsQuery(limit int) (LatestNotificationsQuery, error) {
	if limit == 0 {
		limit = DefaultNotificationLimit
	}
	if limit < 1 || limit > MaxNotificationLimit {
		return LatestNotificationsQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxNotificationLimit)
	}
	return LatestNotificationsQuery{limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (q LatestNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrLatestNotificationsQueryIsNotConstructed)
}

func (q LatestNotificationsQuery) Limit() int {
	return q.limit
}

type LatestNotificationsQueryHandler struct {
	repos RepositoriesFactory
}

func NewLatestNotificationsQueryHandler(repos RepositoriesFactory) LatestNotificationsQueryHandler {
	return LatestNotificationsQueryHandler{repos: repos}
}

func (h LatestNotificationsQueryHandler) Handle(
	ctx context.Context,
	query LatestNotificationsQuery,
) ([]readmodel.NotificationView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	logs, err := h.repos.Create().NotificationLogRepository().ListLatest(ctx, query.Limit())
	if err != nil {
		return nil, err
	}

	views := make([]readmodel.NotificationView, 0, len(logs))
	for _, l := range logs {
		views = append(views, readmodel.NotificationView{
			ID:         l.ID(),
			Subject:    l.Subject(),
			Recipients: l.Recipients(),
			Body:       l.Body(),
			CreatedAt:  l.CreatedAt(),
		})
	}
	return views, nil
}
