package stapi

import (
	"context"
	"fmt"

	"sttools/pkg/domain"
	"sttools/pkg/logger"

	"go.uber.org/zap"
)

// DefaultPageSize is used when a caller does not specify a page size for
// pagination exhaustion.
const DefaultPageSize = 100

// AllUsers fetches every live user by exhausting pagination. It stops when a
// page comes back empty, when the reported total count has been reached, or
// when a page is shorter than requested. The full set is materialized in
// memory; the matcher never deals with pages.
func AllUsers(ctx context.Context, client UserLister, pageSize int) ([]domain.User, error) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	var all []domain.User
	offset := 0
	for {
		logger.Debug(ctx, "fetching users page",
			zap.Int("limit", pageSize),
			zap.Int("offset", offset))

		page, meta, err := client.GetUsers(ctx, UsersParams{
			PageParams: PageParams{Limit: pageSize, Offset: offset},
		})
		if err != nil {
			return nil, fmt.Errorf("could not fetch users at offset %d: %w", offset, err)
		}
		if len(page) == 0 {
			break
		}

		all = append(all, page...)

		if meta != nil && meta.TotalCount != nil && len(all) >= *meta.TotalCount {
			break
		}
		if len(page) < pageSize {
			break
		}

		offset += pageSize
	}

	return all, nil
}

// UserSource adapts a paginated client into the matcher's materialized
// UserSource contract.
type UserSource struct {
	client   UserLister
	pageSize int
}

// NewUserSource creates a UserSource fetching pages of the given size.
func NewUserSource(client UserLister, pageSize int) *UserSource {
	return &UserSource{client: client, pageSize: pageSize}
}

// Users returns the fully materialized live user set.
func (s *UserSource) Users(ctx context.Context) ([]domain.User, error) {
	return AllUsers(ctx, s.client, s.pageSize)
}
