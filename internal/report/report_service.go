package report

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Muniya-64bit/Database-Backend/internal/shared/apperror"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	OnLeaveCacheKey = "reports:on_leave"
	GenderCacheKey  = "reports:gender_breakdown"
	cacheTTL        = 1 * time.Hour
)

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	OnLeave(ctx context.Context) (*OnLeaveResponse, error)
	GenderBreakdown(ctx context.Context) ([]GenderSlice, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

// OnLeave is dashboard data, so the count is cached and concurrent misses
// collapse into a single database hit.
func (s *service) OnLeave(ctx context.Context) (*OnLeaveResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, OnLeaveCacheKey).Result(); err == nil {
			var resp OnLeaveResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return &resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(OnLeaveCacheKey, func() (interface{}, error) {
		today := time.Now().UTC().Truncate(24 * time.Hour)
		count, err := s.repo.OnLeaveCount(ctx, today)
		if err != nil {
			s.logger.Error("on-leave count query failed", zap.Error(err))
			return nil, apperror.ErrInternal
		}

		resp := &OnLeaveResponse{OnLeave: count}
		s.cache(ctx, OnLeaveCacheKey, resp)
		return resp, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*OnLeaveResponse), nil
}

func (s *service) GenderBreakdown(ctx context.Context) ([]GenderSlice, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, GenderCacheKey).Result(); err == nil {
			var resp []GenderSlice
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(GenderCacheKey, func() (interface{}, error) {
		slices, err := s.repo.GenderBreakdown(ctx)
		if err != nil {
			s.logger.Error("gender breakdown query failed", zap.Error(err))
			return nil, apperror.ErrInternal
		}

		s.cache(ctx, GenderCacheKey, slices)
		return slices, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]GenderSlice), nil
}

func (s *service) cache(ctx context.Context, key string, value any) {
	if s.rdb == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key, data, cacheTTL).Err(); err != nil {
		s.logger.Warn("report cache write failed", zap.String("key", key), zap.Error(err))
	}
}
