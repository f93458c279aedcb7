package leave

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/Muniya-64bit/Database-Backend/internal/authority"
	"github.com/Muniya-64bit/Database-Backend/internal/events"
	leaveerrors "github.com/Muniya-64bit/Database-Backend/internal/leave/errors"
	"github.com/Muniya-64bit/Database-Backend/internal/messaging/kafka"
	"github.com/Muniya-64bit/Database-Backend/internal/shared/apperror"
	"github.com/Muniya-64bit/Database-Backend/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actor string, req CreateLeaveRequest) (*LeaveRequestResponse, error)
	GetByID(ctx context.Context, id int64) (*LeaveRequestResponse, error)
	SetStatus(ctx context.Context, actor string, id int64, status string) (*LeaveRequestResponse, error)
	Delete(ctx context.Context, actor string, id int64) error
	ListForTeam(ctx context.Context, actor string, pendingOnly bool) ([]LeaveRequestResponse, error)
	ListAll(ctx context.Context, actor string) ([]LeaveRequestResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	authority authority.Service
	outbox    kafka.OutboxRepository
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	auth authority.Service,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		authority: auth,
		outbox:    outboxRepo,
		logger:    l,
	}
}

// Create files a leave request. Strictly self-service: the caller must be
// the employee named in the body. The request_date is server-assigned and
// the owner's current supervisor is snapshotted onto the row.
func (s *service) Create(ctx context.Context, actor string, req CreateLeaveRequest) (*LeaveRequestResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	roles, err := s.authority.ResolveRoles(ctx, actor)
	if err != nil {
		return nil, err
	}
	if !s.authority.IsSelf(roles, req.EmployeeID) {
		return nil, apperror.Forbidden("create leave requests for another employee")
	}

	startDate, err := time.Parse(dateLayout, req.LeaveStartDate)
	if err != nil {
		return nil, leaveerrors.ErrInvalidStartDate
	}

	supervisorID, err := s.repo.GetSupervisorID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leaveerrors.ErrOwnerNotFound
		}
		return nil, apperror.ErrInternal
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create leave begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return nil, apperror.ErrInternal
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row := &LeaveRequest{
		EmployeeID:       req.EmployeeID,
		SupervisorID:     supervisorID,
		RequestDate:      time.Now().UTC(),
		LeaveStartDate:   startDate,
		PeriodOfAbsence:  req.PeriodOfAbsence,
		ReasonForAbsence: req.ReasonForAbsence,
		TypeOfLeave:      req.TypeOfLeave,
		RequestStatus:    StatusPending,
	}
	if err := qtx.Create(ctx, row); err != nil {
		s.logger.Error("create leave persist failed", zap.String("request_id", rid), zap.Error(err))
		return nil, apperror.ErrInternal
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create leave commit failed", zap.String("request_id", rid), zap.Error(err))
		return nil, apperror.ErrInternal
	}

	created, err := s.repo.FindByID(ctx, row.LeaveRequestID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	s.logger.Info("leave request created",
		zap.String("request_id", rid),
		zap.Int64("leave_request_id", created.LeaveRequestID),
		zap.String("employee_id", created.EmployeeID),
	)
	return mapToResponse(created), nil
}

// GetByID is readable by any authenticated caller; no ownership check is
// enforced on single reads.
func (s *service) GetByID(ctx context.Context, id int64) (*LeaveRequestResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToResponse(row), nil
}

// SetStatus decides a request. Admins may decide any request; supervisors
// only requests of employees they currently manage. The current state is not
// inspected, so a terminal request can be overwritten by a later decision.
func (s *service) SetStatus(ctx context.Context, actor string, id int64, status string) (*LeaveRequestResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if status != StatusApproved && status != StatusRejected {
		return nil, leaveerrors.ErrInvalidStatus
	}

	roles, err := s.authority.ResolveRoles(ctx, actor)
	if err != nil {
		return nil, err
	}

	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	if !roles.IsAdmin {
		if !roles.IsSupervisor {
			return nil, apperror.Forbidden("update leave request status")
		}
		managed, err := s.authority.IsManagerOf(ctx, roles, row.EmployeeID)
		if err != nil {
			return nil, err
		}
		if !managed {
			return nil, apperror.Forbidden("update leave requests outside your team")
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("set leave status begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return nil, apperror.ErrInternal
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	affected, err := qtx.UpdateStatus(ctx, id, status)
	if err != nil {
		s.logger.Error("set leave status persist failed", zap.String("request_id", rid), zap.Error(err))
		return nil, apperror.ErrInternal
	}
	if affected == 0 {
		return nil, leaveerrors.ErrLeaveNotFound
	}

	if s.outbox != nil {
		event := events.LeaveStatusChangedEvent{
			EventType:      "leave_status_changed",
			RequestID:      rid,
			LeaveRequestID: id,
			EmployeeID:     row.EmployeeID,
			Status:         status,
			DecidedBy:      actor,
			OccurredAt:     time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal leave_status_changed failed", zap.String("request_id", rid), zap.Error(err))
			return nil, apperror.ErrInternal
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "leave_request",
			AggregateID:   row.EmployeeID,
			EventType:     event.EventType,
			Topic:         events.LeaveStatusChangedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("set leave status outbox persist failed",
				zap.Int64("leave_request_id", id),
				zap.Error(err),
			)
			return nil, apperror.ErrInternal
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("set leave status commit failed", zap.String("request_id", rid), zap.Error(err))
		return nil, apperror.ErrInternal
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	s.logger.Info("leave status updated",
		zap.String("request_id", rid),
		zap.Int64("leave_request_id", id),
		zap.String("status", status),
		zap.String("decided_by", actor),
	)
	return mapToResponse(updated), nil
}

// Delete removes a request. Admin or supervisor. Deleting an already-removed
// id resolves to NotFound, which keeps the operation idempotent in effect.
func (s *service) Delete(ctx context.Context, actor string, id int64) error {
	roles, err := s.authority.ResolveRoles(ctx, actor)
	if err != nil {
		return err
	}
	if !roles.IsAdmin && !roles.IsSupervisor {
		return apperror.Forbidden("delete leave requests")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete leave begin tx failed", zap.Error(err))
		return apperror.ErrInternal
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	affected, err := qtx.Delete(ctx, id)
	if err != nil {
		s.logger.Error("delete leave failed", zap.Error(err))
		return apperror.ErrInternal
	}
	if affected == 0 {
		return leaveerrors.ErrLeaveNotFound
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete leave commit failed", zap.Error(err))
		return apperror.ErrInternal
	}

	s.logger.Info("leave request deleted",
		zap.String("actor", actor),
		zap.Int64("leave_request_id", id),
	)
	return nil
}

// ListForTeam returns requests for employees currently reporting to the
// caller, ordered oldest first.
func (s *service) ListForTeam(ctx context.Context, actor string, pendingOnly bool) ([]LeaveRequestResponse, error) {
	roles, err := s.authority.ResolveRoles(ctx, actor)
	if err != nil {
		return nil, err
	}
	if !roles.IsSupervisor {
		return nil, apperror.Forbidden("view team leave requests")
	}

	rows, err := s.repo.ListForTeam(ctx, roles.EmployeeID, pendingOnly)
	if err != nil {
		return nil, apperror.ErrInternal
	}
	return mapToListResponse(rows), nil
}

func (s *service) ListAll(ctx context.Context, actor string) ([]LeaveRequestResponse, error) {
	roles, err := s.authority.ResolveRoles(ctx, actor)
	if err != nil {
		return nil, err
	}
	if !roles.IsAdmin {
		return nil, apperror.Forbidden("view all leave requests")
	}

	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, apperror.ErrInternal
	}
	return mapToListResponse(rows), nil
}

func mapToResponse(row *LeaveRequest) *LeaveRequestResponse {
	return &LeaveRequestResponse{
		LeaveRequestID:   row.LeaveRequestID,
		EmployeeID:       row.EmployeeID,
		SupervisorID:     row.SupervisorID,
		RequestDate:      row.RequestDate.UTC().Format(time.RFC3339),
		LeaveStartDate:   row.LeaveStartDate.Format(dateLayout),
		PeriodOfAbsence:  row.PeriodOfAbsence,
		ReasonForAbsence: row.ReasonForAbsence,
		TypeOfLeave:      row.TypeOfLeave,
		RequestStatus:    row.RequestStatus,
	}
}

func mapToListResponse(rows []LeaveRequest) []LeaveRequestResponse {
	res := make([]LeaveRequestResponse, len(rows))
	for i := range rows {
		res[i] = *mapToResponse(&rows[i])
	}
	return res
}
