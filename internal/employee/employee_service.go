package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/Muniya-64bit/Database-Backend/internal/authority"
	employeeerrors "github.com/Muniya-64bit/Database-Backend/internal/employee/errors"
	"github.com/Muniya-64bit/Database-Backend/internal/events"
	"github.com/Muniya-64bit/Database-Backend/internal/messaging/kafka"
	"github.com/Muniya-64bit/Database-Backend/internal/shared/apperror"
	"github.com/Muniya-64bit/Database-Backend/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actor string, req CreateEmployeeRequest) (*EmployeeResponse, error)
	GetByUsername(ctx context.Context, actor, targetUsername string) (*EmployeeResponse, error)
	Update(ctx context.Context, actor, targetUsername string, req UpdateEmployeeRequest) (*EmployeeResponse, error)
	Delete(ctx context.Context, actor, employeeID string) error
	EmployeeOfMonth(ctx context.Context) (*EmployeeOfMonthResponse, error)
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
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		authority: auth,
		outbox:    outboxRepo,
		logger:    l,
	}
}

// Create persists a new employee record. Any authenticated caller may create
// one; the employee_created event is staged in the same transaction.
func (s *service) Create(ctx context.Context, actor string, req CreateEmployeeRequest) (*EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("actor", actor),
		zap.String("employee_id", req.EmployeeID),
	)

	birthday, err := parseBirthday(req.Birthday)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return nil, apperror.ErrInternal
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl := &Employee{
		EmployeeID:              req.EmployeeID,
		FirstName:               req.FirstName,
		LastName:                req.LastName,
		Birthday:                birthday,
		NIC:                     req.NIC,
		Gender:                  req.Gender,
		MaritalStatus:           req.MaritalStatus,
		NumberOfDependents:      req.NumberOfDependents,
		Address:                 req.Address,
		ContactNumber:           req.ContactNumber,
		BusinessEmail:           req.BusinessEmail,
		JobTitle:                req.JobTitle,
		EmployeeStatus:          req.EmployeeStatus,
		DepartmentName:          req.DepartmentName,
		BranchName:              req.BranchName,
		ProfilePhoto:            req.ProfilePhoto,
		EmergencyContactName:    req.EmergencyContactName,
		EmergencyContactNIC:     req.EmergencyContactNIC,
		EmergencyContactAddress: req.EmergencyContactAddress,
		EmergencyContactNumber:  req.EmergencyContactNumber,
		SupervisorID:            req.SupervisorID,
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.EmployeeCreatedEvent{
			EventType:  "employee_created",
			RequestID:  rid,
			EmployeeID: empl.EmployeeID,
			JobTitle:   empl.JobTitle,
			Department: empl.DepartmentName,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal employee_created failed", zap.String("request_id", rid), zap.Error(err))
			return nil, apperror.ErrInternal
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "employee",
			AggregateID:   empl.EmployeeID,
			EventType:     event.EventType,
			Topic:         events.EmployeeCreatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("create employee outbox persist failed",
				zap.String("employee_id", empl.EmployeeID),
				zap.Error(err),
			)
			return nil, apperror.ErrInternal
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return nil, apperror.ErrInternal
	}

	// Respond from a fresh read-back so server-assigned values are visible.
	created, err := s.repo.FindByID(ctx, empl.EmployeeID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", created.EmployeeID),
	)
	return mapToResponse(created), nil
}

// GetByUsername reads the record linked to targetUsername. Visible to the
// employee themselves, an admin, or the employee's supervisor.
func (s *service) GetByUsername(ctx context.Context, actor, targetUsername string) (*EmployeeResponse, error) {
	roles, err := s.authority.ResolveRoles(ctx, actor)
	if err != nil {
		return nil, err
	}

	empl, err := s.repo.FindByUsername(ctx, targetUsername)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	if !roles.IsAdmin && !s.authority.IsSelf(roles, empl.EmployeeID) {
		managed, err := s.authority.IsManagerOf(ctx, roles, empl.EmployeeID)
		if err != nil {
			return nil, err
		}
		if !managed {
			return nil, apperror.Forbidden("view this employee's record")
		}
	}

	return mapToResponse(empl), nil
}

// Update replaces the mutable fields of the target's record. Self or admin.
func (s *service) Update(ctx context.Context, actor, targetUsername string, req UpdateEmployeeRequest) (*EmployeeResponse, error) {
	roles, err := s.authority.ResolveRoles(ctx, actor)
	if err != nil {
		return nil, err
	}

	birthday, err := parseBirthday(req.Birthday)
	if err != nil {
		return nil, err
	}

	empl, err := s.repo.FindByUsername(ctx, targetUsername)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	if !roles.IsAdmin && !s.authority.IsSelf(roles, empl.EmployeeID) {
		return nil, apperror.Forbidden("update this employee's record")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return nil, apperror.ErrInternal
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl.FirstName = req.FirstName
	empl.LastName = req.LastName
	empl.Birthday = birthday
	empl.NIC = req.NIC
	empl.Gender = req.Gender
	empl.MaritalStatus = req.MaritalStatus
	empl.NumberOfDependents = req.NumberOfDependents
	empl.Address = req.Address
	empl.ContactNumber = req.ContactNumber
	empl.BusinessEmail = req.BusinessEmail
	empl.JobTitle = req.JobTitle
	empl.EmployeeStatus = req.EmployeeStatus
	empl.DepartmentName = req.DepartmentName
	empl.BranchName = req.BranchName
	empl.ProfilePhoto = req.ProfilePhoto
	empl.EmergencyContactName = req.EmergencyContactName
	empl.EmergencyContactNIC = req.EmergencyContactNIC
	empl.EmergencyContactAddress = req.EmergencyContactAddress
	empl.EmergencyContactNumber = req.EmergencyContactNumber
	empl.SupervisorID = req.SupervisorID

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return nil, apperror.ErrInternal
	}

	updated, err := s.repo.FindByID(ctx, empl.EmployeeID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	s.logger.Info("update employee success", zap.String("employee_id", updated.EmployeeID))
	return mapToResponse(updated), nil
}

// Delete removes an employee record. Admin only, and an admin cannot delete
// their own record.
func (s *service) Delete(ctx context.Context, actor, employeeID string) error {
	roles, err := s.authority.ResolveRoles(ctx, actor)
	if err != nil {
		return err
	}
	if !roles.IsAdmin {
		return apperror.Forbidden("delete employee records")
	}
	if s.authority.IsSelf(roles, employeeID) {
		return apperror.Forbidden("delete your own employee record")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.Error(err))
		return apperror.ErrInternal
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	affected, err := qtx.Delete(ctx, employeeID)
	if err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}
	if affected == 0 {
		return employeeerrors.ErrEmployeeNotFound
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.Error(err))
		return apperror.ErrInternal
	}

	s.logger.Info("delete employee success",
		zap.String("actor", actor),
		zap.String("employee_id", employeeID),
	)
	return nil
}

// EmployeeOfMonth picks the employee with the fewest approved absence days in
// the current calendar month, ties broken by employee id.
func (s *service) EmployeeOfMonth(ctx context.Context) (*EmployeeOfMonthResponse, error) {
	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	row, err := s.repo.FewestAbsenceDays(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return &EmployeeOfMonthResponse{
		EmployeeID:  row.EmployeeID,
		FirstName:   row.FirstName,
		LastName:    row.LastName,
		AbsenceDays: row.AbsenceDays,
	}, nil
}

func parseBirthday(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, employeeerrors.ErrInvalidBirthday
	}
	return &t, nil
}

func mapToResponse(empl *Employee) *EmployeeResponse {
	resp := &EmployeeResponse{
		EmployeeID:              empl.EmployeeID,
		FirstName:               empl.FirstName,
		LastName:                empl.LastName,
		EmployeeNIC:             empl.NIC,
		Gender:                  empl.Gender,
		MaritalStatus:           empl.MaritalStatus,
		NumberOfDependents:      empl.NumberOfDependents,
		Address:                 empl.Address,
		ContactNumber:           empl.ContactNumber,
		BusinessEmail:           empl.BusinessEmail,
		JobTitle:                empl.JobTitle,
		EmployeeStatus:          empl.EmployeeStatus,
		DepartmentName:          empl.DepartmentName,
		BranchName:              empl.BranchName,
		ProfilePhoto:            empl.ProfilePhoto,
		EmergencyContactName:    empl.EmergencyContactName,
		EmergencyContactNIC:     empl.EmergencyContactNIC,
		EmergencyContactAddress: empl.EmergencyContactAddress,
		EmergencyContactNumber:  empl.EmergencyContactNumber,
		SupervisorID:            empl.SupervisorID,
	}
	if empl.Birthday != nil {
		resp.Birthday = empl.Birthday.Format(dateLayout)
	}
	return resp
}
