// Package usecases implements the delivery lifecycle operations.
package usecases

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"entregas/internal/domain/audit"
	"entregas/internal/domain/catalog"
	"entregas/internal/domain/delivery"
	"entregas/internal/domain/worker"
	"entregas/internal/shared/constants"
	"entregas/internal/shared/errors"
	"entregas/internal/shared/logger"
	"entregas/internal/shared/rut"
	"entregas/internal/shared/utils"
)

// WorkerRegistry provisions worker identities on demand.
type WorkerRegistry interface {
	EnsureWorker(ctx context.Context, rut, firstName, surname string, email *string) (*worker.Worker, error)
}

// TransactionRunner executes a unit of work atomically.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CreateDeliveryCommand struct {
	RUT         string
	FirstName   string
	Surname     string
	Email       *string
	BenefitCode string
	PeriodCode  string
	DeliveredAt string // optional timestamp; empty means now
	Signature   string // optional base64 payload, recorded in the audit log only
}

type CreateDeliveryResult struct {
	ID uint
}

type CreateDeliveryUseCase struct {
	deliveryRepo delivery.Repository
	benefitRepo  catalog.BenefitRepository
	periodRepo   catalog.PeriodRepository
	registry     WorkerRegistry
	auditRepo    audit.Repository
	txManager    TransactionRunner
	logger       logger.Interface
}

func NewCreateDeliveryUseCase(
	deliveryRepo delivery.Repository,
	benefitRepo catalog.BenefitRepository,
	periodRepo catalog.PeriodRepository,
	registry WorkerRegistry,
	auditRepo audit.Repository,
	txManager TransactionRunner,
	logger logger.Interface,
) *CreateDeliveryUseCase {
	return &CreateDeliveryUseCase{
		deliveryRepo: deliveryRepo,
		benefitRepo:  benefitRepo,
		periodRepo:   periodRepo,
		registry:     registry,
		auditRepo:    auditRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

func (uc *CreateDeliveryUseCase) Execute(ctx context.Context, cmd CreateDeliveryCommand) (*CreateDeliveryResult, error) {
	cmd.RUT = strings.TrimSpace(cmd.RUT)
	cmd.FirstName = strings.TrimSpace(cmd.FirstName)
	cmd.Surname = strings.TrimSpace(cmd.Surname)
	cmd.BenefitCode = strings.TrimSpace(cmd.BenefitCode)
	cmd.PeriodCode = strings.TrimSpace(cmd.PeriodCode)

	if cmd.RUT == "" || cmd.FirstName == "" || cmd.Surname == "" || cmd.BenefitCode == "" || cmd.PeriodCode == "" {
		return nil, errors.NewValidationError("rut, nombre, apellido, beneficio_cod y periodo_cod son obligatorios")
	}
	if !rut.IsValid(cmd.RUT) {
		return nil, errors.NewValidationError("RUT con formato inválido")
	}

	// Fast-path duplicate check; the unique index has the final word under
	// concurrent creates.
	exists, err := uc.deliveryRepo.ExistsForWorker(ctx, cmd.RUT, cmd.BenefitCode, cmd.PeriodCode)
	if err != nil {
		uc.logger.Errorw("failed to check for existing delivery", "error", err, "rut", cmd.RUT)
		return nil, fmt.Errorf("failed to check for existing delivery: %w", err)
	}
	if exists {
		return nil, errors.NewConflictError("La persona ya tiene registrada una entrega de ese beneficio en el periodo indicado")
	}

	benefit, err := uc.benefitRepo.GetByCode(ctx, cmd.BenefitCode)
	if err != nil {
		return nil, fmt.Errorf("failed to load benefit: %w", err)
	}
	if benefit == nil {
		return nil, errors.NewValidationError("beneficio_cod no existe")
	}

	period, err := uc.periodRepo.GetByCode(ctx, cmd.PeriodCode)
	if err != nil {
		return nil, fmt.Errorf("failed to load period: %w", err)
	}
	if period == nil {
		return nil, errors.NewValidationError("periodo_cod no existe")
	}

	deliveredAt := utils.ParseTimestampOrNow(cmd.DeliveredAt)

	var created *delivery.Delivery
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if _, err := uc.registry.EnsureWorker(txCtx, cmd.RUT, cmd.FirstName, cmd.Surname, cmd.Email); err != nil {
			return err
		}

		d, err := delivery.NewDelivery(cmd.RUT, cmd.BenefitCode, cmd.PeriodCode, deliveredAt)
		if err != nil {
			return err
		}
		if err := uc.deliveryRepo.Create(txCtx, d); err != nil {
			return err
		}
		created = d

		if cmd.Signature != "" {
			entry, err := audit.NewEntry(
				constants.TableDeliveries,
				strconv.FormatUint(uint64(d.ID()), 10),
				constants.AuditActionSignature,
				nil,
				&cmd.Signature,
			)
			if err != nil {
				return err
			}
			if err := uc.auditRepo.Append(txCtx, entry); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			return nil, appErr
		}
		uc.logger.Errorw("failed to create delivery", "error", err, "rut", cmd.RUT, "beneficio", cmd.BenefitCode)
		return nil, err
	}

	uc.logger.Infow("delivery created",
		"id", created.ID(),
		"rut", cmd.RUT,
		"beneficio", cmd.BenefitCode,
		"periodo", cmd.PeriodCode,
	)
	return &CreateDeliveryResult{ID: created.ID()}, nil
}
