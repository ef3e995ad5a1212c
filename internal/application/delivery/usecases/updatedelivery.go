package usecases

import (
	"context"
	"fmt"
	"strconv"

	"entregas/internal/domain/audit"
	"entregas/internal/domain/delivery"
	"entregas/internal/shared/constants"
	"entregas/internal/shared/errors"
	"entregas/internal/shared/logger"
)

type UpdateDeliveryCommand struct {
	ID        uint
	Status    *string // optional new status, case-insensitive
	Signature *string // optional new signature payload; always appends an audit entry
}

type UpdateDeliveryUseCase struct {
	deliveryRepo delivery.Repository
	auditRepo    audit.Repository
	txManager    TransactionRunner
	logger       logger.Interface
}

func NewUpdateDeliveryUseCase(
	deliveryRepo delivery.Repository,
	auditRepo audit.Repository,
	txManager TransactionRunner,
	logger logger.Interface,
) *UpdateDeliveryUseCase {
	return &UpdateDeliveryUseCase{
		deliveryRepo: deliveryRepo,
		auditRepo:    auditRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

func (uc *UpdateDeliveryUseCase) Execute(ctx context.Context, cmd UpdateDeliveryCommand) error {
	d, err := uc.deliveryRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		uc.logger.Errorw("failed to load delivery", "error", err, "id", cmd.ID)
		return fmt.Errorf("failed to load delivery: %w", err)
	}
	if d == nil {
		return errors.NewNotFoundError("Entrega no encontrada")
	}

	statusChanged := false
	if cmd.Status != nil {
		status, err := delivery.ParseStatus(*cmd.Status)
		if err != nil {
			return errors.NewValidationError("estado inválido")
		}
		if err := d.ChangeStatus(status); err != nil {
			return errors.NewValidationError("estado inválido")
		}
		statusChanged = true
	}

	// Signature events accumulate in the audit log; prior entries are never
	// overwritten.
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if statusChanged {
			if err := uc.deliveryRepo.Update(txCtx, d); err != nil {
				return err
			}
		}
		if cmd.Signature != nil {
			entry, err := audit.NewEntry(
				constants.TableDeliveries,
				strconv.FormatUint(uint64(d.ID()), 10),
				constants.AuditActionSignature,
				nil,
				cmd.Signature,
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
			return appErr
		}
		uc.logger.Errorw("failed to update delivery", "error", err, "id", cmd.ID)
		return err
	}

	uc.logger.Infow("delivery updated", "id", cmd.ID, "estado", string(d.Status()))
	return nil
}
