package usecases

import (
	"context"
	"fmt"
	"strings"

	"entregas/internal/domain/delivery"
	"entregas/internal/shared/errors"
	"entregas/internal/shared/logger"
)

type ReportByBenefitQuery struct {
	PeriodCode string
}

// ReportRow is one wire row of the deliveries-by-benefit report.
// ANULADO deliveries count toward total only.
type ReportRow struct {
	PeriodCode  string `json:"periodo"`
	BenefitCode string `json:"beneficio_cod"`
	Total       int64  `json:"total"`
	Delivered   int64  `json:"entregados"`
	Pending     int64  `json:"pendientes"`
	Rejected    int64  `json:"rechazados"`
}

type ReportByBenefitUseCase struct {
	deliveryRepo delivery.Repository
	logger       logger.Interface
}

func NewReportByBenefitUseCase(deliveryRepo delivery.Repository, logger logger.Interface) *ReportByBenefitUseCase {
	return &ReportByBenefitUseCase{
		deliveryRepo: deliveryRepo,
		logger:       logger,
	}
}

func (uc *ReportByBenefitUseCase) Execute(ctx context.Context, query ReportByBenefitQuery) ([]ReportRow, error) {
	periodCode := strings.TrimSpace(query.PeriodCode)
	if periodCode == "" {
		return nil, errors.NewValidationError("Debe indicar ?periodo=CODIGO")
	}

	rows, err := uc.deliveryRepo.CountByBenefit(ctx, periodCode)
	if err != nil {
		uc.logger.Errorw("failed to build report", "error", err, "periodo", periodCode)
		return nil, fmt.Errorf("failed to build report: %w", err)
	}

	report := make([]ReportRow, 0, len(rows))
	for _, row := range rows {
		report = append(report, ReportRow{
			PeriodCode:  row.PeriodCode,
			BenefitCode: row.BenefitCode,
			Total:       row.Total,
			Delivered:   row.Delivered,
			Pending:     row.Pending,
			Rejected:    row.Rejected,
		})
	}
	return report, nil
}
