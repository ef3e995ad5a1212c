package handlers

import (
	"github.com/gin-gonic/gin"

	"entregas/internal/application/delivery/usecases"
	"entregas/internal/shared/logger"
	"entregas/internal/shared/utils"
)

type ReportHandler struct {
	reportUC *usecases.ReportByBenefitUseCase
	logger   logger.Interface
}

func NewReportHandler(reportUC *usecases.ReportByBenefitUseCase, logger logger.Interface) *ReportHandler {
	return &ReportHandler{
		reportUC: reportUC,
		logger:   logger,
	}
}

func (h *ReportHandler) DeliveriesByBenefit(c *gin.Context) {
	report, err := h.reportUC.Execute(c.Request.Context(), usecases.ReportByBenefitQuery{
		PeriodCode: c.Query("periodo"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, report)
}
