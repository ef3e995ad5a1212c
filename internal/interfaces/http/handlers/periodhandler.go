package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalogApp "entregas/internal/application/catalog"
	"entregas/internal/domain/catalog"
	"entregas/internal/shared/logger"
	"entregas/internal/shared/utils"
)

type PeriodHandler struct {
	service *catalogApp.PeriodService
	logger  logger.Interface
}

func NewPeriodHandler(service *catalogApp.PeriodService, logger logger.Interface) *PeriodHandler {
	return &PeriodHandler{
		service: service,
		logger:  logger,
	}
}

type createPeriodRequest struct {
	Code      string `json:"codigo"`
	Name      string `json:"nombre_periodo"`
	StartDate string `json:"fecha_inicio"`
	EndDate   string `json:"fecha_final"`
}

type updatePeriodRequest struct {
	Name      *string `json:"nombre_periodo"`
	StartDate *string `json:"fecha_inicio"`
	EndDate   *string `json:"fecha_final"`
}

type periodResponse struct {
	Code      string `json:"codigo"`
	Name      string `json:"nombre_periodo"`
	StartDate string `json:"fecha_inicio"`
	EndDate   string `json:"fecha_final"`
}

func toPeriodResponse(p *catalog.Period) periodResponse {
	return periodResponse{
		Code:      p.Code(),
		Name:      p.Name(),
		StartDate: utils.FormatDate(p.StartDate()),
		EndDate:   utils.FormatDate(p.EndDate()),
	}
}

func (h *PeriodHandler) List(c *gin.Context) {
	periods, err := h.service.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]periodResponse, 0, len(periods))
	for _, p := range periods {
		items = append(items, toPeriodResponse(p))
	}
	utils.SuccessResponse(c, items)
}

func (h *PeriodHandler) Create(c *gin.Context) {
	var req createPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "JSON inválido")
		return
	}

	period, err := h.service.Create(c.Request.Context(), catalogApp.CreatePeriodInput{
		Code:      req.Code,
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"codigo": period.Code(), "nombre_periodo": period.Name()})
}

func (h *PeriodHandler) Get(c *gin.Context) {
	period, err := h.service.Get(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, toPeriodResponse(period))
}

func (h *PeriodHandler) Update(c *gin.Context) {
	var req updatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "JSON inválido")
		return
	}

	err := h.service.Update(c.Request.Context(), c.Param("codigo"), catalogApp.UpdatePeriodInput{
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c)
}

func (h *PeriodHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("codigo")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c)
}
