package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"entregas/internal/application/delivery/usecases"
	"entregas/internal/shared/logger"
	"entregas/internal/shared/utils"
)

type DeliveryHandler struct {
	createUC *usecases.CreateDeliveryUseCase
	getUC    *usecases.GetDeliveryUseCase
	listUC   *usecases.ListDeliveriesUseCase
	updateUC *usecases.UpdateDeliveryUseCase
	logger   logger.Interface
}

func NewDeliveryHandler(
	createUC *usecases.CreateDeliveryUseCase,
	getUC *usecases.GetDeliveryUseCase,
	listUC *usecases.ListDeliveriesUseCase,
	updateUC *usecases.UpdateDeliveryUseCase,
	logger logger.Interface,
) *DeliveryHandler {
	return &DeliveryHandler{
		createUC: createUC,
		getUC:    getUC,
		listUC:   listUC,
		updateUC: updateUC,
		logger:   logger,
	}
}

type createDeliveryRequest struct {
	RUT         string  `json:"rut"`
	FirstName   string  `json:"nombre"`
	Surname     string  `json:"apellido"`
	Email       *string `json:"email"`
	BenefitCode string  `json:"beneficio_cod"`
	PeriodCode  string  `json:"periodo_cod"`
	DeliveredAt string  `json:"fecha_entrega"`
	Signature   string  `json:"firma_base64"`
}

type updateDeliveryRequest struct {
	Status    *string `json:"estado"`
	Signature *string `json:"firma_base64"`
}

func (h *DeliveryHandler) Create(c *gin.Context) {
	var req createDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "JSON inválido")
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateDeliveryCommand{
		RUT:         req.RUT,
		FirstName:   req.FirstName,
		Surname:     req.Surname,
		Email:       req.Email,
		BenefitCode: req.BenefitCode,
		PeriodCode:  req.PeriodCode,
		DeliveredAt: req.DeliveredAt,
		Signature:   req.Signature,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"id": result.ID})
}

func (h *DeliveryHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListDeliveriesQuery{
		RUT:         c.Query("rut"),
		PeriodCode:  c.Query("periodo"),
		BenefitCode: c.Query("beneficio"),
		Status:      c.Query("estado"),
		From:        c.Query("desde"),
		To:          c.Query("hasta"),
		Page:        pagination.Page,
		Size:        pagination.Size,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.PagedSuccessResponse(c, result.Items, result.Total, result.Page, result.Size)
}

func (h *DeliveryHandler) Get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	detail, err := h.getUC.Execute(c.Request.Context(), usecases.GetDeliveryQuery{ID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, detail)
}

func (h *DeliveryHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req updateDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "JSON inválido")
		return
	}

	err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateDeliveryCommand{
		ID:        id,
		Status:    req.Status,
		Signature: req.Signature,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c)
}

// parseID reads the numeric path id. A non-numeric id cannot reference any
// delivery, so it maps to not found.
func (h *DeliveryHandler) parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, "Entrega no encontrada")
		return 0, false
	}
	return uint(id), true
}
