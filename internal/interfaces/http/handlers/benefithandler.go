package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	catalogApp "entregas/internal/application/catalog"
	"entregas/internal/domain/catalog"
	"entregas/internal/shared/logger"
	"entregas/internal/shared/utils"
	"entregas/internal/shared/utils/jsonutil"
)

type BenefitHandler struct {
	service *catalogApp.BenefitService
	logger  logger.Interface
}

func NewBenefitHandler(service *catalogApp.BenefitService, logger logger.Interface) *BenefitHandler {
	return &BenefitHandler{
		service: service,
		logger:  logger,
	}
}

type createBenefitRequest struct {
	Code string `json:"codigo"`
	Name string `json:"nombre_beneficio"`
}

type updateBenefitRequest struct {
	Name        *string            `json:"nombre_beneficio"`
	Description *string            `json:"descripcion"`
	Active      *jsonutil.FlexBool `json:"activo"`
}

type benefitSummary struct {
	Code string `json:"codigo"`
	Name string `json:"nombre_beneficio"`
}

type benefitDetail struct {
	Code        string  `json:"codigo"`
	Name        string  `json:"nombre_beneficio"`
	Description *string `json:"descripcion"`
	Active      bool    `json:"activo"`
	CreatedAt   *string `json:"creado_en"`
}

func toBenefitDetail(b *catalog.Benefit) benefitDetail {
	detail := benefitDetail{
		Code:   b.Code(),
		Name:   b.Name(),
		Active: b.Active(),
	}
	if desc := b.Description(); desc != "" {
		detail.Description = &desc
	}
	if createdAt := b.CreatedAt(); !createdAt.IsZero() {
		formatted := createdAt.Format(time.RFC3339)
		detail.CreatedAt = &formatted
	}
	return detail
}

func (h *BenefitHandler) List(c *gin.Context) {
	benefits, err := h.service.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]benefitSummary, 0, len(benefits))
	for _, b := range benefits {
		items = append(items, benefitSummary{Code: b.Code(), Name: b.Name()})
	}
	utils.SuccessResponse(c, items)
}

func (h *BenefitHandler) Create(c *gin.Context) {
	var req createBenefitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "JSON inválido")
		return
	}

	benefit, err := h.service.Create(c.Request.Context(), req.Code, req.Name)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, benefitSummary{Code: benefit.Code(), Name: benefit.Name()})
}

func (h *BenefitHandler) Get(c *gin.Context) {
	benefit, err := h.service.Get(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, toBenefitDetail(benefit))
}

func (h *BenefitHandler) Update(c *gin.Context) {
	var req updateBenefitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "JSON inválido")
		return
	}

	input := catalogApp.UpdateBenefitInput{
		Name:        req.Name,
		Description: req.Description,
	}
	if req.Active != nil {
		active := req.Active.Bool()
		input.Active = &active
	}

	if err := h.service.Update(c.Request.Context(), c.Param("codigo"), input); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c)
}

func (h *BenefitHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("codigo")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c)
}
