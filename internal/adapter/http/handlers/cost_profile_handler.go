package handlers

import (
	"strings"

	request "fieldops_billing/internal/adapter/http/dto/request"
	response "fieldops_billing/internal/adapter/http/dto/response"
	"fieldops_billing/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CostProfileHandler exposes the tenant cost model.

type CostProfileHandler struct {
	usecase usecase.ICostProfileUseCase
}

func NewCostProfileHandler(uc usecase.ICostProfileUseCase) *CostProfileHandler {
	return &CostProfileHandler{usecase: uc}
}

// SaveCostProfile writes a new immutable cost-profile version.
//
// @Summary  Save cost profile
// @Tags     cost-profile
// @Accept   json
// @Produce  json
// @Param    X-Company-ID  header  string                      true  "Tenant"
// @Param    payload       body    request.CostProfileRequest  true  "Cost assumptions"
// @Success  201  {object}  response.CostProfileResponse
// @Router   /cost-profile [put]
func (h *CostProfileHandler) SaveCostProfile(c *gin.Context) {
	cid, ok2 := companyID(c)
	if !ok2 {
		return
	}
	var payload request.CostProfileRequest
	if !bindJSON(c, &payload) {
		return
	}

	userID := strings.TrimSpace(c.GetHeader(headerUserID))
	saved, err := h.usecase.Save(c.Request.Context(), cid, userID, payload.ToCostInputs())
	if err != nil {
		renderError(c, err)
		return
	}
	created(c, response.FromCostProfile(saved))
}

// GetCostProfile returns the latest cost-profile version.
//
// @Summary  Get latest cost profile
// @Tags     cost-profile
// @Produce  json
// @Param    X-Company-ID  header  string  true  "Tenant"
// @Success  200  {object}  response.CostProfileResponse
// @Router   /cost-profile [get]
func (h *CostProfileHandler) GetCostProfile(c *gin.Context) {
	cid, ok2 := companyID(c)
	if !ok2 {
		return
	}
	latest, err := h.usecase.GetLatest(c.Request.Context(), cid)
	if err != nil {
		renderError(c, err)
		return
	}
	ok(c, response.FromCostProfile(latest))
}

// PreviewCostProfile computes derived outputs without persisting anything.
//
// @Summary  Preview cost-profile outputs
// @Tags     cost-profile
// @Accept   json
// @Produce  json
// @Param    payload  body  request.CostProfileRequest  true  "Cost assumptions"
// @Success  200  {object}  entities.CalculatedOutputs
// @Router   /cost-profile/preview [post]
func (h *CostProfileHandler) PreviewCostProfile(c *gin.Context) {
	var payload request.CostProfileRequest
	if !bindJSON(c, &payload) {
		return
	}
	ok(c, h.usecase.Preview(c.Request.Context(), payload.ToCostInputs()))
}
