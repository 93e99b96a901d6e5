package handlers

import (
	request "fieldops_billing/internal/adapter/http/dto/request"
	response "fieldops_billing/internal/adapter/http/dto/response"
	"fieldops_billing/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PricingRuleHandler exposes the tenant rule engine: rule CRUD, profile,
// previews and estimate finalization.

type PricingRuleHandler struct {
	usecase usecase.IRulePricingUseCase
}

func NewPricingRuleHandler(uc usecase.IRulePricingUseCase) *PricingRuleHandler {
	return &PricingRuleHandler{usecase: uc}
}

// CreatePricingRule appends a rule at the end of the evaluation order.
//
// @Summary  Create pricing rule
// @Tags     pricing
// @Accept   json
// @Produce  json
// @Param    X-Company-ID  header  string                      true  "Tenant"
// @Param    payload       body    request.PricingRuleRequest  true  "Rule"
// @Success  201  {object}  response.PricingRuleResponse
// @Router   /pricing/rules [post]
func (h *PricingRuleHandler) CreatePricingRule(c *gin.Context) {
	cid, ok2 := companyID(c)
	if !ok2 {
		return
	}
	var payload request.PricingRuleRequest
	if !bindJSON(c, &payload) {
		return
	}

	rule, err := h.usecase.CreateRule(c.Request.Context(), cid, payload.ToRule())
	if err != nil {
		renderError(c, err)
		return
	}
	created(c, response.FromPricingRule(rule))
}

// ListPricingRules returns the rule set in evaluation order.
//
// @Summary  List pricing rules
// @Tags     pricing
// @Produce  json
// @Param    X-Company-ID  header  string  true  "Tenant"
// @Success  200  {array}  response.PricingRuleResponse
// @Router   /pricing/rules [get]
func (h *PricingRuleHandler) ListPricingRules(c *gin.Context) {
	cid, ok2 := companyID(c)
	if !ok2 {
		return
	}
	rules, err := h.usecase.ListRules(c.Request.Context(), cid)
	if err != nil {
		renderError(c, err)
		return
	}
	ok(c, response.FromPricingRules(rules))
}

// SavePricingProfile replaces the tenant's tax/deposit/commission profile.
//
// @Summary  Save pricing profile
// @Tags     pricing
// @Accept   json
// @Produce  json
// @Param    X-Company-ID  header  string                         true  "Tenant"
// @Param    payload       body    request.PricingProfileRequest  true  "Profile"
// @Success  200  {object}  response.PricingProfileResponse
// @Router   /pricing/profile [put]
func (h *PricingRuleHandler) SavePricingProfile(c *gin.Context) {
	cid, ok2 := companyID(c)
	if !ok2 {
		return
	}
	var payload request.PricingProfileRequest
	if !bindJSON(c, &payload) {
		return
	}

	saved, err := h.usecase.SaveProfile(c.Request.Context(), payload.ToProfile(cid))
	if err != nil {
		renderError(c, err)
		return
	}
	ok(c, response.FromPricingProfile(saved))
}

// PreviewPricing runs the rule set over a subtotal without persisting.
//
// @Summary  Preview rule-engine pricing
// @Tags     pricing
// @Accept   json
// @Produce  json
// @Param    X-Company-ID  header  string                      true  "Tenant"
// @Param    payload       body    request.RulePreviewRequest  true  "Subtotal and inputs"
// @Success  200  {object}  response.RuleResultResponse
// @Router   /pricing/preview [post]
func (h *PricingRuleHandler) PreviewPricing(c *gin.Context) {
	cid, ok2 := companyID(c)
	if !ok2 {
		return
	}
	var payload request.RulePreviewRequest
	if !bindJSON(c, &payload) {
		return
	}

	res, err := h.usecase.Preview(c.Request.Context(), cid, payload.Subtotal, payload.Inputs)
	if err != nil {
		renderError(c, err)
		return
	}
	ok(c, res)
}

// MarketingRange previews a low/high price band for marketing pages.
//
// @Summary  Preview marketing price range
// @Tags     pricing
// @Accept   json
// @Produce  json
// @Param    X-Company-ID  header  string                         true  "Tenant"
// @Param    payload       body    request.MarketingRangeRequest  true  "Band subtotals"
// @Success  200  {object}  response.MarketingRangeResponse
// @Router   /pricing/marketing-range [post]
func (h *PricingRuleHandler) MarketingRange(c *gin.Context) {
	cid, ok2 := companyID(c)
	if !ok2 {
		return
	}
	var payload request.MarketingRangeRequest
	if !bindJSON(c, &payload) {
		return
	}

	low, high, err := h.usecase.MarketingRange(c.Request.Context(), cid, payload.LowSubtotal, payload.HighSubtotal, payload.Inputs)
	if err != nil {
		renderError(c, err)
		return
	}
	ok(c, response.MarketingRangeResponse{Low: low, High: high})
}

// FinalizePricing applies the rule set to a draft estimate and freezes the
// result into a snapshot.
//
// @Summary  Finalize estimate pricing via rules
// @Tags     pricing
// @Accept   json
// @Produce  json
// @Param    X-Company-ID  header  string                       true  "Tenant"
// @Param    id            path    string                       true  "Estimate ID"
// @Param    payload       body    request.RuleFinalizeRequest  true  "Rule inputs"
// @Success  200  {object}  response.RuleResultResponse
// @Router   /estimates/{id}/finalize-pricing [post]
func (h *PricingRuleHandler) FinalizePricing(c *gin.Context) {
	cid, ok2 := companyID(c)
	if !ok2 {
		return
	}
	var payload request.RuleFinalizeRequest
	if !bindJSON(c, &payload) {
		return
	}

	res, err := h.usecase.Finalize(c.Request.Context(), cid, c.Param("id"), payload.Inputs, userActor(c))
	if err != nil {
		renderError(c, err)
		return
	}
	ok(c, res)
}
