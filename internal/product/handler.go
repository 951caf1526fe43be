package product

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"terminal-terrace/catalog-service/internal/dto"
	res "terminal-terrace/catalog-service/internal/response"
)

// ProductHandler 商品处理器
type ProductHandler struct {
	service ProductService
}

// NewProductHandler 创建处理器实例
func NewProductHandler(service ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// GenerateProducts 从商品目录 API 导入商品
// @Summary 导入商品
// @Description 请求 fakestoreapi.com 的商品列表，每条商品写入一行。重复调用会产生重复数据。
// @Tags Product
// @Produce json
// @Success 200 {object} response.GenerateBody
// @Failure 500 {object} response.GenerateBody "上游或数据库错误"
// @Router /generate-products [get]
func (h *ProductHandler) GenerateProducts(c *gin.Context) {
	inserted, err := h.service.GenerateProducts(c.Request.Context())
	if err != nil {
		dto.GenerateErrorResponse(c, err)
		return
	}

	dto.GenerateSuccessResponse(c, "Products generated", res.WithInserted(inserted))
}

// ListProducts 获取全部商品
// @Summary 商品列表
// @Tags Product
// @Produce json
// @Success 200 {array} product.Product
// @Failure 500 {object} response.ErrorBody
// @Router /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.service.ListProducts(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	dto.SuccessResponse(c, products)
}

// SearchProducts 按关键词搜索商品
// @Summary 搜索商品
// @Description 标题、描述或分类包含关键词即命中（忽略大小写）。关键词为空时返回全部商品。
// @Tags Product
// @Produce json
// @Param q query string false "关键词"
// @Success 200 {array} product.Product
// @Failure 500 {object} response.ErrorBody
// @Router /products/search [get]
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	products, err := h.service.SearchProducts(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	dto.SuccessResponse(c, products)
}

// GetProduct 按 ID 获取商品
// @Summary 商品详情
// @Tags Product
// @Produce json
// @Param id path int true "商品ID"
// @Success 200 {object} product.Product
// @Failure 400 {object} response.ErrorBody "ID 格式错误"
// @Failure 404 {object} response.ErrorBody "商品不存在"
// @Failure 500 {object} response.ErrorBody
// @Router /products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	p, err := h.service.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	dto.SuccessResponse(c, p)
}

// ========== 错误处理 ==========

// handleError 统一错误处理
func (h *ProductHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidID):
		dto.ErrorResponse(c, res.NewBusinessError(
			res.WithStatus(http.StatusBadRequest),
			res.WithErrorMessage("Invalid ID"),
		))
	case errors.Is(err, ErrProductNotFound):
		dto.ErrorResponse(c, res.NewBusinessError(
			res.WithStatus(http.StatusNotFound),
			res.WithErrorMessage("Product not found"),
		))
	default:
		dto.ErrorResponse(c, res.NewBusinessError(
			res.WithErrorMessage(err.Error()),
			res.WithError(err),
		))
	}
}
