package api_router

import (
	"github.com/learncodes/mynote-sync/internal/app"
	"github.com/learncodes/mynote-sync/internal/dto"
	pkgapp "github.com/learncodes/mynote-sync/pkg/app"
	"github.com/learncodes/mynote-sync/pkg/code"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CategoryHandler 分类 API 路由处理器
type CategoryHandler struct {
	*Handler
}

// NewCategoryHandler 创建 CategoryHandler 实例
func NewCategoryHandler(a *app.App) *CategoryHandler {
	return &CategoryHandler{Handler: NewHandler(a)}
}

// List 列出全部分类及各自的活跃笔记数量
func (h *CategoryHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	ctx := c.Request.Context()

	categories, err := h.App.CategoryService.List(ctx)
	if err != nil {
		response.ToError(err)
		return
	}

	list := make([]*dto.CategoryDTO, 0, len(categories))
	for _, category := range categories {
		count, err := h.App.CategoryService.NoteCount(ctx, category.Name)
		if err != nil {
			response.ToError(err)
			return
		}
		list = append(list, dto.NewCategoryDTO(category, count))
	}

	response.ToResponseList(code.Success, list, len(list))
}

// Create 创建分类
func (h *CategoryHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.CategoryCreateRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("CategoryHandler.Create.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()))
		return
	}

	category, err := h.App.CategoryService.Create(c.Request.Context(), params.Name, params.Color)
	if err != nil {
		response.ToError(err)
		return
	}

	response.ToResponse(code.Success.WithData(dto.NewCategoryDTO(category, 0)))
}

// Delete 删除分类，引用笔记级联改写到默认分类
func (h *CategoryHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.CategoryDeleteRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()))
		return
	}

	if err := h.App.CategoryService.Delete(c.Request.Context(), params.Name); err != nil {
		response.ToError(err)
		return
	}

	response.ToResponse(code.Success)
}

// Notes 按分类列出未进回收站的笔记
func (h *CategoryHandler) Notes(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.CategoryNotesRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()))
		return
	}

	notes, err := h.App.NoteService.ListByCategory(c.Request.Context(), params.Name)
	if err != nil {
		response.ToError(err)
		return
	}

	response.ToResponseList(code.Success, dto.NewNoteDTOList(notes), len(notes))
}
