package api_router

import (
	"strings"

	"github.com/learncodes/mynote-sync/internal/app"
	"github.com/learncodes/mynote-sync/internal/domain"
	"github.com/learncodes/mynote-sync/internal/dto"
	pkgapp "github.com/learncodes/mynote-sync/pkg/app"
	"github.com/learncodes/mynote-sync/pkg/code"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NoteHandler 笔记 API 路由处理器
type NoteHandler struct {
	*Handler
}

// NewNoteHandler 创建 NoteHandler 实例
func NewNoteHandler(a *app.App) *NoteHandler {
	return &NoteHandler{Handler: NewHandler(a)}
}

// Get 获取单条笔记详情
func (h *NoteHandler) Get(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteIDRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("NoteHandler.Get.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()))
		return
	}

	note, err := h.App.NoteService.Get(c.Request.Context(), params.ID)
	if err != nil {
		response.ToError(err)
		return
	}

	response.ToResponse(code.Success.WithData(dto.NewNoteDTO(note)))
}

// Save 创建或更新笔记
func (h *NoteHandler) Save(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteSaveRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("NoteHandler.Save.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()))
		return
	}
	if strings.TrimSpace(params.Content) != "" && len(params.ChecklistItems) > 0 {
		response.ToResponse(code.ErrorNoteContentConflict)
		return
	}

	note, err := h.App.NoteService.Save(c.Request.Context(), params.Note())
	if err != nil {
		response.ToError(err)
		return
	}

	response.ToResponse(code.Success.WithData(dto.NewNoteDTO(note)))
}

// List 按视图桶列出笔记
func (h *NoteHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteListRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("NoteHandler.List.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()))
		return
	}

	bucket := domain.Bucket(params.Bucket)
	switch bucket {
	case domain.BucketActive, domain.BucketArchived, domain.BucketTrashed:
	case "":
		bucket = domain.BucketActive
	default:
		response.ToResponse(code.ErrorInvalidParams.WithDetails("unknown bucket: " + params.Bucket))
		return
	}

	notes, err := h.App.NoteService.List(c.Request.Context(), bucket)
	if err != nil {
		response.ToError(err)
		return
	}

	response.ToResponseList(code.Success, dto.NewNoteDTOList(notes), len(notes))
}

// Search 搜索笔记
func (h *NoteHandler) Search(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteSearchRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()))
		return
	}

	notes, err := h.App.NoteService.Search(c.Request.Context(), params.Keyword)
	if err != nil {
		response.ToError(err)
		return
	}

	response.ToResponseList(code.Success, dto.NewNoteDTOList(notes), len(notes))
}

// flagAction 生命周期状态转换处理器的公共骨架
func (h *NoteHandler) flagAction(c *gin.Context, name string, action func(ctx *gin.Context, id int64) (*domain.Note, error)) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteIDRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("NoteHandler."+name+".BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()))
		return
	}

	note, err := action(c, params.ID)
	if err != nil {
		response.ToError(err)
		return
	}

	response.ToResponse(code.Success.WithData(dto.NewNoteDTO(note)))
}

// Archive 归档笔记
func (h *NoteHandler) Archive(c *gin.Context) {
	h.flagAction(c, "Archive", func(c *gin.Context, id int64) (*domain.Note, error) {
		return h.App.NoteService.Archive(c.Request.Context(), id)
	})
}

// Unarchive 取消归档
func (h *NoteHandler) Unarchive(c *gin.Context) {
	h.flagAction(c, "Unarchive", func(c *gin.Context, id int64) (*domain.Note, error) {
		return h.App.NoteService.Unarchive(c.Request.Context(), id)
	})
}

// Trash 移入回收站
func (h *NoteHandler) Trash(c *gin.Context) {
	h.flagAction(c, "Trash", func(c *gin.Context, id int64) (*domain.Note, error) {
		return h.App.NoteService.Trash(c.Request.Context(), id)
	})
}

// Restore 从回收站恢复
func (h *NoteHandler) Restore(c *gin.Context) {
	h.flagAction(c, "Restore", func(c *gin.Context, id int64) (*domain.Note, error) {
		return h.App.NoteService.Restore(c.Request.Context(), id)
	})
}

// Pin 置顶
func (h *NoteHandler) Pin(c *gin.Context) {
	h.flagAction(c, "Pin", func(c *gin.Context, id int64) (*domain.Note, error) {
		return h.App.NoteService.Pin(c.Request.Context(), id)
	})
}

// Unpin 取消置顶
func (h *NoteHandler) Unpin(c *gin.Context) {
	h.flagAction(c, "Unpin", func(c *gin.Context, id int64) (*domain.Note, error) {
		return h.App.NoteService.Unpin(c.Request.Context(), id)
	})
}

// Lock 锁定
func (h *NoteHandler) Lock(c *gin.Context) {
	h.flagAction(c, "Lock", func(c *gin.Context, id int64) (*domain.Note, error) {
		return h.App.NoteService.Lock(c.Request.Context(), id)
	})
}

// Unlock 解锁；调用方需已通过外部认证门禁
func (h *NoteHandler) Unlock(c *gin.Context) {
	h.flagAction(c, "Unlock", func(c *gin.Context, id int64) (*domain.Note, error) {
		return h.App.NoteService.Unlock(c.Request.Context(), id)
	})
}

// Purge 物理删除单条笔记
func (h *NoteHandler) Purge(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteIDRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()))
		return
	}

	if err := h.App.NoteService.Purge(c.Request.Context(), params.ID); err != nil {
		response.ToError(err)
		return
	}

	response.ToResponse(code.Success)
}

// EmptyTrash 清空回收站
func (h *NoteHandler) EmptyTrash(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	count, err := h.App.NoteService.EmptyTrash(c.Request.Context())
	if err != nil {
		response.ToError(err)
		return
	}

	response.ToResponse(code.Success.WithData(gin.H{"deleted": count}))
}
