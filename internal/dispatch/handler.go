package dispatch

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yardboard-backend/internal/platform/apperr"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	// 配車グリッド（車両×スロット）
	r.GET("/dispatch", h.ListEntries)
	r.POST("/dispatch", h.UpsertEntry)

	// 乗務員（車両ごとに1日1人）
	r.GET("/drivers", h.ListDrivers)
	r.POST("/drivers", h.UpsertDriver)
}

func (h *Handler) ListEntries(c *gin.Context) {
	res, err := h.svc.ListEntries(c.Request.Context(), c.Query("date"))
	if err != nil {
		c.JSON(apperr.ToHTTPStatus(err), apperr.Body(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) UpsertEntry(c *gin.Context) {
	var req UpsertEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	res, err := h.svc.UpsertEntry(c.Request.Context(), req)
	if err != nil {
		c.JSON(apperr.ToHTTPStatus(err), apperr.Body(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) ListDrivers(c *gin.Context) {
	res, err := h.svc.ListDrivers(c.Request.Context(), c.Query("date"))
	if err != nil {
		c.JSON(apperr.ToHTTPStatus(err), apperr.Body(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) UpsertDriver(c *gin.Context) {
	var req UpsertDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	res, err := h.svc.UpsertDriver(c.Request.Context(), req)
	if err != nil {
		c.JSON(apperr.ToHTTPStatus(err), apperr.Body(err))
		return
	}
	c.JSON(http.StatusOK, res)
}
