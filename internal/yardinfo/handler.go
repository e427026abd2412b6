package yardinfo

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yardboard-backend/internal/platform/apperr"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	// 積込担当（1日1件）
	r.GET("/daily-yard-info", h.GetYardInfo)
	r.POST("/daily-yard-info", h.UpsertYardInfo)

	// 連絡事項（1日1件）
	r.GET("/remarks", h.GetRemark)
	r.POST("/remarks", h.UpsertRemark)
}

func (h *Handler) GetYardInfo(c *gin.Context) {
	res, err := h.svc.GetYardInfo(c.Request.Context(), c.Query("date"))
	if err != nil {
		c.JSON(apperr.ToHTTPStatus(err), apperr.Body(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) UpsertYardInfo(c *gin.Context) {
	var req UpsertYardInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	res, err := h.svc.UpsertYardInfo(c.Request.Context(), req)
	if err != nil {
		c.JSON(apperr.ToHTTPStatus(err), apperr.Body(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) GetRemark(c *gin.Context) {
	res, err := h.svc.GetRemark(c.Request.Context(), c.Query("date"))
	if err != nil {
		c.JSON(apperr.ToHTTPStatus(err), apperr.Body(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) UpsertRemark(c *gin.Context) {
	var req UpsertRemarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	res, err := h.svc.UpsertRemark(c.Request.Context(), req)
	if err != nil {
		c.JSON(apperr.ToHTTPStatus(err), apperr.Body(err))
		return
	}
	c.JSON(http.StatusOK, res)
}
