package export

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"yardboard-backend/internal/platform/apperr"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeCSV  = "text/csv; charset=Shift_JIS"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	// GET /export/board?date=YYYY-MM-DD&format=xlsx|csv
	r.GET("/export/board", h.Board)
}

func (h *Handler) Board(c *gin.Context) {
	date := c.Query("date")
	format := c.DefaultQuery("format", "xlsx")

	ctx := c.Request.Context()
	switch format {
	case "xlsx":
		buf, filename, err := h.svc.ExportXLSX(ctx, date)
		if err != nil {
			c.JSON(apperr.ToHTTPStatus(err), apperr.Body(err))
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		c.Data(http.StatusOK, contentTypeXLSX, buf.Bytes())
	case "csv":
		buf, filename, err := h.svc.ExportCSV(ctx, date)
		if err != nil {
			c.JSON(apperr.ToHTTPStatus(err), apperr.Body(err))
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		c.Data(http.StatusOK, contentTypeCSV, buf.Bytes())
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be xlsx or csv"})
	}
}
