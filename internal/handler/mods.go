package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/mods-catalog-service/internal/service"
	"github.com/maxviazov/mods-catalog-service/pkg/response"
)

type ModHandler struct {
	svc service.ModService
}

func NewModHandler(svc service.ModService) *ModHandler { return &ModHandler{svc: svc} }

func (h *ModHandler) Register(r *gin.RouterGroup) {
	r.GET("/mods", h.list)
}

// list serves GET /mods?page=N. The filter query parameter is accepted and ignored.
func (h *ModHandler) list(c *gin.Context) {
	raw, ok := c.GetQuery("page")
	if !ok {
		response.WriteError(c, service.InvalidInput(service.FieldError{Field: "page", Message: "is required"}))
		return
	}
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		response.WriteError(c, service.InvalidInput(service.FieldError{Field: "page", Message: "must be an integer"}))
		return
	}
	res, err := h.svc.ListMods(c.Request.Context(), page)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, res)
}
