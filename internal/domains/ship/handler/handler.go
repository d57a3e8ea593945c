package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"cosmoport-backend/internal/domains/ship/model"
	"cosmoport-backend/internal/domains/ship/service"
	"cosmoport-backend/internal/shared/response"
	"cosmoport-backend/pkg/logger"
)

// =====================================================
// SHIP HANDLER
// =====================================================

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ShipHandler struct {
	shipService service.ServiceInterface
}

func NewShipHandler(shipService service.ServiceInterface) *ShipHandler {
	return &ShipHandler{
		shipService: shipService,
	}
}

// =====================================================
// COLLECTION ENDPOINTS
// =====================================================

// ListShips returns one page of the filtered fleet
// GET /rest/ships
func (h *ShipHandler) ListShips(c *gin.Context) {
	// Step 1: Bind query params
	var req model.ListShipsRequest
	if !bindPagedQuery(c, &req) {
		return
	}

	// Step 2: Call service
	ships, err := h.shipService.ListShips(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	// Step 3: Return the bare array
	response.JSON(c, http.StatusOK, ships)
}

// CountShips returns how many ships match the filter, ignoring paging
// GET /rest/ships/count
func (h *ShipHandler) CountShips(c *gin.Context) {
	var filter model.ShipFilter
	if !bindShipQuery(c, &filter) {
		return
	}

	count, err := h.shipService.CountShips(c.Request.Context(), filter)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, count)
}

// ExportShips downloads the filtered fleet as an XLSX workbook
// GET /rest/ships/export
func (h *ShipHandler) ExportShips(c *gin.Context) {
	// Step 1: Bind query params
	var req model.ListShipsRequest
	if !bindShipQuery(c, &req) {
		return
	}

	// Step 2: Build workbook
	f, count, err := h.shipService.ExportShips(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	defer f.Close()

	// Step 3: Stream it
	filename := fmt.Sprintf("fleet_%s.xlsx", time.Now().UTC().Format("20060102_150405"))
	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("X-Total-Count", strconv.Itoa(count))
	c.Status(http.StatusOK)

	if err := f.Write(c.Writer); err != nil {
		logger.Error("Failed to write fleet export", err)
	}
}

// CreateShip registers a new ship
// POST /rest/ships
func (h *ShipHandler) CreateShip(c *gin.Context) {
	// Step 1: Bind request body
	var req model.ShipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
		return
	}

	// Step 2: Call service (validates and rates)
	ship, err := h.shipService.CreateShip(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	// Step 3: Return created ship
	response.JSON(c, http.StatusOK, ship)
}

// =====================================================
// SINGLE SHIP ENDPOINTS
// =====================================================

// GetShip
// GET /rest/ships/:id
func (h *ShipHandler) GetShip(c *gin.Context) {
	// Step 1: Parse ship ID
	id, ok := parseShipID(c)
	if !ok {
		return
	}

	// Step 2: Call service
	ship, err := h.shipService.GetShip(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	// Step 3: Return success
	response.JSON(c, http.StatusOK, ship)
}

// UpdateShip overwrites the fields present in the body
// POST /rest/ships/:id
func (h *ShipHandler) UpdateShip(c *gin.Context) {
	// Step 1: Parse ship ID
	id, ok := parseShipID(c)
	if !ok {
		return
	}

	// Step 2: Bind request body
	var req model.ShipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
		return
	}

	// Step 3: Call service
	ship, err := h.shipService.UpdateShip(c.Request.Context(), id, req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	// Step 4: Return updated ship
	response.JSON(c, http.StatusOK, ship)
}

// DeleteShip
// DELETE /rest/ships/:id
func (h *ShipHandler) DeleteShip(c *gin.Context) {
	id, ok := parseShipID(c)
	if !ok {
		return
	}

	if err := h.shipService.DeleteShip(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}

	response.Empty(c, http.StatusOK)
}

// =====================================================
// HELPER FUNCTIONS
// =====================================================

// parseShipID writes a 400 and returns false when :id is not an integer
func parseShipID(c *gin.Context) (int64, bool) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, model.ErrCodeInvalidShipID, "Invalid ship id: "+idStr, nil)
		return 0, false
	}
	return id, true
}

// pageParams are the query keys that must be integers for paged listings
var pageParams = []string{"pageNumber", "pageSize"}

// bindShipQuery binds the query string into obj. Empty values are dropped
// first: "?isUsed=" imposes no constraint, the same as leaving it out.
func bindShipQuery(c *gin.Context, obj interface{}) bool {
	if err := binding.MapFormWithTag(obj, nonEmptyValues(c.Request.URL.Query()), "form"); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
		return false
	}
	return true
}

// bindPagedQuery is bindShipQuery with malformed paging reported as SHIP005
func bindPagedQuery(c *gin.Context, req *model.ListShipsRequest) bool {
	query := nonEmptyValues(c.Request.URL.Query())
	for _, key := range pageParams {
		values, ok := query[key]
		if !ok {
			continue
		}
		if _, err := strconv.Atoi(values[0]); err != nil {
			msg := fmt.Sprintf("Invalid pagination params: %s=%q is not an integer", key, values[0])
			respondError(c, http.StatusBadRequest, model.ErrCodeInvalidPageParams, msg, nil)
			return false
		}
	}
	return bindShipQuery(c, req)
}

func nonEmptyValues(query url.Values) url.Values {
	out := make(url.Values, len(query))
	for key, values := range query {
		for _, v := range values {
			if v != "" {
				out[key] = append(out[key], v)
			}
		}
	}
	return out
}

func handleServiceError(c *gin.Context, err error) {
	statusCode, errCode := mapShipError(err)
	if statusCode == http.StatusInternalServerError {
		logger.Error("Ship request failed", err)
		respondError(c, statusCode, errCode, "Internal server error", nil)
		return
	}

	var shipErr *model.ShipError
	errors.As(err, &shipErr)
	respondError(c, statusCode, errCode, shipErr.Message, detailsOf(shipErr.Details))
}

// respondError sends error response
func respondError(c *gin.Context, statusCode int, code, message string, details interface{}) {
	if details == nil {
		response.ErrorResponse(c, statusCode, code, message)
		return
	}
	response.ErrorWithDetails(c, statusCode, code, message, details)
}

// detailsOf keeps ozzo field errors as a field->message object
func detailsOf(details interface{}) interface{} {
	switch d := details.(type) {
	case nil:
		return nil
	case validation.Errors:
		return d
	case error:
		return d.Error()
	default:
		return d
	}
}

// mapShipError maps ship error to HTTP status code
func mapShipError(err error) (int, string) {
	var shipErr *model.ShipError
	if !errors.As(err, &shipErr) {
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}

	switch {
	case model.IsNotFound(err):
		return http.StatusNotFound, shipErr.Code
	case model.IsBadRequest(err):
		return http.StatusBadRequest, shipErr.Code
	}
	return http.StatusInternalServerError, "INTERNAL_ERROR"
}
