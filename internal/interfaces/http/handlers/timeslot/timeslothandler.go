package timeslot

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"antrean/internal/application/schedule/usecases"
	"antrean/internal/shared/errors"
	"antrean/internal/shared/logger"
	"antrean/internal/shared/utils"
)

// dateQuery binds the optional ?date=YYYY-MM-DD parameter.
type dateQuery struct {
	Date string `form:"date" binding:"omitempty,visitdate"`
}

type TimeSlotHandler struct {
	listAvailableUC usecases.ListAvailableSlotsExecutor
	checkSlotUC     usecases.CheckSlotExecutor
	logger          logger.Interface
}

func NewTimeSlotHandler(
	listAvailableUC usecases.ListAvailableSlotsExecutor,
	checkSlotUC usecases.CheckSlotExecutor,
) *TimeSlotHandler {
	return &TimeSlotHandler{
		listAvailableUC: listAvailableUC,
		checkSlotUC:     checkSlotUC,
		logger:          logger.NewLogger(),
	}
}

// ListAvailable handles GET /time-slots/available/:doctorId
func (h *TimeSlotHandler) ListAvailable(c *gin.Context) {
	doctorID, err := parseIDParam(c, "doctorId")
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid doctor ID"))
		return
	}

	var q dateQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid date format, expected YYYY-MM-DD"))
		return
	}

	query := usecases.ListAvailableSlotsQuery{DoctorID: doctorID, Date: q.Date}
	result, err := h.listAvailableUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CheckSlot handles GET /time-slots/check/:doctorId/:timeSlotId
func (h *TimeSlotHandler) CheckSlot(c *gin.Context) {
	doctorID, err := parseIDParam(c, "doctorId")
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid doctor ID or time slot ID"))
		return
	}

	visitTimeID, err := parseIDParam(c, "timeSlotId")
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid doctor ID or time slot ID"))
		return
	}

	var q dateQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid date format, expected YYYY-MM-DD"))
		return
	}

	query := usecases.CheckSlotQuery{DoctorID: doctorID, VisitTimeID: visitTimeID, Date: q.Date}
	result, err := h.checkSlotUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid " + name)
	}
	return uint(id), nil
}
