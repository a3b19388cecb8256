package patientqueue

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"antrean/internal/application/patientqueue/usecases"
	"antrean/internal/shared/errors"
	"antrean/internal/shared/logger"
	"antrean/internal/shared/utils"
)

// RegisterPatientRequest is the POST body for a new registration. Business
// validation lives in the use case so its messages reach the client intact.
type RegisterPatientRequest struct {
	PatientName string `json:"patient_name"`
	DoctorID    uint   `json:"doctor_id"`
	VisitTimeID uint   `json:"visit_time_id"`
}

func (r *RegisterPatientRequest) ToCommand() usecases.RegisterPatientCommand {
	return usecases.RegisterPatientCommand{
		PatientName: r.PatientName,
		DoctorID:    r.DoctorID,
		VisitTimeID: r.VisitTimeID,
	}
}

type PatientQueueHandler struct {
	registerUC usecases.RegisterPatientExecutor
	listUC     usecases.ListQueuesExecutor
	deleteUC   usecases.DeleteQueueExecutor
	logger     logger.Interface
}

func NewPatientQueueHandler(
	registerUC usecases.RegisterPatientExecutor,
	listUC usecases.ListQueuesExecutor,
	deleteUC usecases.DeleteQueueExecutor,
) *PatientQueueHandler {
	return &PatientQueueHandler{
		registerUC: registerUC,
		listUC:     listUC,
		deleteUC:   deleteUC,
		logger:     logger.NewLogger(),
	}
}

// Register handles POST /patient-queues
func (h *PatientQueueHandler) Register(c *gin.Context) {
	var req RegisterPatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for patient registration", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid request body"))
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Antrian berhasil dibuat")
}

// List handles GET /patient-queues
func (h *PatientQueueHandler) List(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Delete handles DELETE /patient-queues/:id
func (h *PatientQueueHandler) Delete(c *gin.Context) {
	entryID, err := parseEntryID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteQueueCommand{EntryID: entryID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Antrian berhasil dihapus", result)
}

func parseEntryID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("ID antrian tidak valid")
	}
	return uint(id), nil
}
