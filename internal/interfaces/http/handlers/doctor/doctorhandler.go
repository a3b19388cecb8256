package doctor

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"antrean/internal/application/doctor/usecases"
	"antrean/internal/shared/errors"
	"antrean/internal/shared/logger"
	"antrean/internal/shared/utils"
)

type DoctorHandler struct {
	listDoctorsUC         usecases.ListDoctorsExecutor
	listSpecializationsUC usecases.ListSpecializationsExecutor
	listBySpecUC          usecases.ListDoctorsBySpecializationExecutor
	logger                logger.Interface
}

func NewDoctorHandler(
	listDoctorsUC usecases.ListDoctorsExecutor,
	listSpecializationsUC usecases.ListSpecializationsExecutor,
	listBySpecUC usecases.ListDoctorsBySpecializationExecutor,
) *DoctorHandler {
	return &DoctorHandler{
		listDoctorsUC:         listDoctorsUC,
		listSpecializationsUC: listSpecializationsUC,
		listBySpecUC:          listBySpecUC,
		logger:                logger.NewLogger(),
	}
}

// ListDoctors handles GET /doctors
func (h *DoctorHandler) ListDoctors(c *gin.Context) {
	result, err := h.listDoctorsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListSpecializations handles GET /doctors/specializations
func (h *DoctorHandler) ListSpecializations(c *gin.Context) {
	result, err := h.listSpecializationsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListBySpecialization handles GET /doctors/specialization/:specialization
func (h *DoctorHandler) ListBySpecialization(c *gin.Context) {
	specialization := c.Param("specialization")
	if specialization == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("Specialization is required"))
		return
	}

	query := usecases.ListDoctorsBySpecializationQuery{Specialization: specialization}
	result, err := h.listBySpecUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
