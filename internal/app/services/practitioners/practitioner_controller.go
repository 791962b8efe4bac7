package practitioners

import (
	"context"
	"net/http"
	"sutra-service/internal/app/contracts"
	"sutra-service/internal/pkg/constvars"
	"sutra-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

type PractitionerController struct {
	Log                  *zap.Logger
	PractitionerRegistry contracts.PractitionerRegistry
}

var (
	practitionerControllerInstance *PractitionerController
	oncePractitionerController     sync.Once
)

func NewPractitionerController(logger *zap.Logger, registry contracts.PractitionerRegistry) *PractitionerController {
	oncePractitionerController.Do(func() {
		practitionerControllerInstance = &PractitionerController{
			Log:                  logger,
			PractitionerRegistry: registry,
		}
	})
	return practitionerControllerInstance
}

func (ctrl *PractitionerController) ListPractitioners(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("PractitionerController.ListPractitioners called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := ctrl.PractitionerRegistry.ListPractitioners(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPractitionersSuccessMessage, result)
}
