package assembly

import (
	"context"
	"net/http"
	"sutra-service/internal/app/contracts"
	"sutra-service/internal/pkg/constvars"
	"sutra-service/internal/pkg/exceptions"
	"sutra-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AssemblyController struct {
	Log             *zap.Logger
	AssemblyUsecase contracts.AssemblyUsecase
}

var (
	assemblyControllerInstance *AssemblyController
	onceAssemblyController     sync.Once
)

func NewAssemblyController(logger *zap.Logger, assemblyUsecase contracts.AssemblyUsecase) *AssemblyController {
	onceAssemblyController.Do(func() {
		assemblyControllerInstance = &AssemblyController{
			Log:             logger,
			AssemblyUsecase: assemblyUsecase,
		}
	})
	return assemblyControllerInstance
}

// AssembleDocument responds with the bundle itself rather than the usual
// envelope, so downstream FHIR tooling can consume the body directly.
func (ctrl *AssemblyController) AssembleDocument(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	sessionID := chi.URLParam(r, "session_id")
	ctrl.Log.Info("AssemblyController.AssembleDocument called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	bundle, err := ctrl.AssemblyUsecase.AssembleDocument(ctx, sessionID)
	if err != nil {
		ctrl.Log.Error("AssemblyController.AssembleDocument error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildRawFHIRResponse(w, constvars.StatusCreated, bundle)
}
