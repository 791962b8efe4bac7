package documents

import (
	"context"
	"net/http"
	"sutra-service/internal/app/contracts"
	"sutra-service/internal/pkg/constvars"
	"sutra-service/internal/pkg/exceptions"
	"sutra-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

type DocumentController struct {
	Log             *zap.Logger
	DocumentUsecase contracts.DocumentUsecase
}

var (
	documentControllerInstance *DocumentController
	onceDocumentController     sync.Once
)

func NewDocumentController(logger *zap.Logger, documentUsecase contracts.DocumentUsecase) *DocumentController {
	onceDocumentController.Do(func() {
		documentControllerInstance = &DocumentController{
			Log:             logger,
			DocumentUsecase: documentUsecase,
		}
	})
	return documentControllerInstance
}

func (ctrl *DocumentController) ListDocuments(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("DocumentController.ListDocuments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	sessionID := r.URL.Query().Get("session_id")
	limit := utils.QueryLimit(r, 20, 100)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.DocumentUsecase.ListDocuments(ctx, sessionID, limit)
	if err != nil {
		ctrl.Log.Error("DocumentController.ListDocuments error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDocumentsSuccessMessage, result)
}
