package roster

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

type RosterController struct {
	Log           *zap.Logger
	RosterUsecase contracts.RosterUsecase
}

var (
	rosterControllerInstance *RosterController
	onceRosterController     sync.Once
)

func NewRosterController(logger *zap.Logger, rosterUsecase contracts.RosterUsecase) *RosterController {
	onceRosterController.Do(func() {
		rosterControllerInstance = &RosterController{
			Log:           logger,
			RosterUsecase: rosterUsecase,
		}
	})
	return rosterControllerInstance
}

func (ctrl *RosterController) ListPatients(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("RosterController.ListPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	nameFilter := r.URL.Query().Get("name")
	limit := utils.QueryLimit(r, 20, 100)

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	result, err := ctrl.RosterUsecase.ListPatients(ctx, nameFilter, limit)
	if err != nil {
		ctrl.Log.Error("RosterController.ListPatients error from usecase",
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

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetRosterSuccessMessage, result)
}
