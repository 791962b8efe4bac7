package sessions

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sutra-service/internal/app/contracts"
	"sutra-service/internal/pkg/constvars"
	"sutra-service/internal/pkg/dto/requests"
	"sutra-service/internal/pkg/exceptions"
	"sutra-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SessionController struct {
	Log            *zap.Logger
	SessionUsecase contracts.SessionUsecase
	MaxUploadSize  int64
}

var (
	sessionControllerInstance *SessionController
	onceSessionController     sync.Once
)

func NewSessionController(logger *zap.Logger, sessionUsecase contracts.SessionUsecase, maxUploadSizeInMB int64) *SessionController {
	onceSessionController.Do(func() {
		sessionControllerInstance = &SessionController{
			Log:            logger,
			SessionUsecase: sessionUsecase,
			MaxUploadSize:  maxUploadSizeInMB << 20,
		}
	})
	return sessionControllerInstance
}

func (ctrl *SessionController) CreateSession(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("SessionController.CreateSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.UpdateSession)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.SessionUsecase.CreateSession(ctx, request)
	if err != nil {
		ctrl.respondError(w, requestID, "CreateSession", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateSessionSuccessMessage, response)
}

func (ctrl *SessionController) FindSessionByID(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	sessionID := chi.URLParam(r, "session_id")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.SessionUsecase.FindSessionByID(ctx, sessionID)
	if err != nil {
		ctrl.respondError(w, requestID, "FindSessionByID", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSessionSuccessMessage, response)
}

func (ctrl *SessionController) UpdateSession(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	sessionID := chi.URLParam(r, "session_id")
	ctrl.Log.Info("SessionController.UpdateSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	request := new(requests.UpdateSession)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.SessionUsecase.UpdateSession(ctx, sessionID, request)
	if err != nil {
		ctrl.respondError(w, requestID, "UpdateSession", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateSessionSuccessMessage, response)
}

func (ctrl *SessionController) DeleteSessionByID(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	sessionID := chi.URLParam(r, "session_id")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.SessionUsecase.DeleteSessionByID(ctx, sessionID); err != nil {
		ctrl.respondError(w, requestID, "DeleteSessionByID", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteSessionSuccessMessage, nil)
}

func (ctrl *SessionController) AddEntry(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	sessionID := chi.URLParam(r, "session_id")

	request := new(requests.ClinicalEntry)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.SessionUsecase.AddEntry(ctx, sessionID, request)
	if err != nil {
		ctrl.respondError(w, requestID, "AddEntry", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AddEntrySuccessMessage, response)
}

func (ctrl *SessionController) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	sessionID := chi.URLParam(r, "session_id")

	index, err := strconv.Atoi(chi.URLParam(r, "entry_index"))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrEntryIndexOutOfRange(-1))
		return
	}

	request := new(requests.ClinicalEntry)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.SessionUsecase.UpdateEntry(ctx, sessionID, index, request)
	if err != nil {
		ctrl.respondError(w, requestID, "UpdateEntry", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateEntrySuccessMessage, response)
}

func (ctrl *SessionController) RemoveEntry(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	sessionID := chi.URLParam(r, "session_id")

	index, err := strconv.Atoi(chi.URLParam(r, "entry_index"))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrEntryIndexOutOfRange(-1))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.SessionUsecase.RemoveEntry(ctx, sessionID, index)
	if err != nil {
		ctrl.respondError(w, requestID, "RemoveEntry", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RemoveEntrySuccessMessage, response)
}

func (ctrl *SessionController) UploadAttachment(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	sessionID := chi.URLParam(r, "session_id")
	ctrl.Log.Info("SessionController.UploadAttachment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	r.Body = http.MaxBytesReader(w, r.Body, ctrl.MaxUploadSize)
	if err := r.ParseMultipartForm(ctrl.MaxUploadSize); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	title := r.FormValue("title")

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.SessionUsecase.AttachFile(ctx, sessionID, file, fileHeader, title)
	if err != nil {
		ctrl.respondError(w, requestID, "UploadAttachment", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.UploadAttachmentSuccessMessage, response)
}

func (ctrl *SessionController) respondError(w http.ResponseWriter, requestID, operation string, err error) {
	ctrl.Log.Error("SessionController."+operation+" error from usecase",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err),
	)
	if err == context.DeadlineExceeded {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}
