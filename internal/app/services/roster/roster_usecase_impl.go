package roster

import (
	"context"
	"sutra-service/internal/app/contracts"
	"sutra-service/internal/pkg/dto/responses"
	"sync"

	"go.uber.org/zap"
)

type rosterUsecase struct {
	RosterFhirClient contracts.RosterFhirClient
	Log              *zap.Logger
}

var (
	rosterUsecaseInstance contracts.RosterUsecase
	onceRosterUsecase     sync.Once
)

func NewRosterUsecase(rosterFhirClient contracts.RosterFhirClient, logger *zap.Logger) contracts.RosterUsecase {
	onceRosterUsecase.Do(func() {
		rosterUsecaseInstance = &rosterUsecase{
			RosterFhirClient: rosterFhirClient,
			Log:              logger,
		}
	})
	return rosterUsecaseInstance
}

func (uc *rosterUsecase) ListPatients(ctx context.Context, nameFilter string, limit int) ([]responses.RosterPatient, error) {
	return uc.RosterFhirClient.FindPatients(ctx, nameFilter, limit)
}
