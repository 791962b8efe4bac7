package contracts

import (
	"context"
	"sutra-service/internal/pkg/dto/responses"
)

type RosterFhirClient interface {
	FindPatients(ctx context.Context, nameFilter string, limit int) ([]responses.RosterPatient, error)
}

type RosterUsecase interface {
	ListPatients(ctx context.Context, nameFilter string, limit int) ([]responses.RosterPatient, error)
}
