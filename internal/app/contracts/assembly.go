package contracts

import (
	"context"
	"sutra-service/internal/pkg/fhir_dto"
)

type AssemblyUsecase interface {
	AssembleDocument(ctx context.Context, sessionID string) (*fhir_dto.Bundle, error)
}
