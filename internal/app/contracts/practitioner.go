package contracts

import (
	"context"
	"sutra-service/internal/pkg/assembler"
	"sutra-service/internal/pkg/dto/responses"
)

type PractitionerRegistry interface {
	ListPractitioners(ctx context.Context) ([]responses.PractitionerEntry, error)
	FindPractitionerByID(ctx context.Context, practitionerID string) (*assembler.Author, error)
}
