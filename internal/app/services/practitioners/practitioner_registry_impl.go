package practitioners

import (
	"context"
	"sutra-service/internal/app/contracts"
	"sutra-service/internal/pkg/assembler"
	"sutra-service/internal/pkg/dto/responses"
	"sutra-service/internal/pkg/exceptions"
)

// staticPractitionerRegistry is a read-only directory seeded at bootstrap.
// Author details ride along with the assembled document, so the registry
// only needs lookup by id and a listing for the selection UI.
type staticPractitionerRegistry struct {
	byID    map[string]assembler.Author
	ordered []assembler.Author
}

func NewStaticPractitionerRegistry(authors []assembler.Author) contracts.PractitionerRegistry {
	registry := &staticPractitionerRegistry{
		byID:    make(map[string]assembler.Author, len(authors)),
		ordered: authors,
	}
	for _, author := range authors {
		registry.byID[author.ID] = author
	}
	return registry
}

func (r *staticPractitionerRegistry) ListPractitioners(ctx context.Context) ([]responses.PractitionerEntry, error) {
	entries := make([]responses.PractitionerEntry, 0, len(r.ordered))
	for _, author := range r.ordered {
		entries = append(entries, responses.PractitionerEntry{
			ID:            author.ID,
			Name:          author.Name,
			Qualification: author.Qualification,
			Registration:  author.RegistrationValue,
		})
	}
	return entries, nil
}

func (r *staticPractitionerRegistry) FindPractitionerByID(ctx context.Context, practitionerID string) (*assembler.Author, error) {
	author, ok := r.byID[practitionerID]
	if !ok {
		return nil, exceptions.ErrPractitionerNotFound(practitionerID)
	}
	return &author, nil
}
