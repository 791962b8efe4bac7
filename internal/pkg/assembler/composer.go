package assembler

import (
	"context"
	"time"

	"sutra-service/internal/pkg/constvars"
	"sutra-service/internal/pkg/fhir_dto"

	"go.uber.org/zap"
)

// Assembler builds one FHIR R4 document Bundle per invocation. It holds no
// build state: the draft lives and dies inside Build.
type Assembler struct {
	NewID IDGenerator
	Clock Clock
	Log   *zap.Logger
}

func New(log *zap.Logger) *Assembler {
	return &Assembler{
		NewID: NewUUIDGenerator(),
		Clock: time.Now,
		Log:   log,
	}
}

// draft accumulates (identifier, resource) pairs. Every reference the
// composer emits is produced through ref() against an id that add() has
// registered, which is what keeps the bundle closed.
type draft struct {
	ids     map[string]bool
	entries []fhir_dto.Entry
}

func newDraft() *draft {
	return &draft{ids: make(map[string]bool)}
}

func (d *draft) add(id string, resource interface{}) {
	if d.ids[id] {
		// one entry per identifier; a duplicate add is a programming error
		return
	}
	d.ids[id] = true
	d.entries = append(d.entries, fhir_dto.Entry{FullUrl: urn(id), Resource: resource})
}

// Build validates, decodes attachments, and composes the document. It is
// all-or-nothing: no partial bundle ever escapes.
func (a *Assembler) Build(ctx context.Context, in Input) (*fhir_dto.Bundle, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}

	decoded, err := decodeAttachments(ctx, in.Attachments)
	if err != nil {
		return nil, err
	}
	if len(decoded) == 0 {
		decoded = []decodedAttachment{placeholderAttachment()}
	}

	// The clock is read once, after the decode stage, so every timestamp in
	// the document refers to the same instant.
	now := a.Clock()
	buildTime := FormatLocal(now)

	bundleID := a.NewID()
	compositionID := a.NewID()
	patientID := a.NewID()
	practitionerID := a.NewID()
	patientURN := urn(patientID)

	patient := buildPatient(in.Subject, patientID)
	practitioner := buildPractitioner(in.Author, practitionerID)

	var encounter *fhir_dto.Encounter
	var encounterID string
	if note := in.EncounterNote; note != "" {
		encounterID = a.NewID()
		encounter = buildEncounter(note, encounterID, patientURN, now)
	}

	var custodian *fhir_dto.Organization
	var custodianID string
	if in.CustodianName != "" {
		custodianID = a.NewID()
		custodian = buildCustodian(in.CustodianName, custodianID)
	}

	// Clinical facts in input order, with their dependent results and
	// specimens collected for the tail of the entry list.
	type clinicalFact struct {
		id       string
		resource interface{}
	}
	var (
		facts        []clinicalFact
		observations []*fhir_dto.Observation
		obsIDs       []string
		specimens    []*fhir_dto.Specimen
		specIDs      []string
		sectionRefs  []fhir_dto.Reference
	)
	for _, entry := range in.Entries {
		if entry.KeyText() == "" {
			continue
		}
		a.logDateFallbacks(entry)

		factID := a.NewID()
		switch entry.Kind {
		case constvars.ClinicalEntryKindImmunization:
			facts = append(facts, clinicalFact{factID, buildImmunization(entry, factID, patientURN, now)})
		default:
			report, sharedTimestamp := buildDiagnosticReport(entry, factID, patientURN, now)
			for _, result := range entry.Results {
				obsID := a.NewID()
				observations = append(observations, buildObservation(result, obsID, patientURN, sharedTimestamp))
				obsIDs = append(obsIDs, obsID)
				report.Result = append(report.Result, fhir_dto.Reference{Reference: urn(obsID)})
			}
			for _, specimen := range entry.Specimens {
				specID := a.NewID()
				specimens = append(specimens, buildSpecimen(specimen, specID, patientURN, sharedTimestamp))
				specIDs = append(specIDs, specID)
				report.Specimen = append(report.Specimen, fhir_dto.Reference{Reference: urn(specID)})
			}
			facts = append(facts, clinicalFact{factID, report})
		}
		sectionRefs = append(sectionRefs, fhir_dto.Reference{Reference: urn(factID)})
	}

	var carePlan *fhir_dto.CarePlan
	var carePlanID string
	if in.Recommendation != "" {
		carePlanID = a.NewID()
		carePlan = buildCarePlan(in.Recommendation, carePlanID, patientURN, now)
		sectionRefs = append(sectionRefs, fhir_dto.Reference{Reference: urn(carePlanID)})
	}

	var (
		binaries  []*fhir_dto.Binary
		binIDs    []string
		docRefs   []*fhir_dto.DocumentReference
		docRefIDs []string
	)
	for _, attachment := range decoded {
		binaryID := a.NewID()
		docRefID := a.NewID()
		binaries = append(binaries, buildBinary(attachment, binaryID))
		binIDs = append(binIDs, binaryID)
		docRefs = append(docRefs, buildDocumentReference(attachment, docRefID, patientURN, urn(binaryID), now))
		docRefIDs = append(docRefIDs, docRefID)
		sectionRefs = append(sectionRefs, fhir_dto.Reference{Reference: urn(docRefID)})
	}

	composition := a.buildComposition(in, compositionID, patientURN, urn(practitionerID),
		encounterID, custodianID, sectionRefs, buildTime)

	d := newDraft()
	d.add(compositionID, composition)
	d.add(patientID, patient)
	d.add(practitionerID, practitioner)
	if encounter != nil {
		d.add(encounterID, encounter)
	}
	if custodian != nil {
		d.add(custodianID, custodian)
	}
	for _, fact := range facts {
		d.add(fact.id, fact.resource)
	}
	if carePlan != nil {
		d.add(carePlanID, carePlan)
	}
	for i, observation := range observations {
		d.add(obsIDs[i], observation)
	}
	for i, specimen := range specimens {
		d.add(specIDs[i], specimen)
	}
	for i, docRef := range docRefs {
		d.add(docRefIDs[i], docRef)
	}
	for i, binary := range binaries {
		d.add(binIDs[i], binary)
	}

	return &fhir_dto.Bundle{
		ResourceType: constvars.ResourceBundle,
		ID:           bundleID,
		Identifier: &fhir_dto.Identifier{
			System: "urn:ietf:rfc:3986",
			Value:  urn(bundleID),
		},
		Type:      constvars.FhirBundleTypeDocument,
		Timestamp: buildTime,
		Entry:     d.entries,
	}, nil
}

func (a *Assembler) buildComposition(
	in Input,
	id, patientURN, practitionerURN string,
	encounterID, custodianID string,
	sectionRefs []fhir_dto.Reference,
	buildTime string,
) *fhir_dto.Composition {
	composition := &fhir_dto.Composition{
		ResourceType: constvars.ResourceComposition,
		ID:           id,
		Language:     constvars.FhirDefaultLanguage,
		Identifier: &fhir_dto.Identifier{
			System: "urn:ietf:rfc:3986",
			Value:  urn(id),
		},
		Status: in.Status,
		Type: &fhir_dto.CodeableConcept{
			Coding: []fhir_dto.Coding{{
				System:  constvars.SystemLOINC,
				Code:    constvars.CodeSummaryOfEpisode,
				Display: constvars.CodeSummaryOfEpisodeText,
			}},
			Text: constvars.CodeSummaryOfEpisodeText,
		},
		Subject: &fhir_dto.Reference{Reference: patientURN},
		Date:    buildTime,
		Author:  []fhir_dto.Reference{{Reference: practitionerURN}},
		Title:   in.Title,
		Text:    synthesizeNarrative(in.Title, in.Status),
	}
	if encounterID != "" {
		composition.Encounter = &fhir_dto.Reference{Reference: urn(encounterID)}
	}
	if custodianID != "" {
		composition.Custodian = &fhir_dto.Reference{Reference: urn(custodianID)}
	}

	section := fhir_dto.Section{
		Title: "Clinical content",
		Code: &fhir_dto.CodeableConcept{
			Coding: []fhir_dto.Coding{{
				System:  constvars.SystemLOINC,
				Code:    constvars.CodeSummaryOfEpisode,
				Display: constvars.CodeSummaryOfEpisodeText,
			}},
		},
	}
	if len(sectionRefs) == 0 {
		section.Text = emptySectionNarrative()
	} else {
		section.Entry = sectionRefs
	}
	composition.Section = []fhir_dto.Section{section}

	return composition
}

// logDateFallbacks records unparseable captured dates. The recovery (build
// time) is intentional, but the drop should be visible in logs.
func (a *Assembler) logDateFallbacks(entry ClinicalEntry) {
	if a.Log == nil {
		return
	}
	for field, raw := range map[string]string{
		"occurrence_date": entry.OccurrenceDate,
		"issued_date":     entry.IssuedDate,
		"effective":       entry.Effective,
	} {
		if raw != "" && NormalizeDate(raw) == "" {
			a.Log.Warn("unparseable clinical date, falling back to build time",
				zap.String("field", field),
				zap.String("value", raw),
			)
		}
	}
}
