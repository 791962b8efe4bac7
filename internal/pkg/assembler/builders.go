package assembler

import (
	"strings"
	"sutra-service/internal/pkg/constvars"
	"sutra-service/internal/pkg/fhir_dto"
	"time"
)

// classifyGender maps heterogeneous roster gender values onto the closed
// FHIR administrative-gender set by first letter, case-insensitively.
func classifyGender(raw string) string {
	trimmed := strings.TrimSpace(strings.ToLower(raw))
	if trimmed == "" {
		return constvars.FhirGenderUnknown
	}
	switch trimmed[0] {
	case 'm':
		return constvars.FhirGenderMale
	case 'f':
		return constvars.FhirGenderFemale
	case 'o':
		return constvars.FhirGenderOther
	default:
		return constvars.FhirGenderUnknown
	}
}

func buildPatient(subject *Subject, id string) *fhir_dto.Patient {
	patient := &fhir_dto.Patient{
		ResourceType: constvars.ResourcePatient,
		ID:           id,
		Language:     constvars.FhirDefaultLanguage,
		Active:       true,
		Gender:       classifyGender(subject.Gender),
		BirthDate:    NormalizeDate(subject.BirthDate),
	}

	if subject.PrimaryID != "" {
		patient.Identifier = append(patient.Identifier, fhir_dto.Identifier{
			Use:    "official",
			System: constvars.SystemMRN,
			Value:  subject.PrimaryID,
		})
	}
	if subject.SecondaryID != "" {
		patient.Identifier = append(patient.Identifier, fhir_dto.Identifier{
			Use:    "secondary",
			System: constvars.SystemExternalID,
			Value:  subject.SecondaryID,
		})
	}

	if subject.Name != "" {
		patient.Name = []fhir_dto.HumanName{{Text: subject.Name}}
	}
	if subject.Phone != "" {
		patient.Telecom = append(patient.Telecom, fhir_dto.ContactPoint{System: "phone", Value: subject.Phone})
	}
	if subject.Email != "" {
		patient.Telecom = append(patient.Telecom, fhir_dto.ContactPoint{System: "email", Value: subject.Email})
	}
	if subject.SelectedAddress != "" {
		patient.Telecom = append(patient.Telecom, fhir_dto.ContactPoint{System: "other", Value: subject.SelectedAddress})
	}

	patient.Text = synthesizeNarrative(subject.Name, patient.Gender, patient.BirthDate)
	return patient
}

func buildPractitioner(author *Author, id string) *fhir_dto.Practitioner {
	practitioner := &fhir_dto.Practitioner{
		ResourceType: constvars.ResourcePractitioner,
		ID:           id,
		Language:     constvars.FhirDefaultLanguage,
		Active:       true,
	}

	if author.Name != "" {
		practitioner.Name = []fhir_dto.HumanName{{Text: author.Name}}
	}
	if author.Phone != "" {
		practitioner.Telecom = append(practitioner.Telecom, fhir_dto.ContactPoint{System: "phone", Value: author.Phone})
	}
	if author.Email != "" {
		practitioner.Telecom = append(practitioner.Telecom, fhir_dto.ContactPoint{System: "email", Value: author.Email})
	}
	if author.Qualification != "" {
		practitioner.Qualification = []fhir_dto.Qualification{{
			Code: fhir_dto.CodeableConcept{Text: author.Qualification},
		}}
	}
	// Registration identifier only when both halves are present.
	if author.RegistrationSystem != "" && author.RegistrationValue != "" {
		practitioner.Identifier = append(practitioner.Identifier, fhir_dto.Identifier{
			System: author.RegistrationSystem,
			Value:  author.RegistrationValue,
		})
	}

	practitioner.Text = synthesizeNarrative(author.Name, author.Qualification)
	return practitioner
}

func buildEncounter(note string, id, patientURN string, now time.Time) *fhir_dto.Encounter {
	buildTime := FormatLocal(now)
	return &fhir_dto.Encounter{
		ResourceType: constvars.ResourceEncounter,
		ID:           id,
		Language:     constvars.FhirDefaultLanguage,
		Status:       constvars.FhirEncounterStatusFinish,
		Class: &fhir_dto.Coding{
			System:  constvars.SystemActCode,
			Code:    constvars.CodeAmbulatory,
			Display: constvars.CodeAmbulatoryDisplay,
		},
		Type:    []fhir_dto.CodeableConcept{{Text: note}},
		Subject: &fhir_dto.Reference{Reference: patientURN},
		Period:  &fhir_dto.Period{Start: buildTime, End: buildTime},
		Text:    synthesizeNarrative("Encounter", note),
	}
}

func buildCustodian(name string, id string) *fhir_dto.Organization {
	return &fhir_dto.Organization{
		ResourceType: constvars.ResourceOrganization,
		ID:           id,
		Language:     constvars.FhirDefaultLanguage,
		Active:       true,
		Name:         name,
		Text:         synthesizeNarrative(name),
	}
}

func buildImmunization(entry ClinicalEntry, id, patientURN string, now time.Time) *fhir_dto.Immunization {
	occurrence, _ := normalizeOrFallback(entry.OccurrenceDate, now)
	status := strings.TrimSpace(entry.Status)
	if status == "" {
		status = constvars.FhirImmunizationStatusDone
	}
	return &fhir_dto.Immunization{
		ResourceType:       constvars.ResourceImmunization,
		ID:                 id,
		Language:           constvars.FhirDefaultLanguage,
		Status:             status,
		VaccineCode:        &fhir_dto.CodeableConcept{Text: entry.Agent},
		Patient:            &fhir_dto.Reference{Reference: patientURN},
		OccurrenceDateTime: occurrence,
		LotNumber:          entry.LotNumber,
		Text:               synthesizeNarrative(entry.Agent, status, occurrence),
	}
}

// buildDiagnosticReport maps one diagnostic-style entry. Result and specimen
// references are wired in by the composer after their resources get ids.
func buildDiagnosticReport(entry ClinicalEntry, id, patientURN string, now time.Time) (*fhir_dto.DiagnosticReport, string) {
	issued, _ := normalizeOrFallback(entry.IssuedDate, now)
	effective, _ := normalizeOrFallback(entry.Effective, now)
	status := strings.TrimSpace(entry.Status)
	if status == "" {
		status = constvars.FhirDiagReportStatusFinal
	}

	code := &fhir_dto.CodeableConcept{Text: entry.TestText}
	if entry.TestCode != "" {
		system := entry.TestSystem
		if system == "" {
			system = constvars.SystemLOINC
		}
		code.Coding = []fhir_dto.Coding{{System: system, Code: entry.TestCode, Display: entry.TestText}}
	}

	report := &fhir_dto.DiagnosticReport{
		ResourceType:      constvars.ResourceDiagnosticReport,
		ID:                id,
		Language:          constvars.FhirDefaultLanguage,
		Status:            status,
		Code:              code,
		Subject:           &fhir_dto.Reference{Reference: patientURN},
		EffectiveDateTime: effective,
		Issued:            issued,
		Text:              synthesizeNarrative(entry.TestText, status, issued),
	}
	if entry.Category != "" {
		report.Category = []fhir_dto.CodeableConcept{{
			Coding: []fhir_dto.Coding{{System: constvars.SystemDiagServiceSec, Code: constvars.FhirDiagReportCategoryOther}},
			Text:   entry.Category,
		}}
	}
	return report, issued
}

// buildObservation maps one result row. The timestamp is shared from the
// parent report's issued date.
func buildObservation(result ResultEntry, id, patientURN, parentTimestamp string) *fhir_dto.Observation {
	code := &fhir_dto.CodeableConcept{Text: result.Name}
	if result.Code != "" {
		system := result.System
		if system == "" {
			system = constvars.SystemLOINC
		}
		code.Coding = []fhir_dto.Coding{{System: system, Code: result.Code, Display: result.Name}}
	}
	return &fhir_dto.Observation{
		ResourceType:      constvars.ResourceObservation,
		ID:                id,
		Language:          constvars.FhirDefaultLanguage,
		Status:            constvars.FhirObservationStatusFin,
		Code:              code,
		Subject:           &fhir_dto.Reference{Reference: patientURN},
		EffectiveDateTime: parentTimestamp,
		ValueString:       result.Value,
		Text:              synthesizeNarrative(result.Name, result.Value),
	}
}

func buildSpecimen(specimen SpecimenEntry, id, patientURN, parentTimestamp string) *fhir_dto.Specimen {
	return &fhir_dto.Specimen{
		ResourceType: constvars.ResourceSpecimen,
		ID:           id,
		Language:     constvars.FhirDefaultLanguage,
		Status:       constvars.FhirSpecimenStatusAvail,
		Type:         &fhir_dto.CodeableConcept{Text: specimen.Type},
		Subject:      &fhir_dto.Reference{Reference: patientURN},
		ReceivedTime: parentTimestamp,
		Text:         synthesizeNarrative(specimen.Type),
	}
}

func buildCarePlan(recommendation string, id, patientURN string, now time.Time) *fhir_dto.CarePlan {
	return &fhir_dto.CarePlan{
		ResourceType: constvars.ResourceCarePlan,
		ID:           id,
		Language:     constvars.FhirDefaultLanguage,
		Status:       constvars.FhirCarePlanStatusActive,
		Intent:       constvars.FhirCarePlanIntentPlan,
		Description:  recommendation,
		Subject:      &fhir_dto.Reference{Reference: patientURN},
		Created:      FormatLocal(now),
		Text:         synthesizeNarrative("Recommendations", recommendation),
	}
}

const (
	placeholderTitle       = "No attachments"
	placeholderContentType = constvars.MIMETextPlain
	// base64 of "No attachments were provided for this record."
	placeholderData = "Tm8gYXR0YWNobWVudHMgd2VyZSBwcm92aWRlZCBmb3IgdGhpcyByZWNvcmQu"
)

// placeholderAttachment keeps the attachment section linkable when the user
// supplied no files.
func placeholderAttachment() decodedAttachment {
	return decodedAttachment{
		Title:       placeholderTitle,
		ContentType: placeholderContentType,
		Base64:      placeholderData,
		Size:        45,
	}
}

func buildBinary(attachment decodedAttachment, id string) *fhir_dto.Binary {
	return &fhir_dto.Binary{
		ResourceType: constvars.ResourceBinary,
		ID:           id,
		Language:     constvars.FhirDefaultLanguage,
		ContentType:  attachment.ContentType,
		Data:         attachment.Base64,
	}
}

func buildDocumentReference(attachment decodedAttachment, id, patientURN, binaryURN string, now time.Time) *fhir_dto.DocumentReference {
	buildTime := FormatLocal(now)
	return &fhir_dto.DocumentReference{
		ResourceType: constvars.ResourceDocumentReference,
		ID:           id,
		Language:     constvars.FhirDefaultLanguage,
		Status:       constvars.FhirDocRefStatusCurrent,
		Type: &fhir_dto.CodeableConcept{
			Coding: []fhir_dto.Coding{{
				System:  constvars.SystemLOINC,
				Code:    constvars.CodeSummaryOfEpisode,
				Display: constvars.CodeSummaryOfEpisodeText,
			}},
			Text: constvars.CodeSummaryOfEpisodeText,
		},
		Subject:     &fhir_dto.Reference{Reference: patientURN},
		Date:        buildTime,
		Description: attachment.Title,
		Content: []fhir_dto.DocRefContent{{
			Attachment: fhir_dto.Attachment{
				ContentType: attachment.ContentType,
				Url:         binaryURN,
				Size:        attachment.Size,
				Title:       attachment.Title,
				Creation:    buildTime,
			},
		}},
		Text: synthesizeNarrative(attachment.Title, attachment.ContentType),
	}
}
