package constvars

const (
	ResourceBundle            = "Bundle"
	ResourceComposition       = "Composition"
	ResourcePatient           = "Patient"
	ResourcePractitioner      = "Practitioner"
	ResourceEncounter         = "Encounter"
	ResourceOrganization      = "Organization"
	ResourceImmunization      = "Immunization"
	ResourceDiagnosticReport  = "DiagnosticReport"
	ResourceObservation       = "Observation"
	ResourceSpecimen          = "Specimen"
	ResourceCarePlan          = "CarePlan"
	ResourceDocumentReference = "DocumentReference"
	ResourceBinary            = "Binary"
)

const (
	FhirBundleTypeDocument = "document"

	FhirCompositionStatusPreliminary = "preliminary"
	FhirCompositionStatusFinal       = "final"
	FhirCompositionStatusAmended     = "amended"

	FhirNarrativeStatusGenerated = "generated"
	FhirNarrativeStatusEmpty     = "empty"

	FhirGenderMale    = "male"
	FhirGenderFemale  = "female"
	FhirGenderOther   = "other"
	FhirGenderUnknown = "unknown"

	FhirDocRefStatusCurrent   = "current"
	FhirCarePlanStatusActive  = "active"
	FhirCarePlanIntentPlan    = "plan"
	FhirEncounterStatusFinish = "finished"
	FhirObservationStatusFin  = "final"
	FhirSpecimenStatusAvail   = "available"
)

// Code systems referenced by the assembler.
const (
	SystemLOINC          = "http://loinc.org"
	SystemActCode        = "http://terminology.hl7.org/CodeSystem/v3-ActCode"
	SystemDiagServiceSec = "http://terminology.hl7.org/CodeSystem/v2-0074"
	SystemMRN            = "urn:sutra:identifier:mrn"
	SystemExternalID     = "urn:sutra:identifier:external"
	SystemRegistration   = "urn:sutra:identifier:registration"
)

const (
	// LOINC 34133-9 Summary of episode note; fixed document type for the
	// composition and every DocumentReference the assembler emits.
	CodeSummaryOfEpisode        = "34133-9"
	CodeSummaryOfEpisodeText    = "Summary of episode note"
	CodeAmbulatory              = "AMB"
	CodeAmbulatoryDisplay       = "ambulatory"
	FhirDefaultLanguage         = "en"
	FhirXhtmlNamespace          = "http://www.w3.org/1999/xhtml"
	FhirImmunizationStatusDone  = "completed"
	FhirDiagReportStatusFinal   = "final"
	FhirDiagReportCategoryOther = "OTH"
)
