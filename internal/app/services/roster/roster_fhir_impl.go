package roster

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sutra-service/internal/app/contracts"
	"sutra-service/internal/pkg/constvars"
	"sutra-service/internal/pkg/dto/responses"
	"sutra-service/internal/pkg/exceptions"
	"sutra-service/internal/pkg/fhir_dto"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type rosterFhirClient struct {
	BaseUrl    string
	HttpClient *http.Client
	Log        *zap.Logger
}

var (
	rosterFhirClientInstance contracts.RosterFhirClient
	onceRosterFhirClient     sync.Once
)

func NewRosterFhirClient(baseUrl string, timeoutInSeconds int, logger *zap.Logger) contracts.RosterFhirClient {
	onceRosterFhirClient.Do(func() {
		rosterFhirClientInstance = &rosterFhirClient{
			BaseUrl:    strings.TrimSuffix(baseUrl, "/") + "/" + constvars.ResourcePatient,
			HttpClient: &http.Client{Timeout: time.Duration(timeoutInSeconds) * time.Second},
			Log:        logger,
		}
	})
	return rosterFhirClientInstance
}

func (c *rosterFhirClient) FindPatients(ctx context.Context, nameFilter string, limit int) ([]responses.RosterPatient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("rosterFhirClient.FindPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	query := url.Values{}
	if nameFilter != "" {
		query.Set("name", nameFilter)
	}
	query.Set("_count", strconv.Itoa(limit))

	requestUrl := c.BaseUrl + "?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, requestUrl, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationFHIRJSON)

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		c.Log.Error("rosterFhirClient.FindPatients error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrReadHTTPResponse(err)
	}

	if resp.StatusCode != constvars.StatusOK {
		var outcome fhir_dto.OperationOutcome
		if err := json.Unmarshal(bodyBytes, &outcome); err == nil && len(outcome.Issue) > 0 {
			c.Log.Error("rosterFhirClient.FindPatients upstream returned OperationOutcome",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
				zap.String("diagnostics", outcome.Issue[0].Diagnostics),
			)
			return nil, exceptions.ErrUpstreamFHIRServer(fmt.Errorf("%s: %s", outcome.Issue[0].Code, outcome.Issue[0].Diagnostics), constvars.ResourcePatient)
		}
		return nil, exceptions.ErrUpstreamFHIRServer(fmt.Errorf("unexpected status %d", resp.StatusCode), constvars.ResourcePatient)
	}

	var bundle fhir_dto.SearchBundle
	if err := json.Unmarshal(bodyBytes, &bundle); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	patients := make([]responses.RosterPatient, 0, len(bundle.Entry))
	for _, entry := range bundle.Entry {
		patient, ok := convertSearchEntry(entry)
		if !ok {
			continue
		}
		patients = append(patients, patient)
	}

	c.Log.Info("rosterFhirClient.FindPatients succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("patient_count", len(patients)),
	)

	return patients, nil
}

// convertSearchEntry flattens one search result. The raw resource map is
// kept alongside the flattened fields so the address normalizer can read
// external identifiers from it later without another roster round trip.
func convertSearchEntry(entry fhir_dto.SearchEntry) (responses.RosterPatient, bool) {
	var patient fhir_dto.Patient
	if err := json.Unmarshal(entry.Resource, &patient); err != nil {
		return responses.RosterPatient{}, false
	}
	if patient.ResourceType != constvars.ResourcePatient {
		return responses.RosterPatient{}, false
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(entry.Resource, &raw); err != nil {
		return responses.RosterPatient{}, false
	}

	result := responses.RosterPatient{
		ID:        patient.ID,
		Gender:    patient.Gender,
		BirthDate: patient.BirthDate,
		Raw:       raw,
	}
	if len(patient.Name) > 0 {
		result.Name = patient.Name[0].Text
		if result.Name == "" {
			result.Name = strings.TrimSpace(strings.Join(patient.Name[0].Given, " ") + " " + patient.Name[0].Family)
		}
	}
	for _, telecom := range patient.Telecom {
		switch telecom.System {
		case "phone":
			if result.Phone == "" {
				result.Phone = telecom.Value
			}
		case "email":
			if result.Email == "" {
				result.Email = telecom.Value
			}
		}
	}
	return result, true
}
