package assembler

import (
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const primaryLabelSuffix = " (primary)"

// ExternalAddress is one normalized alternate-identity record for the
// subject.
type ExternalAddress struct {
	Value   string `json:"value"`
	Label   string `json:"label"`
	Primary bool   `json:"primary"`
}

// External-identifier lists arrive in one of two known field paths; the
// first one found wins.
func externalIdentifierField(raw map[string]interface{}) []interface{} {
	if raw == nil {
		return nil
	}
	if list, ok := raw["externalIdentifiers"].([]interface{}); ok {
		return list
	}
	if legacy, ok := raw["legacy"].(map[string]interface{}); ok {
		if list, ok := legacy["identifiers"].([]interface{}); ok {
			return list
		}
	}
	return nil
}

// NormalizeExternalAddresses flattens the heterogeneous identifier shapes of
// a roster document into a canonical ordered list: primary entries first,
// then lexicographic by value. Unrecognized elements are dropped with a
// debug log, never an error. The function is idempotent over its own
// output shape.
func NormalizeExternalAddresses(raw map[string]interface{}, log *zap.Logger) []ExternalAddress {
	elements := externalIdentifierField(raw)
	normalized := make([]ExternalAddress, 0, len(elements))
	for _, element := range elements {
		addr, ok := classifyExternalElement(element)
		if !ok {
			if log != nil {
				log.Debug("dropping unrecognized external identifier element",
					zap.Any("element", element),
				)
			}
			continue
		}
		normalized = append(normalized, addr)
	}

	sort.SliceStable(normalized, func(i, j int) bool {
		if normalized[i].Primary != normalized[j].Primary {
			return normalized[i].Primary
		}
		return normalized[i].Value < normalized[j].Value
	})
	return normalized
}

// classifyExternalElement resolves one raw element into the closed variant
// set: bare text, tagged address object, already-normalized object, or
// opaque object. Empty and nil elements report !ok.
func classifyExternalElement(element interface{}) (ExternalAddress, bool) {
	switch v := element.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return ExternalAddress{}, false
		}
		return ExternalAddress{Value: v, Label: v}, true
	case map[string]interface{}:
		if len(v) == 0 {
			return ExternalAddress{}, false
		}
		if value, ok := v["value"].(string); ok && value != "" {
			// already-normalized shape: pass through without re-labelling
			label, _ := v["label"].(string)
			if label == "" {
				label = value
			}
			primary, _ := v["primary"].(bool)
			return ExternalAddress{Value: value, Label: label, Primary: primary}, true
		}
		if address, ok := v["address"].(string); ok && address != "" {
			primary, _ := v["primary"].(bool)
			label := address
			if primary && !strings.HasSuffix(label, primaryLabelSuffix) {
				label += primaryLabelSuffix
			}
			return ExternalAddress{Value: address, Label: label, Primary: primary}, true
		}
		serialized, err := json.Marshal(v)
		if err != nil {
			return ExternalAddress{}, false
		}
		return ExternalAddress{Value: string(serialized), Label: string(serialized)}, true
	default:
		return ExternalAddress{}, false
	}
}
