package assembler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNormalizeExternalAddresses(t *testing.T) {
	log := zap.NewNop()

	t.Run("Bare Strings And Tagged Objects", func(t *testing.T) {
		raw := map[string]interface{}{
			"externalIdentifiers": []interface{}{
				"zeta-900",
				map[string]interface{}{"address": "alpha-100", "primary": true},
				map[string]interface{}{"address": "beta-200"},
			},
		}

		normalized := NormalizeExternalAddresses(raw, log)

		assert.Equal(t, []ExternalAddress{
			{Value: "alpha-100", Label: "alpha-100 (primary)", Primary: true},
			{Value: "beta-200", Label: "beta-200"},
			{Value: "zeta-900", Label: "zeta-900"},
		}, normalized)
	})

	t.Run("Primary Entries Always Sort First", func(t *testing.T) {
		raw := map[string]interface{}{
			"externalIdentifiers": []interface{}{
				"aaa",
				map[string]interface{}{"address": "zzz", "primary": true},
			},
		}

		normalized := NormalizeExternalAddresses(raw, log)

		assert.True(t, normalized[0].Primary)
		assert.Equal(t, "zzz", normalized[0].Value)
	})

	t.Run("Legacy Field Path Used When Modern Path Absent", func(t *testing.T) {
		raw := map[string]interface{}{
			"legacy": map[string]interface{}{
				"identifiers": []interface{}{"legacy-1"},
			},
		}

		normalized := NormalizeExternalAddresses(raw, log)

		assert.Len(t, normalized, 1)
		assert.Equal(t, "legacy-1", normalized[0].Value)
	})

	t.Run("First Field Path Wins", func(t *testing.T) {
		raw := map[string]interface{}{
			"externalIdentifiers": []interface{}{"modern-1"},
			"legacy": map[string]interface{}{
				"identifiers": []interface{}{"legacy-1"},
			},
		}

		normalized := NormalizeExternalAddresses(raw, log)

		assert.Len(t, normalized, 1)
		assert.Equal(t, "modern-1", normalized[0].Value)
	})

	t.Run("Unrecognized Elements Dropped Silently", func(t *testing.T) {
		raw := map[string]interface{}{
			"externalIdentifiers": []interface{}{
				"", nil, 42.0, map[string]interface{}{},
				"kept",
			},
		}

		normalized := NormalizeExternalAddresses(raw, log)

		assert.Len(t, normalized, 1)
		assert.Equal(t, "kept", normalized[0].Value)
	})

	t.Run("Opaque Objects Serialized As Value And Label", func(t *testing.T) {
		raw := map[string]interface{}{
			"externalIdentifiers": []interface{}{
				map[string]interface{}{"scheme": "dhis2"},
			},
		}

		normalized := NormalizeExternalAddresses(raw, log)

		assert.Len(t, normalized, 1)
		assert.Equal(t, normalized[0].Value, normalized[0].Label)
		assert.Contains(t, normalized[0].Value, "dhis2")
		assert.False(t, normalized[0].Primary)
	})

	t.Run("Absent Field Yields Empty List", func(t *testing.T) {
		assert.Empty(t, NormalizeExternalAddresses(map[string]interface{}{"name": "x"}, log))
		assert.Empty(t, NormalizeExternalAddresses(nil, log))
	})

	t.Run("Idempotent Over Normalized Output", func(t *testing.T) {
		raw := map[string]interface{}{
			"externalIdentifiers": []interface{}{
				map[string]interface{}{"address": "alpha", "primary": true},
				"beta",
			},
		}
		first := NormalizeExternalAddresses(raw, log)

		// feed the normalized shape back through
		asElements := make([]interface{}, 0, len(first))
		for _, addr := range first {
			asElements = append(asElements, map[string]interface{}{
				"value":   addr.Value,
				"label":   addr.Label,
				"primary": addr.Primary,
			})
		}
		second := NormalizeExternalAddresses(map[string]interface{}{"externalIdentifiers": asElements}, log)

		assert.Equal(t, first, second, "normalizing an already-normalized list must be a no-op")
	})
}
