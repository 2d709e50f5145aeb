package decision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFamily(t *testing.T) {
	for _, raw := range []string{"csf_hospital", "csf_practitioner", "csf_facility", "ohio_tddd", "ny_pharmacy", "order"} {
		family, err := ParseFamily(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, Family(raw), family)
	}

	t.Run("trims whitespace", func(t *testing.T) {
		family, err := ParseFamily("  order  ")
		require.NoError(t, err)
		assert.Equal(t, FamilyOrder, family)
	})

	t.Run("rejects unknown families", func(t *testing.T) {
		_, err := ParseFamily("horoscope")
		assert.Error(t, err)
	})
}

func TestEngineFamily(t *testing.T) {
	assert.Equal(t, "csf", FamilyCSFHospital.EngineFamily())
	assert.Equal(t, "csf", FamilyCSFPractitioner.EngineFamily())
	assert.Equal(t, "csf", FamilyCSFFacility.EngineFamily())
	assert.Equal(t, "tddd", FamilyOhioTDDD.EngineFamily())
	assert.Equal(t, "pharmacy", FamilyNYPharmacy.EngineFamily())
	assert.Equal(t, "order", FamilyOrder.EngineFamily())
}

func TestParseStatus(t *testing.T) {
	for _, raw := range []string{"ok_to_ship", "needs_review", "blocked"} {
		status, err := ParseStatus(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, Status(raw), status)
	}
	_, err := ParseStatus("maybe")
	assert.Error(t, err)
}

func TestPayloadGet(t *testing.T) {
	p := Payload{"license_number": "  02-1234567  "}
	assert.Equal(t, "02-1234567", p.Get("license_number"))
	assert.Equal(t, "", p.Get("absent"))
}
