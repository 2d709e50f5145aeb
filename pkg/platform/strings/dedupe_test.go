package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeAndTrim(t *testing.T) {
	t.Run("preserves first-seen order", func(t *testing.T) {
		got := DedupeAndTrim([]string{"ohio_tddd_rules", "ny_pharmacy_license", "ohio_tddd_rules"})
		assert.Equal(t, []string{"ohio_tddd_rules", "ny_pharmacy_license"}, got)
	})

	t.Run("drops empties and trims", func(t *testing.T) {
		got := DedupeAndTrim([]string{"  dea_csf_requirements ", "", "  ", "dea_csf_requirements"})
		assert.Equal(t, []string{"dea_csf_requirements"}, got)
	})

	t.Run("nil in nil out", func(t *testing.T) {
		assert.Nil(t, DedupeAndTrim(nil))
	})
}

func TestDedupeAndTrimLower(t *testing.T) {
	got := DedupeAndTrimLower([]string{"  Controlled ", "substances", "controlled"})
	assert.Equal(t, []string{"controlled", "substances"}, got)
}
