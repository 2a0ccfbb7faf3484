package availability

import (
	"testing"
	"time"

	"roombook/models"

	"github.com/stretchr/testify/assert"
)

func TestKeywordWeekdayPolicy(t *testing.T) {
	policy := KeywordWeekdayPolicy(
		[]string{"pengawas sd", "elementary school supervisory"},
		time.Monday,
	)

	monday := time.Date(2026, time.January, 19, 0, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)

	supervisory := models.Room{Name: "Ruang Pengawas SD Lantai 2"}
	ordinary := models.Room{Name: "Ruang Rapat Utama"}

	assert.True(t, policy(supervisory, monday))
	assert.False(t, policy(supervisory, tuesday))
	assert.False(t, policy(ordinary, monday))

	// Matching is case-insensitive.
	upper := models.Room{Name: "ELEMENTARY SCHOOL SUPERVISORY ROOM"}
	assert.True(t, policy(upper, monday))
}

func TestAllowAll(t *testing.T) {
	monday := time.Date(2026, time.January, 19, 0, 0, 0, 0, time.UTC)
	assert.False(t, AllowAll(models.Room{Name: "anything"}, monday))
}
