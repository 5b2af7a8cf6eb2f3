package normalizer

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"

	"github.com/getidex/idex/pkg/models"
	"github.com/getidex/idex/pkg/testutils"
)

func TestGenderFromNIC(t *testing.T) {
	testCases := []struct {
		name     string
		nic      string
		expected models.Gender
	}{
		{
			name:     "legacy male",
			nic:      "991234567V",
			expected: models.GenderMale,
		},
		{
			name:     "legacy male X suffix",
			nic:      "991234567X",
			expected: models.GenderMale,
		},
		{
			name:     "legacy female",
			nic:      "995634567V",
			expected: models.GenderFemale,
		},
		{
			name:     "legacy female at boundary day code 500",
			nic:      "995001234V",
			expected: models.GenderFemale,
		},
		{
			name:     "legacy male just below boundary",
			nic:      "994991234V",
			expected: models.GenderMale,
		},
		{
			name:     "current format female",
			nic:      "200350712345",
			expected: models.GenderFemale,
		},
		{
			name:     "current format male",
			nic:      "200312312345",
			expected: models.GenderMale,
		},
		{
			name:     "lowercase and separators cleaned before matching",
			nic:      "99-1234 567v",
			expected: models.GenderMale,
		},
		{
			name:     "non-numeric day code",
			nic:      "99A234567V",
			expected: models.GenderUnknown,
		},
		{
			name:     "current format with letter",
			nic:      "2003507A2345",
			expected: models.GenderUnknown,
		},
		{
			name:     "too short",
			nic:      "ABC",
			expected: models.GenderUnknown,
		},
		{
			name:     "eleven digits matches neither shape",
			nic:      "20035071234",
			expected: models.GenderUnknown,
		},
		{
			name:     "ten characters without V or X suffix",
			nic:      "9912345678",
			expected: models.GenderUnknown,
		},
		{
			name:     "empty",
			nic:      "",
			expected: models.GenderUnknown,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, GenderFromNIC(tc.nic))
		})
	}
}

func TestGenderFromNICGenerated(t *testing.T) {
	gofakeit.Seed(7)

	for i := 0; i < 50; i++ {
		male := testutils.RandomNIC(false)
		assert.Equal(t, models.GenderMale, GenderFromNIC(male), "nic %s", male)

		female := testutils.RandomNIC(true)
		assert.Equal(t, models.GenderFemale, GenderFromNIC(female), "nic %s", female)
	}
}
