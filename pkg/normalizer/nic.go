package normalizer

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/getidex/idex/pkg/models"
)

// Day codes at or above this value indicate a female holder.
const femaleDayCodeOffset = 500

// GenderFromNIC derives gender from the day code embedded in a national
// identity number. Legacy numbers are 10 characters ending in V or X
// with the day code at positions 3-5; current numbers are 12 digits with
// the day code at positions 5-7. Any other shape, or a non-numeric day
// code, yields GenderUnknown.
func GenderFromNIC(nic string) models.Gender {
	cleaned := cleanNIC(nic)

	var dayCode string
	switch {
	case len(cleaned) == 10 && (cleaned[9] == 'V' || cleaned[9] == 'X'):
		dayCode = cleaned[2:5]
	case len(cleaned) == 12 && isDigits(cleaned):
		dayCode = cleaned[4:7]
	default:
		return models.GenderUnknown
	}

	code, err := strconv.Atoi(dayCode)
	if err != nil {
		return models.GenderUnknown
	}
	if code >= femaleDayCodeOffset {
		return models.GenderFemale
	}
	return models.GenderMale
}

// cleanNIC strips all non-alphanumeric characters and uppercases the rest.
func cleanNIC(nic string) string {
	var b strings.Builder
	b.Grow(len(nic))
	for _, r := range nic {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
