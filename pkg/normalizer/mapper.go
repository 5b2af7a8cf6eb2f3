package normalizer

import (
	"strings"
	"time"

	"github.com/getidex/idex/pkg/models"
)

// fieldKeywords maps record fields to the type keywords that claim them.
// Groups are consulted in order and the first group with a matching
// keyword wins, so a type like "identity_name" maps to the id field.
var fieldKeywords = []struct {
	field    string
	keywords []string
}{
	{"id", []string{"id", "nic", "number", "identity"}},
	{"name", []string{"name", "full_name"}},
	{"address", []string{"address", "residence"}},
	{"dob", []string{"dob", "birth", "date_of_birth"}},
	{"bg", []string{"bg", "blood", "blood_group"}},
}

// Normalize maps raw provider entities onto an IDRecord using the clock
// for age derivation. See NormalizeAt.
func Normalize(entities []models.RawEntity) models.IDRecord {
	return NormalizeAt(entities, time.Now())
}

// NormalizeAt produces an IDRecord from a flattened entity sequence.
// Each entity's type is matched case-insensitively against the keyword
// groups; later entities overwrite earlier ones for the same field, so
// the caller's flattening order decides precedence. Entities with no
// matching group or with empty text are dropped. Age is derived from the
// mapped dob and gender from the mapped id, when present. The function
// is pure: identical input always yields an identical record.
func NormalizeAt(entities []models.RawEntity, today time.Time) models.IDRecord {
	record := models.IDRecord{Gender: models.GenderUnknown}

	for _, entity := range entities {
		text := strings.TrimSpace(entity.Text)
		if text == "" {
			continue
		}
		switch matchField(entity.Type) {
		case "id":
			record.ID = text
		case "name":
			record.Name = text
		case "address":
			record.Address = text
		case "dob":
			record.DOB = text
		case "bg":
			record.BloodGroup = text
		}
	}

	if record.DOB != "" {
		if dob, ok := ParseDOB(record.DOB); ok {
			age := Age(dob, today)
			record.Age = &age
		}
	}
	if record.ID != "" {
		record.Gender = GenderFromNIC(record.ID)
	}

	return record
}

// matchField returns the record field claimed by an entity type, or ""
// when no keyword group matches.
func matchField(entityType string) string {
	key := strings.ToLower(entityType)
	for _, group := range fieldKeywords {
		for _, keyword := range group.keywords {
			if strings.Contains(key, keyword) {
				return group.field
			}
		}
	}
	return ""
}
