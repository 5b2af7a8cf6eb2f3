package testutils

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/getidex/idex/pkg/models"
)

// TestEntities resembles the flattened provider output for a Sri Lankan
// identity card. The trailing entries stand in for form fields, which are
// appended after the entity list and therefore win on conflicts.
var TestEntities = []models.RawEntity{
	{
		Type: "full_name",
		Text: "Wasana Kumari Perera",
	},
	{
		Type: "nic_number",
		Text: "955691234V",
	},
	{
		Type: "permanent_address",
		Text: "No. 12, Temple Road, Kandy",
	},
	{
		Type: "date_of_birth",
		Text: "20.05.1995",
	},
	{
		Type: "blood_group",
		Text: "B+",
	},
	{
		Type: "Full Name",
		Text: "W. K. Perera",
	},
}

// RandomNIC generates a syntactically valid national identity number in
// the current 12 digit layout. The day code encodes the requested gender.
func RandomNIC(female bool) string {
	day := gofakeit.Number(1, 366)
	if female {
		day += 500
	}
	year := gofakeit.Number(1950, 2005)
	serial := gofakeit.Number(10000, 99999)
	return fmt.Sprintf("%04d%03d%05d", year, day, serial)
}
