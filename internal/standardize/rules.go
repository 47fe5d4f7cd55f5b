package standardize

// Business rules for the AU/NZ investor migration: alias maps, dialing
// prefixes and the fixed output layout of the standardized and merged
// tables.

// PhonePrefixes are country dialing prefixes stripped during phone
// standardization (AU, NZ).
var PhonePrefixes = []string{"61", "64"}

// PercentDecimals is the precision of formatted percentage values.
const PercentDecimals = 2

// CityToCountry infers a country from a known major city when the country
// column is blank.
var CityToCountry = map[string]string{
	// Australia
	"sydney":     "Australia",
	"melbourne":  "Australia",
	"brisbane":   "Australia",
	"perth":      "Australia",
	"adelaide":   "Australia",
	"canberra":   "Australia",
	"gold coast": "Australia",
	"newcastle":  "Australia",
	"hobart":     "Australia",
	"darwin":     "Australia",

	// New Zealand
	"auckland":     "New Zealand",
	"wellington":   "New Zealand",
	"christchurch": "New Zealand",
	"hamilton":     "New Zealand",
	"tauranga":     "New Zealand",
	"dunedin":      "New Zealand",
}

// CountryAliases maps raw country spellings, ISO codes and state
// abbreviations to the canonical country name.
var CountryAliases = map[string]string{
	"AU":          "Australia",
	"AUS":         "Australia",
	"AUSTRALIA":   "Australia",
	"TASMANIA":    "Australia",
	"NSW":         "Australia",
	"VIC":         "Australia",
	"QLD":         "Australia",
	"SA":          "Australia",
	"WA":          "Australia",
	"TAS":         "Australia",
	"ACT":         "Australia",
	"NT":          "Australia",
	"NZ":          "New Zealand",
	"NZL":         "New Zealand",
	"NEW ZEALAND": "New Zealand",
}

// CountryToDialCode maps a canonical country to its dialing code.
var CountryToDialCode = map[string]string{
	"Australia":   "61",
	"New Zealand": "64",
}

// StreetAbbrev expands common street-type abbreviations.
var StreetAbbrev = map[string]string{
	"st":  "Street",
	"rd":  "Road",
	"ave": "Avenue",
	"dr":  "Drive",
	"ln":  "Lane",
	"ct":  "Court",
}

// OutColumns is the merged output layout.
var OutColumns = []string{
	"Account ID", "First Name", "Last Name", "Email", "Country Code", "Phone Number",
	"Date of Birth", "Address Line", "Suburb", "Postcode", "City", "Country",
	"PIR %", "WHT %", "Tax Identification Number",
}

// MergeColumns are the schema fields carried through entity resolution,
// i.e. OutColumns without the assigned Account ID.
var MergeColumns = []string{
	"First Name", "Last Name", "Email", "Country Code", "Phone Number", "Date of Birth",
	"Address Line", "Suburb", "Postcode", "City", "Country",
	"PIR %", "WHT %", "Tax Identification Number",
}
