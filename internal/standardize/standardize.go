package standardize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/investor-registry/internal/config"
	"github.com/investor-registry/internal/normalize"
	"github.com/investor-registry/internal/table"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	nonAlnumRe   = regexp.MustCompile(`[^a-z0-9]+`)
	poBoxRe      = regexp.MustCompile(`(?i)\bP\.?\s*O\.?\s*BOX\b`)

	titleCaser = cases.Title(language.English)
)

// Clean trims and collapses repeated whitespace.
func Clean(s string) string {
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(s), " ")
}

// Title cleans and title-cases each word.
func Title(s string) string {
	cleaned := Clean(s)
	if cleaned == "" {
		return ""
	}
	return titleCaser.String(strings.ToLower(cleaned))
}

// CanonColumn canonicalizes a raw column header for mapping: lowercase,
// punctuation to spaces, collapsed.
func CanonColumn(c string) string {
	s := nonAlnumRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(c)), " ")
	return Clean(s)
}

// Digits extracts digits only; used for tax identifiers.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range Clean(s) {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Phone normalizes a phone number to national digits: strip formatting,
// drop the AU/NZ dialing prefix, drop the leading trunk zero.
func Phone(s string) string {
	p := Digits(s)
	for _, prefix := range PhonePrefixes {
		if strings.HasPrefix(p, prefix) {
			p = p[len(prefix):]
			break
		}
	}
	if strings.HasPrefix(p, "0") && len(p) >= 9 {
		p = p[1:]
	}
	return p
}

// Percent normalizes a percentage: accepts "0.175", "17.5%" and "17.50",
// scales fractions in [0,1] to percent and formats with up to two decimals.
// Unparseable input degrades to "".
func Percent(s string) string {
	cleaned := strings.ReplaceAll(strings.ReplaceAll(Clean(s), " ", ""), "%", "")
	if cleaned == "" {
		return ""
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return ""
	}
	if v >= 0 && v <= 1 {
		v *= 100
	}
	out := strconv.FormatFloat(v, 'f', PercentDecimals, 64)
	out = strings.TrimRight(out, "0")
	out = strings.TrimRight(out, ".")
	return out + "%"
}

// Country resolves the canonical country name: normalize an explicit value
// through the alias map, otherwise infer from the city.
func Country(countryVal, cityVal string) string {
	c := Clean(countryVal)
	if c != "" {
		if mapped, ok := CountryAliases[strings.ToUpper(c)]; ok {
			return mapped
		}
		return Title(c)
	}
	return CityToCountry[strings.ToLower(Clean(cityVal))]
}

// Address standardizes an address line: canonical PO BOX, expanded street
// abbreviations, title case for words without digits.
func Address(s string) string {
	t := Clean(s)
	if t == "" {
		return ""
	}
	t = expandStreetAbbrev(t)

	words := strings.Fields(t)
	for i, w := range words {
		if !strings.ContainsAny(w, "0123456789") {
			words[i] = titleCaser.String(strings.ToLower(w))
		}
	}
	// Canonicalize last so title casing cannot undo it.
	return poBoxRe.ReplaceAllString(strings.Join(words, " "), "PO BOX")
}

var streetAbbrevRe = func() *regexp.Regexp {
	keys := make([]string, 0, len(StreetAbbrev))
	for k := range StreetAbbrev {
		keys = append(keys, regexp.QuoteMeta(k))
	}
	return regexp.MustCompile(`(?i)\b(` + strings.Join(keys, "|") + `)\b\.?`)
}()

func expandStreetAbbrev(t string) string {
	return streetAbbrevRe.ReplaceAllStringFunc(t, func(m string) string {
		key := strings.ToLower(strings.TrimSuffix(m, "."))
		if full, ok := StreetAbbrev[key]; ok {
			return full
		}
		return m
	})
}

// RenameColumns renames raw columns to the standard names using the
// config-driven canonical mapping. Unmapped columns keep their trimmed name.
func RenameColumns(raw *table.Table, columnMap map[string]string) *table.Table {
	renames := make(map[string]string, len(raw.Columns))
	for _, c := range raw.Columns {
		if std, ok := columnMap[CanonColumn(c)]; ok {
			renames[c] = std
		} else {
			renames[c] = strings.TrimSpace(c)
		}
	}

	out := table.New(nil)
	for _, c := range raw.Columns {
		out.Columns = append(out.Columns, renames[c])
	}
	for _, r := range raw.Rows {
		row := make(table.Row, len(r))
		for c, v := range r {
			row[renames[c]] = v
		}
		out.Append(row)
	}
	return out
}

// Standardize produces the clean standardized investors table from the raw
// snapshot: normalized names, email, phone, dates, inferred country and
// dialing code, formatted address and percentages.
func Standardize(raw *table.Table, cfg *config.Config) (*table.Table, error) {
	renamed := RenameColumns(raw, cfg.Columns)

	rows := renamed.Rows
	if cfg.Drop.Strategy == "last_row" && len(rows) > 0 {
		rows = rows[:len(rows)-1]
	}

	out := table.New(OutColumns)
	for _, r := range rows {
		city := Title(r.Get("City"))
		country := Country(r.Get("Country"), city)

		out.Append(table.Row{
			"Account ID":                "",
			"First Name":                Title(r.Get("First Name")),
			"Last Name":                 Title(r.Get("Last Name")),
			"Email":                     strings.ToLower(Clean(r.Get("Email"))),
			"Country Code":              CountryToDialCode[country],
			"Phone Number":              Phone(r.Get("Phone Number")),
			"Date of Birth":             normalize.DateKey(r.Get("Date of Birth")),
			"Address Line":              Address(r.Get("Address Line")),
			"Suburb":                    Clean(r.Get("Suburb")),
			"Postcode":                  Clean(r.Get("Postcode")),
			"City":                      city,
			"Country":                   country,
			"PIR %":                     Percent(r.Get("PIR %")),
			"WHT %":                     Percent(r.Get("WHT %")),
			"Tax Identification Number": Digits(r.Get("Tax Identification Number")),
		})
	}

	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("standardized table invalid: %w", err)
	}
	return out, nil
}
