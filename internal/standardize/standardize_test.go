package standardize

import (
	"testing"

	"github.com/investor-registry/internal/config"
	"github.com/investor-registry/internal/table"
)

func TestClean(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"  hello   world  ", "hello world"},
		{"\tone\n two ", "one two"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Clean(tt.input); got != tt.want {
			t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTitle(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"jOHN   smith", "John Smith"},
		{"auckland", "Auckland"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Title(tt.input); got != tt.want {
			t.Errorf("Title(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCanonColumn(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"First Name", "first name"},
		{"  E-mail_Address ", "e mail address"},
		{"PIR %", "pir"},
	}
	for _, tt := range tests {
		if got := CanonColumn(tt.input); got != tt.want {
			t.Errorf("CanonColumn(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"strips AU prefix", "+61 412 345 678", "412345678"},
		{"strips NZ prefix", "6421 123 4567", "211234567"},
		{"strips trunk zero on long numbers", "04123456789", "4123456789"},
		{"keeps short numbers intact", "0412", "0412"},
		{"formatting removed", "(04) 1234-5678", "412345678"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Phone(tt.input); got != tt.want {
				t.Errorf("Phone(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"0.175", "17.5%"},
		{"17.5%", "17.5%"},
		{"17.50", "17.5%"},
		{"28", "28%"},
		{"1", "100%"},
		{"0", "0%"},
		{"garbage", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Percent(tt.input); got != tt.want {
				t.Errorf("Percent(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCountry(t *testing.T) {
	tests := []struct {
		name    string
		country string
		city    string
		want    string
	}{
		{"alias code", "AU", "", "Australia"},
		{"alias state", "nsw", "", "Australia"},
		{"alias nz", "NZL", "", "New Zealand"},
		{"explicit unknown title-cased", "united kingdom", "", "United Kingdom"},
		{"inferred from city", "", "Sydney", "Australia"},
		{"inferred from nz city", "", "auckland", "New Zealand"},
		{"unknown city stays blank", "", "Smallville", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Country(tt.country, tt.city); got != tt.want {
				t.Errorf("Country(%q, %q) = %q, want %q", tt.country, tt.city, got, tt.want)
			}
		})
	}
}

func TestAddress(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"street abbreviation", "12 park ave", "12 Park Avenue"},
		{"abbreviation with dot", "4 Main St.", "4 Main Street"},
		{"po box", "p.o. box 123", "PO BOX 123"},
		{"words with digits untouched", "4/12 Park rd", "4/12 Park Road"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Address(tt.input); got != tt.want {
				t.Errorf("Address(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStandardize(t *testing.T) {
	raw := table.New([]string{"FIRST_NAME", "surname", "Email Address", "Phone", "DOB", "City", "Country", "totals"})
	raw.Append(table.Row{
		"FIRST_NAME":    "  jOHN ",
		"surname":       "SMITH",
		"Email Address": " John.Smith@Example.COM ",
		"Phone":         "+61 412 345 678",
		"DOB":           "02/03/1975",
		"City":          "sydney",
		"Country":       "",
	})
	raw.Append(table.Row{
		"FIRST_NAME": "totals row",
	})

	cfg := &config.Config{
		Columns: map[string]string{
			"first name":    "First Name",
			"surname":       "Last Name",
			"email address": "Email",
			"phone":         "Phone Number",
			"dob":           "Date of Birth",
			"city":          "City",
			"country":       "Country",
		},
		Drop: config.DropRules{Strategy: "last_row"},
	}

	std, err := Standardize(raw, cfg)
	if err != nil {
		t.Fatalf("Standardize() error = %v", err)
	}

	if std.Len() != 1 {
		t.Fatalf("got %d rows, want 1 (trailing totals row dropped)", std.Len())
	}

	row := std.Rows[0]
	checks := map[string]string{
		"First Name":    "John",
		"Last Name":     "Smith",
		"Email":         "john.smith@example.com",
		"Phone Number":  "412345678",
		"Date of Birth": "1975-03-02",
		"City":          "Sydney",
		"Country":       "Australia",
		"Country Code":  "61",
	}
	for col, want := range checks {
		if got := row.Get(col); got != want {
			t.Errorf("%s = %q, want %q", col, got, want)
		}
	}
}
