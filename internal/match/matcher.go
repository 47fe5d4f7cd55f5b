package match

import (
	"github.com/investor-registry/internal/normalize"
	"github.com/investor-registry/internal/table"
)

// Standardized column names consumed by the matcher.
const (
	ColPhone   = "Phone Number"
	ColDOB     = "Date of Birth"
	ColAddress = "Address Line"
	ColTaxID   = "Tax Identification Number"
	ColEmail   = "Email"
)

// KeyFor derives the comparison key from a standardized row. Values run
// through the key normalizers exactly once here; nothing downstream
// re-normalizes.
func KeyFor(row table.Row) Key {
	return Key{
		Phone:   normalize.PhoneKey(row.Get(ColPhone)),
		DOB:     normalize.DateKey(row.Get(ColDOB)),
		Address: normalize.AddressKey(row.Get(ColAddress)),
		TaxID:   normalize.TaxKey(row.Get(ColTaxID)),
		Email:   normalize.EmailKey(row.Get(ColEmail)),
	}
}

// Matcher decides whether two rows describe the same investor.
type Matcher struct {
	policy Policy
}

// NewMatcher creates a matcher with the given policy.
func NewMatcher(policy Policy) *Matcher {
	if policy.MinAgreements < 1 {
		policy = DefaultPolicy()
	}
	return &Matcher{policy: policy}
}

// Match reports whether a and b agree on at least MinAgreements comparison
// fields, counting only positions present on both sides. Equality is exact;
// a field absent on either side contributes nothing, so a pair with fewer
// than MinAgreements present fields on either side can never match. The
// relation is symmetric and deliberately not transitive; transitivity is
// imposed later by the cluster builder.
func (m *Matcher) Match(a, b Key) bool {
	af, bf := a.fields(), b.fields()
	agreements := 0
	for i := range af {
		if af[i].value != "" && af[i].value == bf[i].value {
			agreements++
		}
	}
	return agreements >= m.policy.MinAgreements
}
