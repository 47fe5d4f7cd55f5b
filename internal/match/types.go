package match

// Key is the 5-tuple of normalized comparison fields derived from one
// standardized investor row. An empty string means the field is absent;
// absent fields never count towards a match.
type Key struct {
	Phone   string
	DOB     string
	Address string
	TaxID   string
	Email   string
}

// Field tags used to label blocking keys and audit output.
const (
	FieldPhone   = "PH"
	FieldDOB     = "DOB"
	FieldAddress = "ADDR"
	FieldTaxID   = "TAX"
	FieldEmail   = "EMAIL"
)

// fields returns the key as (tag, value) pairs in fixed order.
func (k Key) fields() [5]taggedValue {
	return [5]taggedValue{
		{FieldPhone, k.Phone},
		{FieldDOB, k.DOB},
		{FieldAddress, k.Address},
		{FieldTaxID, k.TaxID},
		{FieldEmail, k.Email},
	}
}

type taggedValue struct {
	tag   string
	value string
}

// PresentCount returns how many of the 5 comparison fields are present.
func (k Key) PresentCount() int {
	n := 0
	for _, f := range k.fields() {
		if f.value != "" {
			n++
		}
	}
	return n
}

// Policy is the duplicate-detection rule configuration. It is passed in
// explicitly so alternate matching policies can be swapped without touching
// cluster or merge logic.
type Policy struct {
	// MinAgreements is the number of comparison fields that must be present
	// and equal on both sides for two rows to be judged the same investor.
	MinAgreements int
}

// DefaultPolicy returns the 3-of-5 rule used by the investor migration.
func DefaultPolicy() Policy {
	return Policy{MinAgreements: 3}
}
