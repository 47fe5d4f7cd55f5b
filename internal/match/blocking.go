package match

import "strings"

// BlockKeys generates one blocking key per combination of MinAgreements
// present comparison fields. Two rows that would match under the exact rule
// necessarily share all values on some agreeing combination of that size,
// so they land in at least one common block: recall is preserved while the
// pair scan drops from all-pairs to within-block.
func (m *Matcher) BlockKeys(k Key) []string {
	var present []taggedValue
	for _, f := range k.fields() {
		if f.value != "" {
			present = append(present, f)
		}
	}

	size := m.policy.MinAgreements
	if len(present) < size {
		return nil
	}

	var keys []string
	combine(present, size, nil, &keys)
	return keys
}

// combine walks every size-length combination of the present fields and
// appends its serialized blocking key.
func combine(fields []taggedValue, size int, picked []taggedValue, out *[]string) {
	if len(picked) == size {
		parts := make([]string, 0, size*2)
		for _, f := range picked {
			parts = append(parts, f.tag, f.value)
		}
		*out = append(*out, strings.Join(parts, "\x1f"))
		return
	}
	for i, f := range fields {
		if len(fields)-i < size-len(picked) {
			break
		}
		combine(fields[i+1:], size, append(picked, f), out)
	}
}
