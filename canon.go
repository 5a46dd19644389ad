package fsm

import "fmt"

// canonicalKey computes a stable, content-based hashing/equality key for an
// opaque uid or label value. StateSet values (the uid shape subset
// construction produces) are asked for their own canonical key rather than
// being descended into via reflection, per the "subset-of-subset uids" design
// note: equality and hashing always go through the stored payload's own
// notion of identity.
func canonicalKey(v any) string {
	if ss, ok := v.(StateSet); ok {
		return ss.key()
	}
	return fmt.Sprintf("%T\x00%v", v, v)
}

// lessValue orders two opaque values. Native ordering is used when both
// values share one of the common orderable kinds; otherwise (spec.md §3)
// ordering falls back to string form.
func lessValue(a, b any) bool {
	switch av := a.(type) {
	case int:
		if bv, ok := b.(int); ok {
			return av < bv
		}
	case int32:
		if bv, ok := b.(int32); ok {
			return av < bv
		}
	case int64:
		if bv, ok := b.(int64); ok {
			return av < bv
		}
	case uint:
		if bv, ok := b.(uint); ok {
			return av < bv
		}
	case float64:
		if bv, ok := b.(float64); ok {
			return av < bv
		}
	case string:
		if bv, ok := b.(string); ok {
			return av < bv
		}
	}
	return fmt.Sprint(a) < fmt.Sprint(b)
}
