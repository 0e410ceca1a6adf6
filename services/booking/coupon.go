package booking

import "strings"

// couponCode is the single promotional code the salon runs. Matching is
// case-insensitive; the same code may be applied across sessions
// indefinitely.
const couponCode = "GLOW20"

// discountSuffix annotates the stored service display name when the coupon
// was applied. The discount is a presentation fact, not a ledger amount.
const discountSuffix = " (20% OFF Applied)"

// couponMatches reports whether the entered code redeems the offer.
func couponMatches(code string) bool {
	return strings.ToUpper(code) == couponCode
}
