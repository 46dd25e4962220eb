package dashboard

import "strings"

// PaymentBuckets sums tax-inclusive totals into the four fixed reporting
// buckets.
type PaymentBuckets struct {
	Cash   float64 `json:"cash"`
	POS1   float64 `json:"pos1"`
	POS2   float64 `json:"pos2"`
	Others float64 `json:"others"`
}

// ClassifyPaymentMethod maps a stored payment method label onto a bucket.
// The policy is substring based and must stay exactly as the historical
// data expects: the exact label "Cash" is cash, any label containing
// "POS 1" is pos1, containing "POS 2" is pos2, everything else is others.
func ClassifyPaymentMethod(label string) string {
	switch {
	case label == "Cash":
		return "cash"
	case strings.Contains(label, "POS 1"):
		return "pos1"
	case strings.Contains(label, "POS 2"):
		return "pos2"
	default:
		return "others"
	}
}

// Add accumulates a total into the bucket the label classifies to.
func (b *PaymentBuckets) Add(label string, total float64) {
	switch ClassifyPaymentMethod(label) {
	case "cash":
		b.Cash += total
	case "pos1":
		b.POS1 += total
	case "pos2":
		b.POS2 += total
	default:
		b.Others += total
	}
}
