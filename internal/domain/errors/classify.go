package errors

import "strings"

// keyword buckets, checked in order. The server reports business-rule failures
// as free-form messages; the client maps them to a small set of user-facing
// categories by substring match, keeping the server message as details.
var keywordBuckets = []struct {
	err      *BaseError
	keywords []string
}{
	{ErrInsufficientStock, []string{"stock", "estoque", "unavailable", "indisponível"}},
	{ErrCouponInvalid, []string{"coupon", "cupom"}},
	{ErrAddressRejected, []string{"address", "endereço", "delivery area", "área de entrega"}},
	{ErrCardRejected, []string{"card", "cartão", "declined", "recusado"}},
	{ErrCartEmpty, []string{"cart", "carrinho"}},
}

// ClassifyServerMessage maps a server-reported business-rule message to one of
// the predefined checkout error categories, preserving the original message as
// details. Unmatched messages fall back to ErrInternalError.
func ClassifyServerMessage(message string) *BaseError {
	lowered := strings.ToLower(message)
	for _, bucket := range keywordBuckets {
		for _, keyword := range bucket.keywords {
			if strings.Contains(lowered, keyword) {
				return bucket.err.WithDetails(message)
			}
		}
	}

	return ErrInternalError.WithDetails(message)
}
