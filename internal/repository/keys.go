package repository

// Persisted storage keys. The key names are part of the stored-data
// contract and must not change between releases.
const (
	keyProducts = "products"
	keyCart     = "cart"
	keyReviews  = "reviews_all"
	keyTickets  = "messages_support"
	keyTheme    = "theme"
)
