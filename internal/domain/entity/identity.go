package entity

// Identity is the verified user identity bound to a request by the auth
// middleware. It is the sole authorization scope for ledger operations;
// user ids arriving in a request body or path are never trusted on
// protected routes.
type Identity struct {
	UserID uint64
}
