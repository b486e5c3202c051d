package services

// CredentialSvc hashes and verifies pins and passwords. Secrets are never
// stored or compared in clear form.
type CredentialSvc interface {
	// Hash returns a one-way digest of secret.
	Hash(secret string) (string, error)

	// Verify reports whether candidate hashes to digest. A mismatch is a normal
	// outcome, not an error.
	Verify(digest, candidate string) bool
}

// IDGeneratorSvc issues identifiers for banks, accounts, employees and transactions.
type IDGeneratorSvc interface {
	// GenID returns a unique id prefixed with letters taken from seed.
	GenID(seed string) string

	// GenTransactionID returns a unique id for an entry against the given account.
	GenTransactionID(bankID, accountID string) string
}
