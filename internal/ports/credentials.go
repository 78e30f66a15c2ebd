package ports

// CredentialSource looks up secrets by reference name
type CredentialSource interface {
	// Lookup returns the secret stored under name, and whether it was set and non-empty
	Lookup(name string) (string, bool)
}
