package ports

// URLOpener opens web pages in the user's browser
type URLOpener interface {
	Open(url string) error
}
