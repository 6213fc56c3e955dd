package viewmodel

// OpenGraph holds the meta tags rendered into the page head.
type OpenGraph struct {
	Title       string
	Description string
	URL         string
}
