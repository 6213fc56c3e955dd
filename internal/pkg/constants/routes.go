package constants

// Static route constants
const (
	HomeRoute        = "/"
	StoriesRoute     = "/stories"
	NewsletterRoute  = "/newsletter"
	ImpressumRoute   = "/impressum"
	DatenschutzRoute = "/datenschutz"
	AdminRoute       = "/admin"
	LoginRoute       = "/login"
)
