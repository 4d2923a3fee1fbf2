package privatecaptcha

// Service domains for the Private Captcha API.
const (
	// GlobalDomain is the default domain of the Private Captcha API.
	GlobalDomain = "api.privatecaptcha.com"

	// EUDomain is the EU-isolated domain of the Private Captcha API. Pass it
	// to WithDomain when your property is provisioned in the EU environment.
	EUDomain = "api.eu.privatecaptcha.com"
)

// Version is the library version.
const Version = "0.0.5"

// userAgent identifies this library on every verification request.
const userAgent = "private-captcha-go/" + Version
