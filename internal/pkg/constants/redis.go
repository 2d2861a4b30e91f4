package constants

// Redis key formats
const (
	KeyDentistProfile = "dentist:profile:%s" // dentist:profile:{slug}
	KeyRateLimit      = "rate:%s:%s"         // rate:{resource}:{identifier}
)
