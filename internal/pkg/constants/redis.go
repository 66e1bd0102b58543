package constants

// Redis key formats
const (
	// Admin sessions
	KeyAdminSession = "admin:session:%s" // Format: admin:session:{jti}

	// Rate limiting
	KeyRateLimitIP = "rate:ip" // Prefix; full key is rate:ip:{route}:{ip}
)
