package constant

const (
	DefaultUserRole = "user"
	AdminRole       = "admin"

	MinUsernameLength = 3
	MinPasswordLength = 6

	// DefaultMaxActiveRefreshTokens bounds how many refresh tokens a single
	// user may hold at once; the oldest is evicted first on overflow.
	DefaultMaxActiveRefreshTokens = 5

	// MaxLoginAttemptRecords bounds the in-memory login attempt log.
	MaxLoginAttemptRecords = 100
)
