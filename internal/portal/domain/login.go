package domain

// LoginResult is the outcome of a credential check. Together with the error
// return it forms a three-variant result: success, second-factor-required
// (valid password, missing TOTP code), or failure (non-nil error).
type LoginResult struct {
	// SecondFactorRequired is set when credentials were valid but a TOTP code
	// must be resubmitted along with the full credentials. No session is
	// established and no intermediate state is persisted server-side.
	SecondFactorRequired bool

	Admin AdminProfile

	// SessionToken is the opaque cookie value for the established session.
	// Empty unless the login fully succeeded.
	SessionToken string
	Session      Session
}

// SecondFactorEnrollment is returned when an administrator enables TOTP.
type SecondFactorEnrollment struct {
	Secret     string `json:"secret"`
	OTPAuthURL string `json:"otpauthUrl"`
}
