package models

// Roles a session can carry.
const (
	RoleUser     = "user"
	RoleProvider = "provider"
	RoleAdmin    = "admin"
)

// UserSession is the identity stored under the client's "user" key.
type UserSession struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UserRecord is the directory entry of an email that completed OTP verification.
type UserRecord struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role"`
}

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Preferences are the per-client UI settings.
type Preferences struct {
	Theme               string `json:"theme"`
	OnboardingCompleted bool   `json:"onboardingCompleted"`
}

// PreferencesUpdate carries optional changes; nil fields are left untouched.
type PreferencesUpdate struct {
	Theme               *string `json:"theme" binding:"omitempty,oneof=light dark"`
	OnboardingCompleted *bool   `json:"onboardingCompleted"`
}

type FavoriteInput struct {
	ServiceID string `json:"serviceId" binding:"required"`
}

type ComparisonInput struct {
	ServiceID string `json:"serviceId" binding:"required"`
}

type StatusInput struct {
	Status string `json:"status" binding:"required"`
}
