package domain

import "time"

// User represents a durable user account. PasswordHash never leaves the
// service layer; callers see SessionUser instead.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Roles a user can hold.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// SessionUser is the public identity stored against a session token.
type SessionUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// SessionView returns the public identity for a user.
func (u *User) SessionView() *SessionUser {
	return &SessionUser{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
	}
}

// AuthResult represents the outcome of a successful registration or login.
type AuthResult struct {
	User  *SessionUser `json:"user"`
	Token string       `json:"token"`
}

// OTPRecord is a one-time password-reset code. At most one live record
// exists per email; a new request overwrites the old record.
type OTPRecord struct {
	Code      string
	ExpiresAt time.Time
}

// Expired reports whether the record is past its expiry at the given instant.
func (r *OTPRecord) Expired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}

// CityTraffic holds congestion metrics for a city.
type CityTraffic struct {
	CongestionIndex      int `json:"congestionIndex"`
	AvgCommuteMinutes    int `json:"avgCommuteMinutes"`
	PublicTransportScore int `json:"publicTransportScore"`
}

// CityQualityOfLife holds livability indices for a city.
type CityQualityOfLife struct {
	SafetyIndex        int `json:"safetyIndex"`
	QualityOfLifeIndex int `json:"qualityOfLifeIndex"`
}

// CityClimate describes a city's climate profile.
type CityClimate struct {
	Type     string `json:"type"`
	AvgHighC int    `json:"avgHighC"`
	AvgLowC  int    `json:"avgLowC"`
}

// City is a city profile: the persisted base record plus enrichment data
// keyed off the city ID.
type City struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Country       string            `json:"country"`
	Population    int64             `json:"population"`
	Description   string            `json:"description"`
	Landmarks     []string          `json:"landmarks"`
	CountryCode   string            `json:"countryCode"`
	Region        string            `json:"region"`
	Timezone      string            `json:"timezone"`
	AreaKm2       float64           `json:"areaKm2"`
	DensityPerKm2 int               `json:"densityPerKm2"`
	Traffic       CityTraffic       `json:"traffic"`
	QualityOfLife CityQualityOfLife `json:"qualityOfLife"`
	Climate       CityClimate       `json:"climate"`
	ImageURL      string            `json:"imageUrl"`
	Tagline       string            `json:"tagline"`
	Keywords      []string          `json:"keywords"`
}

// BlogPost is a published article. Only admins create posts.
type BlogPost struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	Content    string    `json:"content"`
	AuthorID   string    `json:"authorId"`
	AuthorName string    `json:"authorName"`
	CreatedAt  time.Time `json:"createdAt"`
}
