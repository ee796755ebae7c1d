package watchsdk

import "time"

// Identity is the user identity as served by GET /auth/userinfo.
type Identity struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Username string `json:"username,omitempty"`
}

// DisplayName resolves the name to show: name, then username, then email.
func (i Identity) DisplayName() string {
	if i.Name != "" {
		return i.Name
	}
	if i.Username != "" {
		return i.Username
	}
	return i.Email
}

// RefreshRequest is the body of POST /auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// RefreshResponse is the success body of POST /auth/refresh. RefreshToken is
// only set when the provider rotated it.
type RefreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresIn    int    `json:"expires_in,omitempty"`
}

// Watch mirrors the catalogue records served by GET /watches.
type Watch struct {
	ID                 string       `json:"id"`
	Brand              string       `json:"brand"`
	Model              string       `json:"model"`
	Reference          string       `json:"reference"`
	ImageURL           string       `json:"imageUrl,omitempty"`
	CreatedAt          time.Time    `json:"createdAt"`
	Prices             []PricePoint `json:"prices"`
	CurrentPrice       float64      `json:"currentPrice"`
	PriceChange        float64      `json:"priceChange"`
	PriceChangePercent float64      `json:"priceChangePercent"`
}

// PricePoint is one market price observation.
type PricePoint struct {
	ID      string    `json:"id"`
	WatchID string    `json:"watchId"`
	Price   float64   `json:"price"`
	Source  string    `json:"source"`
	Date    time.Time `json:"date"`
}

// UserWatch is one entry in the caller's collection.
type UserWatch struct {
	ID            string     `json:"id"`
	UserID        string     `json:"userId"`
	WatchID       string     `json:"watchId"`
	PurchasePrice *float64   `json:"purchasePrice"`
	PurchaseDate  *time.Time `json:"purchaseDate"`
	CreatedAt     time.Time  `json:"createdAt"`
	Watch         *Watch     `json:"watch,omitempty"`
}

// AddUserWatchRequest is the body of POST /user-watches. PurchasePrice and
// PurchaseDate are the raw form strings and may be empty.
type AddUserWatchRequest struct {
	WatchID       string `json:"watchId"`
	PurchasePrice string `json:"purchasePrice,omitempty"`
	PurchaseDate  string `json:"purchaseDate,omitempty"`
}

// HealthResponse is served by the health endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
}
