package model

// SiteContent holds storefront copy and operator settings.
type SiteContent struct {
	CommissionTitle           string  `json:"commissionTitle"`
	CommissionDescription     string  `json:"commissionDescription"`
	CommissionImageURL        string  `json:"commissionImageUrl"`
	AdoptionTitle             string  `json:"adoptionTitle"`
	AdoptionDescription       string  `json:"adoptionDescription"`
	AdoptionImageURL          string  `json:"adoptionImageUrl"`
	AdoptionPageDescription   string  `json:"adoptionPageDescription"`
	CommissionPageDescription string  `json:"commissionPageDescription"`
	AdminEmail                string  `json:"adminEmail"`
	HomeBackgroundImageURL    *string `json:"homeBackgroundImageUrl,omitempty"`
	SunriseHour               *int    `json:"sunriseHour,omitempty"`
	SunsetHour                *int    `json:"sunsetHour,omitempty"`
	ContactInfo               string  `json:"contactInfo,omitempty"`
}

// Contracts holds legal texts and the commission confirmation email template.
type Contracts struct {
	CommissionContract          string `json:"commissionContract"`
	AdoptionContract            string `json:"adoptionContract"`
	CommissionConfirmationEmail string `json:"commissionConfirmationEmail"`
}

// Theme is the colour scheme picked by time of day.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ThemeInfo is the colour scheme for the current local hour.
type ThemeInfo struct {
	Theme       Theme `json:"theme"`
	SunriseHour int   `json:"sunriseHour"`
	SunsetHour  int   `json:"sunsetHour"`
}
