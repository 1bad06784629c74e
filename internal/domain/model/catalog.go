package model

// CharacterSeries groups adoptable characters.
type CharacterSeries struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// Character is a pre-designed character available for adoption.
type Character struct {
	ID          string   `json:"id"`
	SeriesID    string   `json:"seriesId"`
	Name        string   `json:"name"`
	Species     string   `json:"species"`
	Price       string   `json:"price"`
	ImageURL    string   `json:"imageUrl"`
	ImageURL1   string   `json:"imageUrl1"`
	ImageURL2   string   `json:"imageUrl2,omitempty"`
	ImageURL3   string   `json:"imageUrl3,omitempty"`
	ImageURL4   string   `json:"imageUrl4,omitempty"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
	Applicants  int      `json:"applicants"`
}

// CommissionStatus describes whether a commission option accepts applications.
type CommissionStatus string

const (
	CommissionStatusOpen     CommissionStatus = "open"
	CommissionStatusClosed   CommissionStatus = "closed"
	CommissionStatusUpcoming CommissionStatus = "upcoming"
)

// CommissionOption is a category of custom work.
type CommissionOption struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Category    string           `json:"category"`
	Price       string           `json:"price"`
	Status      CommissionStatus `json:"status"`
	ImageURL    string           `json:"imageUrl"`
	Tags        []string         `json:"tags"`
	Description string           `json:"description"`
}

// CommissionStyle is a priced variant of a commission option.
type CommissionStyle struct {
	ID                 string   `json:"id"`
	CommissionOptionID string   `json:"commissionOptionId"`
	Name               string   `json:"name"`
	Price              string   `json:"price"`
	Description        string   `json:"description"`
	ImageURL           string   `json:"imageUrl"`
	Tags               []string `json:"tags"`
}
