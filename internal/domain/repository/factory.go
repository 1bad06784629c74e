package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Orders() OrderRepository
	Characters() CharacterRepository
	Series() SeriesRepository
	CommissionOptions() CommissionOptionRepository
	CommissionStyles() CommissionStyleRepository
	Content() ContentRepository
}
