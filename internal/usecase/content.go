package usecase

import (
	"context"
	"fmt"
	"time"

	domainErrors "github.com/polkiloo/suitopia/internal/domain/errors"
	"github.com/polkiloo/suitopia/internal/domain/model"
	"github.com/polkiloo/suitopia/internal/domain/repository"
)

const (
	defaultSunriseHour = 6
	defaultSunsetHour  = 18
)

// ContentUseCase manages the site content and contracts singletons.
type ContentUseCase struct {
	content  repository.ContentRepository
	location *time.Location
	now      func() time.Time
}

// NewContentUseCase constructs ContentUseCase. Theme hours are evaluated in loc.
func NewContentUseCase(content repository.ContentRepository, loc *time.Location) *ContentUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &ContentUseCase{content: content, location: loc, now: time.Now}
}

// SiteContent returns the stored site content, empty when never saved.
func (u *ContentUseCase) SiteContent(ctx context.Context) (*model.SiteContent, error) {
	return u.content.SiteContent(ctx)
}

// SaveSiteContent replaces the site content.
func (u *ContentUseCase) SaveSiteContent(ctx context.Context, content model.SiteContent) (*model.SiteContent, error) {
	if err := validateHour("sunriseHour", content.SunriseHour); err != nil {
		return nil, err
	}
	if err := validateHour("sunsetHour", content.SunsetHour); err != nil {
		return nil, err
	}
	if err := u.content.SaveSiteContent(ctx, content); err != nil {
		return nil, err
	}
	return &content, nil
}

// Contracts returns the stored contracts, empty when never saved.
func (u *ContentUseCase) Contracts(ctx context.Context) (*model.Contracts, error) {
	return u.content.Contracts(ctx)
}

// SaveContracts replaces the contracts.
func (u *ContentUseCase) SaveContracts(ctx context.Context, contracts model.Contracts) (*model.Contracts, error) {
	if err := u.content.SaveContracts(ctx, contracts); err != nil {
		return nil, err
	}
	return &contracts, nil
}

// Theme picks light between sunrise (inclusive) and sunset (exclusive).
func (u *ContentUseCase) Theme(ctx context.Context) (*model.ThemeInfo, error) {
	content, err := u.content.SiteContent(ctx)
	if err != nil {
		return nil, err
	}

	info := &model.ThemeInfo{Theme: model.ThemeDark, SunriseHour: defaultSunriseHour, SunsetHour: defaultSunsetHour}
	if content.SunriseHour != nil {
		info.SunriseHour = *content.SunriseHour
	}
	if content.SunsetHour != nil {
		info.SunsetHour = *content.SunsetHour
	}

	hour := u.now().In(u.location).Hour()
	if hour >= info.SunriseHour && hour < info.SunsetHour {
		info.Theme = model.ThemeLight
	}
	return info, nil
}

func validateHour(field string, hour *int) error {
	if hour != nil && (*hour < 0 || *hour > 23) {
		return fmt.Errorf("%w: %s must be between 0 and 23", domainErrors.ErrValidation, field)
	}
	return nil
}
