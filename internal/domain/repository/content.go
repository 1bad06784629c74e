package repository

import (
	"context"

	"github.com/polkiloo/suitopia/internal/domain/model"
)

// ContentRepository persists the site content and contracts singletons.
type ContentRepository interface {
	SiteContent(ctx context.Context) (*model.SiteContent, error)
	SaveSiteContent(ctx context.Context, content model.SiteContent) error
	Contracts(ctx context.Context) (*model.Contracts, error)
	SaveContracts(ctx context.Context, contracts model.Contracts) error
}
