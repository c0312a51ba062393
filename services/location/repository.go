package location

import (
	"context"

	"github.com/piresc/routefinder/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/routefinder/services/location LastFixRepo

// LastFixRepo persists the last-known location
type LastFixRepo interface {
	Save(ctx context.Context, fix models.LastFix) error
	Load(ctx context.Context) (models.LastFix, bool, error)
}

