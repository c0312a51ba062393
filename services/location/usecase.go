package location

import (
	"context"

	"github.com/piresc/routefinder/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/routefinder/services/location OriginUC

// OriginUC decides where a route starts
type OriginUC interface {
	ResolveOrigin(ctx context.Context, req models.OriginRequest) (models.Origin, error)
}
