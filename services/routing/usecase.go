package routing

import (
	"context"

	"github.com/piresc/routefinder/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/routefinder/services/routing PlannerUC

// PlannerUC runs the whole pipeline for one request
type PlannerUC interface {
	Plan(ctx context.Context, req models.RouteRequest) (*models.RouteSummary, error)
}
