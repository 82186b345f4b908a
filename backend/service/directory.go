package service

import (
	"context"
	"fmt"

	"civicflow/backend/metrics"
	"civicflow/backend/models"
)

type DirectoryService struct {
	store ServiceDirectory
}

func NewDirectoryService(store ServiceDirectory) *DirectoryService {
	return &DirectoryService{store: store}
}

// ServicesFor returns the services registered for location. A miss is an empty slice, not an error.
func (s *DirectoryService) ServicesFor(ctx context.Context, location string) ([]*models.Service, error) {
	services, err := s.store.ServicesFor(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("services for %q: %w", location, err)
	}
	if len(services) == 0 {
		metrics.ServiceLookupsTotal.WithLabelValues("miss").Inc()
		return []*models.Service{}, nil
	}
	metrics.ServiceLookupsTotal.WithLabelValues("hit").Inc()
	return services, nil
}
