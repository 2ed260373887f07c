// Package services holds the business logic behind the HTTP handlers:
// CSV ingestion, the validation desk operations, the dashboard aggregation,
// event/kemitraan submission and the realm auth scheme.
package services

import (
	portsrepo "github.com/rumahamal/ref26-backend/internal/core/ports/repositories"
	portssvc "github.com/rumahamal/ref26-backend/internal/core/ports/services"
	"github.com/rumahamal/ref26-backend/pkg/config"
)

// Repositories bundles the persistence ports the services are built on.
type Repositories struct {
	Donation    portsrepo.DonationRepository
	Event       portsrepo.EventRepository
	Partnership portsrepo.PartnershipRepository
	Target      portsrepo.TargetRepository
	Dropdown    portsrepo.DropdownRepository
	Files       portsrepo.FileStore
}

// NewServiceContainer wires every service with its repositories and returns
// the container the handlers consume.
func NewServiceContainer(repos Repositories, cfg *config.Config) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Ingest:    NewIngestService(repos.Donation),
		Donation:  NewDonationService(repos.Donation),
		Dashboard: NewDashboardService(repos.Donation, repos.Target),
		Dropdown:  NewDropdownService(repos.Dropdown),
		Event:     NewEventService(repos.Event, repos.Files, cfg.EventsBucket),
		Kemitraan: NewKemitraanService(repos.Partnership, repos.Files, cfg.KemitraanPKSBucket, cfg.KemitraanDokBucket),
		Auth:      NewAuthService(cfg),
	}
}
