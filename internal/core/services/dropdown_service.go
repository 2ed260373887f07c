package services

import (
	"context"
	"strings"

	portsrepo "github.com/rumahamal/ref26-backend/internal/core/ports/repositories"
	portssvc "github.com/rumahamal/ref26-backend/internal/core/ports/services"
)

// dropdownDisplayNames are the validation form sections in the order the
// frontend renders them.
var dropdownDisplayNames = []string{
	"Nama Validator",
	"Campaign",
	"Tipe Donatur",
	"Jenis Donasi",
	"Kategori",
	"Pelaksana Program",
	"Metode",
}

// DropdownService groups the dropdown_validation rows by their form section.
type DropdownService struct {
	dropdownRepo portsrepo.DropdownRepository
}

// NewDropdownService creates a new DropdownService.
func NewDropdownService(dropdownRepo portsrepo.DropdownRepository) *DropdownService {
	return &DropdownService{dropdownRepo: dropdownRepo}
}

var _ portssvc.DropdownSvcFacade = (*DropdownService)(nil)

// GetDropdownOptions returns the validation form options keyed by section
// display name. Every section is present even when it has no values.
func (s *DropdownService) GetDropdownOptions(ctx context.Context) (map[string][]string, error) {
	values, err := s.dropdownRepo.ListDropdownValues(ctx)
	if err != nil {
		return nil, err
	}

	options := make(map[string][]string, len(dropdownDisplayNames))
	for _, name := range dropdownDisplayNames {
		options[name] = []string{}
	}

	for _, v := range values {
		name, ok := displayNameFor(v.JenisKolom)
		if !ok || v.Nilai == "" {
			continue
		}
		options[name] = append(options[name], v.Nilai)
	}
	return options, nil
}

// displayNameFor maps a jenis_kolom value to its form section. The legacy
// sheet used "organ" for what the form labels Pelaksana Program.
func displayNameFor(jenisKolom string) (string, bool) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(jenisKolom)), " ", "_")
	switch normalized {
	case "nama_validator":
		return "Nama Validator", true
	case "campaign":
		return "Campaign", true
	case "tipe_donatur":
		return "Tipe Donatur", true
	case "jenis_donasi":
		return "Jenis Donasi", true
	case "kategori":
		return "Kategori", true
	case "pelaksana_program", "organ":
		return "Pelaksana Program", true
	case "metode":
		return "Metode", true
	default:
		return "", false
	}
}
