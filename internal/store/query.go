package store

import (
	"strings"

	"github.com/example/velora/internal/models"
)

// ProfilePage is one page of the profile collection.
type ProfilePage struct {
	Profiles   []models.Profile `json:"profiles"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	TotalPages int              `json:"total_pages"`
	HasNext    bool             `json:"has_next"`
	HasPrev    bool             `json:"has_prev"`
}

// SearchProfiles returns profiles whose name, location, remark or any
// service tag contains the term, case-insensitively. No ranking.
func (s *Store) SearchProfiles(term string) ([]models.Profile, error) {
	profiles, err := s.ListProfiles()
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(term)
	matched := make([]models.Profile, 0, len(profiles))
	for _, p := range profiles {
		if profileMatches(&p, needle) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func profileMatches(p *models.Profile, needle string) bool {
	if strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Location), needle) ||
		strings.Contains(strings.ToLower(p.Remark), needle) {
		return true
	}
	for _, service := range p.Services {
		if strings.Contains(strings.ToLower(service), needle) {
			return true
		}
	}
	return false
}

// FilterByStatus returns profiles with an exact status match. The "all"
// sentinel returns the whole collection.
func (s *Store) FilterByStatus(status string) ([]models.Profile, error) {
	if status == models.StatusAll {
		return s.ListProfiles()
	}

	var profiles []models.Profile
	if err := s.db.Where("status = ?", status).Order("created_at asc, id asc").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

// FilterByLocation returns profiles whose location contains the substring,
// case-insensitively.
func (s *Store) FilterByLocation(location string) ([]models.Profile, error) {
	pattern := "%" + strings.ToLower(location) + "%"
	var profiles []models.Profile
	if err := s.db.Where("LOWER(location) LIKE ?", pattern).Order("created_at asc, id asc").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

// FilterByServices returns profiles offering every required service.
// Tag membership is exact, not substring.
func (s *Store) FilterByServices(required []string) ([]models.Profile, error) {
	profiles, err := s.ListProfiles()
	if err != nil {
		return nil, err
	}

	matched := make([]models.Profile, 0, len(profiles))
	for _, p := range profiles {
		if hasAllServices(&p, required) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func hasAllServices(p *models.Profile, required []string) bool {
	for _, want := range required {
		found := false
		for _, have := range p.Services {
			if have == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// PaginateProfiles returns the 1-indexed page of the full collection in
// insertion order. Pages past the end come back empty, not as an error.
func (s *Store) PaginateProfiles(page, pageSize int) (*ProfilePage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 12
	}

	var total int64
	if err := s.db.Model(&models.Profile{}).Count(&total).Error; err != nil {
		return nil, err
	}

	var profiles []models.Profile
	offset := (page - 1) * pageSize
	if err := s.db.Order("created_at asc, id asc").Limit(pageSize).Offset(offset).Find(&profiles).Error; err != nil {
		return nil, err
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	return &ProfilePage{
		Profiles:   profiles,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
		HasNext:    int64(offset+pageSize) < total,
		HasPrev:    page > 1,
	}, nil
}
