package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/example/velora/internal/models"
	"github.com/example/velora/internal/store"
	"github.com/example/velora/internal/utils"
)

// ProfileHandler manages the catalog surface.
type ProfileHandler struct {
	store *store.Store
}

// NewProfileHandler constructs ProfileHandler.
func NewProfileHandler(st *store.Store) *ProfileHandler {
	return &ProfileHandler{store: st}
}

// ListProfiles returns the catalog. With a search or filter query param it
// returns the full match set; otherwise it returns one page of the whole
// collection.
func (h *ProfileHandler) ListProfiles(c *fiber.Ctx) error {
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		profiles, err := h.store.SearchProfiles(search)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"success": true, "data": profiles, "total": len(profiles)})
	}

	if services := c.Query("services"); services != "" {
		required := splitTags(services)
		profiles, err := h.store.FilterByServices(required)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"success": true, "data": profiles, "total": len(profiles)})
	}

	if location := strings.TrimSpace(c.Query("location")); location != "" {
		profiles, err := h.store.FilterByLocation(location)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"success": true, "data": profiles, "total": len(profiles)})
	}

	if status := c.Query("status"); status != "" {
		if status != models.StatusAll && !models.ValidStatus(status) {
			return fiber.NewError(fiber.StatusBadRequest, "invalid status")
		}
		profiles, err := h.store.FilterByStatus(status)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"success": true, "data": profiles, "total": len(profiles)})
	}

	pg := utils.ParsePagination(c)
	page, err := h.store.PaginateProfiles(pg.Page, pg.Limit)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    page.Profiles,
		"pagination": fiber.Map{
			"current_page":   page.Page,
			"items_per_page": pg.Limit,
			"total_items":    page.Total,
			"total_pages":    page.TotalPages,
			"has_next":       page.HasNext,
			"has_prev":       page.HasPrev,
		},
	})
}

// GetProfile loads a single profile.
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	profile, found, err := h.store.GetProfile(id)
	if err != nil {
		return err
	}
	if !found {
		return fiber.NewError(fiber.StatusNotFound, "profile not found")
	}

	return c.JSON(fiber.Map{"success": true, "data": profile})
}

type profileRequest struct {
	Name     *string   `json:"name"`
	Age      *int      `json:"age"`
	Location *string   `json:"location"`
	Services *[]string `json:"services"`
	Remark   *string   `json:"remark"`
	Phone    *string   `json:"phone"`
	Status   *string   `json:"status"`
	DaysLeft *int      `json:"days_left"`
	Image    *string   `json:"image"`
	Shy      *bool     `json:"shy"`
	Verified *bool     `json:"verified"`
	Rating   *float64  `json:"rating"`
}

// validate rejects malformed values before anything reaches the store.
func (r *profileRequest) validate() error {
	if r.Age != nil && *r.Age < 18 {
		return fiber.NewError(fiber.StatusBadRequest, "age must be at least 18")
	}
	if r.Status != nil && !models.ValidStatus(*r.Status) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid status")
	}
	if r.DaysLeft != nil && *r.DaysLeft < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "days_left must not be negative")
	}
	if r.Rating != nil && (*r.Rating < 0 || *r.Rating > 5) {
		return fiber.NewError(fiber.StatusBadRequest, "rating must be between 0 and 5")
	}
	return nil
}

// fields maps the set values onto store columns for a partial update.
func (r *profileRequest) fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Age != nil {
		fields["age"] = *r.Age
	}
	if r.Location != nil {
		fields["location"] = *r.Location
	}
	if r.Services != nil {
		fields["services"] = datatypes.NewJSONSlice(*r.Services)
	}
	if r.Remark != nil {
		fields["remark"] = *r.Remark
	}
	if r.Phone != nil {
		fields["phone"] = *r.Phone
	}
	if r.Status != nil {
		fields["status"] = *r.Status
	}
	if r.DaysLeft != nil {
		fields["days_left"] = *r.DaysLeft
	}
	if r.Image != nil {
		fields["image"] = *r.Image
	}
	if r.Shy != nil {
		fields["shy"] = *r.Shy
	}
	if r.Verified != nil {
		fields["verified"] = *r.Verified
	}
	if r.Rating != nil {
		fields["rating"] = *r.Rating
	}
	return fields
}

// CreateProfile persists a new listing.
func (h *ProfileHandler) CreateProfile(c *fiber.Ctx) error {
	var req profileRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name is required")
	}
	if err := req.validate(); err != nil {
		return err
	}

	profile := models.Profile{
		Name:   *req.Name,
		Status: models.StatusAvailable,
	}
	if req.Age != nil {
		profile.Age = *req.Age
	}
	if req.Location != nil {
		profile.Location = *req.Location
	}
	if req.Services != nil {
		profile.Services = datatypes.NewJSONSlice(*req.Services)
	}
	if req.Remark != nil {
		profile.Remark = *req.Remark
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.Status != nil {
		profile.Status = *req.Status
	}
	if req.DaysLeft != nil {
		profile.DaysLeft = *req.DaysLeft
	}
	if req.Image != nil {
		profile.Image = *req.Image
	}
	if req.Shy != nil {
		profile.Shy = *req.Shy
	}
	if req.Verified != nil {
		profile.Verified = *req.Verified
	}
	if req.Rating != nil {
		profile.Rating = *req.Rating
	}

	if _, err := h.store.CreateProfile(&profile); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": profile})
}

// UpdateProfile applies a partial update to an existing listing.
func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req profileRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := req.validate(); err != nil {
		return err
	}

	profile, err := h.store.UpdateProfile(id, req.fields())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "profile not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": profile})
}

// DeleteProfile removes a listing.
func (h *ProfileHandler) DeleteProfile(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.store.DeleteProfile(id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func splitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}
