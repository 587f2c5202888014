package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/jackmarvels/platform/internal/pkg/apperrors"
	"github.com/jackmarvels/platform/internal/pkg/models"
	"github.com/jackmarvels/platform/internal/utils"
)

// GetEvents lists events, optionally narrowed by category and by a
// case-insensitive search over title and description
func (u *MockAPIUC) GetEvents(ctx context.Context, filter models.EventFilter) ([]models.Event, error) {
	if err := u.wait(ctx); err != nil {
		return nil, err
	}

	category := strings.TrimSpace(filter.Category)
	search := strings.TrimSpace(filter.Search)

	events := []models.Event{}
	for _, e := range u.store.Events() {
		if category != "" && !strings.EqualFold(e.Category, category) {
			continue
		}
		if search != "" && !utils.ContainsFold(e.Title, search) && !utils.ContainsFold(e.Description, search) {
			continue
		}
		events = append(events, e)
	}
	return events, nil
}

// GetEventDetail returns an event with the requested expansions
func (u *MockAPIUC) GetEventDetail(ctx context.Context, eventID string, include []string) (models.EventDetail, error) {
	if err := u.wait(ctx); err != nil {
		return models.EventDetail{}, err
	}

	event, ok := u.store.FindEventByID(eventID)
	if !ok {
		return models.EventDetail{}, apperrors.NotFound("Event")
	}

	detail := models.EventDetail{Event: event}
	for _, inc := range include {
		switch strings.ToLower(strings.TrimSpace(inc)) {
		case models.IncludeGuidelines:
			detail.Guidelines = event.Guidelines
		case models.IncludeCategories:
			detail.Categories = u.categories()
		case models.IncludeRelated:
			detail.Related = u.relatedEvents(event)
		}
	}
	return detail, nil
}

func (u *MockAPIUC) categories() []string {
	seen := make(map[string]bool)
	categories := []string{}
	for _, e := range u.store.Events() {
		if !seen[e.Category] {
			seen[e.Category] = true
			categories = append(categories, e.Category)
		}
	}
	sort.Strings(categories)
	return categories
}

// relatedEvents shares the category and at least one audience role
func (u *MockAPIUC) relatedEvents(event models.Event) []models.Event {
	related := []models.Event{}
	for _, e := range u.store.Events() {
		if e.ID == event.ID || e.Category != event.Category {
			continue
		}
		for _, role := range event.AllowedRoles {
			if e.AllowsRole(role) {
				related = append(related, e)
				break
			}
		}
	}
	return related
}
