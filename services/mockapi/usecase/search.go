package usecase

import (
	"context"
	"strings"

	"github.com/jackmarvels/platform/internal/pkg/apperrors"
	"github.com/jackmarvels/platform/internal/pkg/models"
	"github.com/jackmarvels/platform/internal/utils"
)

// Search matches events, users and videos against a free-text query.
// An empty type list searches everything.
func (u *MockAPIUC) Search(ctx context.Context, query models.SearchQuery) (models.SearchResult, error) {
	if err := u.wait(ctx); err != nil {
		return models.SearchResult{}, err
	}

	q := strings.TrimSpace(query.Query)
	if q == "" {
		return models.SearchResult{}, apperrors.New(apperrors.KindBadRequest, "Search query is required")
	}

	types := make(map[string]bool)
	for _, t := range query.Types {
		types[strings.ToLower(strings.TrimSpace(t))] = true
	}
	wants := func(t string) bool { return len(types) == 0 || types[t] }

	result := models.SearchResult{
		Query:  q,
		Events: []models.Event{},
		Users:  []models.User{},
		Videos: []models.VideoSubmission{},
	}

	if wants(models.SearchEvents) {
		for _, e := range u.store.Events() {
			if matchesAny(q, e.Title, e.Description, e.Category) {
				result.Events = append(result.Events, e)
			}
		}
	}
	if wants(models.SearchUsers) {
		for _, user := range u.store.Users() {
			if matchesAny(q, user.FullName(), user.City, user.SchoolName) {
				result.Users = append(result.Users, user)
			}
		}
	}
	if wants(models.SearchVideos) {
		for _, v := range u.store.VideoSubmissions() {
			if matchesAny(q, v.Title, v.Description) {
				result.Videos = append(result.Videos, v)
			}
		}
	}

	result.Total = len(result.Events) + len(result.Users) + len(result.Videos)
	return result, nil
}

func matchesAny(query string, fields ...string) bool {
	for _, f := range fields {
		if utils.ContainsFold(f, query) {
			return true
		}
	}
	return false
}

// GetAnalytics summarises activity for one user, or for the whole platform
// when userID is empty
func (u *MockAPIUC) GetAnalytics(ctx context.Context, userID string) (models.Analytics, error) {
	if err := u.wait(ctx); err != nil {
		return models.Analytics{}, err
	}

	analytics := models.Analytics{Scope: models.AnalyticsScopeGlobal}
	belongs := func(owner string) bool { return true }

	if userID != "" {
		if _, ok := u.store.FindUserByID(userID); !ok {
			return models.Analytics{}, apperrors.NotFound("User")
		}
		analytics.Scope = models.AnalyticsScopeUser
		analytics.UserID = userID
		belongs = func(owner string) bool { return owner == userID }
	} else {
		analytics.TotalUsers = len(u.store.Users())
		analytics.TotalEvents = len(u.store.Events())
	}

	for _, v := range u.store.VideoSubmissions() {
		if !belongs(v.UserID) {
			continue
		}
		analytics.TotalVideos++
		analytics.TotalViews += v.Views
		analytics.TotalLikes += v.Likes
		switch v.Status {
		case models.VideoApproved:
			analytics.ApprovedVideos++
		case models.VideoPending:
			analytics.PendingVideos++
		case models.VideoRejected:
			analytics.RejectedVideos++
		}
	}

	var totalScore int
	for _, r := range u.store.QuizResults() {
		if !belongs(r.UserID) {
			continue
		}
		analytics.QuizzesTaken++
		totalScore += r.Score
		if r.Passed {
			analytics.QuizzesPassed++
		}
	}
	if analytics.QuizzesTaken > 0 {
		analytics.AverageQuizScore = float64(totalScore) / float64(analytics.QuizzesTaken)
	}

	for _, s := range u.store.Subscriptions() {
		if belongs(s.UserID) && s.Status == models.SubscriptionActive {
			analytics.ActiveSubscriptions++
		}
	}

	return analytics, nil
}
