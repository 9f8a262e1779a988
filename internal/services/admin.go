package services

import (
	"context"
	"sort"
	"strings"

	"github.com/mytenu/zaktwi/internal/logger"
	"github.com/mytenu/zaktwi/internal/models"
)

// UserLister defines listing of all registered users.
type UserLister interface {
	List(ctx context.Context) ([]models.User, error)
}

// UserDeleter defines deletion of user rows by username.
type UserDeleter interface {
	DeleteByUsername(ctx context.Context, username string) (int, error)
}

// EntryDeleter defines deletion of dataset rows by username.
type EntryDeleter interface {
	DeleteByUsername(ctx context.Context, username string) (int, error)
}

// AdminService handles the admin dashboard: listings, statistics, and
// user/contribution deletion.
type AdminService struct {
	users        UserLister
	userDeleter  UserDeleter
	entries      EntryReader
	entryDeleter EntryDeleter
	kafkaWriter  KafkaWriter
}

// NewAdminService creates a new AdminService.
func NewAdminService(
	users UserLister,
	userDeleter UserDeleter,
	entries EntryReader,
	entryDeleter EntryDeleter,
	kafkaWriter KafkaWriter,
) *AdminService {
	return &AdminService{
		users:        users,
		userDeleter:  userDeleter,
		entries:      entries,
		entryDeleter: entryDeleter,
		kafkaWriter:  kafkaWriter,
	}
}

// ListUsers returns all registered users.
func (s *AdminService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "error", err)
		return nil, err
	}
	return users, nil
}

// ListEntries returns the full dataset.
func (s *AdminService) ListEntries(ctx context.Context) ([]models.Entry, error) {
	entries, err := s.entries.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list entries", "error", err)
		return nil, err
	}
	return entries, nil
}

// Stats aggregates dataset statistics: totals, average entries per user,
// and per-user contribution counts sorted by count descending.
func (s *AdminService) Stats(ctx context.Context) (models.DatasetStats, error) {
	entries, err := s.entries.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list entries for stats", "error", err)
		return models.DatasetStats{}, err
	}
	users, err := s.users.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users for stats", "error", err)
		return models.DatasetStats{}, err
	}

	counts := make(map[string]int)
	for _, e := range entries {
		username := strings.TrimSpace(e.Username)
		if username != "" {
			counts[username]++
		}
	}

	contributions := make([]models.Contribution, 0, len(counts))
	for username, n := range counts {
		contributions = append(contributions, models.Contribution{Username: username, Entries: n})
	}
	sort.Slice(contributions, func(i, j int) bool {
		if contributions[i].Entries != contributions[j].Entries {
			return contributions[i].Entries > contributions[j].Entries
		}
		return contributions[i].Username < contributions[j].Username
	})

	totalUsers := len(users)
	divisor := totalUsers
	if divisor < 1 {
		divisor = 1
	}

	return models.DatasetStats{
		TotalEntries:      len(entries),
		TotalUsers:        totalUsers,
		AvgEntriesPerUser: float64(len(entries)) / float64(divisor),
		Contributions:     contributions,
	}, nil
}

// DeleteUser removes the user's rows from the users worksheet and returns
// the number of rows deleted. Zero is not an error.
func (s *AdminService) DeleteUser(ctx context.Context, username string) (int, error) {
	deleted, err := s.userDeleter.DeleteByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to delete user", "username", username, "error", err)
		return deleted, err
	}

	if deleted > 0 {
		publishEvent(ctx, s.kafkaWriter, models.OpDeleteUser, username, deleted)
	}
	return deleted, nil
}

// DeleteContributions removes every dataset row owned by the username and
// returns the number of rows deleted.
func (s *AdminService) DeleteContributions(ctx context.Context, username string) (int, error) {
	deleted, err := s.entryDeleter.DeleteByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to delete contributions", "username", username, "error", err)
		return deleted, err
	}

	if deleted > 0 {
		publishEvent(ctx, s.kafkaWriter, models.OpDeleteContributions, username, deleted)
	}
	return deleted, nil
}

// DeleteUserWithContributions removes the user and all their entries.
// Deleting a user alone never cascades; this is the explicit combined
// action.
func (s *AdminService) DeleteUserWithContributions(ctx context.Context, username string) (usersDeleted, entriesDeleted int, err error) {
	usersDeleted, err = s.DeleteUser(ctx, username)
	if err != nil {
		return usersDeleted, 0, err
	}
	entriesDeleted, err = s.DeleteContributions(ctx, username)
	return usersDeleted, entriesDeleted, err
}
