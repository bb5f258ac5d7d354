package seed

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/campusgig/campusgig-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

func (s *Seeder) SeedUsers(ctx context.Context) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	for _, seedUser := range Users {
		exists, err := s.UserRepo.Exists(ctx, repository.UserRepositoryFilter{Email: &seedUser.Email})
		if err != nil {
			s.Log.Error().Err(err).Str("email", seedUser.Email).Msg("failed to check user existence")
			continue
		}
		if exists {
			s.Log.Debug().Str("email", seedUser.Email).Msg("user already exists, skipping")
			continue
		}

		user := &repository.User{
			ID:           uuid.New(),
			Username:     seedUser.Username,
			Email:        seedUser.Email,
			PasswordHash: string(hash),
		}
		if _, err := s.UserRepo.Create(ctx, user); err != nil {
			s.Log.Error().Err(err).Str("email", seedUser.Email).Msg("failed to create user")
		}
	}
	return nil
}

// SeedAcademicUsers attaches at most one academic profile per user, cycling
// through the profile templates by index.
func (s *Seeder) SeedAcademicUsers(ctx context.Context) error {
	users, err := s.UserRepo.List(ctx, 0)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}
	if len(users) == 0 {
		s.Log.Error().Msg("no users found, skipping academic users")
		return nil
	}

	for i, user := range users {
		exists, err := repository.Exists(ctx, s.DB, s.SQL, "academic_users", sq.Eq{"user_id": user.ID})
		if err != nil {
			s.Log.Error().Err(err).Str("username", user.Username).Msg("failed to check academic profile existence")
			continue
		}
		if exists {
			continue
		}

		template := ProfileTemplates[i%len(ProfileTemplates)]
		builder := s.SQL.Insert("academic_users").
			Columns("id", "user_id", "status", "institution", "job_title", "skills", "rating", "ratings_count").
			Values(
				uuid.New(),
				user.ID,
				template.Status,
				template.Institution,
				template.JobTitle,
				pq.Array(template.Skills),
				float64(intBetween(s.rng, 30, 50))/10.0,
				s.rng.Intn(25),
			)

		if err := s.execInsert(ctx, builder); err != nil {
			s.Log.Error().Err(err).Str("username", user.Username).Msg("failed to create academic profile")
		}
	}
	return nil
}

// SeedAdmins promotes the three fixture admin accounts. A missing user or
// role is logged and skipped; admin rows are optional fixtures.
func (s *Seeder) SeedAdmins(ctx context.Context) error {
	roleIDs, err := s.nameIDMap(ctx, "roles")
	if err != nil {
		s.Log.Error().Err(err).Msg("cannot load roles, skipping admins")
		return nil
	}

	for username, roleName := range AdminAssignments {
		user, err := s.UserRepo.Get(ctx, repository.UserRepositoryFilter{Username: &username})
		if err != nil {
			s.Log.Warn().Str("username", username).Msg("admin user not found, skipping")
			continue
		}
		roleID, ok := roleIDs[roleName]
		if !ok {
			s.Log.Warn().Str("role", roleName).Msg("admin role not found, skipping")
			continue
		}

		builder := s.SQL.Insert("admins").
			Columns("id", "user_id", "role_id").
			Values(uuid.New(), user.ID, roleID)

		if err := s.execInsert(ctx, builder); err != nil {
			s.Log.Error().Err(err).Str("username", username).Msg("failed to create admin")
		}
	}
	return nil
}

// SeedUserBalances gives every academic user exactly one balance row with a
// random amount below 100 currency units (stored in cents).
func (s *Seeder) SeedUserBalances(ctx context.Context) error {
	academicUsers, err := repository.SelectSome[repository.AcademicUser](ctx, s.DB, s.SQL, "academic_users", 0)
	if err != nil {
		return fmt.Errorf("list academic users: %w", err)
	}
	if len(academicUsers) == 0 {
		s.Log.Error().Msg("no academic users found, skipping user balances")
		return nil
	}

	for _, academicUser := range academicUsers {
		exists, err := repository.Exists(ctx, s.DB, s.SQL, "user_balances", sq.Eq{"academic_user_id": academicUser.ID})
		if err != nil {
			s.Log.Error().Err(err).Str("academic_user", academicUser.ID.String()).Msg("failed to check balance existence")
			continue
		}
		if exists {
			continue
		}

		builder := s.SQL.Insert("user_balances").
			Columns("id", "academic_user_id", "available").
			Values(uuid.New(), academicUser.ID, int64(s.rng.Intn(10000)))

		if err := s.execInsert(ctx, builder); err != nil {
			s.Log.Error().Err(err).Str("academic_user", academicUser.ID.String()).Msg("failed to create user balance")
		}
	}
	return nil
}
