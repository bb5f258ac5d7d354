package seed

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/campusgig/campusgig-backend/internal/constants"
	"github.com/google/uuid"
)

// Tier-1 reference seeders. Everything here upserts on a natural key, so the
// reference catalog is safe to re-run against a non-cleared database.

func (s *Seeder) execInsert(ctx context.Context, builder sq.Sqlizer) error {
	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	if _, err := s.DB.ExecContext(ctx, query, args...); err != nil {
		return err
	}
	return nil
}

// nameIDMap loads a name -> id lookup for a reference table.
func (s *Seeder) nameIDMap(ctx context.Context, table string) (map[string]uuid.UUID, error) {
	query, args, err := s.SQL.Select("id", "name").From(table).ToSql()
	if err != nil {
		return nil, err
	}

	var rows []struct {
		ID   uuid.UUID `json:"id"`
		Name string    `json:"name"`
	}
	if err := s.DB.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	result := make(map[string]uuid.UUID, len(rows))
	for _, row := range rows {
		result[row.Name] = row.ID
	}
	return result, nil
}

func (s *Seeder) SeedRoles(ctx context.Context) error {
	for _, role := range constants.Roles {
		builder := s.SQL.Insert("roles").
			Columns("id", "name", "description").
			Values(uuid.New(), role.Name, role.Description).
			Suffix("ON CONFLICT (name) DO UPDATE SET description = EXCLUDED.description")

		if err := s.execInsert(ctx, builder); err != nil {
			s.Log.Error().Err(err).Str("role", role.Name).Msg("failed to upsert role")
		}
	}
	return nil
}

func (s *Seeder) SeedPermissions(ctx context.Context) error {
	for _, permission := range constants.Permissions {
		builder := s.SQL.Insert("permissions").
			Columns("id", "name", "description").
			Values(uuid.New(), permission.Name, permission.Description).
			Suffix("ON CONFLICT (name) DO UPDATE SET description = EXCLUDED.description")

		if err := s.execInsert(ctx, builder); err != nil {
			s.Log.Error().Err(err).Str("permission", permission.Name).Msg("failed to upsert permission")
		}
	}
	return nil
}

func (s *Seeder) SeedRolePermissions(ctx context.Context) error {
	roleIDs, err := s.nameIDMap(ctx, "roles")
	if err != nil {
		s.Log.Error().Err(err).Msg("cannot load roles, skipping role permissions")
		return nil
	}
	permissionIDs, err := s.nameIDMap(ctx, "permissions")
	if err != nil {
		s.Log.Error().Err(err).Msg("cannot load permissions, skipping role permissions")
		return nil
	}

	for _, role := range constants.Roles {
		roleID, ok := roleIDs[role.Name]
		if !ok {
			s.Log.Warn().Str("role", role.Name).Msg("role not seeded, skipping its permissions")
			continue
		}

		builder := s.SQL.Insert("role_permissions").
			Columns("role_id", "permission_id").
			Suffix("ON CONFLICT (role_id, permission_id) DO NOTHING")

		var bound int
		for _, name := range role.Permissions {
			permissionID, ok := permissionIDs[name]
			if !ok {
				s.Log.Warn().Str("permission", name).Msg("permission not seeded, skipping grant")
				continue
			}
			builder = builder.Values(roleID, permissionID)
			bound++
		}
		if bound == 0 {
			continue
		}

		if err := s.execInsert(ctx, builder); err != nil {
			s.Log.Error().Err(err).Str("role", role.Name).Msg("failed to grant role permissions")
		}
	}
	return nil
}

func (s *Seeder) SeedAcademicCategories(ctx context.Context) error {
	for _, category := range constants.Categories {
		builder := s.SQL.Insert("academic_categories").
			Columns("id", "name").
			Values(uuid.New(), category.Name).
			Suffix("ON CONFLICT (name) DO NOTHING")

		if err := s.execInsert(ctx, builder); err != nil {
			s.Log.Error().Err(err).Str("category", category.Name).Msg("failed to upsert category")
		}
	}
	return nil
}

func (s *Seeder) SeedAcademicSubcategories(ctx context.Context) error {
	categoryIDs, err := s.nameIDMap(ctx, "academic_categories")
	if err != nil {
		s.Log.Error().Err(err).Msg("cannot load categories, skipping subcategories")
		return nil
	}

	for _, category := range constants.Categories {
		categoryID, ok := categoryIDs[category.Name]
		if !ok {
			s.Log.Warn().Str("category", category.Name).Msg("category not seeded, skipping its subcategories")
			continue
		}

		for _, name := range category.Subcategories {
			builder := s.SQL.Insert("academic_subcategories").
				Columns("id", "category_id", "name").
				Values(uuid.New(), categoryID, name).
				Suffix("ON CONFLICT (category_id, name) DO NOTHING")

			if err := s.execInsert(ctx, builder); err != nil {
				s.Log.Error().Err(err).Str("subcategory", name).Msg("failed to upsert subcategory")
			}
		}
	}
	return nil
}

// SeedSystemBalance creates the singleton platform balance row (id fixed at 1).
func (s *Seeder) SeedSystemBalance(ctx context.Context) error {
	builder := s.SQL.Insert("system_balance").
		Columns("id", "available", "reserved").
		Values(1, 0, 0).
		Suffix("ON CONFLICT (id) DO NOTHING")

	if err := s.execInsert(ctx, builder); err != nil {
		s.Log.Error().Err(err).Msg("failed to upsert system balance")
	}
	return nil
}
