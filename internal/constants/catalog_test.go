package constants

import "testing"

func TestCatalogsLoaded(t *testing.T) {
	if len(Roles) == 0 {
		t.Error("roles catalog is empty")
	}
	if len(Permissions) == 0 {
		t.Error("permissions catalog is empty")
	}
	if len(Categories) == 0 {
		t.Error("categories catalog is empty")
	}
	if len(NotificationTemplates) == 0 {
		t.Error("notification templates catalog is empty")
	}
}

func TestRolePermissionsAreKnown(t *testing.T) {
	known := make(map[string]bool, len(Permissions))
	for _, p := range Permissions {
		known[p.Name] = true
	}
	for _, role := range Roles {
		for _, permission := range role.Permissions {
			if !known[permission] {
				t.Errorf("role %q grants unknown permission %q", role.Name, permission)
			}
		}
	}
}

func TestCatalogNamesAreUnique(t *testing.T) {
	seenRoles := make(map[string]bool)
	for _, role := range Roles {
		if seenRoles[role.Name] {
			t.Errorf("duplicate role %q", role.Name)
		}
		seenRoles[role.Name] = true
	}

	seenCategories := make(map[string]bool)
	for _, category := range Categories {
		if seenCategories[category.Name] {
			t.Errorf("duplicate category %q", category.Name)
		}
		seenCategories[category.Name] = true

		seenSubs := make(map[string]bool)
		for _, sub := range category.Subcategories {
			if seenSubs[sub] {
				t.Errorf("duplicate subcategory %q in %q", sub, category.Name)
			}
			seenSubs[sub] = true
		}
	}
}
