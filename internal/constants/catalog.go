package constants

import (
	_ "embed"
	"encoding/json"

	"github.com/go-playground/validator/v10"
)

// Fixed reference catalogs embedded at build time. Every seeded role,
// permission, category and notification template originates here; the init
// hook panics on a malformed catalog so a bad edit fails fast, before any
// database work starts.

type Permission struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type Role struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Permissions []string `json:"permissions" validate:"required,min=1,dive,required"`
}

type Category struct {
	Name          string   `json:"name" validate:"required"`
	Subcategories []string `json:"subcategories" validate:"required,min=1,dive,required"`
}

type NotificationTemplate struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
}

type permissionCatalog struct {
	Permissions []Permission `json:"permissions" validate:"required,min=1,dive"`
	Roles       []Role       `json:"roles" validate:"required,min=1,dive"`
}

//go:embed data/permissions.json
var permissionsJSON []byte

//go:embed data/categories.json
var categoriesJSON []byte

//go:embed data/notifications.json
var notificationsJSON []byte

var (
	Permissions           []Permission
	Roles                 []Role
	Categories            []Category
	NotificationTemplates []NotificationTemplate
)

func init() {
	validate := validator.New()

	var catalog permissionCatalog
	if err := json.Unmarshal(permissionsJSON, &catalog); err != nil {
		panic("failed to unmarshal permissions catalog: " + err.Error())
	}
	if err := validate.Struct(catalog); err != nil {
		panic("invalid permissions catalog: " + err.Error())
	}

	known := make(map[string]struct{}, len(catalog.Permissions))
	for _, p := range catalog.Permissions {
		known[p.Name] = struct{}{}
	}
	for _, role := range catalog.Roles {
		for _, permission := range role.Permissions {
			if _, ok := known[permission]; !ok {
				panic("role " + role.Name + " references unknown permission: " + permission)
			}
		}
	}
	Permissions = catalog.Permissions
	Roles = catalog.Roles

	if err := json.Unmarshal(categoriesJSON, &Categories); err != nil {
		panic("failed to unmarshal categories catalog: " + err.Error())
	}
	for _, c := range Categories {
		if err := validate.Struct(c); err != nil {
			panic("invalid category catalog entry: " + err.Error())
		}
	}

	if err := json.Unmarshal(notificationsJSON, &NotificationTemplates); err != nil {
		panic("failed to unmarshal notification templates: " + err.Error())
	}
	for _, n := range NotificationTemplates {
		if err := validate.Struct(n); err != nil {
			panic("invalid notification template: " + err.Error())
		}
	}
}
