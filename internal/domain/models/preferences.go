// internal/domain/models/preferences.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Theme values accepted in user preferences.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Measurement unit systems accepted in user preferences and weather queries.
const (
	UnitsMetric   = "metric"
	UnitsImperial = "imperial"
)

// UserPreferences is the one-per-user settings document.
//
// The preferences collection holds at most one document per user_id
// (enforced by a unique index). Documents are created implicitly on the
// first write; there is no separate create operation.
type UserPreferences struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID           string             `bson:"user_id" json:"userId"`
	FavoriteTeams    []string           `bson:"favorite_teams" json:"favoriteTeams"`
	Notifications    bool               `bson:"notifications" json:"notifications"`
	Theme            string             `bson:"theme" json:"theme"`
	MeasurementUnits string             `bson:"measurement_units" json:"measurementUnits"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"` // set once, at first write
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"` // set on every write
}

// PreferencesUpdate carries the fields of a partial preferences write.
// Nil pointers mean "field not supplied"; the store only touches fields
// that are present.
type PreferencesUpdate struct {
	FavoriteTeams    *[]string `json:"favoriteTeams,omitempty"`
	Notifications    *bool     `json:"notifications,omitempty"`
	Theme            *string   `json:"theme,omitempty"`
	MeasurementUnits *string   `json:"measurementUnits,omitempty"`
}

// IsValidTheme reports whether v is an accepted theme value.
func IsValidTheme(v string) bool {
	return v == ThemeLight || v == ThemeDark
}

// IsValidUnits reports whether v is an accepted unit system.
func IsValidUnits(v string) bool {
	return v == UnitsMetric || v == UnitsImperial
}

// DefaultPreferences returns the synthetic document the gateway serves when
// a user has no stored preferences. It is never persisted; default-filling
// is a gateway responsibility, not a storage contract.
func DefaultPreferences(userID string) UserPreferences {
	return UserPreferences{
		UserID:           userID,
		FavoriteTeams:    []string{},
		Notifications:    true,
		Theme:            ThemeDark,
		MeasurementUnits: UnitsImperial,
	}
}
