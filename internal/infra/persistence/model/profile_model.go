package model

import "bites/internal/domain/entity"

// ProfileModel is the stored form of the user profile.
type ProfileModel struct {
	Name string `json:"name"`
	UID  string `json:"uid"`
}

// FromProfileDomain converts an entity to its storage form.
func FromProfileDomain(profile *entity.UserProfile) *ProfileModel {
	return &ProfileModel{Name: profile.Name, UID: profile.UID}
}

// ToProfileDomain converts a stored profile back to its entity form.
func ToProfileDomain(m *ProfileModel) *entity.UserProfile {
	return &entity.UserProfile{Name: m.Name, UID: m.UID}
}
