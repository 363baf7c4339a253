package models

import (
	"time"
)

// AttendanceStatus is the guest's answer to the invitation.
// The numeric codes are part of the form wire format and the
// confirmation-page query string, so they must not change.
type AttendanceStatus int

const (
	StatusUnknown AttendanceStatus = 0
	Attending     AttendanceStatus = 1
	NotAttending  AttendanceStatus = 2
)

// GuestSide tells which side of the couple invited the guest.
type GuestSide int

const (
	GroomSide GuestSide = 0
	BrideSide GuestSide = 1
)

// AgeCategory is optional on the form; a nil pointer means unanswered.
type AgeCategory int

const (
	AgeAdult  AgeCategory = 0
	AgeChild  AgeCategory = 1
	AgeInfant AgeCategory = 2
)

// AllergyFlag gates the allergy item list: items are required when
// the flag is AllergyPresent and cleared when it is AllergyNone.
type AllergyFlag int

const (
	AllergyNone    AllergyFlag = 0
	AllergyPresent AllergyFlag = 1
)

// RSVPFields is a fully normalized submission: every optional string
// is an empty string (never absent) and Allergy is never nil.
type RSVPFields struct {
	Status         AttendanceStatus `json:"status"`
	GuestSide      GuestSide        `json:"guest_side"`
	JpnFamilyName  string           `json:"jpn_family_name"`
	JpnFirstName   string           `json:"jpn_first_name"`
	KanaFamilyName string           `json:"kana_family_name"`
	KanaFirstName  string           `json:"kana_first_name"`
	RomFamilyName  string           `json:"rom_family_name"`
	RomFirstName   string           `json:"rom_first_name"`
	Email          string           `json:"email"`
	PhoneNumber    string           `json:"phone_number"`
	Zipcode        string           `json:"zipcode"`
	Address        string           `json:"address"`
	Address2       string           `json:"address2"`
	AgeCategory    *AgeCategory     `json:"age_category,omitempty"`
	AllergyFlag    AllergyFlag      `json:"allergy_flag"`
	Allergy        []string         `json:"allergy" gorm:"serializer:json"`
	GuestMessage   string           `json:"guest_message"`
}

// DisplayName is the guest-facing name shown on the confirmation page.
func (f RSVPFields) DisplayName() string {
	return f.JpnFamilyName + " " + f.JpnFirstName
}

// RSVP is the durable record. It is created exactly once per accepted
// submission and never updated or deleted by this service.
type RSVP struct {
	ID         string `json:"id" gorm:"primaryKey"`
	RSVPFields `gorm:"embedded"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (RSVP) TableName() string {
	return "wedding_rsvps"
}

// RSVPStats are the aggregate counts exposed to the couple.
type RSVPStats struct {
	Attending          int64 `json:"attending"`
	NotAttending       int64 `json:"not_attending"`
	GroomSideAttending int64 `json:"groom_side_attending"`
	BrideSideAttending int64 `json:"bride_side_attending"`
	Total              int64 `json:"total"`
}
