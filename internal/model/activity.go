package model

import (
	"errors"
	"strings"
)

var (
	ErrInvalidTypeID = errors.New("model: invalid activity type id")
	ErrEmptyName     = errors.New("model: activity type name is required")
)

// ActivityType is a user-defined habit. The ID is assigned once by the
// catalog and never changes; the name is a free-text label and may carry
// decorative symbols.
type ActivityType struct {
	ID   int64
	Name string
}

func (a ActivityType) Validate() error {
	if a.ID < 0 {
		return ErrInvalidTypeID
	}
	if strings.TrimSpace(a.Name) == "" {
		return ErrEmptyName
	}
	return nil
}

// Completion records that an activity type was completed on a calendar day.
// Its presence in the log is the whole fact; there is nothing to update in
// place.
type Completion struct {
	TypeID int64
	Date   Date
}

func NewCompletion(typeID int64, date Date) Completion {
	return Completion{TypeID: typeID, Date: date}
}

func (c Completion) Validate() error {
	if c.TypeID < 0 {
		return ErrInvalidTypeID
	}
	if c.Date.IsZero() {
		return errors.New("model: completion date is required")
	}
	return nil
}
