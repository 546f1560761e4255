package model

import (
	"errors"
	"testing"
	"time"
)

func TestActivityTypeValidate(t *testing.T) {
	cases := []struct {
		name    string
		in      ActivityType
		wantErr error
	}{
		{"valid", ActivityType{ID: 1, Name: "🏞️  Meditate"}, nil},
		{"zero id allowed", ActivityType{ID: 0, Name: "Run"}, nil},
		{"negative id", ActivityType{ID: -1, Name: "Run"}, ErrInvalidTypeID},
		{"blank name", ActivityType{ID: 1, Name: "   "}, ErrEmptyName},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.in.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestCompletionValidate(t *testing.T) {
	good := NewCompletion(2, NewDate(2024, time.March, 1))
	if err := good.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (Completion{TypeID: -3, Date: NewDate(2024, time.March, 1)}).Validate(); !errors.Is(err, ErrInvalidTypeID) {
		t.Fatalf("expected ErrInvalidTypeID, got %v", err)
	}
	if err := (Completion{TypeID: 1}).Validate(); err == nil {
		t.Fatal("expected error for missing date")
	}
}
