package palworld_test

import (
	"testing"

	"github.com/adamwoolhether/palworld"
)

func TestValidate_Requests(t *testing.T) {
	testCases := []struct {
		name     string
		val      any
		expField string // empty means valid
	}{
		{name: "valid announce", val: &palworld.AnnounceRequest{Message: "hello"}},
		{name: "empty announce message", val: &palworld.AnnounceRequest{}, expField: "message"},
		{name: "valid kick", val: &palworld.KickRequest{UserID: "steam_1", Message: "bye"}},
		{name: "kick message optional", val: &palworld.KickRequest{UserID: "steam_1"}},
		{name: "kick missing userid", val: &palworld.KickRequest{Message: "bye"}, expField: "userid"},
		{name: "valid ban", val: &palworld.BanRequest{UserID: "steam_1"}},
		{name: "ban missing userid", val: &palworld.BanRequest{}, expField: "userid"},
		{name: "valid unban", val: &palworld.UnbanRequest{UserID: "steam_1"}},
		{name: "unban missing userid", val: &palworld.UnbanRequest{}, expField: "userid"},
		{name: "valid shutdown", val: &palworld.ShutdownRequest{WaitTime: 30, Message: "restart"}},
		{name: "immediate shutdown", val: &palworld.ShutdownRequest{}},
		{name: "negative waittime", val: &palworld.ShutdownRequest{WaitTime: -1}, expField: "waittime"},
		{name: "save has no fields", val: &palworld.SaveRequest{}},
		{name: "stop has no fields", val: &palworld.StopRequest{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := palworld.Validate(tc.val)

			if tc.expField == "" {
				if err != nil {
					t.Fatalf("expected no error, got: %v", err)
				}
				return
			}

			if err == nil {
				t.Fatal("expected validation error")
			}
			fe := palworld.GetFieldErrors(err)
			if fe == nil {
				t.Fatalf("expected FieldErrors, got: %v", err)
			}
			if _, ok := fe.Fields()[tc.expField]; !ok {
				t.Errorf("expected %q field error, got %v", tc.expField, fe.Fields())
			}
		})
	}
}

func TestFieldErrors_Error(t *testing.T) {
	fe := palworld.FieldErrors{
		{Field: "message", Err: "This field is required"},
		{Field: "waittime", Err: "must be 0 or greater"},
	}

	want := "message: This field is required; waittime: must be 0 or greater"
	if fe.Error() != want {
		t.Errorf("Error() = %q, want %q", fe.Error(), want)
	}
}

func TestIsFieldErrors(t *testing.T) {
	err := palworld.Validate(&palworld.UnbanRequest{})
	if !palworld.IsFieldErrors(err) {
		t.Error("expected IsFieldErrors to be true")
	}

	if palworld.IsFieldErrors(nil) {
		t.Error("expected IsFieldErrors(nil) to be false")
	}
}
