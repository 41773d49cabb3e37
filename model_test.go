package palworld_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/adamwoolhether/palworld"
)

func TestInfoResponse_RoundTrip(t *testing.T) {
	in := palworld.InfoResponse{
		Version:     "1.2.3",
		ServerName:  "MyServer",
		Description: "A test server",
		WorldGUID:   "8B05D178",
	}

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var out palworld.InfoResponse
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestPlayersResponse_Decode(t *testing.T) {
	var roster palworld.PlayersResponse
	if err := json.Unmarshal([]byte(playersBody), &roster); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := palworld.PlayersResponse{
		Players: []palworld.Player{{
			Name:        "alice",
			AccountName: "alice42",
			PlayerID:    "123",
			UserID:      "steam_1",
			IP:          "10.0.0.5",
			Ping:        31.5,
			LocationX:   557.1,
			LocationY:   -420.7,
			Level:       23,
		}},
	}
	if diff := cmp.Diff(want, roster); diff != "" {
		t.Errorf("roster mismatch (-want +got):\n%s", diff)
	}
}

func TestMetricsResponse_Decode(t *testing.T) {
	var metrics palworld.MetricsResponse
	if err := json.Unmarshal([]byte(metricsBody), &metrics); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := palworld.MetricsResponse{
		ServerFPS:        60,
		ServerFrameTime:  16.6,
		CurrentPlayerNum: 1,
		MaxPlayerNum:     32,
		Uptime:           3600,
		Days:             12,
	}
	if diff := cmp.Diff(want, metrics); diff != "" {
		t.Errorf("metrics mismatch (-want +got):\n%s", diff)
	}
}

// The settings document uses the server's own field naming, including
// the lowercase b-prefixed booleans; spot-check the tag mapping.
func TestSettingsResponse_Decode(t *testing.T) {
	doc := `{
		"Difficulty": "None",
		"ExpRate": 1.5,
		"bIsPvP": true,
		"bEnableFastTravel": true,
		"DropItemMaxNum_UNKO": 100,
		"autoSaveSpan": 30,
		"ServerName": "MyServer",
		"RESTAPIEnabled": true,
		"RESTAPIPort": 8212,
		"CrossplayPlatforms": ["Steam", "Xbox"]
	}`

	var settings palworld.SettingsResponse
	if err := json.Unmarshal([]byte(doc), &settings); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if settings.Difficulty != "None" {
		t.Errorf("Difficulty = %q", settings.Difficulty)
	}
	if settings.ExpRate != 1.5 {
		t.Errorf("ExpRate = %v", settings.ExpRate)
	}
	if !settings.IsPvP {
		t.Error("expected bIsPvP to map to IsPvP")
	}
	if !settings.EnableFastTravel {
		t.Error("expected bEnableFastTravel to map to EnableFastTravel")
	}
	if settings.DropItemMaxNumUNKO != 100 {
		t.Errorf("DropItemMaxNumUNKO = %d", settings.DropItemMaxNumUNKO)
	}
	if settings.AutoSaveSpan != 30 {
		t.Errorf("AutoSaveSpan = %d", settings.AutoSaveSpan)
	}
	if !settings.RESTAPIEnabled || settings.RESTAPIPort != 8212 {
		t.Errorf("REST API settings = %v/%d", settings.RESTAPIEnabled, settings.RESTAPIPort)
	}
	if diff := cmp.Diff([]string{"Steam", "Xbox"}, settings.CrossplayPlatforms); diff != "" {
		t.Errorf("CrossplayPlatforms mismatch (-want +got):\n%s", diff)
	}
}

// Request payloads must serialize with the wire field names, omitting
// optional messages left empty.
func TestRequests_WireFormat(t *testing.T) {
	testCases := []struct {
		name string
		val  any
		want string
	}{
		{"announce", palworld.AnnounceRequest{Message: "hi"}, `{"message":"hi"}`},
		{"kick with message", palworld.KickRequest{UserID: "steam_1", Message: "bye"}, `{"userid":"steam_1","message":"bye"}`},
		{"kick without message", palworld.KickRequest{UserID: "steam_1"}, `{"userid":"steam_1"}`},
		{"unban", palworld.UnbanRequest{UserID: "steam_1"}, `{"userid":"steam_1"}`},
		{"shutdown", palworld.ShutdownRequest{WaitTime: 30}, `{"waittime":30}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := json.Marshal(tc.val)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(data) != tc.want {
				t.Errorf("payload = %s, want %s", data, tc.want)
			}
		})
	}
}
