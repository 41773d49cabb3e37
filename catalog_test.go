package palworld_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/adamwoolhether/palworld"
)

func TestCatalog_Table(t *testing.T) {
	ops := palworld.Catalog()
	if len(ops) != 11 {
		t.Fatalf("catalog size = %d, want 11", len(ops))
	}

	names := make(map[string]bool, len(ops))
	paths := make(map[string]bool, len(ops))
	for _, op := range ops {
		if names[op.Name] {
			t.Errorf("duplicate operation name %q", op.Name)
		}
		names[op.Name] = true
		if paths[op.Path] {
			t.Errorf("duplicate operation path %q", op.Path)
		}
		paths[op.Path] = true

		if !strings.HasPrefix(op.Path, "/v1/api/") {
			t.Errorf("%s: path %q outside /v1/api/", op.Name, op.Path)
		}
		if op.SuccessCode != http.StatusOK {
			t.Errorf("%s: success code = %d, want 200", op.Name, op.SuccessCode)
		}

		switch op.Method {
		case http.MethodGet:
			if !op.HasResponse || op.HasRequest {
				t.Errorf("%s: GET operations carry a response and no request", op.Name)
			}
		case http.MethodPost:
			if op.HasResponse {
				t.Errorf("%s: POST operations carry no response body", op.Name)
			}
		default:
			t.Errorf("%s: unexpected method %s", op.Name, op.Method)
		}
	}
}

func TestDescribe(t *testing.T) {
	op, ok := palworld.Describe("get_info")
	if !ok {
		t.Fatal("expected get_info to be described")
	}
	if op != palworld.OpGetInfo {
		t.Errorf("Describe(get_info) = %+v, want OpGetInfo", op)
	}

	if _, ok := palworld.Describe("get_bananas"); ok {
		t.Error("expected unknown operation to be absent")
	}
}
