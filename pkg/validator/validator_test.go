package validator_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgvalidator "github.com/ghuser/productcatalog/pkg/validator"
)

type createReq struct {
	OwnerID  int64  `json:"owner_id" validate:"required,gt=0"`
	Title    string `json:"title"    validate:"required,notblank,max=10"`
	Quantity int    `json:"quantity" validate:"gte=0"`
}

type labelReq struct {
	Label string `json:"label" validate:"nocontrol"`
}

type patchReq struct {
	Title    *string `json:"title"    validate:"omitempty,notblank,max=10"`
	Quantity *int    `json:"quantity" validate:"omitempty,gte=0"`
}

func ptr[T any](v T) *T { return &v }

func TestFormatValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		req  any
		want map[string]string
	}{
		{
			name: "valid",
			req:  &createReq{OwnerID: 1, Title: "widget"},
			want: map[string]string{},
		},
		{
			name: "missing fields use json names",
			req:  &createReq{},
			want: map[string]string{"owner_id": "This field is required", "title": "This field is required"},
		},
		{
			name: "whitespace title",
			req:  &createReq{OwnerID: 1, Title: "   "},
			want: map[string]string{"title": "Must not be blank"},
		},
		{
			name: "too long and negative",
			req:  &createReq{OwnerID: 1, Title: "12345678901", Quantity: -1},
			want: map[string]string{"title": "Maximum length is 10", "quantity": "Must be greater than or equal to 0"},
		},
		{
			name: "control character",
			req:  &labelReq{Label: "tab\there"},
			want: map[string]string{"label": "Must not contain control characters"},
		},
		{
			name: "printable unicode is accepted",
			req:  &labelReq{Label: "Gartenschlauch 25 m, grün"},
			want: map[string]string{},
		},
		{
			name: "absent patch fields are skipped",
			req:  &patchReq{},
			want: map[string]string{},
		},
		{
			name: "present zero quantity is accepted",
			req:  &patchReq{Quantity: ptr(0)},
			want: map[string]string{},
		},
		{
			name: "present empty title is rejected",
			req:  &patchReq{Title: ptr("")},
			want: map[string]string{"title": "Must not be blank"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pkgvalidator.FormatValidationErrors(pkgvalidator.Validate(tt.req))
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("%s: got %q, want %q", k, got[k], v)
				}
			}
		})
	}
}

func TestFormatValidationErrors_NotValidationError(t *testing.T) {
	if m := pkgvalidator.FormatValidationErrors(errors.New("boom")); len(m) != 0 {
		t.Fatalf("expected empty map, got %v", m)
	}
}

type renameReq struct {
	Label string `json:"label" validate:"required,max=3"`
}

func TestRegisterMessages_OverridesDefault(t *testing.T) {
	pkgvalidator.RegisterMessages(map[string]string{
		"label.required": "Label is required.",
	})

	got := pkgvalidator.FormatValidationErrors(pkgvalidator.Validate(&renameReq{}))
	if got["label"] != "Label is required." {
		t.Fatalf("override not applied: %v", got)
	}
	got = pkgvalidator.FormatValidationErrors(pkgvalidator.Validate(&renameReq{Label: "long"}))
	if got["label"] != "Maximum length is 3" {
		t.Fatalf("other tags must keep the default: %v", got)
	}
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantOK    bool
		wantError string
		wantField string
	}{
		{name: "valid", body: `{"owner_id":3,"title":"widget"}`, wantOK: true},
		{name: "malformed", body: `{bad json`, wantError: pkgvalidator.InvalidJSONMessage},
		{name: "empty body", body: ``, wantError: pkgvalidator.InvalidJSONMessage},
		{name: "wrong type", body: `{"owner_id":"three","title":"widget"}`, wantError: pkgvalidator.InvalidJSONMessage},
		{name: "missing owner", body: `{"title":"widget"}`, wantError: pkgvalidator.ValidationFailedMessage, wantField: "owner_id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			req, ok := pkgvalidator.ValidateRequest[createReq](w, r)
			if ok != tt.wantOK {
				t.Fatalf("ok: got %v, want %v (%s)", ok, tt.wantOK, w.Body.String())
			}
			if tt.wantOK {
				if req.OwnerID != 3 || req.Title != "widget" {
					t.Errorf("unexpected decode: %+v", req)
				}
				return
			}
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
			var body struct {
				Error  string            `json:"error"`
				Fields map[string]string `json:"fields"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Error != tt.wantError {
				t.Errorf("error: got %q, want %q", body.Error, tt.wantError)
			}
			if tt.wantField != "" && body.Fields[tt.wantField] == "" {
				t.Errorf("expected message for %s, got %v", tt.wantField, body.Fields)
			}
		})
	}
}
