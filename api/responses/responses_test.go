package responses

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/carriedev/hazellab-backend/pkg/errors"
	"github.com/carriedev/hazellab-backend/pkg/types"
)

func TestWriteJSONReturnsBareEntity(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, 200, map[string]string{"nombre": "Etanol"})

	if rec.Code != 200 {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}

	var payload map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if payload["nombre"] != "Etanol" {
		t.Fatalf("expected bare entity, got %v", payload)
	}
}

func TestWriteErrorMapsTypedCodes(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "notFound",
			err:        pkgerrors.New(pkgerrors.CodeNotFound, "producto no encontrado"),
			wantStatus: 404,
			wantCode:   string(pkgerrors.CodeNotFound),
			wantMsg:    "producto no encontrado",
		},
		{
			name:       "validation",
			err:        pkgerrors.New(pkgerrors.CodeValidation, "el nombre es obligatorio"),
			wantStatus: 400,
			wantCode:   string(pkgerrors.CodeValidation),
			wantMsg:    "el nombre es obligatorio",
		},
		{
			name:       "unauthorized",
			err:        pkgerrors.New(pkgerrors.CodeUnauthorized, "credenciales inválidas"),
			wantStatus: 401,
			wantCode:   string(pkgerrors.CodeUnauthorized),
			wantMsg:    "credenciales inválidas",
		},
		{
			name:       "untyped",
			err:        errors.New("boom"),
			wantStatus: 500,
			wantCode:   string(pkgerrors.CodeInternal),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(context.Background(), nil, rec, tc.err)

			if rec.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, rec.Code)
			}

			var envelope types.ErrorEnvelope
			if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if envelope.Error.Code != tc.wantCode {
				t.Fatalf("expected code %q, got %q", tc.wantCode, envelope.Error.Code)
			}
			if tc.wantMsg != "" && envelope.Error.Message != tc.wantMsg {
				t.Fatalf("expected message %q, got %q", tc.wantMsg, envelope.Error.Message)
			}
		})
	}
}

func TestWriteErrorHidesInternalMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(context.Background(), nil, rec, pkgerrors.New(pkgerrors.CodeInternal, "dsn contains password"))

	var envelope types.ErrorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if envelope.Error.Message == "dsn contains password" {
		t.Fatalf("internal message must not leak to clients")
	}
}
