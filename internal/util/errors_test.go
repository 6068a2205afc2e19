package util

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestAsAppError(t *testing.T) {
	appErr := NotFoundError("lesson %q not found", "greetings-01")

	got, ok := AsAppError(appErr)
	if !ok {
		t.Fatal("AsAppError = false for a direct *AppError")
	}
	if got.Code != CodeNotFound {
		t.Errorf("Code = %q, want %q", got.Code, CodeNotFound)
	}

	wrapped := fmt.Errorf("loading lesson: %w", appErr)
	if _, ok := AsAppError(wrapped); !ok {
		t.Error("AsAppError = false for a wrapped *AppError")
	}

	if _, ok := AsAppError(fmt.Errorf("plain failure")); ok {
		t.Error("AsAppError = true for a plain error")
	}
}

func TestHandleErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err        *AppError
		wantStatus int
	}{
		{InvalidArgument("bad input"), http.StatusBadRequest},
		{NotFoundError("missing"), http.StatusNotFound},
		{FailedPrecondition("not ready"), http.StatusPreconditionFailed},
		{NewAppError(CodePermissionDenied, "no"), http.StatusForbidden},
		{NewAppError(CodeAlreadyExists, "dup"), http.StatusConflict},
		{NewAppError(CodeUnauthenticated, "who"), http.StatusUnauthorized},
		{NewAppError(CodeInternal, "boom"), http.StatusInternalServerError},
	}

	for _, c := range cases {
		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)

		HandleError(ctx, c.err)

		if w.Code != c.wantStatus {
			t.Errorf("HandleError(%q) status = %d, want %d", c.err.Code, w.Code, c.wantStatus)
		}

		var resp Response
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp.ErrorCode != c.err.Code {
			t.Errorf("errorCode = %q, want %q", resp.ErrorCode, c.err.Code)
		}
		if resp.Message != c.err.Message {
			t.Errorf("message = %q, want %q", resp.Message, c.err.Message)
		}
	}
}

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{100.0 / 3, 33.33},
		{200.0 / 3, 66.67},
		{62.5, 62.5},
		{0, 0},
		{0.125, 0.13}, // halves round away from zero
	}
	for _, c := range cases {
		if got := Round2(c.in); got != c.want {
			t.Errorf("Round2(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
