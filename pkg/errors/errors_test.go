// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and line rendering

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/scrubjay/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "target_exists_error",
			code:    errors.ErrTargetExists,
			message: "`/home/u/.vimrc` already exists",
			wantStr: "[TARGET_EXISTS] `/home/u/.vimrc` already exists",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "invalid configuration",
			wantStr: "[INVALID_INPUT] invalid configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrWalk, "cannot read package")

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[WALK] cannot read package: base error"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		err := errors.Wrap(nil, errors.ErrWalk, "cannot read package")
		if err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrNotASymlink, "not a symlink").
		WithDetail("path", "/test/path").
		WithDetail("phase", "uninstall")

	if err.Details["path"] != "/test/path" {
		t.Errorf("WithDetail() path = %v, want %v", err.Details["path"], "/test/path")
	}

	if err.Details["phase"] != "uninstall" {
		t.Errorf("WithDetail() phase = %v, want %v", err.Details["phase"], "uninstall")
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrTargetExists, "error 1")
	err2 := errors.New(errors.ErrTargetExists, "error 2")
	err3 := errors.New(errors.ErrNotASymlink, "error 3")

	if !stderrors.Is(err1, err2) {
		t.Error("errors.Is() should match on code")
	}
	if stderrors.Is(err1, err3) {
		t.Error("errors.Is() should not match different codes")
	}
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrPackageNotFound, "not found"),
			code:     errors.ErrPackageNotFound,
			expected: true,
		},
		{
			name:     "fmt_wrapped",
			err:      fmt.Errorf("outer: %w", errors.New(errors.ErrHookCommand, "failed")),
			code:     errors.ErrHookCommand,
			expected: true,
		},
		{
			name:     "non_scrubjay_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrPackageNotFound,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrPackageNotFound,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := errors.GetErrorCode(errors.New(errors.ErrShellExpansion, "x")); got != errors.ErrShellExpansion {
		t.Errorf("GetErrorCode() = %v", got)
	}
	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode() = %v, want UNKNOWN", got)
	}
}

func TestLine(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "plain_message",
			err:  errors.New(errors.ErrNotASymlink, "`/t/a` is not a symlink"),
			want: "not_a_symlink: `/t/a` is not a symlink",
		},
		{
			name: "wrapped_io_error",
			err:  errors.Wrap(stderrors.New("permission denied"), errors.ErrLinkCreate, "cannot link `/t/a`"),
			want: "link_create: cannot link `/t/a`: permission denied",
		},
		{
			name: "nested_codes_drop_prefix",
			err: errors.Wrap(
				errors.New(errors.ErrShellExpansion, "variable `X` is not set"),
				errors.ErrWalk, "cannot compute target"),
			want: "walk: cannot compute target: variable `X` is not set",
		},
		{
			name: "multiline_stderr_collapsed",
			err:  errors.New(errors.ErrHookCommand, "`false` failed: line one\nline two\n"),
			want: "hook_command: `false` failed: line one line two",
		},
		{
			name: "foreign_error",
			err:  stderrors.New("boom"),
			want: "unknown: boom",
		},
		{
			name: "nil",
			err:  nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Line(tt.err); got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}
