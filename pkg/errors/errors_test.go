// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/dyeshell/dye/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "not_found_error",
			code:    errors.ErrNotFound,
			message: "theme not found",
			wantStr: "[NOT_FOUND] theme not found",
		},
		{
			name:    "syntax_error",
			code:    errors.ErrSyntax,
			message: "unknown style 'bogus' while processing scope 'ls'",
			wantStr: "[SYNTAX] unknown style 'bogus' while processing scope 'ls'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
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

func TestNewf(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		format  string
		args    []interface{}
		wantMsg string
	}{
		{
			name:    "format_with_string",
			code:    errors.ErrInvalidInput,
			format:  "invalid value: %s",
			args:    []interface{}{"test"},
			wantMsg: "invalid value: test",
		},
		{
			name:    "format_with_multiple_args",
			code:    errors.ErrScopeNotFound,
			format:  "%s: no such scope in '%s'",
			args:    []interface{}{"iterm", "pattern.toml"},
			wantMsg: "iterm: no such scope in 'pattern.toml'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.Newf(tt.code, tt.format, tt.args...)

			if err.Message != tt.wantMsg {
				t.Errorf("Newf() message = %q, want %q", err.Message, tt.wantMsg)
			}
		})
	}
}

func TestSyntaxf(t *testing.T) {
	err := errors.Syntaxf("unknown cursor '%s' while processing scope '%s'", "triangle", "iterm")

	if err.Code != errors.ErrSyntax {
		t.Errorf("Syntaxf() code = %v, want %v", err.Code, errors.ErrSyntax)
	}

	wantMsg := "unknown cursor 'triangle' while processing scope 'iterm'"
	if err.Message != wantMsg {
		t.Errorf("Syntaxf() message = %q, want %q", err.Message, wantMsg)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrInternal, "internal error")

		if err.Code != errors.ErrInternal {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrInternal)
		}

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[INTERNAL] internal error: base error"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		err := errors.Wrap(nil, errors.ErrInternal, "internal error")
		if err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrNotFound, "not found").
		WithDetail("path", "/test/path").
		WithDetail("type", "theme")

	if err.Details["path"] != "/test/path" {
		t.Errorf("WithDetail() path = %v, want %v", err.Details["path"], "/test/path")
	}

	if err.Details["type"] != "theme" {
		t.Errorf("WithDetail() type = %v, want %v", err.Details["type"], "theme")
	}
}

func TestWithDetails(t *testing.T) {
	details := map[string]interface{}{
		"scope": "gnu_ls",
		"agent": "gnu_ls",
		"style": "directory",
	}

	err := errors.New(errors.ErrSyntax, "bad style").
		WithDetails(details)

	for k, v := range details {
		if err.Details[k] != v {
			t.Errorf("WithDetails() %s = %v, want %v", k, err.Details[k], v)
		}
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrNotFound, "error 1")
	err2 := errors.New(errors.ErrNotFound, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	t.Run("same_code_is_equal", func(t *testing.T) {
		if !err1.Is(err2) {
			t.Error("Is() should return true for same code")
		}
	})

	t.Run("different_code_not_equal", func(t *testing.T) {
		if err1.Is(err3) {
			t.Error("Is() should return false for different codes")
		}
	})

	t.Run("works_with_errors_Is", func(t *testing.T) {
		if !stderrors.Is(err1, err2) {
			t.Error("errors.Is() should work with DyeError")
		}
	})
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
			err:      errors.New(errors.ErrNotFound, "not found"),
			code:     errors.ErrNotFound,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrNotFound, "not found"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrPatternLoad, "cannot read"),
			code:     errors.ErrPatternLoad,
			expected: true,
		},
		{
			name:     "non_dye_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrNotFound,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrNotFound,
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
	tests := []struct {
		name     string
		err      error
		expected errors.ErrorCode
	}{
		{
			name:     "dye_error",
			err:      errors.New(errors.ErrUnknownAgent, "this program does not know how to process 'mystery' scopes"),
			expected: errors.ErrUnknownAgent,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			expected: errors.ErrUnknown,
		},
		{
			name:     "nil_error",
			err:      nil,
			expected: errors.ErrUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetErrorCode(tt.err); got != tt.expected {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	// Create a chain of errors
	rootCause := stderrors.New("root cause")
	readErr := errors.Wrap(rootCause, errors.ErrPatternLoad, "cannot read pattern file")
	applyErr := errors.Wrap(readErr, errors.ErrAgentRun, "failed to render scope")

	t.Run("top_level_has_correct_code", func(t *testing.T) {
		if !errors.IsErrorCode(applyErr, errors.ErrAgentRun) {
			t.Error("Top level should have ErrAgentRun code")
		}
	})

	t.Run("can_find_middle_error", func(t *testing.T) {
		var dyeErr *errors.DyeError
		if stderrors.As(applyErr.Unwrap(), &dyeErr) {
			if !errors.IsErrorCode(dyeErr, errors.ErrPatternLoad) {
				t.Error("Middle error should have ErrPatternLoad code")
			}
		}
	})

	t.Run("can_find_root_cause", func(t *testing.T) {
		if !stderrors.Is(applyErr, rootCause) {
			t.Error("Should find root cause with errors.Is")
		}
	})
}

func TestUserMessage(t *testing.T) {
	t.Run("single_error_drops_code", func(t *testing.T) {
		err := errors.New(errors.ErrSyntax, "unknown cursor 'wedge' while processing scope 'iterm'")
		got := errors.UserMessage(err)
		want := "unknown cursor 'wedge' while processing scope 'iterm'"
		if got != want {
			t.Errorf("UserMessage = %q, want %q", got, want)
		}
	})

	t.Run("chain_joins_messages", func(t *testing.T) {
		root := stderrors.New("no such file or directory")
		err := errors.Wrap(root, errors.ErrThemeLoad, "unable to read theme file 'x.toml'")
		got := errors.UserMessage(err)
		want := "unable to read theme file 'x.toml': no such file or directory"
		if got != want {
			t.Errorf("UserMessage = %q, want %q", got, want)
		}
	})

	t.Run("plain_error_passes_through", func(t *testing.T) {
		err := stderrors.New("plain")
		if got := errors.UserMessage(err); got != "plain" {
			t.Errorf("UserMessage = %q, want %q", got, "plain")
		}
	})
}
