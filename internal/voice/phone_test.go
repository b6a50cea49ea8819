package voice

import (
	"errors"
	"testing"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "plain digits", in: "5551234567", want: "+5551234567"},
		{name: "already prefixed", in: "+15551234567", want: "+15551234567"},
		{name: "us formatted", in: "(555) 123-4567", want: "+5551234567"},
		{name: "spaces and hyphens", in: "+44 20 7946-0958", want: "+442079460958"},
		{name: "min significant digits", in: "123456789", want: "+123456789"},
		{name: "max significant digits", in: "123456789012345", want: "+123456789012345"},
		{name: "too short", in: "12345678", wantErr: true},
		{name: "too long", in: "1234567890123456", wantErr: true},
		{name: "leading zero", in: "0551234567", wantErr: true},
		{name: "letters", in: "555-CALL-NOW", wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "separators only", in: "() -", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizePhone(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("expected ValidationError, got %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
