package voice

import "testing"

func TestCredentials_Valid(t *testing.T) {
	cases := []struct {
		name  string
		creds Credentials
		want  bool
	}{
		{name: "all present", creds: Credentials{PrivateKey: "pk", PublicKey: "pub", AssistantID: "a"}, want: true},
		{name: "missing private", creds: Credentials{PublicKey: "pub", AssistantID: "a"}},
		{name: "missing public", creds: Credentials{PrivateKey: "pk", AssistantID: "a"}},
		{name: "missing assistant", creds: Credentials{PrivateKey: "pk", PublicKey: "pub"}},
		{name: "whitespace only", creds: Credentials{PrivateKey: "  ", PublicKey: "pub", AssistantID: "a"}},
		{name: "placeholder private", creds: Credentials{PrivateKey: "your_vapi_private_key", PublicKey: "pub", AssistantID: "a"}},
		{name: "placeholder assistant", creds: Credentials{PrivateKey: "pk", PublicKey: "pub", AssistantID: "YOUR_ASSISTANT_ID"}},
		{name: "changeme", creds: Credentials{PrivateKey: "changeme", PublicKey: "pub", AssistantID: "a"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.creds.Valid(); got != tc.want {
				t.Fatalf("Valid() = %v, want %v", got, tc.want)
			}
		})
	}
}
