package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	cases := []struct {
		name string
		got  string
		want string
	}{
		{"CLIName", CLIName(), "wb-agent"},
		{"HomeDir", HomeDir(), ".wb-agent"},
		{"EnvPrefix", EnvPrefix(), "WBAGENT"},
		{"AgentDir", AgentDir(), ".agent"},
		{"ASFVersion", ASFVersion(), "3.3"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("%s() = %q, want %q", tc.name, tc.got, tc.want)
			}
		})
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("log_level"); got != "WBAGENT_LOG_LEVEL" {
		t.Errorf("EnvVar(log_level) = %q, want %q", got, "WBAGENT_LOG_LEVEL")
	}
}
