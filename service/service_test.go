package service

import "testing"

func TestCmdTypePath(t *testing.T) {
	tests := []struct {
		cmd  CmdType
		path string
		name string
	}{
		{Open, "/open", "open"},
		{IsOpen, "/isopen", "isopen"},
		{Uid, "/uid", "uid"},
		{Write, "/write", "write"},
		{Read, "/read", "read"},
		{Close, "/close", "close"},
		{CmdType(42), "", "unknown"},
	}

	for _, tt := range tests {
		if got := tt.cmd.Path(); got != tt.path {
			t.Errorf("CmdType(%d).Path() = %q, want %q", tt.cmd, got, tt.path)
		}
		if got := tt.cmd.String(); got != tt.name {
			t.Errorf("CmdType(%d).String() = %q, want %q", tt.cmd, got, tt.name)
		}
	}
}

func TestParseResponse(t *testing.T) {
	resp, err := ParseResponse(`{"success":true,"message":"QCA="}`)
	if err != nil {
		t.Fatalf("ParseResponse() error = %v", err)
	}
	if !resp.Success || resp.Message != "QCA=" {
		t.Fatalf("unexpected response %+v", resp)
	}

	if _, err := ParseResponse("OK"); err == nil {
		t.Fatal("expected error for non-JSON body")
	}
}
