package cli

import "testing"

func TestSetVersion(t *testing.T) {
	old := version
	defer func() { version = old }()

	SetVersion("1.2.3")
	if version != "1.2.3" {
		t.Errorf("expected version '1.2.3', got '%s'", version)
	}
}

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "hwpinspect [command]" {
		t.Errorf("expected Use 'hwpinspect [command]', got '%s'", rootCmd.Use)
	}
	if rootCmd.Short == "" {
		t.Error("expected Short description to be set")
	}
}

func TestInspectCommand(t *testing.T) {
	if inspectCmd.Use != "inspect <path>" {
		t.Errorf("expected Use 'inspect <path>', got '%s'", inspectCmd.Use)
	}
	if err := inspectCmd.Args(inspectCmd, []string{}); err == nil {
		t.Error("expected error for missing path argument")
	}
	if err := inspectCmd.Args(inspectCmd, []string{"a.hwp"}); err != nil {
		t.Errorf("expected no error for single path argument, got %v", err)
	}
}

func TestConfigCommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range configCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"show", "init", "path"} {
		if !names[want] {
			t.Errorf("expected config subcommand %q to be registered", want)
		}
	}
}

func TestDocInfoTagName(t *testing.T) {
	if got := docInfoTagName(0x010); got != "DOCUMENT_PROPERTIES" {
		t.Errorf("docInfoTagName(0x010) = %q", got)
	}
	if got := docInfoTagName(0x999); got != "0x999" {
		t.Errorf("docInfoTagName(0x999) = %q", got)
	}
}

func TestPreviewText(t *testing.T) {
	if got := previewText("short", 40); got != "short" {
		t.Errorf("previewText: got %q", got)
	}
	long := ""
	for i := 0; i < 50; i++ {
		long += "a"
	}
	got := previewText(long, 40)
	if len([]rune(got)) != 41 {
		t.Errorf("previewText: expected truncation to 40 runes + ellipsis, got %d runes", len([]rune(got)))
	}
}
