package global

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestConfigSave(t *testing.T) {
	// 1. 创建临时配置文件
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "config.yaml")

	initialConfig := config{
		Sync: Sync{
			Account: "user@example.com",
		},
	}
	data, err := yaml.Marshal(initialConfig)
	if err != nil {
		t.Fatalf("Failed to marshal initial config: %v", err)
	}

	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		t.Fatalf("Failed to write initial config file: %v", err)
	}

	// 2. 加载配置
	absPath, _ := filepath.Abs(tmpFile)
	_, err = ConfigLoad(absPath)
	if err != nil {
		t.Fatalf("ConfigLoad failed: %v", err)
	}

	// 3. 修改配置并保存
	Config.Sync.AutoSync = true
	if err := Config.Save(); err != nil {
		t.Fatalf("Config.Save error: %v, file: %s", err, Config.File)
	}

	// 4. 重新加载并验证保存结果
	reloaded, err := ConfigLoad(absPath)
	if err != nil {
		t.Fatalf("ConfigLoad after save failed: %v", err)
	}
	if !reloaded.Sync.AutoSync {
		t.Errorf("Sync.AutoSync = false after save, want true")
	}
	if reloaded.Sync.Account != "user@example.com" {
		t.Errorf("Sync.Account = %q, want user@example.com", reloaded.Sync.Account)
	}
}

func TestConfigDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(tmpFile, []byte("server:\n  http-port: \":8080\"\n"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	c, err := ConfigLoad(tmpFile)
	if err != nil {
		t.Fatalf("ConfigLoad failed: %v", err)
	}

	if c.Server.HttpPort != ":8080" {
		t.Errorf("Server.HttpPort = %q, want :8080", c.Server.HttpPort)
	}
	// 未显式配置的字段应落到默认值
	if c.Database.Type != "sqlite" {
		t.Errorf("Database.Type = %q, want sqlite", c.Database.Type)
	}
	if c.Sync.FolderName != "NoteAppBackup" {
		t.Errorf("Sync.FolderName = %q, want NoteAppBackup", c.Sync.FolderName)
	}
	if c.Sync.FileName != "notes_backup.json" {
		t.Errorf("Sync.FileName = %q, want notes_backup.json", c.Sync.FileName)
	}
}
