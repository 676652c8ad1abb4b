package app

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadConfigDefaults(t *testing.T) {
	// 1. 创建仅包含部分字段的临时配置文件
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "config.yaml")

	content := []byte("server:\n  http-port: \":8080\"\ndatabase:\n  name: notes_test\n")
	if err := os.WriteFile(tmpFile, content, 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	// 2. 加载配置
	c, realpath, err := LoadConfig(tmpFile)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if realpath == "" {
		t.Error("Expected non-empty realpath")
	}

	// 3. 显式提供的字段生效
	if c.Server.HttpPort != ":8080" {
		t.Errorf("Expected HttpPort :8080, got %s", c.Server.HttpPort)
	}
	if c.Database.Name != "notes_test" {
		t.Errorf("Expected database name notes_test, got %s", c.Database.Name)
	}

	// 4. 未提供的字段填充默认值
	if c.Server.RunMode != "release" {
		t.Errorf("Expected RunMode release, got %s", c.Server.RunMode)
	}
	if c.Database.URI != "mongodb://127.0.0.1:27017" {
		t.Errorf("Expected default database URI, got %s", c.Database.URI)
	}
	if c.Database.Collection != "notes" {
		t.Errorf("Expected default collection notes, got %s", c.Database.Collection)
	}
	if c.App.DefaultContextTimeout != 60 {
		t.Errorf("Expected DefaultContextTimeout 60, got %d", c.App.DefaultContextTimeout)
	}
	if c.Cors.AllowOrigin != "*" {
		t.Errorf("Expected AllowOrigin *, got %s", c.Cors.AllowOrigin)
	}
	if c.Tracer.Header != "X-Trace-ID" {
		t.Errorf("Expected tracer header X-Trace-ID, got %s", c.Tracer.Header)
	}
}

func TestConfigSave(t *testing.T) {
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(tmpFile, []byte("log:\n  level: info\n"), 0644); err != nil {
		t.Fatalf("Failed to write initial config file: %v", err)
	}

	c, _, err := LoadConfig(tmpFile)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	// 修改配置并保存
	c.Log.Level = "debug"
	if err := c.Save(); err != nil {
		t.Fatalf("Config.Save error: %v, file: %s", err, c.File)
	}

	// 验证文件内容
	updatedData, err := os.ReadFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to read updated config file: %v", err)
	}

	var updated AppConfig
	if err := yaml.Unmarshal(updatedData, &updated); err != nil {
		t.Fatalf("Failed to unmarshal updated config: %v", err)
	}

	if updated.Log.Level != "debug" {
		t.Errorf("Expected log level debug, got %s", updated.Log.Level)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("Expected error for missing config file")
	}
}
