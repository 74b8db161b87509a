// Copyright 2025 The Windscribe Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidateFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.bin")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	if err := ValidateFileExists("input", file); err != nil {
		t.Errorf("Expected no error for existing file, got: %v", err)
	}
	if err := ValidateFileExists("input", ""); err == nil {
		t.Error("Expected error for empty path, got nil")
	}
	if err := ValidateFileExists("input", filepath.Join(dir, "missing")); err == nil {
		t.Error("Expected error for missing file, got nil")
	}
	if err := ValidateFileExists("input", dir); err == nil {
		t.Error("Expected error for directory, got nil")
	}
}

func TestValidateFolderExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.bin")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	if err := ValidateFolderExists("output", dir); err != nil {
		t.Errorf("Expected no error for existing directory, got: %v", err)
	}
	if err := ValidateFolderExists("output", file); err == nil {
		t.Error("Expected error for file, got nil")
	}
	if err := ValidateFolderExists("output", ""); err == nil {
		t.Error("Expected error for empty path, got nil")
	}
}

func TestValidateOptionalFile(t *testing.T) {
	if err := ValidateOptionalFile("key", ""); err != nil {
		t.Errorf("Expected no error for empty optional path, got: %v", err)
	}
	if err := ValidateOptionalFile("key", filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Expected error for missing optional file, got nil")
	}
}
