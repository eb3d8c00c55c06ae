//
// CareSched is pleased to support the open source community by making agenteval available.
//
// Copyright (C) 2025 CareSched.  All rights reserved.
//
// agenteval is licensed under the Apache License Version 2.0.
//
//

package dashboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	defaultDirPermission  = 0o755
	defaultFilePermission = 0o644
	defaultTempFileSuffix = ".tmp"
)

// Export writes the report to path as indented JSON. The write is atomic: the
// report is written to a temporary file and renamed into place, so a reader
// never observes a partial export.
func Export(rpt *Report, path string) error {
	if rpt == nil {
		return errors.New("report is nil")
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, defaultDirPermission); err != nil {
		return fmt.Errorf("mkdir all %s: %w", dir, err)
	}
	tmp := path + defaultTempFileSuffix
	file, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, defaultFilePermission)
	if err != nil {
		return fmt.Errorf("open file %s: %w", tmp, err)
	}
	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(rpt); err != nil {
		file.Close()
		os.Remove(tmp)
		return fmt.Errorf("encode file %s: %w", tmp, err)
	}
	if err := file.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close file %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename file %s to %s: %w", tmp, path, err)
	}
	return nil
}

// Load reads a previously exported report from path.
func Load(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}
	var rpt Report
	if err := json.Unmarshal(data, &rpt); err != nil {
		return nil, fmt.Errorf("unmarshal file %s: %w", path, err)
	}
	if rpt.Tools.Frequency == nil {
		rpt.Tools.Frequency = map[string]int{}
	}
	if rpt.PerAgent == nil {
		rpt.PerAgent = map[string]*AgentReport{}
	}
	return &rpt, nil
}
