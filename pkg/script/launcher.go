// Copyright 2020 PingCAP, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// See the License for the specific language governing permissions and
// limitations under the License.

package script

import (
	"context"
	"os/exec"

	"github.com/juju/errors"
	"go.uber.org/zap"
)

// Launcher opens a persisted script for the user
type Launcher interface {
	Launch(ctx context.Context, location string) error
}

// NopLauncher does not open anything
type NopLauncher struct{}

// Launch implements Launcher
func (NopLauncher) Launch(ctx context.Context, location string) error {
	return nil
}

// ExecLauncher starts Program with Args followed by the script path and does not wait for it.
type ExecLauncher struct {
	Program string
	Args    []string
}

// NewLauncher returns an ExecLauncher for program, or a NopLauncher if program is empty.
func NewLauncher(program string) Launcher {
	if program == "" {
		return NopLauncher{}
	}
	return ExecLauncher{Program: program}
}

// Launch implements Launcher
func (l ExecLauncher) Launch(ctx context.Context, location string) error {
	if err := ctx.Err(); err != nil {
		return errors.Trace(err)
	}
	// The viewer outlives this process, so it is not bound to ctx.
	args := append(append([]string{}, l.Args...), location)
	cmd := exec.Command(l.Program, args...)
	if err := cmd.Start(); err != nil {
		return errors.Annotatef(err, "start %s %s", l.Program, location)
	}
	zap.L().Info("open script", zap.String("viewer", l.Program), zap.String("path", location), zap.Int("pid", cmd.Process.Pid))
	return errors.Trace(cmd.Process.Release())
}
