// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/bborbe/pr-panel/pkg/factory"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()
	f := factory.New()

	command := "serve"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	switch command {
	case "serve":
		r, err := f.CreateRunner(ctx)
		if err != nil {
			return err
		}
		return r.Run(ctx)
	case "create":
		c, err := f.CreateCreateCommand(ctx)
		if err != nil {
			return err
		}
		return c.Run(ctx, os.Args[2:])
	case "status":
		s, err := f.CreateStatusCommand(ctx)
		if err != nil {
			return err
		}
		return s.Run(ctx, os.Args[2:])
	default:
		return fmt.Errorf("unknown command '%s' (expected serve, create or status)", command)
	}
}
