package checkers

import (
	"context"
	"fmt"
	"os"
)

// UploadsChecker verifies the resume storage directory exists and is a
// directory. Downloads 404 in confusing ways when the dir is missing.
type UploadsChecker struct {
	dir string
}

func NewUploadsChecker(dir string) *UploadsChecker { return &UploadsChecker{dir: dir} }

func (c *UploadsChecker) Name() string { return "uploads" }

func (c *UploadsChecker) Check(_ context.Context) error {
	info, err := os.Stat(c.dir)
	if err != nil {
		return fmt.Errorf("uploads dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("uploads path %q is not a directory", c.dir)
	}
	return nil
}
