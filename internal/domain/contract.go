package domain

import (
	"fmt"
	"os"
	"path/filepath"
)

// ImageExtension is the file extension of every rendered image
const ImageExtension = ".png"

// OutputContract states what a run-mode invocation must leave behind:
// the executable runs in Dir and writes Image, named after the backend.
type OutputContract struct {
	Test  TestDescriptor
	Dir   string
	Image string
}

// NewOutputContract builds the contract for running test inside dir
func NewOutputContract(test TestDescriptor, dir string) OutputContract {
	return OutputContract{
		Test:  test,
		Dir:   dir,
		Image: filepath.Join(dir, test.Backend()+ImageExtension),
	}
}

// Validate checks the image exists and is a regular file
func (c OutputContract) Validate() error {
	info, err := os.Stat(c.Image)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrMissingOutput, c.Image)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s is not a regular file", ErrMissingOutput, c.Image)
	}
	return nil
}
