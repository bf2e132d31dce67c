/* utils.go
 * Utility functions used by main
 */

package main

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
)

// loadEnv loads environment variables from the given files. Files that do not exist are skipped, variables
// already set in the environment are kept
// Postconditions: Returns an error if a file exists but cannot be parsed
func loadEnv(paths ...string) error {
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return err
		}
	}
	return nil
}
