package storage

import (
	"errors"
	"fmt"
)

const (
	DriverSQLite = "sqlite"
	DriverJSON   = "json"
)

var ErrUnknownDriver = errors.New("storage: unknown driver")

// Open returns the store for driver at path together with a close function.
func Open(driver, path string) (Store, func() error, error) {
	switch driver {
	case DriverSQLite:
		repo, err := OpenSQLite(path)
		if err != nil {
			return nil, nil, err
		}
		return repo, repo.Close, nil
	case DriverJSON:
		return NewJSONFileStore(path), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
}
