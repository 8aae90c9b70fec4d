package bus

import (
	"errors"
	"fmt"
)

// RoutingError is returned when no device answers at an address or when
// the access is denied by a lock held on the region.
type RoutingError struct {
	Addr   uint16
	Area   Area
	Holder Lock
}

func (e *RoutingError) Error() string {
	if e.Holder != NoLock {
		return fmt.Sprintf("bus error at 0x%04x: %s locked by %s", e.Addr, e.Area, e.Holder)
	}
	return fmt.Sprintf("bus error at 0x%04x: no device", e.Addr)
}

// RegionError is returned by a device for an address inside its region that
// it does not decode.
type RegionError struct {
	Addr uint16
	Area Area
}

func (e *RegionError) Error() string {
	return fmt.Sprintf("segmentation fault at 0x%04x in %s", e.Addr, e.Area)
}

// Unmapped builds the RegionError for addr.
func Unmapped(addr Address) error {
	return &RegionError{Addr: addr.Absolute, Area: addr.Area}
}

func IsRoutingError(err error) bool {
	var e *RoutingError
	return errors.As(err, &e)
}

func IsRegionError(err error) bool {
	var e *RegionError
	return errors.As(err, &e)
}
