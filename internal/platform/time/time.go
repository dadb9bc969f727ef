// Package time contains time related helpers
package time

import "time"

// Now is the wall clock seam; tests may swap it to freeze time
var Now = time.Now

// Ptr returns a pointer to t or nil if t is zero
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
