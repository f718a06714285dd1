package usecase

import (
	"testing"

	"go.uber.org/goleak"
)

// Ad fan-out must not leave goroutines behind.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
