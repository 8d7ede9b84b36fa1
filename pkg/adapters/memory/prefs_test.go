package memory

import (
	"testing"

	"github.com/atelier-tools/sift/pkg/ports/tests"
)

func TestPreferenceStoreContract(t *testing.T) {
	tests.RunPreferenceStoreContract(t, NewPreferenceStore())
}
