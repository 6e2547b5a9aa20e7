package multipole

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestMultipole(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Multipole Suite")
}
