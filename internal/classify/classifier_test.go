package classify

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/snapledger/snapledger/constants"
)

func TestClassify(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Classify Suite")
}

var _ = Describe("Classify", func() {
	It("maps merchant keywords to categories", func() {
		Expect(Classify("SHOPRITE SUPERMARKET")).To(Equal(string(constants.Groceries)))
		Expect(Classify("Corner Cafe")).To(Equal(string(constants.FoodDining)))
		Expect(Classify("SHELL GAS STATION")).To(Equal(string(constants.Fuel)))
		Expect(Classify("City Pharmacy")).To(Equal(string(constants.Healthcare)))
		Expect(Classify("ACE HARDWARE")).To(Equal(string(constants.Supplies)))
	})

	It("is case insensitive", func() {
		Expect(Classify("corner store")).To(Equal(string(constants.Groceries)))
	})

	It("returns empty when no keyword matches", func() {
		Expect(Classify("ACME WIDGETS LTD")).To(Equal(""))
		Expect(Classify("")).To(Equal(""))
	})

	It("lets the earliest rule win when keywords overlap", func() {
		// SHOP outranks CAFE because the grocery rule is listed first.
		Expect(Classify("SHOP & CAFE")).To(Equal(string(constants.Groceries)))
	})
})
