package schema

import (
	"encoding/json"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/snapledger/snapledger/constants"
	"github.com/snapledger/snapledger/internal/entity"
)

func TestSchema(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Schema Suite")
}

var _ = Describe("receipt schema validation", func() {
	var schemaMap map[string]any

	BeforeEach(func() {
		schemaMap = BuildReceiptJSONSchema(constants.AsStringSlice())
	})

	validate := func(doc any) error {
		raw, err := json.Marshal(doc)
		Expect(err).NotTo(HaveOccurred())
		return ValidateJSONAgainstSchema(schemaMap, raw)
	}

	It("accepts a complete parsed record", func() {
		amount := 20.76
		tax := 2.71
		data := &entity.ReceiptData{
			Merchant: "SHOPRITE SUPERMARKET",
			Address:  "123 Main Street",
			Date:     "2024-01-15",
			Amount:   &amount,
			Tax:      &tax,
			Items:    []string{"BREAD - USD 2.50"},
			Category: string(constants.Groceries),
		}
		Expect(validate(data)).To(Succeed())
	})

	It("accepts a sparse record as long as date and items are present", func() {
		Expect(validate(&entity.ReceiptData{Date: "2024-01-15", Items: []string{}})).To(Succeed())
	})

	It("rejects a malformed date", func() {
		Expect(validate(&entity.ReceiptData{Date: "15/01/2024", Items: []string{}})).NotTo(Succeed())
	})

	It("rejects amounts outside the plausible range", func() {
		zero := 0.0
		huge := 100000.0
		Expect(validate(&entity.ReceiptData{Date: "2024-01-15", Items: []string{}, Amount: &zero})).NotTo(Succeed())
		Expect(validate(&entity.ReceiptData{Date: "2024-01-15", Items: []string{}, Amount: &huge})).NotTo(Succeed())
	})

	It("rejects a category outside the taxonomy", func() {
		Expect(validate(&entity.ReceiptData{Date: "2024-01-15", Items: []string{}, Category: "Gambling"})).NotTo(Succeed())
	})

	It("rejects unknown fields", func() {
		Expect(validate(map[string]any{
			"date":  "2024-01-15",
			"items": []string{},
			"memo":  "hand-written note",
		})).NotTo(Succeed())
	})

	It("rejects empty item strings", func() {
		Expect(validate(&entity.ReceiptData{Date: "2024-01-15", Items: []string{""}})).NotTo(Succeed())
	})

	When("no taxonomy is supplied", func() {
		It("accepts any category string", func() {
			open := BuildReceiptJSONSchema(nil)
			raw, err := json.Marshal(&entity.ReceiptData{Date: "2024-01-15", Items: []string{}, Category: "Anything"})
			Expect(err).NotTo(HaveOccurred())
			Expect(ValidateJSONAgainstSchema(open, raw)).To(Succeed())
		})
	})
})
