package parser

import (
	"io"
	"log/slog"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/snapledger/snapledger/internal/entity"
)

func TestParser(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Parser Suite")
}

const sampleReceipt = `SHOPRITE SUPERMARKET
123 Main Street Tel: 555-0142
Date: 2024-01-15
ITEM
BREAD 2.50
MILK 3.75
EGGS 4.20
SUGAR 3.10
RICE 4.50
SUBTOTAL 18.05
TAX 2.71
TOTAL 20.76
CASH 25.00
CHANGE 4.24
THANK YOU`

var _ = Describe("Parse", func() {
	var (
		p        *Parser
		text     string
		currency string
		data     *entity.ReceiptData
		err      error
	)

	BeforeEach(func() {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		p = NewParser(logger, WithClock(func() time.Time { return fixed }))
		currency = "USD"
	})

	JustBeforeEach(func() {
		data, err = p.Parse(text, currency)
	})

	When("parsing the sample supermarket receipt", func() {
		BeforeEach(func() {
			text = sampleReceipt
		})

		It("should not return an error", func() {
			Expect(err).NotTo(HaveOccurred())
		})

		It("should pick the merchant from the keyword scan", func() {
			Expect(data.Merchant).To(Equal("SHOPRITE SUPERMARKET"))
		})

		It("should normalize the date", func() {
			Expect(data.Date).To(Equal("2024-01-15"))
		})

		It("should resolve the labeled total, not cash or change", func() {
			Expect(data.Amount).NotTo(BeNil())
			Expect(*data.Amount).To(BeNumerically("~", 20.76, 0.001))
		})

		It("should resolve tax and subtotal", func() {
			Expect(data.Tax).NotTo(BeNil())
			Expect(*data.Tax).To(BeNumerically("~", 2.71, 0.001))
			Expect(data.Subtotal).NotTo(BeNil())
			Expect(*data.Subtotal).To(BeNumerically("~", 18.05, 0.001))
		})

		It("should extract exactly the five item lines", func() {
			Expect(data.Items).To(Equal([]string{
				"BREAD - USD 2.50",
				"MILK - USD 3.75",
				"EGGS - USD 4.20",
				"SUGAR - USD 3.10",
				"RICE - USD 4.50",
			}))
		})

		It("should be deterministic across invocations", func() {
			again, err2 := p.Parse(sampleReceipt, "USD")
			Expect(err2).NotTo(HaveOccurred())
			Expect(again).To(Equal(data))
		})
	})

	When("the text is empty", func() {
		BeforeEach(func() {
			text = "   \n  \n"
		})

		It("should return an error", func() {
			Expect(err).To(HaveOccurred())
		})
	})

	When("the currency code is invalid", func() {
		BeforeEach(func() {
			text = sampleReceipt
			currency = "usd"
		})

		It("should return an error", func() {
			Expect(err).To(HaveOccurred())
		})
	})

	When("no total or trailing amount exists but items do", func() {
		BeforeEach(func() {
			// Currency-suffixed item lines defeat the positional scan too,
			// forcing the item-sum fallback.
			text = `CORNER STORE
Date: 2024-03-02
BREAD 2.50 USD
MILK 3.75 USD
THANK YOU`
		})

		It("should fall back to the item sum", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(data.Amount).NotTo(BeNil())
			Expect(*data.Amount).To(BeNumerically("~", 6.25, 0.001))
		})
	})

	When("no date line exists", func() {
		BeforeEach(func() {
			text = `CORNER STORE
BREAD 2.50
TOTAL 2.50`
		})

		It("should fall back to the injected clock's date", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(data.Date).To(Equal("2024-06-01"))
		})
	})

	When("no merchant keyword appears in the first lines", func() {
		BeforeEach(func() {
			text = `ACME TRADING LTD
Date: 2024-02-01
WIDGET 5.00
TOTAL 5.00`
		})

		It("should use the first line", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(data.Merchant).To(Equal("ACME TRADING LTD"))
		})
	})

	When("an address line names a street without contact noise", func() {
		BeforeEach(func() {
			text = `GREEN MARKET
45 Elm Street Springfield
Date: 2024-02-01
APPLES 3.00
TOTAL 3.00`
		})

		It("should capture the address", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(data.Address).To(Equal("45 Elm Street Springfield"))
		})
	})

	When("several items collapse onto one line", func() {
		BeforeEach(func() {
			text = `GREEN MARKET
Date: 2024-02-01
BREAD - USD 2.50 MILK - USD 3.75
TOTAL 6.25`
		})

		It("should split the line into separate items", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(data.Items).To(Equal([]string{
				"BREAD - USD 2.50",
				"MILK - USD 3.75",
			}))
		})
	})

	When("an item line carries quantity at unit price", func() {
		BeforeEach(func() {
			text = `GREEN MARKET
Date: 2024-02-01
SODA x 3 @ 1.50
BREAD 2.00
TOTAL 6.50`
		})

		It("should record the multiplied line total", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(data.Items).To(Equal([]string{
				"SODA - USD 4.50",
				"BREAD - USD 2.00",
			}))
		})
	})
})

var _ = Describe("date normalization", func() {
	var p *Parser

	BeforeEach(func() {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		p = NewParser(logger)
	})

	parseDate := func(line string) string {
		data, err := p.Parse("STORE\n"+line+"\nTOTAL 1.00", "USD")
		Expect(err).NotTo(HaveOccurred())
		return data.Date
	}

	It("accepts ISO dates as-is", func() {
		Expect(parseDate("Date: 2024-01-15")).To(Equal("2024-01-15"))
	})

	It("accepts slashed year-led dates", func() {
		Expect(parseDate("2024/1/5")).To(Equal("2024-01-05"))
	})

	It("reads dash-separated day-led dates as day first", func() {
		Expect(parseDate("05-03-2024")).To(Equal("2024-03-05"))
	})

	It("reads slashed dates with day greater than twelve as day first", func() {
		Expect(parseDate("15/01/2024")).To(Equal("2024-01-15"))
	})

	It("reads ambiguous slashed dates as month first", func() {
		Expect(parseDate("03/04/2024")).To(Equal("2024-03-04"))
	})

	It("rejects impossible calendar dates", func() {
		// Feb 30 fails validation, so the clock fallback kicks in.
		today := time.Now().Format("2006-01-02")
		Expect(parseDate("30/02/2024")).To(Equal(today))
	})
})

var _ = Describe("total selection", func() {
	var p *Parser

	BeforeEach(func() {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		p = NewParser(logger)
	})

	parseAmountOf := func(text string) *float64 {
		data, err := p.Parse(text, "USD")
		Expect(err).NotTo(HaveOccurred())
		return data.Amount
	}

	It("prefers a label-anchored total over a later positional amount", func() {
		amount := parseAmountOf("STORE\nTOTAL 10.00\nSOME NOTE 99.99")
		Expect(amount).NotTo(BeNil())
		Expect(*amount).To(BeNumerically("~", 10.00, 0.001))
	})

	It("never picks amounts from payment lines", func() {
		amount := parseAmountOf("STORE\nTOTAL 10.00\nCASH 50.00\nCHANGE 40.00")
		Expect(amount).NotTo(BeNil())
		Expect(*amount).To(BeNumerically("~", 10.00, 0.001))
	})

	It("does not confuse SUBTOTAL with TOTAL", func() {
		data, err := p.Parse("STORE\nSUBTOTAL 9.00\nTOTAL 10.00", "USD")
		Expect(err).NotTo(HaveOccurred())
		Expect(*data.Amount).To(BeNumerically("~", 10.00, 0.001))
		Expect(*data.Subtotal).To(BeNumerically("~", 9.00, 0.001))
	})

	It("falls back to a positional trailing amount", func() {
		amount := parseAmountOf("STORE\nWIDGET THING 12.34")
		Expect(amount).NotTo(BeNil())
		Expect(*amount).To(BeNumerically("~", 12.34, 0.001))
	})

	It("ignores amounts outside the plausible range", func() {
		data, err := p.Parse("STORE\nTOTAL 250000.00", "USD")
		Expect(err).NotTo(HaveOccurred())
		Expect(data.Amount).To(BeNil())
	})

	It("strips thousands separators", func() {
		amount := parseAmountOf("STORE\nTOTAL 1,234.56")
		Expect(amount).NotTo(BeNil())
		Expect(*amount).To(BeNumerically("~", 1234.56, 0.001))
	})

	It("reads unseparated amounts of four or more digits in full", func() {
		amount := parseAmountOf("STORE\nTOTAL 1234.56")
		Expect(amount).NotTo(BeNil())
		Expect(*amount).To(BeNumerically("~", 1234.56, 0.001))

		amount = parseAmountOf("STORE\nAMOUNT 2500.00")
		Expect(amount).NotTo(BeNil())
		Expect(*amount).To(BeNumerically("~", 2500.00, 0.001))
	})
})
