package catalog_test

import (
	"encoding/json"

	"github.com/furnimed/catalog-admin/internal/catalog"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Coercing types", func() {
	Describe("Decimal", func() {
		It("should accept a JSON number", func() {
			var d catalog.Decimal
			Expect(json.Unmarshal([]byte(`199.9`), &d)).To(Succeed())
			Expect(float64(d)).To(Equal(199.9))
		})

		It("should accept a quoted number", func() {
			var d catalog.Decimal
			Expect(json.Unmarshal([]byte(`"199.9"`), &d)).To(Succeed())
			Expect(float64(d)).To(Equal(199.9))
		})

		It("should reject an unparseable string", func() {
			var d catalog.Decimal
			err := json.Unmarshal([]byte(`"abc"`), &d)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring(`invalid decimal value "abc"`))
		})

		It("should leave the value untouched on null", func() {
			d := catalog.Decimal(5)
			Expect(json.Unmarshal([]byte(`null`), &d)).To(Succeed())
			Expect(float64(d)).To(Equal(5.0))
		})
	})

	Describe("Flag", func() {
		It("should accept a JSON boolean", func() {
			var f catalog.Flag
			Expect(json.Unmarshal([]byte(`true`), &f)).To(Succeed())
			Expect(bool(f)).To(BeTrue())
		})

		It("should accept the strings true and false", func() {
			var f catalog.Flag
			Expect(json.Unmarshal([]byte(`"true"`), &f)).To(Succeed())
			Expect(bool(f)).To(BeTrue())

			Expect(json.Unmarshal([]byte(`"false"`), &f)).To(Succeed())
			Expect(bool(f)).To(BeFalse())
		})

		It("should reject an unparseable string", func() {
			var f catalog.Flag
			Expect(json.Unmarshal([]byte(`"yes please"`), &f)).To(HaveOccurred())
		})
	})

	Describe("Count", func() {
		It("should accept a JSON integer", func() {
			var c catalog.Count
			Expect(json.Unmarshal([]byte(`7`), &c)).To(Succeed())
			Expect(int(c)).To(Equal(7))
		})

		It("should accept a quoted integer", func() {
			var c catalog.Count
			Expect(json.Unmarshal([]byte(`"7"`), &c)).To(Succeed())
			Expect(int(c)).To(Equal(7))
		})

		It("should reject a fractional string", func() {
			var c catalog.Count
			Expect(json.Unmarshal([]byte(`"7.5"`), &c)).To(HaveOccurred())
		})
	})
})
