package catalog_test

import (
	"net/url"

	"github.com/furnimed/catalog-admin/internal/catalog"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Pagination", func() {
	Describe("ParsePage", func() {
		It("should default to page 1 and limit 10", func() {
			page := catalog.ParsePage(url.Values{})
			Expect(page.Number).To(Equal(1))
			Expect(page.Limit).To(Equal(10))
		})

		It("should accept valid values", func() {
			page := catalog.ParsePage(url.Values{"page": {"3"}, "limit": {"25"}})
			Expect(page.Number).To(Equal(3))
			Expect(page.Limit).To(Equal(25))
		})

		It("should fall back on non-numeric values", func() {
			page := catalog.ParsePage(url.Values{"page": {"abc"}, "limit": {"xyz"}})
			Expect(page.Number).To(Equal(1))
			Expect(page.Limit).To(Equal(10))
		})

		It("should fall back on zero and negative values", func() {
			page := catalog.ParsePage(url.Values{"page": {"0"}, "limit": {"-5"}})
			Expect(page.Number).To(Equal(1))
			Expect(page.Limit).To(Equal(10))
		})
	})

	Describe("Offset", func() {
		It("should start at zero for the first page", func() {
			Expect(catalog.Page{Number: 1, Limit: 10}.Offset()).To(Equal(0))
		})

		It("should skip previous pages", func() {
			Expect(catalog.Page{Number: 4, Limit: 25}.Offset()).To(Equal(75))
		})
	})

	Describe("NewMeta", func() {
		It("should round total pages up", func() {
			meta := catalog.NewMeta(25, catalog.Page{Number: 2, Limit: 10})
			Expect(meta.Total).To(Equal(int64(25)))
			Expect(meta.Page).To(Equal(2))
			Expect(meta.Limit).To(Equal(10))
			Expect(meta.TotalPages).To(Equal(int64(3)))
		})

		It("should not round an exact division", func() {
			meta := catalog.NewMeta(30, catalog.Page{Number: 1, Limit: 10})
			Expect(meta.TotalPages).To(Equal(int64(3)))
		})

		It("should report zero pages for an empty table", func() {
			meta := catalog.NewMeta(0, catalog.Page{Number: 1, Limit: 10})
			Expect(meta.Total).To(Equal(int64(0)))
			Expect(meta.TotalPages).To(Equal(int64(0)))
		})
	})
})
