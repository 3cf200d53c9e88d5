package employee_test

import (
	"encoding/json"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/furnimed/catalog-admin/internal/catalog"
	"github.com/furnimed/catalog-admin/internal/employee"
)

func TestEmployee(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Employee Suite")
}

var _ = Describe("EmployeeDTO", func() {
	validPayload := `{
		"full_name": "Anna Meyer",
		"position": "Sales Manager",
		"phone": "+1-555-1000",
		"email": "anna@furnimed.example",
		"hire_date": "2020-03-15",
		"salary": 52000,
		"experience_years": 6
	}`

	Describe("decoding", func() {
		It("should accept numeric salary and experience", func() {
			var dto employee.EmployeeDTO
			Expect(json.Unmarshal([]byte(validPayload), &dto)).To(Succeed())
			Expect(float64(*dto.Salary)).To(Equal(52000.0))
			Expect(int(*dto.ExperienceYears)).To(Equal(6))
		})

		It("should accept string salary and experience", func() {
			payload := `{
				"full_name": "Anna Meyer",
				"position": "Sales Manager",
				"phone": "+1-555-1000",
				"hire_date": "2020-03-15",
				"salary": "52000.50",
				"experience_years": "6"
			}`
			var dto employee.EmployeeDTO
			Expect(json.Unmarshal([]byte(payload), &dto)).To(Succeed())
			Expect(float64(*dto.Salary)).To(Equal(52000.50))
			Expect(int(*dto.ExperienceYears)).To(Equal(6))
		})

		It("should reject an unparseable salary", func() {
			payload := `{"full_name": "Anna", "salary": "lots"}`
			var dto employee.EmployeeDTO
			Expect(json.Unmarshal([]byte(payload), &dto)).To(HaveOccurred())
		})
	})

	Describe("Validate", func() {
		It("should pass a complete payload", func() {
			var dto employee.EmployeeDTO
			Expect(json.Unmarshal([]byte(validPayload), &dto)).To(Succeed())
			Expect(dto.Validate()).To(Succeed())
		})

		It("should fail when required fields are missing", func() {
			dto := employee.EmployeeDTO{FullName: "Anna Meyer"}
			Expect(dto.Validate()).To(HaveOccurred())
		})

		It("should fail on a zero salary", func() {
			var dto employee.EmployeeDTO
			Expect(json.Unmarshal([]byte(validPayload), &dto)).To(Succeed())
			zero := catalog.Decimal(0)
			dto.Salary = &zero
			err := dto.Validate()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("salary is required"))
		})

		It("should fail on zero experience years", func() {
			var dto employee.EmployeeDTO
			Expect(json.Unmarshal([]byte(validPayload), &dto)).To(Succeed())
			zero := catalog.Count(0)
			dto.ExperienceYears = &zero
			err := dto.Validate()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("experience_years is required"))
		})

		It("should fail on a malformed hire date", func() {
			var dto employee.EmployeeDTO
			Expect(json.Unmarshal([]byte(validPayload), &dto)).To(Succeed())
			dto.HireDate = "15/03/2020"
			err := dto.Validate()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("hire_date"))
		})

		It("should accept an RFC 3339 hire date", func() {
			var dto employee.EmployeeDTO
			Expect(json.Unmarshal([]byte(validPayload), &dto)).To(Succeed())
			dto.HireDate = "2020-03-15T00:00:00Z"
			Expect(dto.Validate()).To(Succeed())
		})
	})

	Describe("ToModel", func() {
		It("should parse the hire date", func() {
			var dto employee.EmployeeDTO
			Expect(json.Unmarshal([]byte(validPayload), &dto)).To(Succeed())

			m := dto.ToModel()
			Expect(m.HireDate).To(Equal(time.Date(2020, 3, 15, 0, 0, 0, 0, time.UTC)))
			Expect(m.Salary).To(Equal(52000.0))
			Expect(m.ExperienceYears).To(Equal(6))
		})
	})
})
