package cmd

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/furnimed/catalog-admin/internal/employee"
	"github.com/furnimed/catalog-admin/internal/medical"
	"github.com/furnimed/catalog-admin/internal/product"
	"github.com/furnimed/catalog-admin/internal/user"
)

const (
	bootstrapAdminUsername = "admin"
	bootstrapAdminPassword = "Q1!qqqqqq"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with a bootstrap admin account and sample catalog rows for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer sqlDB.Close()

		db, err := initGorm(sqlDB)
		if err != nil {
			log.Fatalf("failed to init orm: %v", err)
		}

		if clearData {
			for _, table := range []string{"products", "employees", "medical_goods", "medicines"} {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear table %s: %v", table, err)
				}
				fmt.Println("Cleared table:", table)
			}
		}

		seedAdminUser(db, cfg.Security.BCryptCost)
		seedTable(db, "products", func() error {
			rows := sampleProducts(100)
			return db.Create(&rows).Error
		})
		seedTable(db, "employees", func() error {
			rows := sampleEmployees(100)
			return db.Create(&rows).Error
		})
		seedTable(db, "medical_goods", func() error {
			rows := sampleMedicalGoods(50)
			return db.Table(medical.TableMedicalGoods).Create(&rows).Error
		})
		seedTable(db, "medicines", func() error {
			rows := sampleMedicines(50)
			return db.Table(medical.TableMedicines).Create(&rows).Error
		})

		fmt.Println("Database seeded successfully")
	},
}

func seedAdminUser(db *gorm.DB, bcryptCost int) {
	var exists int
	row := db.Raw("SELECT 1 FROM users WHERE username = ?", bootstrapAdminUsername).Row()
	if err := row.Scan(&exists); err == nil {
		fmt.Println("admin user already exists; skipping")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(bootstrapAdminPassword), bcryptCost)
	if err != nil {
		log.Fatalf("failed to hash admin password: %v", err)
	}

	admin := user.User{
		Username:     bootstrapAdminUsername,
		PasswordHash: string(hash),
		Role:         user.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("failed to insert admin user: %v", err)
	}
	fmt.Println("Seeded admin user:", bootstrapAdminUsername)
}

// seedTable inserts rows only when the table is empty, so repeated runs do
// not duplicate data.
func seedTable(db *gorm.DB, table string, insert func() error) {
	var count int64
	if err := db.Table(table).Count(&count).Error; err != nil {
		log.Fatalf("failed to count rows in %s: %v", table, err)
	}
	if count > 0 {
		fmt.Printf("table %s already has %d rows; skipping\n", table, count)
		return
	}

	if err := insert(); err != nil {
		log.Fatalf("failed to seed %s: %v", table, err)
	}
	fmt.Println("Seeded table:", table)
}

var (
	furnitureCategories = []string{"Sofas", "Tables", "Chairs", "Beds", "Storage", "Desks"}
	furnitureMaterials  = []string{"Oak", "Walnut", "Pine", "Metal", "Glass", "Rattan", "Leather"}
	furnitureAdjectives = []string{"Classic", "Modern", "Compact", "Deluxe", "Scandi", "Rustic", "Urban"}

	employeePositions = []string{"Sales Manager", "Warehouse Operator", "Accountant", "Courier", "Store Consultant", "Logistics Coordinator"}
	firstNames        = []string{"Anna", "Boris", "Clara", "Dmitri", "Elena", "Felix", "Greta", "Henrik", "Irina", "Jonas"}
	lastNames         = []string{"Meyer", "Novak", "Orlov", "Petrov", "Quist", "Richter", "Sokolov", "Tamm", "Ustinov", "Vogel"}

	medicalCategories    = []string{"Diagnostics", "First Aid", "Orthopedics", "Hygiene", "Rehabilitation"}
	medicineCategories   = []string{"Analgesics", "Antibiotics", "Vitamins", "Antiseptics", "Cardiology"}
	medicalManufacturers = []string{"MedCore", "SanaPharm", "BioTrust", "Helix Labs", "NordMedica"}
)

func sampleProducts(n int) []product.Product {
	rows := make([]product.Product, 0, n)
	for i := 0; i < n; i++ {
		category := furnitureCategories[i%len(furnitureCategories)]
		material := furnitureMaterials[i%len(furnitureMaterials)]
		rows = append(rows, product.Product{
			Name:        fmt.Sprintf("%s %s %d", furnitureAdjectives[i%len(furnitureAdjectives)], material, i+1),
			Category:    category,
			Description: fmt.Sprintf("%s piece in %s finish", category, material),
			Material:    material,
			Dimensions:  fmt.Sprintf("%dx%dx%d cm", 60+rand.Intn(140), 40+rand.Intn(80), 40+rand.Intn(160)),
			Price:       float64(50+rand.Intn(1950)) + 0.99,
			ImageURL:    fmt.Sprintf("/images/products/%d.jpg", i+1),
			InStock:     i%5 != 0,
		})
	}
	return rows
}

func sampleEmployees(n int) []employee.Employee {
	rows := make([]employee.Employee, 0, n)
	for i := 0; i < n; i++ {
		first := firstNames[i%len(firstNames)]
		last := lastNames[(i/len(firstNames))%len(lastNames)]
		years := 1 + rand.Intn(19)
		rows = append(rows, employee.Employee{
			FullName:        first + " " + last,
			Position:        employeePositions[i%len(employeePositions)],
			Phone:           fmt.Sprintf("+1-555-%04d", 1000+i),
			Email:           fmt.Sprintf("%s.%s%d@furnimed.example", first, last, i+1),
			HireDate:        time.Now().AddDate(-years, -rand.Intn(12), 0),
			Salary:          float64(30000 + rand.Intn(70000)),
			ExperienceYears: years,
			ImageURL:        fmt.Sprintf("/images/employees/%d.jpg", i+1),
		})
	}
	return rows
}

func sampleMedicalGoods(n int) []medical.Good {
	return sampleGoods(n, medicalCategories, "Sterile %s supply")
}

func sampleMedicines(n int) []medical.Good {
	return sampleGoods(n, medicineCategories, "Certified %s preparation")
}

func sampleGoods(n int, categories []string, descFormat string) []medical.Good {
	rows := make([]medical.Good, 0, n)
	for i := 0; i < n; i++ {
		category := categories[i%len(categories)]
		rows = append(rows, medical.Good{
			Name:              fmt.Sprintf("%s item %d", category, i+1),
			Category:          category,
			Availability:      i%4 != 0,
			Description:       fmt.Sprintf(descFormat, category),
			Manufacturer:      medicalManufacturers[i%len(medicalManufacturers)],
			ImageURL:          fmt.Sprintf("/images/medical/%d.jpg", i+1),
			ExpirationDate:    time.Now().AddDate(1+rand.Intn(3), rand.Intn(12), 0),
			Price:             float64(5+rand.Intn(495)) + 0.50,
			Contraindications: "See package insert",
		})
	}
	return rows
}
