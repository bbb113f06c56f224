package main

import (
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tourbook/internal/database"
	"tourbook/internal/domain"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "tourbook.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migration failed:", err)
	}

	log.Println("Cleaning old data...")
	for _, table := range []string{
		"messages", "conversations", "reviews", "cancellations", "payments",
		"bookings", "departures", "tour_packages", "announcements",
		"system_settings", "users",
	} {
		db.Exec("DELETE FROM " + table)
	}

	log.Println("Creating users...")
	admin := createUser(db, "admin@tourbook.io", "admin123", "Platform Admin", domain.RoleAdmin)
	operator := createUser(db, "operator@andestours.pe", "operator123", "Andes Tours", domain.RoleTourOperator)
	alice := createUser(db, "alice@example.com", "customer123", "Alice Ramos", domain.RoleCustomer)
	bruno := createUser(db, "bruno@example.com", "customer123", "Bruno Silva", domain.RoleCustomer)

	log.Println("Creating settings...")
	db.Create(&domain.SystemSettings{
		CancellationRules: domain.DefaultCancellationRules(),
		CommissionRules:   domain.DefaultCommissionRules(),
		Permissions:       domain.DefaultPermissions(),
		UpdatedBy:         admin.ID,
	})

	log.Println("Creating packages...")
	inca := domain.TourPackage{
		OperatorID:   operator.ID,
		Title:        "Inca Trail Classic",
		Description:  "Four day guided trek to Machu Picchu.",
		Destination:  "Cusco, Peru",
		DurationDays: 4,
		BasePrice:    1000,
		Type:         domain.PackageGroup,
		Status:       domain.PackagePublished,
	}
	db.Create(&inca)

	amazon := domain.TourPackage{
		OperatorID:   operator.ID,
		Title:        "Amazon Lodge Escape",
		Description:  "Private riverside lodge with daily excursions.",
		Destination:  "Iquitos, Peru",
		DurationDays: 3,
		BasePrice:    650,
		Type:         domain.PackagePrivate,
		Status:       domain.PackageDraft,
	}
	db.Create(&amazon)

	log.Println("Creating departures...")
	soon := domain.Departure{
		PackageID: inca.ID,
		StartDate: time.Now().AddDate(0, 0, 10),
		EndDate:   time.Now().AddDate(0, 0, 14),
		Capacity:  16,
		SeatsSold: 4,
		Season:    domain.SeasonNormal,
	}
	db.Create(&soon)

	peak := domain.Departure{
		PackageID: inca.ID,
		StartDate: time.Now().AddDate(0, 0, 70),
		EndDate:   time.Now().AddDate(0, 0, 74),
		Capacity:  16,
		SeatsSold: 12,
		Season:    domain.SeasonPeak,
	}
	db.Create(&peak)

	log.Println("Creating bookings...")
	createBooking(db, alice.ID, inca.ID, soon.ID, 2, 1000, domain.BookingConfirmed)
	createBooking(db, bruno.ID, inca.ID, peak.ID, 12, 12636, domain.BookingConfirmed)

	log.Println("Creating reviews...")
	db.Create(&domain.Review{
		PackageID: inca.ID,
		UserID:    alice.ID,
		Rating:    5,
		Comment:   "Unforgettable trek, great guides.",
		Status:    domain.ReviewApproved,
	})
	db.Create(&domain.Review{
		PackageID: inca.ID,
		UserID:    bruno.ID,
		Rating:    2,
		Comment:   "Campsite was overcrowded.",
		Status:    domain.ReviewPending,
		IsFlagged: true,
	})

	log.Println("Creating announcements...")
	db.Create(&domain.Announcement{
		Title:          "Rainy season advisory",
		Message:        "Trail conditions may change on short notice between January and March.",
		Type:           domain.AnnouncementWarning,
		Priority:       domain.PriorityMedium,
		TargetAudience: []domain.Audience{domain.AudienceAll},
		StartDate:      time.Now().AddDate(0, 0, -1),
		EndDate:        time.Now().AddDate(0, 2, 0),
		IsActive:       true,
		CreatedBy:      admin.ID,
	})

	log.Println("Seed complete.")
	log.Println("  admin:    admin@tourbook.io / admin123")
	log.Println("  operator: operator@andestours.pe / operator123")
	log.Println("  customer: alice@example.com / customer123")
}

func createUser(db *gorm.DB, email, password, name string, role domain.UserRole) *domain.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("bcrypt failed:", err)
	}
	u := domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
	}
	if err := db.Create(&u).Error; err != nil {
		log.Fatal("user create failed:", err)
	}
	return &u
}

func createBooking(db *gorm.DB, customerID, packageID, departureID int64, partySize int, amount float64, status domain.BookingStatus) {
	b := domain.Booking{
		CustomerID:  customerID,
		PackageID:   packageID,
		DepartureID: departureID,
		PartySize:   partySize,
		TotalAmount: amount,
		Status:      status,
	}
	if err := db.Create(&b).Error; err != nil {
		log.Fatal("booking create failed:", err)
	}
	db.Create(&domain.Payment{
		BookingID: b.ID,
		Amount:    amount,
		Status:    domain.PaymentSuccess,
	})
}
