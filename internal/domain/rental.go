package domain

// 租车业务的八张表里除 customers 外的七张。
// 日期列走 "YYYY-MM-DD" 字符串、金额列走 decimal 字符串，与既有库保持一致。

type Location struct {
	LocationID    int    `gorm:"primaryKey;autoIncrement" json:"locationID"`
	LocationName  string `gorm:"size:100;not null" json:"locationName"`
	Address       string `gorm:"size:255" json:"address"`
	ContactNumber string `gorm:"size:20" json:"contactNumber"`

	Cars []Car `gorm:"foreignKey:LocationID" json:"cars,omitempty"`
}

func (Location) TableName() string { return "locations" }

type Car struct {
	CarID        int    `gorm:"primaryKey;autoIncrement" json:"carID"`
	CarModel     string `gorm:"size:100;not null" json:"carModel"`
	Year         string `gorm:"type:date" json:"year"`
	Color        string `gorm:"size:32" json:"color"`
	RentalRate   string `gorm:"type:decimal(10,2)" json:"rentalRate"`
	Availability bool   `gorm:"not null;default:true" json:"availability"`
	LocationID   int    `gorm:"index" json:"locationID"`

	Bookings []Booking `gorm:"foreignKey:CarID" json:"bookings,omitempty"`
}

func (Car) TableName() string { return "cars" }

type Booking struct {
	BookingID       int    `gorm:"primaryKey;autoIncrement" json:"bookingID"`
	CarID           int    `gorm:"index;not null" json:"carID"`
	CustomerID      int    `gorm:"index;not null" json:"customerID"`
	RentalStartDate string `gorm:"type:date" json:"rentalStartDate"`
	RentalEndDate   string `gorm:"type:date" json:"rentalEndDate"`
	TotalAmount     string `gorm:"type:decimal(10,2)" json:"totalAmount"`

	Payments []Payment `gorm:"foreignKey:BookingID" json:"payments,omitempty"`
}

func (Booking) TableName() string { return "bookings" }

type Reservation struct {
	ReservationID   int    `gorm:"primaryKey;autoIncrement" json:"reservationID"`
	CustomerID      int    `gorm:"index;not null" json:"customerID"`
	CarID           int    `gorm:"index;not null" json:"carID"`
	ReservationDate string `gorm:"type:date" json:"reservationDate"`
	PickupDate      string `gorm:"type:date" json:"pickupDate"`
	ReturnDate      string `gorm:"type:date" json:"returnDate"`
}

func (Reservation) TableName() string { return "reservations" }

type Payment struct {
	PaymentID     int    `gorm:"primaryKey;autoIncrement" json:"paymentID"`
	BookingID     int    `gorm:"index;not null" json:"bookingID"`
	PaymentDate   string `gorm:"type:date" json:"paymentDate"`
	Amount        string `gorm:"type:decimal(10,2)" json:"amount"`
	PaymentMethod string `gorm:"size:32" json:"paymentMethod"`
}

func (Payment) TableName() string { return "payments" }

type Insurance struct {
	InsuranceID       int    `gorm:"primaryKey;autoIncrement" json:"insuranceID"`
	CarID             int    `gorm:"index;not null" json:"carID"`
	InsuranceProvider string `gorm:"size:100" json:"insuranceProvider"`
	PolicyNumber      string `gorm:"size:64" json:"policyNumber"`
	StartDate         string `gorm:"type:date" json:"startDate"`
	EndDate           string `gorm:"type:date" json:"endDate"`
}

func (Insurance) TableName() string { return "insurances" }

type Maintenance struct {
	MaintenanceID   int    `gorm:"primaryKey;autoIncrement" json:"maintenanceID"`
	CarID           int    `gorm:"index;not null" json:"carID"`
	MaintenanceDate string `gorm:"type:date" json:"maintenanceDate"`
	Description     string `gorm:"size:255" json:"description"`
	Cost            string `gorm:"type:decimal(10,2)" json:"cost"`
}

func (Maintenance) TableName() string { return "maintenances" }

// AllModels AutoMigrate 用
func AllModels() []any {
	return []any{
		&Customer{}, &Location{}, &Car{}, &Booking{},
		&Reservation{}, &Payment{}, &Insurance{}, &Maintenance{},
	}
}
