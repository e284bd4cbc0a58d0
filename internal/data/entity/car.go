package entity

type CarStatus string

const (
	CarStatusAvailable CarStatus = "available"
	CarStatusReserved  CarStatus = "reserved"
	CarStatusRented    CarStatus = "rented"
	CarStatusService   CarStatus = "service"
	CarStatusRetired   CarStatus = "retired"
)

type Car struct {
	ID        int64     `db:"car_id"`
	Model     string    `db:"model"`
	DailyRent float64   `db:"daily_rent"`
	Deposit   float64   `db:"deposit"`
	Mileage   int       `db:"mileage"`
	Status    CarStatus `db:"vehicle_status"`
}

// CarDetail is a Car joined with its specification through the has link.
type CarDetail struct {
	Car
	Specification *VehicleSpecification
}
