package domain

type Vehicle struct {
	ID           int32  `json:"id"`
	OwnerID      int32  `json:"owner_id"`
	Owner        *User  `json:"owner,omitempty"` // Populated when fetching vehicle details
	LicensePlate string `json:"license_plate"`
	Description  string `json:"description"`
	Price        int64  `json:"price"` // per rental day, minor units
	// IsRented is true iff a Processing booking exists for this vehicle.
	// Only the vehicle repository's MarkRented/MarkAvailable may flip it.
	IsRented  bool   `json:"is_rented"`
	Year      int32  `json:"year"`
	Insurance string `json:"insurance"`
	Mortgage  bool   `json:"mortgage"`
	ImagePath string `json:"image_path"`
	CreatedOn string `json:"created_on"`
}
