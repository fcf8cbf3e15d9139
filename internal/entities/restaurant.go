package entities

type Restaurant struct {
	ID          int64
	Name        string
	CityID      int64
	Description string
}

type RestaurantModify struct {
	ID          *int64
	Name        *string
	CityID      *int64
	Description *string
}
