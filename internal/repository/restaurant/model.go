package restaurant

type RestaurantDB struct {
	ID          int64
	Name        string
	CityID      int64
	Description string
}

type RestaurantModifyDB struct {
	ID          *int64
	Name        *string
	CityID      *int64
	Description *string
}
