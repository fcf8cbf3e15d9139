package customer

type CustomerDB struct {
	ID          int64
	Name        string
	CityID      int64
	Description string
}

type CustomerModifyDB struct {
	ID          *int64
	Name        *string
	CityID      *int64
	Description *string
}
