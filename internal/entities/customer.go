package entities

type Customer struct {
	ID          int64
	Name        string
	CityID      int64
	Description string
}

type CustomerModify struct {
	ID          *int64
	Name        *string
	CityID      *int64
	Description *string
}
