package city

type CityDB struct {
	ID   int64
	Name string
}

type CityModifyDB struct {
	ID   *int64
	Name *string
}
