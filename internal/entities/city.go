package entities

type City struct {
	ID   int64
	Name string
}

type CityModify struct {
	ID   *int64
	Name *string
}
