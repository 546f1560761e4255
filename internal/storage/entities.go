package storage

type ActivityType struct {
	ID   int64
	Name string
}

type Completion struct {
	TypeID int64
	Day    string // YYYY-MM-DD
}
