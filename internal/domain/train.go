package domain

// SeatClass is one service tier on a train with its own inventory.
type SeatClass struct {
	Availability int   `json:"availability"`
	Fare         int64 `json:"fare"`
}

type Train struct {
	TrainID string               `json:"train_id"`
	Route   string               `json:"route"`
	Time    string               `json:"time"`
	Name    string               `json:"name"`
	Classes map[string]SeatClass `json:"classes"`
}

// SoldOut reports whether every class on the train has zero availability.
func (t *Train) SoldOut() bool {
	for _, c := range t.Classes {
		if c.Availability > 0 {
			return false
		}
	}
	return true
}
