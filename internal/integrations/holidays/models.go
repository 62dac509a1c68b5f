package holidays

// HolidayDTO праздник в ответе календаря и в кеше
type HolidayDTO struct {
	Date  string `json:"date"`
	Scope string `json:"scope"`
	Name  string `json:"name"`
}
