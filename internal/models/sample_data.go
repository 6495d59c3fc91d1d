package models

// SampleData is one generated month of records for a single user
type SampleData struct {
	Expenses []Record
	Earnings []Record
}

// Count returns the number of generated records
func (d *SampleData) Count() int {
	return len(d.Expenses) + len(d.Earnings)
}
