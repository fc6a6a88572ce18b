package entity

// Domain-level query filters. Empty fields are not applied.

// BedFilter matches ward and status case-insensitively
type BedFilter struct {
	Ward   string
	Status string
}

type PatientFilter struct {
	Ward  string
	Limit int
}

type AlertFilter struct {
	Ward     string
	Severity string
	Resolved *bool
}

type TransferFilter struct {
	Status    string
	PatientID int
}
