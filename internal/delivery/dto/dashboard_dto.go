package dto

type SystemStatsResponse struct {
	TotalPatients   int64 `json:"totalPatients"`
	AvailableBeds   int64 `json:"availableBeds"`
	TotalBeds       int64 `json:"totalBeds"`
	EmergencyAlerts int64 `json:"emergencyAlerts"`
	StaffOnDuty     int64 `json:"staffOnDuty"`
	TotalStaff      int64 `json:"totalStaff"`
}

type WardOccupancyResponse struct {
	Ward          string  `json:"ward"`
	Total         int64   `json:"total"`
	Occupied      int64   `json:"occupied"`
	Available     int64   `json:"available"`
	OccupancyRate float64 `json:"occupancyRate"`
}

type BedOccupancyResponse struct {
	Wards         []WardOccupancyResponse `json:"wards"`
	TotalBeds     int64                   `json:"totalBeds"`
	OccupiedBeds  int64                   `json:"occupiedBeds"`
	AvailableBeds int64                   `json:"availableBeds"`
	OccupancyRate float64                 `json:"occupancyRate"`
}

type PatientStatsResponse struct {
	TotalPatients    int64 `json:"totalPatients"`
	CriticalPatients int64 `json:"criticalPatients"`
	StablePatients   int64 `json:"stablePatients"`
}
