package entities

type AssignmentRequest struct {
	LoadID       int64
	DriverID     int64
	TeamDriverID *int64
	TruckID      *int64
	TrailerID    *int64
}

type StatusChangeRequest struct {
	LoadID    int64
	Status    LoadStatus
	CarrierID *int64
	Reason    *string
}
