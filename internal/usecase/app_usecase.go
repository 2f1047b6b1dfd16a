package usecase

import "context"

// Status reports the reachability of the backing stores.
type Status struct {
	DB      bool `json:"db"`
	Storage bool `json:"storage"`
}

// Stats reports stored record counts.
type Stats struct {
	Users int64 `json:"users"`
	Files int64 `json:"files"`
}

// AppUsecase exposes service-level health and statistics.
type AppUsecase interface {
	Status(ctx context.Context) *Status
	Stats(ctx context.Context) (*Stats, error)
}
