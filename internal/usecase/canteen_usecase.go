package usecase

// CanteenStatus is the open/closed flag plus the configured window, for
// display.
type CanteenStatus struct {
	Open     bool   `json:"open"`
	OpensAt  string `json:"opens_at"`
	ClosesAt string `json:"closes_at"`
}

// CanteenUsecase is the operating-hours gate. A background poller
// re-evaluates the gate on a fixed interval; Refresh re-evaluates it on
// demand. The gate disables item-adding and order placement but never
// affects already-placed orders.
type CanteenUsecase interface {
	IsOpen() bool
	Status() CanteenStatus
	Refresh()
}
