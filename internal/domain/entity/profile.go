package entity

// UserProfile is the self-declared local identity of the current customer.
// It is created on login and cleared on logout; its presence gates the
// membership discount. There is no authentication against any external
// system.
type UserProfile struct {
	Name string `json:"name"`
	UID  string `json:"uid"`
}
