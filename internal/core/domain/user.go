package domain

// User is an account holder.
type User struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
}

// EntityID implements cache.Entity.
func (u User) EntityID() int64 { return u.ID }
