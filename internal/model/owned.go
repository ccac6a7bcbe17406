package model

// Owned is satisfied by pointers to records that belong to exactly one user.
// Repositories stamp the owner through SetOwner; services call ApplyDefaults
// before every create and update.
type Owned[T any] interface {
	*T
	Key() uint
	SetOwner(userID uint)
	ApplyDefaults()
}
