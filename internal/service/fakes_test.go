package service_test

import (
	"time"

	"jewelry-production-service/internal/entity"
	"jewelry-production-service/internal/repository/memory"
	"jewelry-production-service/internal/service"
)

var epoch = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

// newStore returns an in-memory store whose clock starts at epoch and advances a minute per read,
// so issue order is always observable in timestamps.
func newStore() (service.Store, *memory.DB) {
	db := memory.NewDB()
	tick := epoch
	db.SetClock(func() time.Time {
		tick = tick.Add(time.Minute)
		return tick
	})
	return memory.NewStore(db), db
}

var (
	owner  = entity.Actor{ID: 1, Role: entity.RoleOwner}
	caster = entity.Actor{ID: 5, Role: entity.RoleCaster}
	filer  = entity.Actor{ID: 6, Role: entity.RoleFiler}
)

func seedUsers(db *memory.DB) {
	db.AddUser(entity.User{ID: owner.ID, Username: "owner", FullName: "Owner", Role: entity.RoleOwner, IsActive: true})
	db.AddUser(entity.User{ID: caster.ID, Username: "ravi", FullName: "Ravi Caster", Role: entity.RoleCaster, IsActive: true})
	db.AddUser(entity.User{ID: filer.ID, Username: "meera", FullName: "Meera Filer", Role: entity.RoleFiler, IsActive: true})
}
