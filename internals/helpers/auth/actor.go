package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"shiftlink_backend/internals/constants"
	"shiftlink_backend/internals/helpers/apperr"
)

// LocActor: key Locals berisi Actor hasil middleware auth.
const LocActor = "actor"

// Actor: identitas pemanggil (immutable), di-resolve sekali per request.
type Actor struct {
	UserID     uuid.UUID
	Role       string
	StudentID  *uuid.UUID
	EmployerID *uuid.UUID
}

func (a Actor) IsAuthenticated() bool { return a.UserID != uuid.Nil }
func (a Actor) IsAdmin() bool         { return a.Role == constants.RoleAdmin }
func (a Actor) IsStudent() bool       { return a.Role == constants.RoleStudent && a.StudentID != nil }
func (a Actor) IsEmployer() bool      { return a.Role == constants.RoleEmployer && a.EmployerID != nil }

// IsStudentID: actor adalah student tersebut.
func (a Actor) IsStudentID(id uuid.UUID) bool {
	return a.IsStudent() && *a.StudentID == id
}

// OwnsEmployer: actor bertindak sebagai employer tersebut.
func (a Actor) OwnsEmployer(id uuid.UUID) bool {
	return a.IsEmployer() && *a.EmployerID == id
}

// ActorFrom mengambil actor yang disimpan middleware auth.
func ActorFrom(c *fiber.Ctx) (Actor, error) {
	a, ok := c.Locals(LocActor).(Actor)
	if !ok || !a.IsAuthenticated() {
		return Actor{}, apperr.Unauthorized("unauthorized")
	}
	return a, nil
}

// SetActor juga mengisi locals lama (user_id, userRole) untuk guard lama.
func SetActor(c *fiber.Ctx, a Actor) {
	c.Locals(LocActor, a)
	c.Locals("user_id", a.UserID.String())
	c.Locals("userRole", a.Role)
}
