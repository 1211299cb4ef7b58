package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/agromercado-api/internal/application/usecase"
	"github.com/jhoicas/agromercado-api/internal/domain/entity"
)

// LocalActor key del usuario en sesión en Fiber locals.
const LocalActor = "actor"

// SessionMiddleware resuelve el puntero de sesión persistido y deja el
// usuario en c.Locals. No rechaza peticiones sin sesión: esa decisión vive
// en los casos de uso, que son la frontera del contrato.
func SessionMiddleware(auth *usecase.AuthUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, err := auth.Current()
		if err != nil {
			return respondError(c, err)
		}
		if actor != nil {
			c.Locals(LocalActor, actor)
		}
		return c.Next()
	}
}

// GetActor devuelve el usuario en sesión o nil (después del middleware).
func GetActor(c *fiber.Ctx) *entity.User {
	v := c.Locals(LocalActor)
	if v == nil {
		return nil
	}
	actor, _ := v.(*entity.User)
	return actor
}
