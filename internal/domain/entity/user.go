package entity

import "time"

// Roles válidos para User.
const (
	RoleProducer = "producer"
	RoleConsumer = "consumer"
)

// User representa un actor del mercado: productor (publica productos) o
// consumidor (compra). Password se guarda en texto plano; es una demo,
// proteger credenciales está explícitamente fuera de alcance.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"` // único, comparación case-insensitive
	Password  string    `json:"password"`
	Role      string    `json:"role"` // producer, consumer
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsProducer indica si el usuario puede publicar y gestionar productos.
func (u *User) IsProducer() bool { return u != nil && u.Role == RoleProducer }

// IsConsumer indica si el usuario puede tener carrito y comprar.
func (u *User) IsConsumer() bool { return u != nil && u.Role == RoleConsumer }

// ValidRole valida que el rol sea uno de los soportados.
func ValidRole(role string) bool {
	return role == RoleProducer || role == RoleConsumer
}
