package model

import (
	"time"

	"gorm.io/datatypes"
)

type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "Open"
	TicketStatusInProgress TicketStatus = "In Progress"
	TicketStatusClosed     TicketStatus = "Closed"
)

const (
	DefaultTicketCategory = "General"
	DefaultTaskPriority   = "Medium"
	TaskStatusPending     = "Pending"
	DefaultUserRole       = "manager"
	RoleAdmin             = "admin"
)

type User struct {
	ID       uint64 `gorm:"primaryKey" json:"id"`
	Username string `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Password string `gorm:"type:varchar(255);not null" json:"-"`
	Role     string `gorm:"type:varchar(30);default:manager" json:"role"`
}

// Ticket.Status is settable but no endpoint transitions it yet.
type Ticket struct {
	ID        uint64       `gorm:"primaryKey" json:"id"`
	Customer  string       `gorm:"type:varchar(80);not null" json:"customer"`
	Issue     string       `gorm:"type:varchar(500);not null" json:"issue"`
	Status    TicketStatus `gorm:"type:varchar(30);default:Open" json:"status"`
	Category  string       `gorm:"type:varchar(50);default:General" json:"category"`
	CreatedAt time.Time    `gorm:"index" json:"created_at"`
}

type Task struct {
	ID       uint64 `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"type:varchar(150);not null" json:"title"`
	Owner    string `gorm:"type:varchar(80);not null" json:"owner"`
	DueDate  string `gorm:"type:varchar(20);not null" json:"due_date"`
	Priority string `gorm:"type:varchar(20);default:Medium" json:"priority"`
	Status   string `gorm:"type:varchar(20);default:Pending" json:"status"`
}

// Lead.Score is fixed when the lead is created and never recomputed.
type Lead struct {
	ID       uint64            `gorm:"primaryKey" json:"id"`
	Name     string            `gorm:"type:varchar(100);not null" json:"name"`
	Email    string            `gorm:"type:varchar(120);not null" json:"email"`
	Company  string            `gorm:"type:varchar(120);not null" json:"company"`
	Source   string            `gorm:"type:varchar(60);not null" json:"source"`
	DealSize float64           `gorm:"default:0" json:"deal_size"`
	Score    float64           `gorm:"default:0" json:"score"`
	Extra    datatypes.JSONMap `json:"extra,omitempty"`
}

// All lists every persisted entity, in schema creation order.
func All() []interface{} {
	return []interface{}{&User{}, &Ticket{}, &Task{}, &Lead{}}
}
